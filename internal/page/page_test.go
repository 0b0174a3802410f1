package page

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/bookmark"
	"github.com/DjordjeVuckovic/brainfeed/internal/content"
	"github.com/DjordjeVuckovic/brainfeed/internal/corpus"
	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/fallback"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/render"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/brainfeed/internal/validate"
	"github.com/DjordjeVuckovic/brainfeed/pkg/pagination"
)

// liveCorpus serves a corpus as if it came from the content API.
type liveCorpus struct {
	*content.StaticProvider
}

func (liveCorpus) Name() string { return content.ProviderLive }

// downProvider fails every call the way an unreachable API does.
type downProvider struct{}

func (downProvider) Name() string { return content.ProviderLive }

func (downProvider) Articles(context.Context, query.Params) (domain.Articles, error) {
	return nil, &apperr.TimeoutError{Resource: "articles", After: 2 * time.Second}
}

func (downProvider) Article(context.Context, string) (domain.Article, error) {
	return domain.Article{}, &apperr.TransportError{Resource: "article", Err: errors.New("connection refused")}
}

func (downProvider) Categories(context.Context) (domain.Categories, error) {
	return nil, &apperr.TransportError{Resource: "categories", StatusCode: 503}
}

func loadCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.Default(validate.New())
	require.NoError(t, err)
	return c
}

func newComposer(t *testing.T, live content.Provider) *Composer {
	t.Helper()
	static := content.NewStaticProvider(loadCorpus(t))
	return NewComposer(fallback.NewResolver(live, static), render.New())
}

func liveComposer(t *testing.T, c *corpus.Corpus) *Composer {
	t.Helper()
	return newComposer(t, liveCorpus{content.NewStaticProvider(c)})
}

func TestHome_Live(t *testing.T) {
	home, err := liveComposer(t, loadCorpus(t)).Home(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fallback.StateLive, home.State)
	assert.Empty(t, home.Banner)
	assert.Len(t, home.Hero, 3)
	require.NotNil(t, home.FeaturedMain)
	assert.Equal(t, int64(1), home.FeaturedMain.ID)
	assert.Len(t, home.Latest, 6)
	assert.Len(t, home.Popular, 5)
	assert.Len(t, home.Categories, 6)
}

func TestHome_BackendDownServesSampleContent(t *testing.T) {
	home, err := newComposer(t, downProvider{}).Home(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fallback.StateFallback, home.State)
	assert.Equal(t, "Backend unavailable - displaying sample content", home.Banner)
	assert.Equal(t, string(apperr.KindTimeout), home.Reason)
	assert.Equal(t, content.ProviderStatic, home.Source)
	assert.Len(t, home.Hero, 3)
}

func TestHome_EmptyLiveCollection(t *testing.T) {
	empty := &corpus.Corpus{Articles: domain.Articles{}, Categories: domain.Categories{}}

	home, err := liveComposer(t, empty).Home(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fallback.StateEmpty, home.State)
	assert.Nil(t, home.FeaturedMain)
	assert.Empty(t, home.Banner)
}

func TestBlog(t *testing.T) {
	blog, err := liveComposer(t, loadCorpus(t)).Blog(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, blog.Articles, 6)
	assert.Len(t, blog.Popular, 5)
	assert.Nil(t, blog.Pagination)
}

func TestBlog_Paginated(t *testing.T) {
	blog, err := liveComposer(t, loadCorpus(t)).Blog(context.Background(), &pagination.OffsetRequest{Page: 2, Size: 4})

	require.NoError(t, err)
	require.Len(t, blog.Articles, 2)
	assert.Equal(t, int64(5), blog.Articles[0].ID)
	assert.Len(t, blog.Popular, 5)
	require.NotNil(t, blog.Pagination)
	assert.Equal(t, 6, blog.Pagination.Total)
	assert.False(t, blog.Pagination.HasMore)
}

func TestCategory_All(t *testing.T) {
	page, err := liveComposer(t, loadCorpus(t)).Category(context.Background(), "all")

	require.NoError(t, err)
	assert.Equal(t, fallback.StateLive, page.State)
	assert.Equal(t, AllArticlesTitle, page.Title)
	assert.Nil(t, page.Category)
	assert.Len(t, page.Articles, 6)
	assert.Len(t, page.Related, 6)
}

func TestCategory_Known(t *testing.T) {
	page, err := liveComposer(t, loadCorpus(t)).Category(context.Background(), "science")

	require.NoError(t, err)
	assert.Equal(t, "Science", page.Title)
	assert.Equal(t, "Scientific discoveries", page.Description)
	require.Len(t, page.Articles, 1)
	assert.Equal(t, int64(3), page.Articles[0].ID)
	assert.Len(t, page.Related, 5)
	for _, c := range page.Related {
		assert.NotEqual(t, "science", c.Slug)
	}
}

func TestCategory_EmptyIsNotFallback(t *testing.T) {
	page, err := liveComposer(t, loadCorpus(t)).Category(context.Background(), "sports")

	require.NoError(t, err)
	assert.Equal(t, fallback.StateEmpty, page.State)
	assert.Empty(t, page.Banner)
	assert.Empty(t, page.Articles)
	assert.Equal(t, AllArticlesTitle, page.Title)
}

func TestSearch(t *testing.T) {
	c := liveComposer(t, loadCorpus(t))

	res, err := c.Search(context.Background(), " quantum ")
	require.NoError(t, err)
	assert.Equal(t, "quantum", res.Query)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "quantum-computing-explained", res.Results[0].Slug)

	_, err = c.Search(context.Background(), "   ")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSearch_FallbackUsesSameMatchingRule(t *testing.T) {
	res, err := newComposer(t, downProvider{}).Search(context.Background(), "QUANTUM")

	require.NoError(t, err)
	assert.Equal(t, fallback.StateFallback, res.State)
	assert.Equal(t, 1, res.Count)
}

func TestArticle(t *testing.T) {
	c := liveComposer(t, loadCorpus(t))

	page, err := c.Article(context.Background(), "quantum-computing-explained")
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Article.ID)
	assert.Contains(t, page.BodyHTML, "<h2>Qubits, not bits</h2>")
	assert.Len(t, page.Popular, 5)

	_, err = c.Article(context.Background(), "does-not-exist")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestBookmarks_JoinAgainstResolvedArticles(t *testing.T) {
	ctx := context.Background()
	store := bookmark.NewStore(bookmark.NewRecordStorage(in_mem.NewRecorder(), "s1"))
	_, err := store.Add(ctx, domain.Article{ID: 5, Slug: "ml-in-healthcare", Title: "ML"})
	require.NoError(t, err)
	_, err = store.Add(ctx, domain.Article{ID: 99, Slug: "retired", Title: "Retired"})
	require.NoError(t, err)

	page, err := liveComposer(t, loadCorpus(t)).Bookmarks(ctx, store)

	require.NoError(t, err)
	assert.Equal(t, fallback.StateLive, page.State)
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, int64(5), page.Articles[0].ID)
	assert.Len(t, page.Saved, 2)
}

func TestBookmarks_NoneSavedIsEmpty(t *testing.T) {
	store := bookmark.NewStore(bookmark.NewRecordStorage(in_mem.NewRecorder(), ""))

	page, err := liveComposer(t, loadCorpus(t)).Bookmarks(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, fallback.StateEmpty, page.State)
	assert.Equal(t, 0, page.Count)
}
