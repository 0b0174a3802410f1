package fallback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/content"
	"github.com/DjordjeVuckovic/brainfeed/internal/corpus"
	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/validate"
)

// stubProvider answers from fixed data, optionally failing per resource.
type stubProvider struct {
	articles      domain.Articles
	categories    domain.Categories
	articlesErr   error
	categoriesErr error
	featuredErr   error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Articles(_ context.Context, p query.Params) (domain.Articles, error) {
	if p.Featured != nil && s.featuredErr != nil {
		return nil, s.featuredErr
	}
	if s.articlesErr != nil {
		return nil, s.articlesErr
	}
	if p.Category != "" && p.Category != domain.AllCategoriesSlug {
		out := domain.Articles{}
		for _, a := range s.articles {
			if a.CategorySlug() == p.Category {
				out = append(out, a)
			}
		}
		return out, nil
	}
	return s.articles, nil
}

func (s *stubProvider) Article(_ context.Context, slug string) (domain.Article, error) {
	for _, a := range s.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return domain.Article{}, apperr.NewNotFound("article", slug)
}

func (s *stubProvider) Categories(context.Context) (domain.Categories, error) {
	return s.categories, s.categoriesErr
}

func staticProvider(t *testing.T) content.Provider {
	t.Helper()
	c, err := corpus.Default(validate.New())
	require.NoError(t, err)
	return content.NewStaticProvider(c)
}

func liveData() *stubProvider {
	science := &domain.Category{ID: 3, Name: "Science", Slug: "science"}
	return &stubProvider{
		articles: domain.Articles{
			{ID: 100, Slug: "live-one", Title: "Live One", IsFeatured: true, Category: science},
			{ID: 101, Slug: "live-two", Title: "Live Two"},
		},
		categories: domain.Categories{{ID: 3, Name: "Science", Slug: "science"}},
	}
}

func homePlan() Plan {
	return Plan{
		Page: "home",
		Queries: []Query{
			{Name: "featured", Load: func(ctx context.Context, p content.Provider) (Data, error) {
				return p.Articles(ctx, query.Params{Featured: query.Featured(true)})
			}},
			{Name: "recent", Load: func(ctx context.Context, p content.Provider) (Data, error) {
				return p.Articles(ctx, query.Params{})
			}},
			{Name: "categories", Load: func(ctx context.Context, p content.Provider) (Data, error) {
				return p.Categories(ctx)
			}},
		},
	}
}

func categoryPlan(slug string) Plan {
	return Plan{
		Page: "category",
		Queries: []Query{
			{Name: "articles", Load: func(ctx context.Context, p content.Provider) (Data, error) {
				return p.Articles(ctx, query.Params{Category: slug})
			}},
		},
		Empty: func(r Results) bool { return r["articles"].Len() == 0 },
	}
}

func TestResolve_AllLive(t *testing.T) {
	r := NewResolver(liveData(), staticProvider(t))

	res, err := r.Resolve(context.Background(), homePlan())

	require.NoError(t, err)
	assert.Equal(t, StateLive, res.State)
	assert.Equal(t, "stub", res.Provider)
	assert.Empty(t, res.Banner)
	assert.Equal(t, apperr.KindNone, res.Reason)
	assert.Equal(t, 2, res.Results["recent"].Len())
}

func TestResolve_OneFailedSubQueryFallsBackForWholePage(t *testing.T) {
	live := liveData()
	live.featuredErr = &apperr.TimeoutError{Resource: "articles", After: 2 * time.Second}
	r := NewResolver(live, staticProvider(t))

	res, err := r.Resolve(context.Background(), homePlan())

	require.NoError(t, err)
	assert.Equal(t, StateFallback, res.State)
	assert.Equal(t, Banner, res.Banner)
	assert.Equal(t, apperr.KindTimeout, res.Reason)
	assert.Equal(t, content.ProviderStatic, res.Provider)

	// recent and categories succeeded live but come from the corpus too
	recent := res.Results["recent"].(domain.Articles)
	assert.Len(t, recent, 6)
	assert.Equal(t, int64(1), recent[0].ID)
	assert.Len(t, res.Results["categories"], 6)
	assert.Equal(t, 3, res.Results["featured"].Len())
}

func TestResolve_ValidationFailureFallsBack(t *testing.T) {
	live := liveData()
	live.categoriesErr = apperr.NewValidation("category_list payload must be a JSON array")
	r := NewResolver(live, staticProvider(t))

	res, err := r.Resolve(context.Background(), homePlan())

	require.NoError(t, err)
	assert.Equal(t, StateFallback, res.State)
	assert.Equal(t, apperr.KindValidation, res.Reason)
}

func TestResolve_AbsentResultFallsBack(t *testing.T) {
	live := liveData()
	live.categories = nil
	r := NewResolver(live, staticProvider(t))

	res, err := r.Resolve(context.Background(), homePlan())

	require.NoError(t, err)
	assert.Equal(t, StateFallback, res.State)
	assert.Equal(t, apperr.KindUnknown, res.Reason)
}

func TestResolve_EmptyCategoryIsEmptyNotFallback(t *testing.T) {
	r := NewResolver(liveData(), staticProvider(t))

	res, err := r.Resolve(context.Background(), categoryPlan("sports"))

	require.NoError(t, err)
	assert.Equal(t, StateEmpty, res.State)
	assert.Empty(t, res.Banner)
	assert.Equal(t, 0, res.Results["articles"].Len())
}

func TestResolve_NonEmptyCategoryIsLive(t *testing.T) {
	r := NewResolver(liveData(), staticProvider(t))

	res, err := r.Resolve(context.Background(), categoryPlan("science"))

	require.NoError(t, err)
	assert.Equal(t, StateLive, res.State)
}

func TestResolve_NotFoundIsReturned(t *testing.T) {
	r := NewResolver(liveData(), staticProvider(t))
	plan := Plan{
		Page: "article",
		Queries: []Query{{Name: "article", Load: func(ctx context.Context, p content.Provider) (Data, error) {
			a, err := p.Article(ctx, "quantum-computing-explained")
			if err != nil {
				return nil, err
			}
			return domain.Single{Article: a}, nil
		}}},
	}

	_, err := r.Resolve(context.Background(), plan)

	var nfe *apperr.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}

func TestResolve_CallerCancelIsNotFallback(t *testing.T) {
	live := liveData()
	live.articlesErr = context.Canceled
	r := NewResolver(live, staticProvider(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Resolve(ctx, homePlan())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPage_Transitions(t *testing.T) {
	p := NewPage("home")
	assert.Equal(t, StateLoading, p.State())

	require.NoError(t, p.Transition(StateLive))
	assert.Equal(t, StateLive, p.State())

	var te *TransitionError
	assert.True(t, errors.As(p.Transition(StateFallback), &te))
	assert.Equal(t, StateLive, p.State())

	assert.Error(t, NewPage("blog").Transition(StateLoading))
}
