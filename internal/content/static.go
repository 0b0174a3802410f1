package content

import (
	"context"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/corpus"
	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/view"
	"github.com/DjordjeVuckovic/brainfeed/pkg/utils"
)

// StaticProvider answers from the bundled corpus, applying the same filter
// rules the content API applies server-side.
type StaticProvider struct {
	corpus *corpus.Corpus
}

func NewStaticProvider(c *corpus.Corpus) *StaticProvider {
	return &StaticProvider{corpus: c}
}

func (p *StaticProvider) Name() string { return ProviderStatic }

func (p *StaticProvider) Articles(_ context.Context, params query.Params) (domain.Articles, error) {
	key := query.NewKey(query.ResourceArticles, params)

	articles := view.ByCategory(p.corpus.Articles, key.Category)
	switch key.Featured {
	case "true":
		articles = view.Featured(articles)
	case "false":
		articles = notFeatured(articles)
	}
	return view.Search(articles, key.Search), nil
}

func (p *StaticProvider) Article(_ context.Context, slug string) (domain.Article, error) {
	a, ok := view.FindBySlug(p.corpus.Articles, slug)
	if !ok {
		return domain.Article{}, apperr.NewNotFound(string(query.ResourceArticle), slug)
	}
	return a, nil
}

func (p *StaticProvider) Categories(context.Context) (domain.Categories, error) {
	return p.corpus.Categories, nil
}

func notFeatured(articles domain.Articles) domain.Articles {
	return utils.Filter(articles, func(a domain.Article) bool { return !a.IsFeatured })
}
