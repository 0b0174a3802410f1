package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/fetch"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/validate"
)

const (
	articlesPath   = "/api/articles"
	categoriesPath = "/api/categories"
)

type Fetcher interface {
	Fetch(ctx context.Context, resource, path string, params url.Values) (*fetch.Payload, error)
}

// LiveProvider reads through the query cache, so identical concurrent
// requests share one fetch, and validates every payload before use.
type LiveProvider struct {
	fetcher   Fetcher
	validator *validate.Validator
	cache     *query.Cache
}

func NewLiveProvider(f Fetcher, v *validate.Validator, c *query.Cache) *LiveProvider {
	return &LiveProvider{fetcher: f, validator: v, cache: c}
}

func (p *LiveProvider) Name() string { return ProviderLive }

func (p *LiveProvider) Articles(ctx context.Context, params query.Params) (domain.Articles, error) {
	key := query.NewKey(query.ResourceArticles, params)

	data, err := p.cache.Get(ctx, key, func(ctx context.Context) (any, error) {
		payload, err := p.fetcher.Fetch(ctx, string(key.Resource), articlesPath, key.Values())
		if err != nil {
			return nil, err
		}
		articles, err := p.validator.Articles(payload.Body)
		if err != nil {
			return nil, err
		}
		return articles, nil
	})
	if err != nil {
		return nil, err
	}

	articles, ok := data.(domain.Articles)
	if !ok {
		return nil, fmt.Errorf("articles: unexpected cached value %T", data)
	}
	return articles, nil
}

func (p *LiveProvider) Article(ctx context.Context, slug string) (domain.Article, error) {
	key := query.ArticleKey(slug)

	data, err := p.cache.Get(ctx, key, func(ctx context.Context) (any, error) {
		payload, err := p.fetcher.Fetch(ctx, string(key.Resource), articlesPath+"/"+url.PathEscape(key.Slug), nil)
		if err != nil {
			var te *apperr.TransportError
			if errors.As(err, &te) && te.StatusCode == http.StatusNotFound {
				return nil, apperr.NewNotFound(string(key.Resource), key.Slug)
			}
			return nil, err
		}
		article, err := p.validator.Article(payload.Body)
		if err != nil {
			return nil, err
		}
		return article, nil
	})
	if err != nil {
		return domain.Article{}, err
	}

	article, ok := data.(domain.Article)
	if !ok {
		return domain.Article{}, fmt.Errorf("article: unexpected cached value %T", data)
	}
	return article, nil
}

func (p *LiveProvider) Categories(ctx context.Context) (domain.Categories, error) {
	key := query.CategoriesKey()

	data, err := p.cache.Get(ctx, key, func(ctx context.Context) (any, error) {
		payload, err := p.fetcher.Fetch(ctx, string(key.Resource), categoriesPath, nil)
		if err != nil {
			return nil, err
		}
		categories, err := p.validator.Categories(payload.Body)
		if err != nil {
			return nil, err
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}

	categories, ok := data.(domain.Categories)
	if !ok {
		return nil, fmt.Errorf("categories: unexpected cached value %T", data)
	}
	return categories, nil
}

// Refresh drops every cached result and cancels outstanding loads.
func (p *LiveProvider) Refresh() {
	p.cache.Purge()
}
