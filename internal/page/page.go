// Package page composes the view model of every served page from a fallback
// resolution and the view projections.
package page

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/brainfeed/internal/content"
	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/fallback"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/render"
)

const (
	AllArticlesTitle       = "All Articles"
	AllArticlesDescription = "Explore our latest stories, insights, and educational resources across all categories."
	RelatedCategoriesSize  = 6
)

// Meta is embedded in every view model.
type Meta struct {
	State  fallback.State `json:"state"`
	Source string         `json:"source"`
	Banner string         `json:"banner,omitempty"`
	Reason string         `json:"reason,omitempty"`
}

func metaOf(res *fallback.Resolution) Meta {
	return Meta{
		State:  res.State,
		Source: res.Provider,
		Banner: res.Banner,
		Reason: string(res.Reason),
	}
}

type Resolver interface {
	Resolve(ctx context.Context, plan fallback.Plan) (*fallback.Resolution, error)
}

type Composer struct {
	resolver Resolver
	renderer *render.Renderer
}

func NewComposer(r Resolver, renderer *render.Renderer) *Composer {
	return &Composer{resolver: r, renderer: renderer}
}

func articlesQuery(name string, params query.Params) fallback.Query {
	return fallback.Query{
		Name: name,
		Load: func(ctx context.Context, p content.Provider) (fallback.Data, error) {
			return p.Articles(ctx, params)
		},
	}
}

func categoriesQuery(name string) fallback.Query {
	return fallback.Query{
		Name: name,
		Load: func(ctx context.Context, p content.Provider) (fallback.Data, error) {
			return p.Categories(ctx)
		},
	}
}

func articleQuery(name, slug string) fallback.Query {
	return fallback.Query{
		Name: name,
		Load: func(ctx context.Context, p content.Provider) (fallback.Data, error) {
			a, err := p.Article(ctx, slug)
			if err != nil {
				return nil, err
			}
			return domain.Single{Article: a}, nil
		},
	}
}

func emptyWhen(name string) func(fallback.Results) bool {
	return func(r fallback.Results) bool { return r[name].Len() == 0 }
}

func articles(res *fallback.Resolution, name string) (domain.Articles, error) {
	a, ok := res.Results[name].(domain.Articles)
	if !ok {
		return nil, fmt.Errorf("%s page: %s is %T, not articles", res.Page, name, res.Results[name])
	}
	return a, nil
}

func categories(res *fallback.Resolution, name string) (domain.Categories, error) {
	c, ok := res.Results[name].(domain.Categories)
	if !ok {
		return nil, fmt.Errorf("%s page: %s is %T, not categories", res.Page, name, res.Results[name])
	}
	return c, nil
}

func single(res *fallback.Resolution, name string) (domain.Article, error) {
	s, ok := res.Results[name].(domain.Single)
	if !ok {
		return domain.Article{}, fmt.Errorf("%s page: %s is %T, not an article", res.Page, name, res.Results[name])
	}
	return s.Article, nil
}
