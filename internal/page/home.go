package page

import (
	"context"

	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/fallback"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/view"
)

type Home struct {
	Meta
	Hero         domain.Articles   `json:"hero"`
	FeaturedMain *domain.Article   `json:"featuredMain,omitempty"`
	Latest       domain.Articles   `json:"latest"`
	Popular      domain.Articles   `json:"popular"`
	Categories   domain.Categories `json:"categories"`
}

func (c *Composer) Home(ctx context.Context) (*Home, error) {
	res, err := c.resolver.Resolve(ctx, fallback.Plan{
		Page: "home",
		Queries: []fallback.Query{
			articlesQuery("featured", query.Params{Featured: query.Featured(true)}),
			articlesQuery("recent", query.Params{}),
			categoriesQuery("categories"),
		},
		Empty: emptyWhen("recent"),
	})
	if err != nil {
		return nil, err
	}

	featured, err := articles(res, "featured")
	if err != nil {
		return nil, err
	}
	recent, err := articles(res, "recent")
	if err != nil {
		return nil, err
	}
	cats, err := categories(res, "categories")
	if err != nil {
		return nil, err
	}

	home := &Home{
		Meta:       metaOf(res),
		Hero:       view.Hero(featured),
		Latest:     view.Latest(recent),
		Popular:    view.MostPopular(recent),
		Categories: view.CategoryNav(cats),
	}
	if len(home.Hero) > 0 {
		main := home.Hero[0]
		home.FeaturedMain = &main
	}
	return home, nil
}
