package page

import (
	"context"

	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/fallback"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/view"
)

type Article struct {
	Meta
	Article    domain.Article  `json:"article"`
	BodyHTML   string          `json:"bodyHtml"`
	Bookmarked bool            `json:"bookmarked"`
	Popular    domain.Articles `json:"popular"`
}

// Article returns an *apperr.NotFoundError when no article has slug.
func (c *Composer) Article(ctx context.Context, slug string) (*Article, error) {
	res, err := c.resolver.Resolve(ctx, fallback.Plan{
		Page: "article",
		Queries: []fallback.Query{
			articleQuery("article", slug),
			articlesQuery("popular", query.Params{}),
		},
	})
	if err != nil {
		return nil, err
	}

	a, err := single(res, "article")
	if err != nil {
		return nil, err
	}
	popular, err := articles(res, "popular")
	if err != nil {
		return nil, err
	}
	body, err := c.renderer.HTML(a.Content)
	if err != nil {
		return nil, err
	}

	return &Article{
		Meta:     metaOf(res),
		Article:  a,
		BodyHTML: body,
		Popular:  view.MostPopular(popular),
	}, nil
}
