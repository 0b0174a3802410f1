package page

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/fallback"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/view"
	"github.com/DjordjeVuckovic/brainfeed/pkg/pagination"
	"github.com/DjordjeVuckovic/brainfeed/pkg/utils"
)

type Blog struct {
	Meta
	Articles   domain.Articles  `json:"articles"`
	Popular    domain.Articles  `json:"popular"`
	Pagination *pagination.Info `json:"pagination,omitempty"`
}

// Blog lists every article. With a non-nil req only the requested page is
// returned; the popular sidebar always comes from the full list.
func (c *Composer) Blog(ctx context.Context, req *pagination.OffsetRequest) (*Blog, error) {
	res, err := c.resolver.Resolve(ctx, fallback.Plan{
		Page:    "blog",
		Queries: []fallback.Query{articlesQuery("articles", query.Params{})},
		Empty:   emptyWhen("articles"),
	})
	if err != nil {
		return nil, err
	}

	all, err := articles(res, "articles")
	if err != nil {
		return nil, err
	}
	out := &Blog{
		Meta:     metaOf(res),
		Articles: all,
		Popular:  view.MostPopular(all),
	}
	if req != nil {
		items, info := pagination.Paginate(all, *req)
		out.Articles = items
		out.Pagination = &info
	}
	return out, nil
}

type Category struct {
	Meta
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    *domain.Category  `json:"category,omitempty"`
	Articles    domain.Articles   `json:"articles"`
	Popular     domain.Articles   `json:"popular"`
	Related     domain.Categories `json:"related"`
}

// Category lists the articles of slug. "all", a blank slug or a slug no
// category has are all titled "All Articles".
func (c *Composer) Category(ctx context.Context, slug string) (*Category, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))

	res, err := c.resolver.Resolve(ctx, fallback.Plan{
		Page: "category",
		Queries: []fallback.Query{
			articlesQuery("articles", query.Params{Category: slug}),
			articlesQuery("popular", query.Params{}),
			categoriesQuery("categories"),
		},
		Empty: emptyWhen("articles"),
	})
	if err != nil {
		return nil, err
	}

	list, err := articles(res, "articles")
	if err != nil {
		return nil, err
	}
	popular, err := articles(res, "popular")
	if err != nil {
		return nil, err
	}
	cats, err := categories(res, "categories")
	if err != nil {
		return nil, err
	}

	out := &Category{
		Meta:        metaOf(res),
		Slug:        slug,
		Title:       AllArticlesTitle,
		Description: AllArticlesDescription,
		Articles:    list,
		Popular:     view.MostPopular(popular),
		Related: utils.Take(utils.Filter(cats, func(cat domain.Category) bool {
			return cat.Slug != slug
		}), RelatedCategoriesSize),
	}
	if cat, ok := view.CategoryBySlug(cats, slug); ok {
		out.Category = &cat
		out.Title = cat.Name
		out.Description = cat.Description
	}
	return out, nil
}

type Search struct {
	Meta
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results domain.Articles `json:"results"`
}

func (c *Composer) Search(ctx context.Context, q string) (*Search, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperr.NewValidationFields("search query is required", map[string]string{"q": "is required"})
	}

	res, err := c.resolver.Resolve(ctx, fallback.Plan{
		Page:    "search",
		Queries: []fallback.Query{articlesQuery("results", query.Params{Search: q})},
		Empty:   emptyWhen("results"),
	})
	if err != nil {
		return nil, err
	}

	found, err := articles(res, "results")
	if err != nil {
		return nil, err
	}
	return &Search{
		Meta:    metaOf(res),
		Query:   q,
		Count:   len(found),
		Results: found,
	}, nil
}
