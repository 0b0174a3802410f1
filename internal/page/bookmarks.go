package page

import (
	"context"

	"github.com/DjordjeVuckovic/brainfeed/internal/bookmark"
	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/fallback"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
)

type Bookmarks struct {
	Meta
	Count    int               `json:"count"`
	Articles domain.Articles   `json:"articles"`
	Saved    []domain.Bookmark `json:"saved"`
}

// Bookmarks joins the saved bookmarks of store with the resolved articles.
// Saved lists every stored bookmark, including those whose article is
// currently unavailable.
func (c *Composer) Bookmarks(ctx context.Context, store *bookmark.Store) (*Bookmarks, error) {
	res, err := c.resolver.Resolve(ctx, fallback.Plan{
		Page:    "bookmarks",
		Queries: []fallback.Query{articlesQuery("articles", query.Params{})},
		Empty: func(r fallback.Results) bool {
			all, _ := r["articles"].(domain.Articles)
			return len(store.Join(all)) == 0
		},
	})
	if err != nil {
		return nil, err
	}

	all, err := articles(res, "articles")
	if err != nil {
		return nil, err
	}
	joined := store.Join(all)
	return &Bookmarks{
		Meta:     metaOf(res),
		Count:    len(joined),
		Articles: joined,
		Saved:    store.List(),
	}, nil
}
