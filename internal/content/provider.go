// Package content provides article and category collections, either live
// from the content API or from the bundled sample corpus.
package content

import (
	"context"

	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
)

const (
	ProviderLive   = "live"
	ProviderStatic = "static"
)

type Provider interface {
	Name() string
	Articles(ctx context.Context, p query.Params) (domain.Articles, error)
	// Article returns an *apperr.NotFoundError when no article has slug.
	Article(ctx context.Context, slug string) (domain.Article, error)
	Categories(ctx context.Context) (domain.Categories, error)
}
