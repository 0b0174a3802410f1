package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/corpus"
	"github.com/DjordjeVuckovic/brainfeed/internal/query"
	"github.com/DjordjeVuckovic/brainfeed/internal/validate"
)

func newStaticProvider(t *testing.T) *StaticProvider {
	t.Helper()
	c, err := corpus.Default(validate.New())
	require.NoError(t, err)
	return NewStaticProvider(c)
}

func TestStaticProvider_Articles(t *testing.T) {
	p := newStaticProvider(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		params query.Params
		want   int
	}{
		{"all", query.Params{Category: "all"}, 6},
		{"absent category", query.Params{}, 6},
		{"featured", query.Params{Featured: query.Featured(true)}, 3},
		{"not featured", query.Params{Featured: query.Featured(false)}, 3},
		{"category", query.Params{Category: "science"}, 1},
		{"search", query.Params{Search: "Quantum"}, 1},
		{"featured in category", query.Params{Category: "security", Featured: query.Featured(true)}, 0},
		{"unknown category", query.Params{Category: "sports"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Articles(ctx, tt.params)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestStaticProvider_Article(t *testing.T) {
	p := newStaticProvider(t)

	a, err := p.Article(context.Background(), "quantum-computing-explained")
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.ID)

	_, err = p.Article(context.Background(), "nope")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestStaticProvider_Categories(t *testing.T) {
	p := newStaticProvider(t)

	cats, err := p.Categories(context.Background())

	require.NoError(t, err)
	assert.Len(t, cats, 6)
	assert.Equal(t, ProviderStatic, p.Name())
}
