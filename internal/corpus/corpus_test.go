package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/brainfeed/internal/validate"
)

func TestDefault(t *testing.T) {
	c, err := Default(validate.New())

	require.NoError(t, err)
	require.Len(t, c.Articles, 6)
	require.Len(t, c.Categories, 6)

	for i, a := range c.Articles {
		assert.Equal(t, int64(i+1), a.ID)
		assert.NotNil(t, a.Category, "article %d has no category", a.ID)
		assert.NotNil(t, a.Author, "article %d has no author", a.ID)
		assert.NotEmpty(t, a.Content)
	}

	var featured []int64
	for _, a := range c.Articles {
		if a.IsFeatured {
			featured = append(featured, a.ID)
		}
	}
	assert.Equal(t, []int64{1, 2, 3}, featured)
	assert.Equal(t, "technology", c.Categories[0].Slug)
	assert.Equal(t, 2024, c.Articles[0].PublishedAt.Year())
}

func TestLoader_RejectsInvalidArticles(t *testing.T) {
	doc := `
categories: []
articles:
  - {id: 1, title: Missing slug, categoryId: 1, isFeatured: false}
`
	_, err := NewLoader(strings.NewReader(doc), validate.New()).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpus articles")
}

func TestLoader_RequiresBothCollections(t *testing.T) {
	_, err := NewLoader(strings.NewReader("articles: []\n"), validate.New()).Load()

	assert.Error(t, err)
}
