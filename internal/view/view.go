// Package view derives the sections a page shows from one canonical,
// ordered article collection. Every projection is recomputed on read.
package view

import (
	"strings"

	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/pkg/utils"
)

const (
	HeroSize        = 3
	LatestSize      = 10
	PopularSize     = 5
	CategoryNavSize = 8
)

// Featured keeps articles flagged as featured, in source order.
func Featured(articles domain.Articles) domain.Articles {
	return utils.Filter(articles, func(a domain.Article) bool { return a.IsFeatured })
}

func Hero(articles domain.Articles) domain.Articles {
	return utils.Take(Featured(articles), HeroSize)
}

// Latest assumes the collection is delivered newest first.
func Latest(articles domain.Articles) domain.Articles {
	return utils.Take(articles, LatestSize)
}

// MostPopular takes the head of the collection as delivered. The provider's
// order is the contract; no sort by clicks happens here.
func MostPopular(articles domain.Articles) domain.Articles {
	return utils.Take(articles, PopularSize)
}

// ByCategory keeps articles whose embedded category slug equals slug.
// "all" or a blank slug means no filtering.
func ByCategory(articles domain.Articles, slug string) domain.Articles {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" || slug == domain.AllCategoriesSlug {
		return articles
	}
	return utils.Filter(articles, func(a domain.Article) bool { return a.CategorySlug() == slug })
}

// Search keeps articles whose title or excerpt contains q, ignoring case.
// A blank query means no filtering.
func Search(articles domain.Articles, q string) domain.Articles {
	q = strings.TrimSpace(q)
	if q == "" {
		return articles
	}
	return utils.Filter(articles, func(a domain.Article) bool { return MatchesSearch(a, q) })
}

func MatchesSearch(a domain.Article, q string) bool {
	return utils.ContainsFold(a.Title, q) || utils.ContainsFold(a.Excerpt, q)
}

// FindBySlug returns the article with slug, if present.
func FindBySlug(articles domain.Articles, slug string) (domain.Article, bool) {
	for _, a := range articles {
		if a.Slug == slug {
			return a, true
		}
	}
	return domain.Article{}, false
}

func CategoryBySlug(categories domain.Categories, slug string) (domain.Category, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return domain.Category{}, false
}

func CategoryNav(categories domain.Categories) domain.Categories {
	return utils.Take(categories, CategoryNavSize)
}
