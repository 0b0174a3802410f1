// Package query holds the in-memory query cache that deduplicates identical
// content API requests and remembers their latest result.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
)

type Resource string

const (
	ResourceArticles   Resource = "articles"
	ResourceArticle    Resource = "article"
	ResourceCategories Resource = "categories"
)

// Params are the filter parameters of an article list request.
type Params struct {
	Category string
	Featured *bool
	Search   string
}

func Featured(v bool) *bool { return &v }

// Key identifies one logical query. Build it with NewKey so that equivalent
// parameters collapse to the same key.
type Key struct {
	Resource Resource
	Category string
	Featured string
	Search   string
	Slug     string
}

// NewKey normalizes params: category "all", "" and absent all mean no filter;
// category and search are trimmed and lower-cased; featured is "", "true" or "false".
func NewKey(resource Resource, p Params) Key {
	k := Key{Resource: resource}

	category := strings.ToLower(strings.TrimSpace(p.Category))
	if category != domain.AllCategoriesSlug {
		k.Category = category
	}
	if p.Featured != nil {
		k.Featured = strconv.FormatBool(*p.Featured)
	}
	k.Search = strings.ToLower(strings.TrimSpace(p.Search))
	return k
}

func ArticleKey(slug string) Key {
	return Key{Resource: ResourceArticle, Slug: strings.TrimSpace(slug)}
}

func CategoriesKey() Key {
	return Key{Resource: ResourceCategories}
}

// Values returns the request parameters, omitting empty filters.
func (k Key) Values() url.Values {
	v := url.Values{}
	if k.Category != "" {
		v.Set("category", k.Category)
	}
	if k.Featured != "" {
		v.Set("featured", k.Featured)
	}
	if k.Search != "" {
		v.Set("search", k.Search)
	}
	return v
}

func (k Key) String() string {
	s := string(k.Resource)
	if k.Slug != "" {
		s += "/" + url.PathEscape(k.Slug)
	}
	if q := k.Values().Encode(); q != "" {
		s += "?" + q
	}
	return s
}
