package domain

// AllCategoriesSlug is the sentinel slug meaning "no category filter".
const AllCategoriesSlug = "all"

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type Categories []Category

func (c Categories) Len() int { return len(c) }
