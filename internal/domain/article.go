package domain

import (
	"time"
)

const ArticleStatusApproved = "approved"

type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content,omitempty"`
	CoverImage  string    `json:"coverImage,omitempty"`
	CategoryID  int64     `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	AuthorID    int64     `json:"authorId,omitempty"`
	Author      *Author   `json:"author,omitempty"`
	WriterID    *int64    `json:"writerId"`
	IsFeatured  bool      `json:"isFeatured"`
	ReadTime    int       `json:"readTime,omitempty"`
	Status      string    `json:"status,omitempty"`
	Clicks      int64     `json:"clicks"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// CategorySlug returns the slug of the embedded category, or "" when the
// article was delivered without one.
func (a Article) CategorySlug() string {
	if a.Category == nil {
		return ""
	}
	return a.Category.Slug
}

type Author struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// Articles is an ordered article collection as delivered by a provider.
type Articles []Article

func (a Articles) Len() int { return len(a) }

// Single wraps one article so it can take part in a page plan next to lists.
type Single struct {
	Article Article
}

func (Single) Len() int { return 1 }
