package validate

import (
	"time"

	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
)

// Schema names the expected shape of a content API response.
type Schema string

const (
	ArticleList  Schema = "article_list"
	ArticleItem  Schema = "article"
	CategoryList Schema = "category_list"
)

// Wire types use pointers for fields whose presence is required, so a
// missing field and a zero value can be told apart.

type wireCategory struct {
	ID          *int64 `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required,slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type wireAuthor struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" validate:"required"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
	Bio    string `json:"bio"`
}

type wireArticle struct {
	ID          *int64        `json:"id" validate:"required,gt=0"`
	Title       string        `json:"title" validate:"required"`
	Slug        string        `json:"slug" validate:"required,slug"`
	Excerpt     string        `json:"excerpt"`
	Content     string        `json:"content"`
	CoverImage  string        `json:"coverImage"`
	CategoryID  *int64        `json:"categoryId" validate:"required"`
	Category    *wireCategory `json:"category" validate:"omitempty"`
	AuthorID    int64         `json:"authorId"`
	Author      *wireAuthor   `json:"author" validate:"omitempty"`
	WriterID    *int64        `json:"writerId"`
	IsFeatured  *bool         `json:"isFeatured" validate:"required"`
	ReadTime    int           `json:"readTime" validate:"gte=0"`
	Status      string        `json:"status"`
	Clicks      int64         `json:"clicks" validate:"gte=0"`
	PublishedAt *time.Time    `json:"publishedAt"`
	CreatedAt   *time.Time    `json:"createdAt"`
}

func (w wireCategory) toDomain() domain.Category {
	return domain.Category{
		ID:          *w.ID,
		Name:        w.Name,
		Slug:        w.Slug,
		Description: w.Description,
		Color:       w.Color,
	}
}

func (w wireArticle) toDomain() domain.Article {
	a := domain.Article{
		ID:         *w.ID,
		Title:      w.Title,
		Slug:       w.Slug,
		Excerpt:    w.Excerpt,
		Content:    w.Content,
		CoverImage: w.CoverImage,
		CategoryID: *w.CategoryID,
		AuthorID:   w.AuthorID,
		WriterID:   w.WriterID,
		IsFeatured: *w.IsFeatured,
		ReadTime:   w.ReadTime,
		Status:     w.Status,
		Clicks:     w.Clicks,
	}
	if w.Category != nil {
		c := w.Category.toDomain()
		a.Category = &c
	}
	if w.Author != nil {
		a.Author = &domain.Author{
			ID:     w.Author.ID,
			Name:   w.Author.Name,
			Avatar: w.Author.Avatar,
			Role:   w.Author.Role,
			Bio:    w.Author.Bio,
		}
	}
	if w.PublishedAt != nil {
		a.PublishedAt = *w.PublishedAt
	}
	if w.CreatedAt != nil {
		a.CreatedAt = *w.CreatedAt
	}
	return a
}
