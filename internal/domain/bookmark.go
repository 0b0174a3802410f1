package domain

import "time"

// Bookmark is a saved article reference owned by one visitor session.
// Title is denormalized so a bookmark can be shown without the article.
type Bookmark struct {
	ID      int64     `json:"id"`
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	SavedAt time.Time `json:"savedAt"`
}
