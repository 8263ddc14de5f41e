// Package article holds the blog article domain model and its service.
package article

import "time"

// Article is a published blog entry. HTMLContent is author-supplied markup;
// whether it renders raw or sanitized is decided at render time, not here.
type Article struct {
	ID          int64
	Slug        string
	Title       string
	HTMLContent string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
