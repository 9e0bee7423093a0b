package models

// Testimonial represents a persisted testimonial row.
type Testimonial struct {
	ID      int64  `db:"id" json:"id"`
	Author  string `db:"author" json:"author"`
	Content string `db:"content" json:"content"`
	Active  bool   `db:"active" json:"active"`
}
