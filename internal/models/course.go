package models

// Course represents a persisted course row. Slug is the external identifier
// and is unique across all courses; Active governs public visibility.
type Course struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
	Duration    string `db:"duration" json:"duration"`
	Price       string `db:"price" json:"price"`
	Image       string `db:"image" json:"image"`
	Active      bool   `db:"active" json:"active"`
}
