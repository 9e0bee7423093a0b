package models

import "time"

// Lead is a contact request captured from the landing page. Leads are
// append-only: no update or delete operation exists for them.
type Lead struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Message   string    `db:"message" json:"message"`
	Source    string    `db:"source" json:"source"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
