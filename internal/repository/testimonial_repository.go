package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/takwin-app/landing-api/internal/models"
)

// TestimonialRepository handles persistence for testimonials.
type TestimonialRepository struct {
	db *sqlx.DB
}

// NewTestimonialRepository creates a new repository instance.
func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// ListActive returns publicly visible testimonials, most recent first.
func (r *TestimonialRepository) ListActive(ctx context.Context) ([]models.Testimonial, error) {
	query := "SELECT id, author, content, active FROM testimonials WHERE active = 1 ORDER BY id DESC"
	var testimonials []models.Testimonial
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, fmt.Errorf("list active testimonials: %w", err)
	}
	return testimonials, nil
}

// ListAll returns every testimonial, most recent first.
func (r *TestimonialRepository) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	query := "SELECT id, author, content, active FROM testimonials ORDER BY id DESC"
	var testimonials []models.Testimonial
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, nil
}

// Create inserts a new testimonial and returns its assigned id.
func (r *TestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) (int64, error) {
	query := `INSERT INTO testimonials (author, content, active) VALUES (:author, :content, :active)`
	res, err := r.db.NamedExecContext(ctx, query, testimonial)
	if err != nil {
		return 0, fmt.Errorf("create testimonial: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("testimonial insert id: %w", err)
	}
	testimonial.ID = id
	return id, nil
}

// Update replaces author, content and active for the row matching id and
// returns the number of rows affected.
func (r *TestimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) (int64, error) {
	query := `UPDATE testimonials SET author = :author, content = :content, active = :active WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, testimonial)
	if err != nil {
		return 0, fmt.Errorf("update testimonial: %w", err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("testimonial update changes: %w", err)
	}
	return changes, nil
}

// Delete removes the row if present. Deleting a missing id succeeds.
func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}
