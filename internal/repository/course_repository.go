package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/takwin-app/landing-api/internal/models"
)

// ErrSlugTaken marks a UNIQUE violation on the course slug column.
var ErrSlugTaken = errors.New("course slug already exists")

// CourseRepository handles persistence for courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new repository instance.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = "id, title, slug, description, duration, price, image, active"

// ListActive returns publicly visible courses, most recent first.
func (r *CourseRepository) ListActive(ctx context.Context) ([]models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE active = 1 ORDER BY id DESC", courseColumns)
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list active courses: %w", err)
	}
	return courses, nil
}

// ListAll returns every course regardless of visibility, most recent first.
func (r *CourseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses ORDER BY id DESC", courseColumns)
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Create inserts a new course and returns its assigned id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	query := `INSERT INTO courses (title, slug, description, duration, price, image, active)
VALUES (:title, :slug, :description, :duration, :price, :image, :active)`
	res, err := r.db.NamedExecContext(ctx, query, course)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrSlugTaken
		}
		return 0, fmt.Errorf("create course: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("course insert id: %w", err)
	}
	course.ID = id
	return id, nil
}

// Update replaces every mutable column of the row matching id and returns the
// number of rows affected. A missing id is a no-op, not an error.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) (int64, error) {
	query := `UPDATE courses SET title = :title, slug = :slug, description = :description,
duration = :duration, price = :price, image = :image, active = :active WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, course)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrSlugTaken
		}
		return 0, fmt.Errorf("update course: %w", err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("course update changes: %w", err)
	}
	return changes, nil
}

// Delete removes the row if present. Deleting a missing id succeeds.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// isUniqueViolation matches the embedded driver's constraint error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
