package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/takwin-app/landing-api/internal/models"
)

// LeadRepository handles persistence for captured leads.
type LeadRepository struct {
	db *sqlx.DB
}

// NewLeadRepository creates a new repository instance.
func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// List returns all leads, newest first by capture time.
func (r *LeadRepository) List(ctx context.Context) ([]models.Lead, error) {
	query := "SELECT id, name, phone, message, source, created_at FROM leads ORDER BY created_at DESC"
	var leads []models.Lead
	if err := r.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

// Create appends a lead, stamping created_at at the insert instant, and
// returns the assigned id.
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) (int64, error) {
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO leads (name, phone, message, source, created_at)
VALUES (:name, :phone, :message, :source, :created_at)`
	res, err := r.db.NamedExecContext(ctx, query, lead)
	if err != nil {
		return 0, fmt.Errorf("create lead: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("lead insert id: %w", err)
	}
	lead.ID = id
	return id, nil
}
