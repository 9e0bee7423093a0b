package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/takwin-app/landing-api/internal/models"
	appErrors "github.com/takwin-app/landing-api/pkg/errors"
)

type testimonialRepository interface {
	ListActive(ctx context.Context) ([]models.Testimonial, error)
	ListAll(ctx context.Context) ([]models.Testimonial, error)
	Create(ctx context.Context, testimonial *models.Testimonial) (int64, error)
	Update(ctx context.Context, testimonial *models.Testimonial) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CreateTestimonialRequest captures fields for creating a testimonial.
type CreateTestimonialRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// UpdateTestimonialRequest replaces the full field set of a testimonial.
type UpdateTestimonialRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Active  bool   `json:"active"`
}

// TestimonialService handles testimonial workflows.
type TestimonialService struct {
	repo   testimonialRepository
	logger *zap.Logger
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(repo testimonialRepository, logger *zap.Logger) *TestimonialService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TestimonialService{repo: repo, logger: logger}
}

// ListActive returns testimonials shown on the public landing page.
func (s *TestimonialService) ListActive(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list testimonials")
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	return testimonials, nil
}

// ListAll returns every testimonial for the admin panel.
func (s *TestimonialService) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list testimonials")
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	return testimonials, nil
}

// Create inserts a testimonial, active by default, and returns its id.
func (s *TestimonialService) Create(ctx context.Context, req CreateTestimonialRequest) (int64, error) {
	testimonial := &models.Testimonial{
		Author:  req.Author,
		Content: req.Content,
		Active:  true,
	}
	id, err := s.repo.Create(ctx, testimonial)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create testimonial")
	}
	return id, nil
}

// Update performs a full-row replace and reports rows affected.
func (s *TestimonialService) Update(ctx context.Context, id int64, req UpdateTestimonialRequest) (int64, error) {
	testimonial := &models.Testimonial{
		ID:      id,
		Author:  req.Author,
		Content: req.Content,
		Active:  req.Active,
	}
	changes, err := s.repo.Update(ctx, testimonial)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update testimonial")
	}
	return changes, nil
}

// Delete removes a testimonial permanently. Deleting a missing id succeeds.
func (s *TestimonialService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete testimonial")
	}
	return nil
}
