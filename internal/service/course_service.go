package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/takwin-app/landing-api/internal/models"
	"github.com/takwin-app/landing-api/internal/repository"
	appErrors "github.com/takwin-app/landing-api/pkg/errors"
)

type courseRepository interface {
	ListActive(ctx context.Context) ([]models.Course, error)
	ListAll(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) (int64, error)
	Update(ctx context.Context, course *models.Course) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CreateCourseRequest captures fields for creating a course. New courses are
// publicly visible until deactivated.
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

// UpdateCourseRequest replaces the full field set of a course, including the
// active flag. Omitted fields overwrite their columns with zero values.
type UpdateCourseRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
}

// CourseService handles course workflows.
type CourseService struct {
	repo   courseRepository
	logger *zap.Logger
}

// NewCourseService creates a new course service.
func NewCourseService(repo courseRepository, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, logger: logger}
}

// ListActive returns the courses shown on the public landing page.
func (s *CourseService) ListActive(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// ListAll returns every course for the admin panel, inactive included.
func (s *CourseService) ListAll(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Create inserts a course and returns its assigned id. A slug collision is
// surfaced as a conflict rather than a generic storage failure.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (int64, error) {
	course := &models.Course{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Image:       req.Image,
		Active:      true,
	}
	id, err := s.repo.Create(ctx, course)
	if err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			return 0, appErrors.Clone(appErrors.ErrConflict, "course slug already exists")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return id, nil
}

// Update performs a full-row replace and reports rows affected; updating a
// missing id is a no-op with zero changes.
func (s *CourseService) Update(ctx context.Context, id int64, req UpdateCourseRequest) (int64, error) {
	course := &models.Course{
		ID:          id,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Image:       req.Image,
		Active:      req.Active,
	}
	changes, err := s.repo.Update(ctx, course)
	if err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			return 0, appErrors.Clone(appErrors.ErrConflict, "course slug already exists")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return changes, nil
}

// Delete removes a course permanently. Deleting a missing id succeeds.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}
