package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/takwin-app/landing-api/internal/models"
	appErrors "github.com/takwin-app/landing-api/pkg/errors"
)

const defaultLeadSource = "landing"

type leadRepository interface {
	List(ctx context.Context) ([]models.Lead, error)
	Create(ctx context.Context, lead *models.Lead) (int64, error)
}

// CreateLeadRequest is the public contact-form payload. Phone is the only
// mandatory field; everything else may be blank.
type CreateLeadRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// LeadService captures inbound contact requests.
type LeadService struct {
	repo      leadRepository
	sanitizer *bluemonday.Policy
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLeadService creates a new lead service. Fields are stripped of any
// markup before validation so a phone made entirely of tags counts as empty.
func NewLeadService(repo leadRepository, validate *validator.Validate, logger *zap.Logger) *LeadService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
		validator: validate,
		logger:    logger,
	}
}

// List returns all captured leads, newest first.
func (s *LeadService) List(ctx context.Context) ([]models.Lead, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list leads")
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	return leads, nil
}

// Create sanitizes the submission, defaults the source, requires a non-empty
// phone and appends the lead, returning its assigned id.
func (s *LeadService) Create(ctx context.Context, req CreateLeadRequest) (int64, error) {
	lead := &models.Lead{
		Name:    s.clean(req.Name),
		Phone:   s.clean(req.Phone),
		Message: s.clean(req.Message),
		Source:  s.clean(req.Source),
	}
	if lead.Source == "" {
		lead.Source = defaultLeadSource
	}

	if err := s.validator.Struct(CreateLeadRequest{Name: lead.Name, Phone: lead.Phone, Message: lead.Message, Source: lead.Source}); err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "phone required")
	}

	id, err := s.repo.Create(ctx, lead)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store lead")
	}
	s.logger.Info("lead captured", zap.Int64("id", id), zap.String("source", lead.Source))
	return id, nil
}

func (s *LeadService) clean(raw string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(raw))
}
