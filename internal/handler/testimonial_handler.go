package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takwin-app/landing-api/internal/models"
	"github.com/takwin-app/landing-api/internal/service"
	appErrors "github.com/takwin-app/landing-api/pkg/errors"
	"github.com/takwin-app/landing-api/pkg/response"
)

type testimonialService interface {
	ListActive(ctx context.Context) ([]models.Testimonial, error)
	ListAll(ctx context.Context) ([]models.Testimonial, error)
	Create(ctx context.Context, req service.CreateTestimonialRequest) (int64, error)
	Update(ctx context.Context, id int64, req service.UpdateTestimonialRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// TestimonialHandler handles public and admin testimonial endpoints.
type TestimonialHandler struct {
	service testimonialService
}

// NewTestimonialHandler constructs a testimonial handler.
func NewTestimonialHandler(svc testimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: svc}
}

// ListPublic godoc
// @Summary List active testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {array} models.Testimonial
// @Router /api/testimonials [get]
func (h *TestimonialHandler) ListPublic(c *gin.Context) {
	testimonials, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, testimonials)
}

// List godoc
// @Summary List all testimonials, inactive included
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Testimonial
// @Failure 401 {object} map[string]string
// @Router /admin/api/testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, testimonials)
}

// Create godoc
// @Summary Create testimonial
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body service.CreateTestimonialRequest true "Testimonial payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /admin/api/testimonials [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req service.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

// Update godoc
// @Summary Update testimonial (full replace, including active flag)
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Testimonial ID"
// @Param payload body service.UpdateTestimonialRequest true "Testimonial payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /admin/api/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	changes, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"changes": changes})
}

// Delete godoc
// @Summary Delete testimonial permanently
// @Tags Admin
// @Produce json
// @Param id path int true "Testimonial ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /admin/api/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}
