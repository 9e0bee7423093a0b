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

type leadService interface {
	List(ctx context.Context) ([]models.Lead, error)
	Create(ctx context.Context, req service.CreateLeadRequest) (int64, error)
}

// LeadHandler handles lead capture and admin lead listing.
type LeadHandler struct {
	service leadService
}

// NewLeadHandler constructs a lead handler.
func NewLeadHandler(svc leadService) *LeadHandler {
	return &LeadHandler{service: svc}
}

// Create godoc
// @Summary Submit a contact request from the landing page
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body service.CreateLeadRequest true "Lead payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var req service.CreateLeadRequest
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

// List godoc
// @Summary List captured leads, newest first
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Lead
// @Failure 401 {object} map[string]string
// @Router /admin/api/leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leads)
}
