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

type courseService interface {
	ListActive(ctx context.Context) ([]models.Course, error)
	ListAll(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, req service.CreateCourseRequest) (int64, error)
	Update(ctx context.Context, id int64, req service.UpdateCourseRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CourseHandler handles public and admin course endpoints.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs a course handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// ListPublic godoc
// @Summary List active courses
// @Tags Courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /api/courses [get]
func (h *CourseHandler) ListPublic(c *gin.Context) {
	courses, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// List godoc
// @Summary List all courses, inactive included
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Course
// @Failure 401 {object} map[string]string
// @Router /admin/api/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Create godoc
// @Summary Create course
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body service.CreateCourseRequest true "Course payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /admin/api/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
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
// @Summary Update course (full replace, including active flag)
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.UpdateCourseRequest true "Course payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /admin/api/courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateCourseRequest
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
// @Summary Delete course permanently
// @Tags Admin
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /admin/api/courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
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
