package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/takwin-app/landing-api/internal/middleware"
	"github.com/takwin-app/landing-api/internal/service"
	appErrors "github.com/takwin-app/landing-api/pkg/errors"
	"github.com/takwin-app/landing-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req service.LoginRequest) (string, error)
	Logout(ctx context.Context, token string)
	SessionTTL() time.Duration
}

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	service authService
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body service.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed or empty body can never match the credentials.
		response.Error(c, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid credentials"))
		return
	}
	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, token, int(h.service.SessionTTL().Seconds()), "/", "", false, true)
	response.OK(c, nil)
}

// Logout godoc
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Logout never fails: whatever session the cookie names is deleted
	// and the cookie is cleared, even when neither exists.
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		h.service.Logout(c.Request.Context(), token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	response.OK(c, nil)
}
