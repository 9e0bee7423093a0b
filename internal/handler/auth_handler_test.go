package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takwin-app/landing-api/internal/middleware"
	"github.com/takwin-app/landing-api/internal/service"
	"github.com/takwin-app/landing-api/pkg/config"
)

// newAuthRouter wires a real AuthService with the session middleware around a
// probe route, exercising the full login → gate → logout flow over HTTP.
func newAuthRouter(t *testing.T) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.AdminConfig{User: "admin", Pass: "secret", SessionTTL: 6 * time.Hour}
	authSvc := service.NewAuthService(service.NewMemorySessionStore(), cfg, nil, nil)
	authHandler := NewAuthHandler(authSvc)

	probeHits := 0
	r := gin.New()
	r.POST("/admin/login", authHandler.Login)
	r.POST("/admin/logout", authHandler.Logout)
	adminAPI := r.Group("/admin/api", middleware.Session(authSvc))
	adminAPI.GET("/probe", func(c *gin.Context) {
		probeHits++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, &probeHits
}

func login(t *testing.T, r *gin.Engine, user, pass string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"user":"`+user+`","pass":"`+pass+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := login(t, r, "admin", "secret")
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((6 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := login(t, r, "admin", "wrong")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAdminRouteRequiresSession(t *testing.T) {
	r, probeHits := newAuthRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/api/probe", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, *probeHits, "the handler must not run for unauthenticated requests")

	// A forged token fails the same way.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/admin/api/probe", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "forged"})
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, *probeHits)
}

func TestSessionLifecycle(t *testing.T) {
	r, probeHits := newAuthRouter(t)

	cookie := sessionCookie(t, login(t, r, "admin", "secret"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/api/probe", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *probeHits)

	// Logout invalidates the session server-side.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/admin/api/probe", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 1, *probeHits)
}

func TestLogoutWithoutSessionSucceeds(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/admin/logout", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
