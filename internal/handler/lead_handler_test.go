package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takwin-app/landing-api/internal/models"
	"github.com/takwin-app/landing-api/internal/service"
	appErrors "github.com/takwin-app/landing-api/pkg/errors"
)

type leadServiceMock struct {
	leads        []models.Lead
	listErr      error
	createID     int64
	createErr    error
	lastReq      service.CreateLeadRequest
	createCalled bool
}

func (m *leadServiceMock) List(ctx context.Context) ([]models.Lead, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.leads, nil
}

func (m *leadServiceMock) Create(ctx context.Context, req service.CreateLeadRequest) (int64, error) {
	m.createCalled = true
	m.lastReq = req
	return m.createID, m.createErr
}

func TestLeadHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &leadServiceMock{createID: 12}
	handler := NewLeadHandler(mockSvc)

	payload, _ := json.Marshal(service.CreateLeadRequest{Name: "A", Phone: "0551234567"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.createCalled)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(12), body["id"])
}

func TestLeadHandlerCreateMissingPhone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &leadServiceMock{createErr: appErrors.Clone(appErrors.ErrValidation, "phone required")}
	handler := NewLeadHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString(`{"name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "phone required", body["error"])
}

func TestLeadHandlerCreateMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewLeadHandler(&leadServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString(`{"phone":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeadHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &leadServiceMock{leads: []models.Lead{
		{ID: 2, Phone: "0551234567", Source: "landing", CreatedAt: time.Now()},
	}}
	handler := NewLeadHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/api/leads", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var leads []models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, int64(2), leads[0].ID)
}
