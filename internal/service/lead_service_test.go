package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takwin-app/landing-api/internal/models"
	appErrors "github.com/takwin-app/landing-api/pkg/errors"
)

type mockLeadRepo struct {
	leads     []models.Lead
	lastLead  *models.Lead
	listErr   error
	createErr error
	nextID    int64
}

func (m *mockLeadRepo) List(ctx context.Context) ([]models.Lead, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.leads, nil
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *models.Lead) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.lastLead = lead
	if m.nextID == 0 {
		m.nextID = 1
	}
	lead.ID = m.nextID
	return m.nextID, nil
}

func TestLeadServiceCreate(t *testing.T) {
	repo := &mockLeadRepo{nextID: 9}
	svc := NewLeadService(repo, nil, nil)

	id, err := svc.Create(context.Background(), CreateLeadRequest{
		Name:    "Amine",
		Phone:   "0551234567",
		Message: "interested",
		Source:  "facebook",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, "facebook", repo.lastLead.Source)
}

func TestLeadServiceCreateDefaultsSource(t *testing.T) {
	repo := &mockLeadRepo{}
	svc := NewLeadService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateLeadRequest{Phone: "0551234567"})
	require.NoError(t, err)
	assert.Equal(t, "landing", repo.lastLead.Source)
}

func TestLeadServiceCreateRequiresPhone(t *testing.T) {
	repo := &mockLeadRepo{}
	svc := NewLeadService(repo, nil, nil)

	cases := []string{"", "   ", "<script>alert(1)</script>"}
	for _, phone := range cases {
		_, err := svc.Create(context.Background(), CreateLeadRequest{Name: "A", Phone: phone})
		require.Error(t, err, "phone %q should be rejected", phone)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
		assert.Equal(t, 400, appErr.Status)
	}
	assert.Nil(t, repo.lastLead, "no row may be written for an invalid submission")
}

func TestLeadServiceCreateStripsMarkup(t *testing.T) {
	repo := &mockLeadRepo{}
	svc := NewLeadService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateLeadRequest{
		Name:    "<b>Amine</b>",
		Phone:   "0551234567",
		Message: `hello <img src=x onerror="alert(1)"> world`,
	})
	require.NoError(t, err)
	assert.Equal(t, "Amine", repo.lastLead.Name)
	assert.NotContains(t, repo.lastLead.Message, "<")
	assert.Contains(t, repo.lastLead.Message, "hello")
}

func TestLeadServiceStorageFailure(t *testing.T) {
	repo := &mockLeadRepo{createErr: errors.New("disk I/O error")}
	svc := NewLeadService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateLeadRequest{Phone: "0551234567"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 500, appErr.Status)
	assert.Contains(t, appErr.Error(), "disk I/O error")
}

func TestLeadServiceListEmpty(t *testing.T) {
	svc := NewLeadService(&mockLeadRepo{}, nil, nil)

	leads, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, leads)
	assert.Len(t, leads, 0)
}
