package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/healing-center/counseling-api/internal/models"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
)

type mockConsultationRepo struct {
	byID       map[string]*models.Consultation
	created    []*models.Consultation
	updated    []*models.Consultation
	deletedIDs []string
	listRows   []models.Consultation
	listTotal  int
	listFilter models.ConsultationFilter
}

func (m *mockConsultationRepo) List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, int, error) {
	m.listFilter = filter
	return m.listRows, m.listTotal, nil
}

func (m *mockConsultationRepo) FindByID(ctx context.Context, id string) (*models.Consultation, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockConsultationRepo) Create(ctx context.Context, consultation *models.Consultation) error {
	consultation.ID = "cons-1"
	m.created = append(m.created, consultation)
	return nil
}

func (m *mockConsultationRepo) Update(ctx context.Context, consultation *models.Consultation) error {
	m.updated = append(m.updated, consultation)
	return nil
}

func (m *mockConsultationRepo) Delete(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func validCreateRequest() CreateConsultationRequest {
	return CreateConsultationRequest{
		CounselorID:   "counselor-1",
		ContactName:   "Jane Doe",
		ContactPhone:  "010-1234-5678",
		Type:          "individual",
		Method:        "online",
		PreferredDate: "2026-09-10",
		PreferredTime: "14:00",
		Description:   "first session",
	}
}

func TestConsultationCreateForcesPendingStatus(t *testing.T) {
	repo := &mockConsultationRepo{}
	svc := NewConsultationService(repo, validator.New(), zap.NewNop())

	req := validCreateRequest()
	req.Status = "confirmed"

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	require.Len(t, repo.created, 1)
	assert.Equal(t, models.StatusPending, repo.created[0].Status)
}

func TestConsultationCreateDefaultsUrgency(t *testing.T) {
	repo := &mockConsultationRepo{}
	svc := NewConsultationService(repo, validator.New(), zap.NewNop())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, models.UrgencyMedium, created.Urgency)
}

func TestConsultationCreateRejectsUnknownType(t *testing.T) {
	repo := &mockConsultationRepo{}
	svc := NewConsultationService(repo, validator.New(), zap.NewNop())

	req := validCreateRequest()
	req.Type = "hypnosis"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, repo.created)
}

func TestConsultationCreateRejectsMissingContact(t *testing.T) {
	repo := &mockConsultationRepo{}
	svc := NewConsultationService(repo, validator.New(), zap.NewNop())

	req := validCreateRequest()
	req.ContactName = ""

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestConsultationUpdateStatusMembershipOnly(t *testing.T) {
	existing := &models.Consultation{ID: "cons-1", Status: models.StatusCompleted}
	repo := &mockConsultationRepo{byID: map[string]*models.Consultation{"cons-1": existing}}
	svc := NewConsultationService(repo, validator.New(), zap.NewNop())

	// Any known status is reachable from any other.
	updated, err := svc.UpdateStatus(context.Background(), "cons-1", UpdateConsultationStatusRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), "cons-1", UpdateConsultationStatusRequest{Status: "archived"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestConsultationCancel(t *testing.T) {
	existing := &models.Consultation{ID: "cons-1", Status: models.StatusConfirmed}
	repo := &mockConsultationRepo{byID: map[string]*models.Consultation{"cons-1": existing}}
	svc := NewConsultationService(repo, validator.New(), zap.NewNop())

	cancelled, err := svc.Cancel(context.Background(), "cons-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestConsultationGetNotFound(t *testing.T) {
	repo := &mockConsultationRepo{}
	svc := NewConsultationService(repo, validator.New(), zap.NewNop())

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestConsultationListUnknownStatusRejected(t *testing.T) {
	repo := &mockConsultationRepo{}
	svc := NewConsultationService(repo, validator.New(), zap.NewNop())

	_, _, err := svc.List(context.Background(), ConsultationListRequest{Status: "bogus"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestConsultationDeleteMissing(t *testing.T) {
	repo := &mockConsultationRepo{}
	svc := NewConsultationService(repo, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.deletedIDs)
}
