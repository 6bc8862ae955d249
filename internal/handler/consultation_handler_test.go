package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/healing-center/counseling-api/internal/models"
	"github.com/healing-center/counseling-api/internal/service"
)

type consultationRepoMock struct {
	created []*models.Consultation
}

func (m *consultationRepoMock) List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, int, error) {
	return nil, 0, nil
}

func (m *consultationRepoMock) FindByID(ctx context.Context, id string) (*models.Consultation, error) {
	return nil, sql.ErrNoRows
}

func (m *consultationRepoMock) Create(ctx context.Context, consultation *models.Consultation) error {
	consultation.ID = "cons-1"
	m.created = append(m.created, consultation)
	return nil
}

func (m *consultationRepoMock) Update(ctx context.Context, consultation *models.Consultation) error {
	return nil
}

func (m *consultationRepoMock) Delete(ctx context.Context, id string) error {
	return nil
}

func newConsultationHandler(repo *consultationRepoMock) *ConsultationHandler {
	svc := service.NewConsultationService(repo, validator.New(), zap.NewNop())
	return NewConsultationHandler(svc)
}

func TestConsultationCreateIgnoresSubmittedStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &consultationRepoMock{}
	handler := newConsultationHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload := `{
		"counselor_id": "counselor-1",
		"contact_name": "Jane Doe",
		"contact_phone": "010-1234-5678",
		"consultation_type": "individual",
		"method": "online",
		"preferred_date": "2026-09-10",
		"preferred_time": "14:00",
		"description": "first session",
		"status": "confirmed"
	}`
	req, _ := http.NewRequest(http.MethodPost, "/consultations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, models.StatusPending, repo.created[0].Status)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "cons-1", body["id"])
}

func TestConsultationCreateUnknownTypeRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newConsultationHandler(&consultationRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload := `{
		"counselor_id": "counselor-1",
		"contact_name": "Jane Doe",
		"contact_phone": "010-1234-5678",
		"consultation_type": "hypnosis",
		"method": "online",
		"preferred_date": "2026-09-10",
		"preferred_time": "14:00",
		"description": "first session"
	}`
	req, _ := http.NewRequest(http.MethodPost, "/consultations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConsultationGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newConsultationHandler(&consultationRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/consultations/missing", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestConsultationListEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newConsultationHandler(&consultationRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/consultations", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"consultations": [], "count": 0}`, w.Body.String())
}
