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

type counselorRepoMock struct {
	byID      map[string]*models.Counselor
	listRows  []models.Counselor
	listTotal int
}

func (m *counselorRepoMock) List(ctx context.Context, filter models.CounselorFilter) ([]models.Counselor, int, error) {
	return m.listRows, m.listTotal, nil
}

func (m *counselorRepoMock) FindByID(ctx context.Context, id string) (*models.Counselor, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func (m *counselorRepoMock) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	return false, nil
}

func (m *counselorRepoMock) Create(ctx context.Context, counselor *models.Counselor) error {
	counselor.ID = "counselor-1"
	return nil
}

func (m *counselorRepoMock) Update(ctx context.Context, counselor *models.Counselor) error {
	return nil
}

func (m *counselorRepoMock) ToggleActive(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func (m *counselorRepoMock) CountReviews(ctx context.Context, id string) (int, error) {
	return 0, nil
}

func (m *counselorRepoMock) Delete(ctx context.Context, id string) error {
	return nil
}

func newCounselorHandler(repo *counselorRepoMock) *CounselorHandler {
	svc := service.NewCounselorService(repo, nil, 0, validator.New(), zap.NewNop())
	return NewCounselorHandler(svc)
}

func TestCounselorListEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCounselorHandler(&counselorRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/counselors", nil)
	c.Request = req

	handler.ListPublic(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"counselors": [], "count": 0}`, w.Body.String())
}

func TestCounselorGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCounselorHandler(&counselorRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/counselors/missing", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestCounselorCreateContract(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCounselorHandler(&counselorRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload := `{"name": "Dr. Park", "specialization": "trauma"}`
	req, _ := http.NewRequest(http.MethodPost, "/admin/counselors", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "counselor-1", body["id"])
	assert.NotEmpty(t, body["message"])
}

func TestCounselorCreateMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCounselorHandler(&counselorRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/admin/counselors", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
