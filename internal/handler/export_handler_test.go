package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/healing-center/counseling-api/internal/models"
	"github.com/healing-center/counseling-api/internal/service"
)

type consultationListerMock struct {
	rows []models.Consultation
	err  error
}

func (m *consultationListerMock) List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	if filter.Offset >= len(m.rows) {
		return nil, len(m.rows), nil
	}
	return m.rows[filter.Offset:], len(m.rows), nil
}

type reviewListerMock struct{}

func (m *reviewListerMock) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, int, error) {
	return nil, 0, nil
}

func newExportHandler(consultations *consultationListerMock) *ExportHandler {
	svc := service.NewExportService(consultations, &reviewListerMock{}, zap.NewNop(), nil, nil)
	return NewExportHandler(svc)
}

func TestExportConsultationsDownload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newExportHandler(&consultationListerMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/exports/consultations?format=csv", nil)
	c.Request = req

	handler.Consultations(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestExportConsultationsUnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newExportHandler(&consultationListerMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/exports/consultations?format=xlsx", nil)
	c.Request = req

	handler.Consultations(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestExportConsultationsRepositoryFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newExportHandler(&consultationListerMock{err: errors.New("connection refused")})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/exports/consultations", nil)
	c.Request = req

	handler.Consultations(c)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "connection refused")
}
