package handler

import (
	"context"
	"database/sql"
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

type reviewRepoMock struct {
	lastFilter models.ReviewFilter
	created    []*models.Review
	recomputed []string
}

func (m *reviewRepoMock) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, int, error) {
	m.lastFilter = filter
	return nil, 0, nil
}

func (m *reviewRepoMock) FindByID(ctx context.Context, id string) (*models.Review, error) {
	return nil, sql.ErrNoRows
}

func (m *reviewRepoMock) Create(ctx context.Context, review *models.Review) error {
	review.ID = "rev-1"
	m.created = append(m.created, review)
	return nil
}

func (m *reviewRepoMock) Update(ctx context.Context, review *models.Review) error {
	return nil
}

func (m *reviewRepoMock) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *reviewRepoMock) IncrementViewCount(ctx context.Context, id string) error {
	return nil
}

func (m *reviewRepoMock) RecomputeCounselorAggregate(ctx context.Context, counselorID string) error {
	m.recomputed = append(m.recomputed, counselorID)
	return nil
}

type counselorFinderMock struct{}

func (m *counselorFinderMock) FindByID(ctx context.Context, id string) (*models.Counselor, error) {
	return &models.Counselor{ID: id}, nil
}

func newReviewHandler(repo *reviewRepoMock) *ReviewHandler {
	svc := service.NewReviewService(repo, &counselorFinderMock{}, nil, validator.New(), zap.NewNop())
	return NewReviewHandler(svc)
}

func TestReviewPublicListForcesModerationFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &reviewRepoMock{}
	handler := newReviewHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/reviews", nil)
	c.Request = req

	handler.ListPublic(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.lastFilter.Approved)
	require.NotNil(t, repo.lastFilter.Active)
	assert.True(t, *repo.lastFilter.Approved)
	assert.True(t, *repo.lastFilter.Active)
	assert.JSONEq(t, `{"reviews": [], "count": 0}`, w.Body.String())
}

func TestReviewCreateTriggersRecompute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &reviewRepoMock{}
	handler := newReviewHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload := `{
		"counselor_id": "counselor-1",
		"author_name": "Jane Doe",
		"rating": 5,
		"title": "helped a lot",
		"content": "very attentive"
	}`
	req, _ := http.NewRequest(http.MethodPost, "/reviews", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"counselor-1"}, repo.recomputed)
	require.Len(t, repo.created, 1)
	assert.False(t, repo.created[0].IsApproved)
}

func TestReviewCreateRatingOutOfRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &reviewRepoMock{}
	handler := newReviewHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload := `{
		"author_name": "Jane Doe",
		"rating": 6,
		"title": "t",
		"content": "c"
	}`
	req, _ := http.NewRequest(http.MethodPost, "/reviews", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}

func TestReviewDeleteNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newReviewHandler(&reviewRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/admin/reviews/missing", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Delete(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}
