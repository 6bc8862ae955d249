package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/healing-center/counseling-api/internal/models"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
)

type mockCounselorRepo struct {
	byID        map[string]*models.Counselor
	emailTaken  bool
	reviewCount int
	created     []*models.Counselor
	updated     []*models.Counselor
	deletedIDs  []string
	listRows    []models.Counselor
	listTotal   int
	listFilter  models.CounselorFilter
}

func (m *mockCounselorRepo) List(ctx context.Context, filter models.CounselorFilter) ([]models.Counselor, int, error) {
	m.listFilter = filter
	return m.listRows, m.listTotal, nil
}

func (m *mockCounselorRepo) FindByID(ctx context.Context, id string) (*models.Counselor, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockCounselorRepo) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	return m.emailTaken, nil
}

func (m *mockCounselorRepo) Create(ctx context.Context, counselor *models.Counselor) error {
	counselor.ID = "counselor-1"
	m.created = append(m.created, counselor)
	return nil
}

func (m *mockCounselorRepo) Update(ctx context.Context, counselor *models.Counselor) error {
	m.updated = append(m.updated, counselor)
	return nil
}

func (m *mockCounselorRepo) ToggleActive(ctx context.Context, id string) (bool, error) {
	c, ok := m.byID[id]
	if !ok {
		return false, sql.ErrNoRows
	}
	c.IsActive = !c.IsActive
	return c.IsActive, nil
}

func (m *mockCounselorRepo) CountReviews(ctx context.Context, id string) (int, error) {
	return m.reviewCount, nil
}

func (m *mockCounselorRepo) Delete(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockListingCache struct {
	store           map[string][]byte
	deletedPatterns []string
	getCalls        int
	setCalls        int
}

func (m *mockListingCache) Get(ctx context.Context, key string, dest interface{}) error {
	m.getCalls++
	return appErrors.ErrCacheMiss
}

func (m *mockListingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.setCalls++
	return nil
}

func (m *mockListingCache) DeleteByPattern(ctx context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	return nil
}

func TestCounselorCreateDefaults(t *testing.T) {
	repo := &mockCounselorRepo{}
	svc := NewCounselorService(repo, nil, 0, validator.New(), zap.NewNop())

	created, err := svc.Create(context.Background(), CreateCounselorRequest{
		Name:           "Dr. Park",
		Specialization: "trauma",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.True(t, created.IsOnline)
	assert.Zero(t, created.Rating)
	assert.Zero(t, created.TotalReviews)
}

func TestCounselorCreateDuplicateEmail(t *testing.T) {
	repo := &mockCounselorRepo{emailTaken: true}
	svc := NewCounselorService(repo, nil, 0, validator.New(), zap.NewNop())

	email := "dr.park@example.com"
	_, err := svc.Create(context.Background(), CreateCounselorRequest{
		Name:           "Dr. Park",
		Email:          &email,
		Specialization: "trauma",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestCounselorUpdatePreservesAggregate(t *testing.T) {
	existing := &models.Counselor{ID: "counselor-1", Name: "Dr. Park", Specialization: "trauma", Rating: 4.5, TotalReviews: 12, IsActive: true, IsOnline: true}
	repo := &mockCounselorRepo{byID: map[string]*models.Counselor{"counselor-1": existing}}
	svc := NewCounselorService(repo, nil, 0, validator.New(), zap.NewNop())

	updated, err := svc.Update(context.Background(), "counselor-1", UpdateCounselorRequest{
		Name:           "Dr. Park",
		Specialization: "family",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, updated.Rating)
	assert.Equal(t, 12, updated.TotalReviews)
	assert.Equal(t, "family", updated.Specialization)
}

func TestCounselorDeleteBlockedByReviews(t *testing.T) {
	existing := &models.Counselor{ID: "counselor-1", Name: "Dr. Park"}
	repo := &mockCounselorRepo{byID: map[string]*models.Counselor{"counselor-1": existing}, reviewCount: 3}
	svc := NewCounselorService(repo, nil, 0, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), "counselor-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.deletedIDs)
}

func TestCounselorDeleteWithoutReviews(t *testing.T) {
	existing := &models.Counselor{ID: "counselor-1", Name: "Dr. Park"}
	repo := &mockCounselorRepo{byID: map[string]*models.Counselor{"counselor-1": existing}}
	svc := NewCounselorService(repo, nil, 0, validator.New(), zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), "counselor-1"))
	assert.Equal(t, []string{"counselor-1"}, repo.deletedIDs)
}

func TestCounselorPublicListFiltersActive(t *testing.T) {
	repo := &mockCounselorRepo{}
	svc := NewCounselorService(repo, nil, 0, validator.New(), zap.NewNop())

	_, _, err := svc.List(context.Background(), CounselorListRequest{ActiveOnly: true})
	require.NoError(t, err)
	require.NotNil(t, repo.listFilter.Active)
	assert.True(t, *repo.listFilter.Active)
}

func TestCounselorListEmptyResult(t *testing.T) {
	repo := &mockCounselorRepo{listRows: nil, listTotal: 0}
	svc := NewCounselorService(repo, nil, 0, validator.New(), zap.NewNop())

	rows, total, err := svc.List(context.Background(), CounselorListRequest{})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, total)
}

func TestCounselorMutationsInvalidateCache(t *testing.T) {
	cache := &mockListingCache{}
	repo := &mockCounselorRepo{}
	svc := NewCounselorService(repo, cache, time.Minute, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateCounselorRequest{Name: "Dr. Park", Specialization: "trauma"})
	require.NoError(t, err)
	assert.Contains(t, cache.deletedPatterns, "counselors:*")
}

func TestCounselorToggleActiveNotFound(t *testing.T) {
	repo := &mockCounselorRepo{}
	svc := NewCounselorService(repo, nil, 0, validator.New(), zap.NewNop())

	_, err := svc.ToggleActive(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
