package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/healing-center/counseling-api/internal/models"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
)

// mockReviewRepo keeps reviews in memory and recomputes counselor aggregates
// the same way the SQL statement does, so aggregate behavior is observable
// end to end at the service level.
type mockReviewRepo struct {
	reviews    map[string]*models.Review
	counselors map[string]*models.Counselor
	nextID     int
	recomputed []string
}

func newMockReviewRepo(counselors ...*models.Counselor) *mockReviewRepo {
	m := &mockReviewRepo{
		reviews:    make(map[string]*models.Review),
		counselors: make(map[string]*models.Counselor),
	}
	for _, c := range counselors {
		m.counselors[c.ID] = c
	}
	return m
}

func (m *mockReviewRepo) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, int, error) {
	var rows []models.Review
	for _, r := range m.reviews {
		if filter.CounselorID != nil && (r.CounselorID == nil || *r.CounselorID != *filter.CounselorID) {
			continue
		}
		if filter.Approved != nil && r.IsApproved != *filter.Approved {
			continue
		}
		if filter.Active != nil && r.IsActive != *filter.Active {
			continue
		}
		rows = append(rows, *r)
	}
	return rows, len(rows), nil
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id string) (*models.Review, error) {
	if r, ok := m.reviews[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	m.nextID++
	review.ID = fmt.Sprintf("rev-%d", m.nextID)
	copied := *review
	m.reviews[review.ID] = &copied
	return nil
}

func (m *mockReviewRepo) Update(ctx context.Context, review *models.Review) error {
	copied := *review
	m.reviews[review.ID] = &copied
	return nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, id string) error {
	delete(m.reviews, id)
	return nil
}

func (m *mockReviewRepo) IncrementViewCount(ctx context.Context, id string) error {
	if r, ok := m.reviews[id]; ok {
		r.ViewCount++
	}
	return nil
}

func (m *mockReviewRepo) RecomputeCounselorAggregate(ctx context.Context, counselorID string) error {
	m.recomputed = append(m.recomputed, counselorID)
	counselor, ok := m.counselors[counselorID]
	if !ok {
		return nil
	}
	sum, count := 0, 0
	for _, r := range m.reviews {
		if r.CounselorID != nil && *r.CounselorID == counselorID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		counselor.Rating = 0
		counselor.TotalReviews = 0
		return nil
	}
	counselor.Rating = float64(sum) / float64(count)
	counselor.TotalReviews = count
	return nil
}

type mockCounselorFinder struct {
	counselors map[string]*models.Counselor
}

func (m *mockCounselorFinder) FindByID(ctx context.Context, id string) (*models.Counselor, error) {
	if c, ok := m.counselors[id]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func newReviewService(repo *mockReviewRepo) *ReviewService {
	finder := &mockCounselorFinder{counselors: repo.counselors}
	return NewReviewService(repo, finder, nil, validator.New(), zap.NewNop())
}

func submitReview(t *testing.T, svc *ReviewService, counselorID string, rating int) *models.Review {
	t.Helper()
	review, err := svc.Create(context.Background(), CreateReviewRequest{
		CounselorID: &counselorID,
		AuthorName:  "Jane Doe",
		Rating:      rating,
		Title:       "title",
		Content:     "content",
	})
	require.NoError(t, err)
	return review
}

func TestReviewCreateUpdatesCounselorAggregate(t *testing.T) {
	counselor := &models.Counselor{ID: "counselor-1", Name: "Dr. Park"}
	repo := newMockReviewRepo(counselor)
	svc := newReviewService(repo)

	submitReview(t, svc, "counselor-1", 5)
	submitReview(t, svc, "counselor-1", 3)
	submitReview(t, svc, "counselor-1", 4)

	assert.InDelta(t, 4.0, counselor.Rating, 1e-9)
	assert.Equal(t, 3, counselor.TotalReviews)
}

func TestReviewDeleteUpdatesCounselorAggregate(t *testing.T) {
	counselor := &models.Counselor{ID: "counselor-1", Name: "Dr. Park"}
	repo := newMockReviewRepo(counselor)
	svc := newReviewService(repo)

	submitReview(t, svc, "counselor-1", 5)
	toDelete := submitReview(t, svc, "counselor-1", 3)
	submitReview(t, svc, "counselor-1", 4)

	require.NoError(t, svc.Delete(context.Background(), toDelete.ID))
	assert.InDelta(t, 4.5, counselor.Rating, 1e-9)
	assert.Equal(t, 2, counselor.TotalReviews)
}

func TestReviewLastDeleteResetsAggregate(t *testing.T) {
	counselor := &models.Counselor{ID: "counselor-1", Name: "Dr. Park"}
	repo := newMockReviewRepo(counselor)
	svc := newReviewService(repo)

	only := submitReview(t, svc, "counselor-1", 5)
	require.NoError(t, svc.Delete(context.Background(), only.ID))

	assert.Zero(t, counselor.Rating)
	assert.Zero(t, counselor.TotalReviews)
}

func TestReviewUpdateMovingCounselorRecomputesBoth(t *testing.T) {
	first := &models.Counselor{ID: "counselor-1", Name: "Dr. Park"}
	second := &models.Counselor{ID: "counselor-2", Name: "Dr. Lee"}
	repo := newMockReviewRepo(first, second)
	svc := newReviewService(repo)

	review := submitReview(t, svc, "counselor-1", 4)

	newCounselor := "counselor-2"
	_, err := svc.Update(context.Background(), review.ID, UpdateReviewRequest{
		CounselorID: &newCounselor,
		AuthorName:  "Jane Doe",
		Rating:      4,
		Title:       "title",
		Content:     "content",
	})
	require.NoError(t, err)

	assert.Zero(t, first.Rating)
	assert.Zero(t, first.TotalReviews)
	assert.InDelta(t, 4.0, second.Rating, 1e-9)
	assert.Equal(t, 1, second.TotalReviews)
}

func TestReviewCreateRejectsOutOfRangeRating(t *testing.T) {
	repo := newMockReviewRepo(&models.Counselor{ID: "counselor-1"})
	svc := newReviewService(repo)

	counselorID := "counselor-1"
	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), CreateReviewRequest{
			CounselorID: &counselorID,
			AuthorName:  "Jane Doe",
			Rating:      rating,
			Title:       "title",
			Content:     "content",
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
	assert.Empty(t, repo.reviews)
}

func TestReviewCreateRejectsUnknownCounselor(t *testing.T) {
	repo := newMockReviewRepo()
	svc := newReviewService(repo)

	counselorID := "ghost"
	_, err := svc.Create(context.Background(), CreateReviewRequest{
		CounselorID: &counselorID,
		AuthorName:  "Jane Doe",
		Rating:      4,
		Title:       "title",
		Content:     "content",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReviewCreateStartsUnapproved(t *testing.T) {
	repo := newMockReviewRepo(&models.Counselor{ID: "counselor-1"})
	svc := newReviewService(repo)

	review := submitReview(t, svc, "counselor-1", 5)
	assert.False(t, review.IsApproved)
	assert.True(t, review.IsActive)
}

func TestReviewApprove(t *testing.T) {
	repo := newMockReviewRepo(&models.Counselor{ID: "counselor-1"})
	svc := newReviewService(repo)

	review := submitReview(t, svc, "counselor-1", 5)
	approved, err := svc.Approve(context.Background(), review.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
}

func TestReviewGetHidesUnapprovedAndSkipsViewBump(t *testing.T) {
	repo := newMockReviewRepo(&models.Counselor{ID: "counselor-1"})
	svc := newReviewService(repo)

	review := submitReview(t, svc, "counselor-1", 5)

	_, err := svc.Get(context.Background(), review.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.reviews[review.ID].ViewCount)

	_, err = svc.Approve(context.Background(), review.ID)
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, fetched.ID)
	assert.Equal(t, 1, repo.reviews[review.ID].ViewCount)
}

func TestReviewPublicListingFiltersUnapproved(t *testing.T) {
	repo := newMockReviewRepo(&models.Counselor{ID: "counselor-1"})
	svc := newReviewService(repo)

	review := submitReview(t, svc, "counselor-1", 5)
	submitReview(t, svc, "counselor-1", 3)
	_, err := svc.Approve(context.Background(), review.ID)
	require.NoError(t, err)

	rows, total, err := svc.List(context.Background(), ReviewListRequest{ApprovedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, review.ID, rows[0].ID)
}

func TestReviewWithoutCounselorSkipsRecompute(t *testing.T) {
	repo := newMockReviewRepo()
	svc := newReviewService(repo)

	_, err := svc.Create(context.Background(), CreateReviewRequest{
		AuthorName: "Jane Doe",
		Rating:     4,
		Title:      "title",
		Content:    "content",
	})
	require.NoError(t, err)
	assert.Empty(t, repo.recomputed)
}
