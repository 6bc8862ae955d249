package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/healing-center/counseling-api/internal/models"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
)

type reviewRepository interface {
	List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, int, error)
	FindByID(ctx context.Context, id string) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) error
	RecomputeCounselorAggregate(ctx context.Context, counselorID string) error
}

type counselorFinder interface {
	FindByID(ctx context.Context, id string) (*models.Counselor, error)
}

// ReviewService handles review submission, moderation, and keeps counselor
// rating aggregates in sync with every review mutation.
type ReviewService struct {
	repo       reviewRepository
	counselors counselorFinder
	cache      listingCache
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewReviewService constructs the service. cache may be nil.
func NewReviewService(repo reviewRepository, counselors counselorFinder, cache listingCache, validate *validator.Validate, logger *zap.Logger) *ReviewService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{repo: repo, counselors: counselors, cache: cache, validator: validate, logger: logger}
}

// ReviewListRequest describes filters for listing reviews.
type ReviewListRequest struct {
	CounselorID  string
	ApprovedOnly bool
	Approved     *bool
	Active       *bool
	Limit        int
	Offset       int
}

// CreateReviewRequest describes the submission payload. New reviews wait
// for moderation: is_approved always starts false.
type CreateReviewRequest struct {
	CounselorID    *string `json:"counselor_id"`
	ConsultationID *string `json:"consultation_id"`
	AuthorName     string  `json:"author_name" validate:"required"`
	Rating         int     `json:"rating" validate:"required,gte=1,lte=5"`
	Title          string  `json:"title" validate:"required"`
	Content        string  `json:"content" validate:"required"`
	IsAnonymous    bool    `json:"is_anonymous"`
	ImageURL       *string `json:"image_url"`
}

// UpdateReviewRequest describes the admin update payload.
type UpdateReviewRequest struct {
	CounselorID    *string `json:"counselor_id"`
	ConsultationID *string `json:"consultation_id"`
	AuthorName     string  `json:"author_name" validate:"required"`
	Rating         int     `json:"rating" validate:"required,gte=1,lte=5"`
	Title          string  `json:"title" validate:"required"`
	Content        string  `json:"content" validate:"required"`
	IsAnonymous    bool    `json:"is_anonymous"`
	IsApproved     *bool   `json:"is_approved"`
	IsActive       *bool   `json:"is_active"`
	ImageURL       *string `json:"image_url"`
}

// List returns reviews with total count. Public listings pass ApprovedOnly
// so unmoderated content never leaks.
func (s *ReviewService) List(ctx context.Context, req ReviewListRequest) ([]models.Review, int, error) {
	filter := models.ReviewFilter{
		Approved: req.Approved,
		Active:   req.Active,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.CounselorID != "" {
		filter.CounselorID = &req.CounselorID
	}
	if req.ApprovedOnly {
		approved := true
		active := true
		filter.Approved = &approved
		filter.Active = &active
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reviews")
	}
	return rows, total, nil
}

// Get returns a publicly visible review by id and bumps its view counter.
// Unapproved or hidden reviews read as not found and accrue no views.
func (s *ReviewService) Get(ctx context.Context, id string) (*models.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "review not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get review")
	}
	if !review.IsApproved || !review.IsActive {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "review not found")
	}
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("failed to bump review views", zap.String("review_id", id), zap.Error(err))
	}
	return review, nil
}

// Create submits a new review and refreshes the counselor's aggregate.
func (s *ReviewService) Create(ctx context.Context, req CreateReviewRequest) (*models.Review, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	counselorID := normalizeOptional(req.CounselorID)
	if counselorID != nil {
		if _, err := s.counselors.FindByID(ctx, *counselorID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrValidation, "counselor does not exist")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check counselor")
		}
	}

	review := &models.Review{
		CounselorID:    counselorID,
		ConsultationID: normalizeOptional(req.ConsultationID),
		AuthorName:     req.AuthorName,
		Rating:         req.Rating,
		Title:          req.Title,
		Content:        req.Content,
		IsAnonymous:    req.IsAnonymous,
		IsApproved:     false,
		IsActive:       true,
		ImageURL:       normalizeOptional(req.ImageURL),
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create review")
	}

	s.recompute(ctx, review.CounselorID)
	return review, nil
}

// Update modifies a review. When the counselor reference moves, both the
// old and the new counselor get a fresh aggregate.
func (s *ReviewService) Update(ctx context.Context, id string, req UpdateReviewRequest) (*models.Review, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "review not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load review")
	}

	previousCounselor := existing.CounselorID
	counselorID := normalizeOptional(req.CounselorID)
	if counselorID != nil && !sameRef(previousCounselor, counselorID) {
		if _, err := s.counselors.FindByID(ctx, *counselorID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrValidation, "counselor does not exist")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check counselor")
		}
	}

	existing.CounselorID = counselorID
	existing.ConsultationID = normalizeOptional(req.ConsultationID)
	existing.AuthorName = req.AuthorName
	existing.Rating = req.Rating
	existing.Title = req.Title
	existing.Content = req.Content
	existing.IsAnonymous = req.IsAnonymous
	existing.IsApproved = boolOrDefault(req.IsApproved, existing.IsApproved)
	existing.IsActive = boolOrDefault(req.IsActive, existing.IsActive)
	existing.ImageURL = normalizeOptional(req.ImageURL)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update review")
	}

	s.recompute(ctx, existing.CounselorID)
	if !sameRef(previousCounselor, existing.CounselorID) {
		s.recompute(ctx, previousCounselor)
	}
	return existing, nil
}

// Approve marks a review publicly visible.
func (s *ReviewService) Approve(ctx context.Context, id string) (*models.Review, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "review not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load review")
	}

	existing.IsApproved = true
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to approve review")
	}
	return existing, nil
}

// Delete removes a review and refreshes the affected counselor's aggregate.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "review not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load review")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete review")
	}

	s.recompute(ctx, existing.CounselorID)
	return nil
}

func (s *ReviewService) recompute(ctx context.Context, counselorID *string) {
	if counselorID == nil || *counselorID == "" {
		return
	}
	if err := s.repo.RecomputeCounselorAggregate(ctx, *counselorID); err != nil {
		s.logger.Error("failed to recompute counselor aggregate", zap.String("counselor_id", *counselorID), zap.Error(err))
	}
	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "counselors:*"); err != nil {
			s.logger.Warn("counselor listing cache invalidation failed", zap.Error(err))
		}
	}
}

func sameRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
