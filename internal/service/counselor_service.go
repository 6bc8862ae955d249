package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/healing-center/counseling-api/internal/models"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
)

type counselorRepository interface {
	List(ctx context.Context, filter models.CounselorFilter) ([]models.Counselor, int, error)
	FindByID(ctx context.Context, id string) (*models.Counselor, error)
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
	Create(ctx context.Context, counselor *models.Counselor) error
	Update(ctx context.Context, counselor *models.Counselor) error
	ToggleActive(ctx context.Context, id string) (bool, error)
	CountReviews(ctx context.Context, id string) (int, error)
	Delete(ctx context.Context, id string) error
}

type listingCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type counselorListing struct {
	Counselors []models.Counselor `json:"counselors"`
	Count      int                `json:"count"`
}

// CounselorService handles counselor profile workflows.
type CounselorService struct {
	repo      counselorRepository
	cache     listingCache
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCounselorService constructs the service. cache may be nil.
func NewCounselorService(repo counselorRepository, cache listingCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *CounselorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CounselorService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger}
}

// CounselorListRequest describes filters for listing counselors.
type CounselorListRequest struct {
	ActiveOnly bool
	Online     *bool
	Limit      int
	Offset     int
}

// CreateCounselorRequest describes the admin create payload.
type CreateCounselorRequest struct {
	Name            string  `json:"name" validate:"required"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	Specialization  string  `json:"specialization" validate:"required"`
	ExperienceYears int     `json:"experience_years" validate:"gte=0"`
	Education       string  `json:"education"`
	Certification   *string `json:"certification"`
	Bio             string  `json:"bio"`
	ProfileImage    *string `json:"profile_image"`
	IsOnline        *bool   `json:"is_online"`
	IsActive        *bool   `json:"is_active"`
}

// UpdateCounselorRequest describes the admin update payload. Rating and
// review counts are derived and never accepted from the client.
type UpdateCounselorRequest struct {
	Name            string  `json:"name" validate:"required"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	Specialization  string  `json:"specialization" validate:"required"`
	ExperienceYears int     `json:"experience_years" validate:"gte=0"`
	Education       string  `json:"education"`
	Certification   *string `json:"certification"`
	Bio             string  `json:"bio"`
	ProfileImage    *string `json:"profile_image"`
	IsOnline        *bool   `json:"is_online"`
	IsActive        *bool   `json:"is_active"`
}

// List returns counselors with total count. Public listings are cached.
func (s *CounselorService) List(ctx context.Context, req CounselorListRequest) ([]models.Counselor, int, error) {
	filter := models.CounselorFilter{
		Online: req.Online,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.ActiveOnly {
		active := true
		filter.Active = &active
	}

	cacheKey := ""
	if s.cache != nil && req.ActiveOnly && req.Online == nil {
		cacheKey = fmt.Sprintf("counselors:list:%d:%d", filter.Limit, filter.Offset)
		var cached counselorListing
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached.Counselors, cached.Count, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("counselor listing cache read failed", zap.Error(err))
		}
	}

	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list counselors")
	}

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, counselorListing{Counselors: rows, Count: total}, s.cacheTTL); err != nil {
			s.logger.Warn("counselor listing cache write failed", zap.Error(err))
		}
	}

	return rows, total, nil
}

// Get returns a counselor by id.
func (s *CounselorService) Get(ctx context.Context, id string) (*models.Counselor, error) {
	counselor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "counselor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get counselor")
	}
	return counselor, nil
}

// Create registers a new counselor profile. New profiles start active and
// online unless the payload says otherwise, with an empty rating aggregate.
func (s *CounselorService) Create(ctx context.Context, req CreateCounselorRequest) (*models.Counselor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := s.repo.ExistsByEmail(ctx, *req.Email, "")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check counselor email")
		}
		if taken {
			return nil, appErrors.Clone(appErrors.ErrConflict, "counselor email already in use")
		}
	}

	counselor := &models.Counselor{
		Name:            req.Name,
		Email:           normalizeOptional(req.Email),
		Phone:           normalizeOptional(req.Phone),
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		Education:       req.Education,
		Certification:   normalizeOptional(req.Certification),
		Bio:             req.Bio,
		ProfileImage:    normalizeOptional(req.ProfileImage),
		IsOnline:        boolOrDefault(req.IsOnline, true),
		IsActive:        boolOrDefault(req.IsActive, true),
		Rating:          0,
		TotalReviews:    0,
	}
	if err := s.repo.Create(ctx, counselor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create counselor")
	}

	s.invalidateListings(ctx)
	return counselor, nil
}

// Update modifies a counselor profile. The stored rating aggregate is
// preserved untouched.
func (s *CounselorService) Update(ctx context.Context, id string, req UpdateCounselorRequest) (*models.Counselor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := s.repo.ExistsByEmail(ctx, *req.Email, id)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check counselor email")
		}
		if taken {
			return nil, appErrors.Clone(appErrors.ErrConflict, "counselor email already in use")
		}
	}

	existing.Name = req.Name
	existing.Email = normalizeOptional(req.Email)
	existing.Phone = normalizeOptional(req.Phone)
	existing.Specialization = req.Specialization
	existing.ExperienceYears = req.ExperienceYears
	existing.Education = req.Education
	existing.Certification = normalizeOptional(req.Certification)
	existing.Bio = req.Bio
	existing.ProfileImage = normalizeOptional(req.ProfileImage)
	existing.IsOnline = boolOrDefault(req.IsOnline, existing.IsOnline)
	existing.IsActive = boolOrDefault(req.IsActive, existing.IsActive)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update counselor")
	}

	s.invalidateListings(ctx)
	return existing, nil
}

// ToggleActive flips the profile's visibility flag.
func (s *CounselorService) ToggleActive(ctx context.Context, id string) (bool, error) {
	active, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, appErrors.Clone(appErrors.ErrNotFound, "counselor not found")
		}
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to toggle counselor")
	}
	s.invalidateListings(ctx)
	return active, nil
}

// Delete removes a counselor profile. Profiles with reviews are protected:
// the caller gets a conflict instead of silently losing review history.
func (s *CounselorService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountReviews(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count counselor reviews")
	}
	if count > 0 {
		return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("counselor has %d reviews; deactivate instead", count))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete counselor")
	}

	s.invalidateListings(ctx)
	return nil
}

func (s *CounselorService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, "counselors:*"); err != nil {
		s.logger.Warn("counselor listing cache invalidation failed", zap.Error(err))
	}
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
