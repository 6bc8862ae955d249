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

type noticeRepository interface {
	List(ctx context.Context, filter models.NoticeFilter) ([]models.Notice, int, error)
	FindByID(ctx context.Context, id string) (*models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Update(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) error
}

type noticeListing struct {
	Notices []models.Notice `json:"notices"`
	Count   int             `json:"count"`
}

// NoticeService handles announcement workflows.
type NoticeService struct {
	repo      noticeRepository
	cache     listingCache
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoticeService constructs the service. cache may be nil.
func NewNoticeService(repo noticeRepository, cache listingCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *NoticeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &NoticeService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger}
	svc.validator.RegisterValidation("notice_type", func(fl validator.FieldLevel) bool {
		return models.ValidNoticeType(models.NoticeType(fl.Field().String()))
	})
	svc.validator.RegisterValidation("notice_status", func(fl validator.FieldLevel) bool {
		return models.ValidNoticeStatus(models.NoticeStatus(fl.Field().String()))
	})
	return svc
}

// NoticeListRequest describes filters for listing notices.
type NoticeListRequest struct {
	Type          string
	Status        string
	PublishedOnly bool
	Limit         int
	Offset        int
}

// CreateNoticeRequest describes the admin create payload.
type CreateNoticeRequest struct {
	AuthorName    string  `json:"author_name"`
	Title         string  `json:"title" validate:"required"`
	Content       string  `json:"content" validate:"required"`
	Type          string  `json:"notice_type" validate:"omitempty,notice_type"`
	Status        string  `json:"status" validate:"omitempty,notice_status"`
	IsPinned      bool    `json:"is_pinned"`
	IsActive      *bool   `json:"is_active"`
	AttachmentURL *string `json:"attachment_url"`
}

// UpdateNoticeRequest describes the admin update payload.
type UpdateNoticeRequest struct {
	AuthorName    string  `json:"author_name"`
	Title         string  `json:"title" validate:"required"`
	Content       string  `json:"content" validate:"required"`
	Type          string  `json:"notice_type" validate:"required,notice_type"`
	Status        string  `json:"status" validate:"required,notice_status"`
	IsPinned      bool    `json:"is_pinned"`
	IsActive      *bool   `json:"is_active"`
	AttachmentURL *string `json:"attachment_url"`
}

// List returns notices with total count. Public published listings are
// cached; admin views always hit the database.
func (s *NoticeService) List(ctx context.Context, req NoticeListRequest) ([]models.Notice, int, error) {
	filter := models.NoticeFilter{
		PublishedOnly: req.PublishedOnly,
		Limit:         req.Limit,
		Offset:        req.Offset,
	}
	if req.Type != "" {
		noticeType := models.NoticeType(req.Type)
		if !models.ValidNoticeType(noticeType) {
			return nil, 0, appErrors.Clone(appErrors.ErrValidation, "unknown notice type")
		}
		filter.Type = &noticeType
	}
	if !req.PublishedOnly && req.Status != "" {
		status := models.NoticeStatus(req.Status)
		if !models.ValidNoticeStatus(status) {
			return nil, 0, appErrors.Clone(appErrors.ErrValidation, "unknown notice status")
		}
		filter.Status = &status
	}

	cacheKey := ""
	if s.cache != nil && req.PublishedOnly && req.Type == "" {
		cacheKey = fmt.Sprintf("notices:published:%d:%d", filter.Limit, filter.Offset)
		var cached noticeListing
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached.Notices, cached.Count, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("notice listing cache read failed", zap.Error(err))
		}
	}

	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notices")
	}

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, noticeListing{Notices: rows, Count: total}, s.cacheTTL); err != nil {
			s.logger.Warn("notice listing cache write failed", zap.Error(err))
		}
	}

	return rows, total, nil
}

// Get returns a notice by id and bumps its view counter.
func (s *NoticeService) Get(ctx context.Context, id string) (*models.Notice, error) {
	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "notice not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get notice")
	}
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("failed to bump notice views", zap.String("notice_id", id), zap.Error(err))
	}
	return notice, nil
}

// Create publishes a new notice. Omitted type defaults to general and
// omitted status to published.
func (s *NoticeService) Create(ctx context.Context, req CreateNoticeRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	noticeType := models.NoticeType(req.Type)
	if req.Type == "" {
		noticeType = models.NoticeGeneral
	}
	status := models.NoticeStatus(req.Status)
	if req.Status == "" {
		status = models.NoticePublished
	}
	authorName := req.AuthorName
	if authorName == "" {
		authorName = "admin"
	}

	notice := &models.Notice{
		AuthorName:    authorName,
		Title:         req.Title,
		Content:       req.Content,
		Type:          noticeType,
		Status:        status,
		IsPinned:      req.IsPinned,
		IsActive:      boolOrDefault(req.IsActive, true),
		AttachmentURL: normalizeOptional(req.AttachmentURL),
	}
	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create notice")
	}

	s.invalidateListings(ctx)
	return notice, nil
}

// Update modifies an existing notice.
func (s *NoticeService) Update(ctx context.Context, id string, req UpdateNoticeRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "notice not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load notice")
	}

	if req.AuthorName != "" {
		existing.AuthorName = req.AuthorName
	}
	existing.Title = req.Title
	existing.Content = req.Content
	existing.Type = models.NoticeType(req.Type)
	existing.Status = models.NoticeStatus(req.Status)
	existing.IsPinned = req.IsPinned
	existing.IsActive = boolOrDefault(req.IsActive, existing.IsActive)
	existing.AttachmentURL = normalizeOptional(req.AttachmentURL)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update notice")
	}

	s.invalidateListings(ctx)
	return existing, nil
}

// Delete removes a notice.
func (s *NoticeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "notice not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load notice")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete notice")
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *NoticeService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, "notices:*"); err != nil {
		s.logger.Warn("notice listing cache invalidation failed", zap.Error(err))
	}
}
