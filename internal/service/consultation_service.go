package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/healing-center/counseling-api/internal/models"
	appErrors "github.com/healing-center/counseling-api/pkg/errors"
)

type consultationRepository interface {
	List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, int, error)
	FindByID(ctx context.Context, id string) (*models.Consultation, error)
	Create(ctx context.Context, consultation *models.Consultation) error
	Update(ctx context.Context, consultation *models.Consultation) error
	Delete(ctx context.Context, id string) error
}

// ConsultationService handles consultation booking workflows.
type ConsultationService struct {
	repo      consultationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewConsultationService constructs the service.
func NewConsultationService(repo consultationRepository, validate *validator.Validate, logger *zap.Logger) *ConsultationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &ConsultationService{repo: repo, validator: validate, logger: logger}
	svc.validator.RegisterValidation("consultation_type", func(fl validator.FieldLevel) bool {
		return models.ValidConsultationType(models.ConsultationType(fl.Field().String()))
	})
	svc.validator.RegisterValidation("consultation_status", func(fl validator.FieldLevel) bool {
		return models.ValidConsultationStatus(models.ConsultationStatus(fl.Field().String()))
	})
	svc.validator.RegisterValidation("consultation_method", func(fl validator.FieldLevel) bool {
		return models.ValidConsultationMethod(models.ConsultationMethod(fl.Field().String()))
	})
	svc.validator.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		return models.ValidUrgencyLevel(models.UrgencyLevel(fl.Field().String()))
	})
	return svc
}

// ConsultationListRequest describes filters for listing consultations.
type ConsultationListRequest struct {
	Contact   string
	Status    string
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// CreateConsultationRequest describes the booking payload. A status sent by
// the client is ignored: new bookings always start out pending.
type CreateConsultationRequest struct {
	CounselorID    string  `json:"counselor_id" validate:"required"`
	ContactName    string  `json:"contact_name" validate:"required"`
	ContactPhone   string  `json:"contact_phone" validate:"required"`
	ContactEmail   *string `json:"contact_email" validate:"omitempty,email"`
	Type           string  `json:"consultation_type" validate:"required,consultation_type"`
	Urgency        string  `json:"urgency" validate:"omitempty,urgency"`
	Method         string  `json:"method" validate:"required,consultation_method"`
	PreferredDate  string  `json:"preferred_date" validate:"required"`
	PreferredTime  string  `json:"preferred_time" validate:"required"`
	Description    string  `json:"description" validate:"required"`
	Notes          *string `json:"notes"`
	IsConfidential bool    `json:"is_confidential"`
	Status         string  `json:"status"`
}

// UpdateConsultationRequest describes the admin update payload.
type UpdateConsultationRequest struct {
	CounselorID    string  `json:"counselor_id" validate:"required"`
	ContactName    string  `json:"contact_name" validate:"required"`
	ContactPhone   string  `json:"contact_phone" validate:"required"`
	ContactEmail   *string `json:"contact_email" validate:"omitempty,email"`
	Type           string  `json:"consultation_type" validate:"required,consultation_type"`
	Urgency        string  `json:"urgency" validate:"omitempty,urgency"`
	Method         string  `json:"method" validate:"required,consultation_method"`
	PreferredDate  string  `json:"preferred_date" validate:"required"`
	PreferredTime  string  `json:"preferred_time" validate:"required"`
	Description    string  `json:"description" validate:"required"`
	Notes          *string `json:"notes"`
	IsConfidential bool    `json:"is_confidential"`
	Status         string  `json:"status" validate:"required,consultation_status"`
}

// UpdateConsultationStatusRequest moves a booking through its lifecycle.
type UpdateConsultationStatusRequest struct {
	Status string `json:"status" validate:"required,consultation_status"`
}

// List returns consultations with total count.
func (s *ConsultationService) List(ctx context.Context, req ConsultationListRequest) ([]models.Consultation, int, error) {
	filter := models.ConsultationFilter{
		Contact:   req.Contact,
		Limit:     req.Limit,
		Offset:    req.Offset,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if req.Status != "" {
		status := models.ConsultationStatus(req.Status)
		if !models.ValidConsultationStatus(status) {
			return nil, 0, appErrors.Clone(appErrors.ErrValidation, "unknown consultation status")
		}
		filter.Status = &status
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list consultations")
	}
	return rows, total, nil
}

// Get returns a consultation by id.
func (s *ConsultationService) Get(ctx context.Context, id string) (*models.Consultation, error) {
	consultation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "consultation not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get consultation")
	}
	return consultation, nil
}

// Create registers a new booking. The stored status is always pending
// regardless of the submitted payload.
func (s *ConsultationService) Create(ctx context.Context, req CreateConsultationRequest) (*models.Consultation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	preferredDate, err := parseDateField(req.PreferredDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "preferred_date must be YYYY-MM-DD")
	}

	urgency := models.UrgencyLevel(req.Urgency)
	if req.Urgency == "" {
		urgency = models.UrgencyMedium
	}

	consultation := &models.Consultation{
		CounselorID:    req.CounselorID,
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		ContactEmail:   normalizeOptional(req.ContactEmail),
		Type:           models.ConsultationType(req.Type),
		Urgency:        urgency,
		Method:         models.ConsultationMethod(req.Method),
		PreferredDate:  preferredDate,
		PreferredTime:  req.PreferredTime,
		Description:    req.Description,
		Notes:          normalizeOptional(req.Notes),
		IsConfidential: req.IsConfidential,
		Status:         models.StatusPending,
	}
	if err := s.repo.Create(ctx, consultation); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create consultation")
	}
	return consultation, nil
}

// Update modifies an existing booking including its status.
func (s *ConsultationService) Update(ctx context.Context, id string, req UpdateConsultationRequest) (*models.Consultation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	preferredDate, err := parseDateField(req.PreferredDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "preferred_date must be YYYY-MM-DD")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "consultation not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load consultation")
	}

	urgency := models.UrgencyLevel(req.Urgency)
	if req.Urgency == "" {
		urgency = existing.Urgency
	}

	existing.CounselorID = req.CounselorID
	existing.ContactName = req.ContactName
	existing.ContactPhone = req.ContactPhone
	existing.ContactEmail = normalizeOptional(req.ContactEmail)
	existing.Type = models.ConsultationType(req.Type)
	existing.Urgency = urgency
	existing.Method = models.ConsultationMethod(req.Method)
	existing.PreferredDate = preferredDate
	existing.PreferredTime = req.PreferredTime
	existing.Description = req.Description
	existing.Notes = normalizeOptional(req.Notes)
	existing.IsConfidential = req.IsConfidential
	existing.Status = models.ConsultationStatus(req.Status)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update consultation")
	}
	return existing, nil
}

// UpdateStatus moves a booking to a new lifecycle state. Only membership in
// the status set is checked; transitions are at the admin's discretion.
func (s *ConsultationService) UpdateStatus(ctx context.Context, id string, req UpdateConsultationStatusRequest) (*models.Consultation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "consultation not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load consultation")
	}

	existing.Status = models.ConsultationStatus(req.Status)
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update consultation status")
	}
	return existing, nil
}

// Cancel marks the booking cancelled. The record stays visible to admins.
func (s *ConsultationService) Cancel(ctx context.Context, id string) (*models.Consultation, error) {
	return s.UpdateStatus(ctx, id, UpdateConsultationStatusRequest{Status: string(models.StatusCancelled)})
}

// Delete removes a booking. Reviews referencing it keep their content but
// lose the reference.
func (s *ConsultationService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete consultation")
	}
	return nil
}

func parseDateField(value string) (time.Time, error) {
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, value)
}

func normalizeOptional(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
