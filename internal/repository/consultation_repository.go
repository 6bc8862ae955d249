package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/healing-center/counseling-api/internal/models"
)

const consultationColumns = `id, counselor_id, contact_name, contact_phone, contact_email, consultation_type, urgency, method, preferred_date, preferred_time, description, notes, is_confidential, status, created_at, updated_at`

// ConsultationRepository manages persistence for consultation requests.
type ConsultationRepository struct {
	db *sqlx.DB
}

// NewConsultationRepository constructs a ConsultationRepository.
func NewConsultationRepository(db *sqlx.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

// List returns consultations matching filters along with total count.
// Default ordering is most recent first.
func (r *ConsultationRepository) List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, int, error) {
	base := "FROM consultations WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}
	if filter.Contact != "" {
		contact := "%" + strings.ToLower(filter.Contact) + "%"
		conditions = append(conditions, fmt.Sprintf("(LOWER(contact_name) LIKE $%d OR contact_phone LIKE $%d OR LOWER(COALESCE(contact_email, '')) LIKE $%d)", len(args)+1, len(args)+1, len(args)+1))
		args = append(args, contact)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	allowedSorts := map[string]string{
		"created_at":     "created_at",
		"preferred_date": "preferred_date",
	}
	column, ok := allowedSorts[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT %d OFFSET %d", consultationColumns, base, column, order, limit, offset)
	var consultations []models.Consultation
	if err := r.db.SelectContext(ctx, &consultations, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list consultations: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count consultations: %w", err)
	}

	return consultations, total, nil
}

// FindByID fetches a consultation by ID.
func (r *ConsultationRepository) FindByID(ctx context.Context, id string) (*models.Consultation, error) {
	query := fmt.Sprintf("SELECT %s FROM consultations WHERE id = $1", consultationColumns)
	var consultation models.Consultation
	if err := r.db.GetContext(ctx, &consultation, query, id); err != nil {
		return nil, err
	}
	return &consultation, nil
}

// Create inserts a new consultation record.
func (r *ConsultationRepository) Create(ctx context.Context, consultation *models.Consultation) error {
	if consultation.ID == "" {
		consultation.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if consultation.CreatedAt.IsZero() {
		consultation.CreatedAt = now
	}
	consultation.UpdatedAt = now

	const query = `INSERT INTO consultations (id, counselor_id, contact_name, contact_phone, contact_email, consultation_type, urgency, method, preferred_date, preferred_time, description, notes, is_confidential, status, created_at, updated_at)
		VALUES (:id, :counselor_id, :contact_name, :contact_phone, :contact_email, :consultation_type, :urgency, :method, :preferred_date, :preferred_time, :description, :notes, :is_confidential, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, consultation); err != nil {
		return fmt.Errorf("create consultation: %w", err)
	}
	return nil
}

// Update modifies an existing consultation. ID and created_at stay untouched.
func (r *ConsultationRepository) Update(ctx context.Context, consultation *models.Consultation) error {
	consultation.UpdatedAt = time.Now().UTC()
	const query = `UPDATE consultations SET counselor_id = :counselor_id, contact_name = :contact_name, contact_phone = :contact_phone, contact_email = :contact_email,
consultation_type = :consultation_type, urgency = :urgency, method = :method, preferred_date = :preferred_date, preferred_time = :preferred_time,
description = :description, notes = :notes, is_confidential = :is_confidential, status = :status, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, consultation); err != nil {
		return fmt.Errorf("update consultation: %w", err)
	}
	return nil
}

// Delete removes a consultation. References from reviews are nulled in the
// same transaction so review content outlives the booking record.
func (r *ConsultationRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete consultation: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "UPDATE reviews SET consultation_id = NULL WHERE consultation_id = $1", id); err != nil {
		return fmt.Errorf("detach reviews: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM consultations WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete consultation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete consultation: %w", err)
	}
	return nil
}
