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

const noticeColumns = `id, author_name, title, content, notice_type, status, is_pinned, is_active, attachment_url, view_count, created_at, updated_at`

// NoticeRepository manages persistence for notices.
type NoticeRepository struct {
	db *sqlx.DB
}

// NewNoticeRepository constructs a NoticeRepository.
func NewNoticeRepository(db *sqlx.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// List returns notices matching filters with total count. Pinned notices
// sort first, then newest first.
func (r *NoticeRepository) List(ctx context.Context, filter models.NoticeFilter) ([]models.Notice, int, error) {
	base := "FROM notices WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.PublishedOnly {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1), "is_active = TRUE")
		args = append(args, models.NoticePublished)
	} else if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("notice_type = $%d", len(args)+1))
		args = append(args, *filter.Type)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY is_pinned DESC, created_at DESC LIMIT %d OFFSET %d", noticeColumns, base, limit, offset)
	var notices []models.Notice
	if err := r.db.SelectContext(ctx, &notices, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list notices: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count notices: %w", err)
	}

	return notices, total, nil
}

// FindByID fetches a notice by ID.
func (r *NoticeRepository) FindByID(ctx context.Context, id string) (*models.Notice, error) {
	query := fmt.Sprintf("SELECT %s FROM notices WHERE id = $1", noticeColumns)
	var notice models.Notice
	if err := r.db.GetContext(ctx, &notice, query, id); err != nil {
		return nil, err
	}
	return &notice, nil
}

// Create inserts a new notice.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	if notice.ID == "" {
		notice.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = now
	}
	notice.UpdatedAt = now

	const query = `INSERT INTO notices (id, author_name, title, content, notice_type, status, is_pinned, is_active, attachment_url, view_count, created_at, updated_at)
		VALUES (:id, :author_name, :title, :content, :notice_type, :status, :is_pinned, :is_active, :attachment_url, :view_count, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, notice); err != nil {
		return fmt.Errorf("create notice: %w", err)
	}
	return nil
}

// Update modifies an existing notice.
func (r *NoticeRepository) Update(ctx context.Context, notice *models.Notice) error {
	notice.UpdatedAt = time.Now().UTC()
	const query = `UPDATE notices SET author_name = :author_name, title = :title, content = :content, notice_type = :notice_type,
status = :status, is_pinned = :is_pinned, is_active = :is_active, attachment_url = :attachment_url, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, notice); err != nil {
		return fmt.Errorf("update notice: %w", err)
	}
	return nil
}

// Delete removes a notice.
func (r *NoticeRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM notices WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	return nil
}

// IncrementViewCount bumps the detail view counter.
func (r *NoticeRepository) IncrementViewCount(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE notices SET view_count = view_count + 1 WHERE id = $1", id); err != nil {
		return fmt.Errorf("increment notice views: %w", err)
	}
	return nil
}
