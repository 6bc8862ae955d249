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

const reviewColumns = `id, counselor_id, consultation_id, author_name, rating, title, content, is_anonymous, is_approved, is_active, image_url, view_count, created_at, updated_at`

// ReviewRepository manages persistence for reviews and keeps the derived
// counselor rating aggregate in sync.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository constructs a ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// List returns reviews matching filters along with total count.
func (r *ReviewRepository) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, int, error) {
	base := "FROM reviews WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.CounselorID != nil {
		conditions = append(conditions, fmt.Sprintf("counselor_id = $%d", len(args)+1))
		args = append(args, *filter.CounselorID)
	}
	if filter.Approved != nil {
		conditions = append(conditions, fmt.Sprintf("is_approved = $%d", len(args)+1))
		args = append(args, *filter.Approved)
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)+1))
		args = append(args, *filter.Active)
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

	query := fmt.Sprintf("SELECT %s %s ORDER BY created_at DESC LIMIT %d OFFSET %d", reviewColumns, base, limit, offset)
	var reviews []models.Review
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	return reviews, total, nil
}

// FindByID fetches a review by ID.
func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	query := fmt.Sprintf("SELECT %s FROM reviews WHERE id = $1", reviewColumns)
	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		return nil, err
	}
	return &review, nil
}

// Create inserts a new review row.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	const query = `INSERT INTO reviews (id, counselor_id, consultation_id, author_name, rating, title, content, is_anonymous, is_approved, is_active, image_url, view_count, created_at, updated_at)
		VALUES (:id, :counselor_id, :consultation_id, :author_name, :rating, :title, :content, :is_anonymous, :is_approved, :is_active, :image_url, :view_count, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, review); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// Update modifies an existing review.
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	review.UpdatedAt = time.Now().UTC()
	const query = `UPDATE reviews SET counselor_id = :counselor_id, consultation_id = :consultation_id, author_name = :author_name,
rating = :rating, title = :title, content = :content, is_anonymous = :is_anonymous, is_approved = :is_approved,
is_active = :is_active, image_url = :image_url, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, review); err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// Delete removes a review row.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// IncrementViewCount bumps the detail view counter.
func (r *ReviewRepository) IncrementViewCount(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE reviews SET view_count = view_count + 1 WHERE id = $1", id); err != nil {
		return fmt.Errorf("increment review views: %w", err)
	}
	return nil
}

// RecomputeCounselorAggregate rewrites the counselor's derived rating and
// total_reviews from the review rows currently referencing it. A single
// statement keeps the write atomic per counselor row under concurrent
// review traffic, and re-running it is always safe: the result is a pure
// function of the current rows.
func (r *ReviewRepository) RecomputeCounselorAggregate(ctx context.Context, counselorID string) error {
	const query = `UPDATE counselors
SET rating = COALESCE((SELECT AVG(rating)::double precision FROM reviews WHERE counselor_id = $1), 0),
    total_reviews = (SELECT COUNT(*) FROM reviews WHERE counselor_id = $1),
    updated_at = $2
WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, counselorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("recompute counselor aggregate: %w", err)
	}
	return nil
}
