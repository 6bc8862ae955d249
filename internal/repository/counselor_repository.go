package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/healing-center/counseling-api/internal/models"
)

const counselorColumns = `id, name, email, phone, specialization, experience_years, education, certification, bio, profile_image, is_online, is_active, rating, total_reviews, created_at, updated_at`

// CounselorRepository manages persistence for counselor profiles.
type CounselorRepository struct {
	db *sqlx.DB
}

// NewCounselorRepository constructs a CounselorRepository.
func NewCounselorRepository(db *sqlx.DB) *CounselorRepository {
	return &CounselorRepository{db: db}
}

// List returns counselors matching filters along with total count.
func (r *CounselorRepository) List(ctx context.Context, filter models.CounselorFilter) ([]models.Counselor, int, error) {
	base := "FROM counselors WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)+1))
		args = append(args, *filter.Active)
	}
	if filter.Online != nil {
		conditions = append(conditions, fmt.Sprintf("is_online = $%d", len(args)+1))
		args = append(args, *filter.Online)
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

	query := fmt.Sprintf("SELECT %s %s ORDER BY created_at DESC LIMIT %d OFFSET %d", counselorColumns, base, limit, offset)
	var counselors []models.Counselor
	if err := r.db.SelectContext(ctx, &counselors, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list counselors: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count counselors: %w", err)
	}

	return counselors, total, nil
}

// FindByID fetches a counselor by ID.
func (r *CounselorRepository) FindByID(ctx context.Context, id string) (*models.Counselor, error) {
	query := fmt.Sprintf("SELECT %s FROM counselors WHERE id = $1", counselorColumns)
	var counselor models.Counselor
	if err := r.db.GetContext(ctx, &counselor, query, id); err != nil {
		return nil, err
	}
	return &counselor, nil
}

// ExistsByEmail checks if another counselor uses the same email.
func (r *CounselorRepository) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM counselors WHERE LOWER(email) = LOWER($1)"
	args := []interface{}{email}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check counselor email: %w", err)
	}
	return true, nil
}

// Create inserts a new counselor profile.
func (r *CounselorRepository) Create(ctx context.Context, counselor *models.Counselor) error {
	if counselor.ID == "" {
		counselor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if counselor.CreatedAt.IsZero() {
		counselor.CreatedAt = now
	}
	counselor.UpdatedAt = now

	const query = `INSERT INTO counselors (id, name, email, phone, specialization, experience_years, education, certification, bio, profile_image, is_online, is_active, rating, total_reviews, created_at, updated_at)
		VALUES (:id, :name, :email, :phone, :specialization, :experience_years, :education, :certification, :bio, :profile_image, :is_online, :is_active, :rating, :total_reviews, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, counselor); err != nil {
		return fmt.Errorf("create counselor: %w", err)
	}
	return nil
}

// Update modifies profile fields. The derived rating and total_reviews
// columns are deliberately absent from the statement.
func (r *CounselorRepository) Update(ctx context.Context, counselor *models.Counselor) error {
	counselor.UpdatedAt = time.Now().UTC()
	const query = `UPDATE counselors SET name = :name, email = :email, phone = :phone, specialization = :specialization,
experience_years = :experience_years, education = :education, certification = :certification, bio = :bio,
profile_image = :profile_image, is_online = :is_online, is_active = :is_active, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, counselor); err != nil {
		return fmt.Errorf("update counselor: %w", err)
	}
	return nil
}

// ToggleActive flips the is_active flag and returns the new value.
func (r *CounselorRepository) ToggleActive(ctx context.Context, id string) (bool, error) {
	const query = `UPDATE counselors SET is_active = NOT is_active, updated_at = $2 WHERE id = $1 RETURNING is_active`
	var active bool
	if err := r.db.GetContext(ctx, &active, query, id, time.Now().UTC()); err != nil {
		return false, err
	}
	return active, nil
}

// CountReviews returns the number of reviews referencing the counselor.
func (r *CounselorRepository) CountReviews(ctx context.Context, id string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM reviews WHERE counselor_id = $1", id); err != nil {
		return 0, fmt.Errorf("count counselor reviews: %w", err)
	}
	return count, nil
}

// Delete removes a counselor profile.
func (r *CounselorRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM counselors WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete counselor: %w", err)
	}
	return nil
}
