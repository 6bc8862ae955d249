package models

import "time"

// Review is a rating plus free text submitted about a counselor and/or a
// specific consultation, gated by moderation before public exposure.
type Review struct {
	ID             string    `db:"id" json:"id"`
	CounselorID    *string   `db:"counselor_id" json:"counselor_id,omitempty"`
	ConsultationID *string   `db:"consultation_id" json:"consultation_id,omitempty"`
	AuthorName     string    `db:"author_name" json:"author_name"`
	Rating         int       `db:"rating" json:"rating"`
	Title          string    `db:"title" json:"title"`
	Content        string    `db:"content" json:"content"`
	IsAnonymous    bool      `db:"is_anonymous" json:"is_anonymous"`
	IsApproved     bool      `db:"is_approved" json:"is_approved"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	ImageURL       *string   `db:"image_url" json:"image_url,omitempty"`
	ViewCount      int       `db:"view_count" json:"view_count"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// DisplayName masks the author when the review was submitted anonymously.
func (r Review) DisplayName() string {
	if r.IsAnonymous || r.AuthorName == "" {
		return "anonymous"
	}
	runes := []rune(r.AuthorName)
	if len(runes) < 2 {
		return r.AuthorName + "**"
	}
	return string(runes[0]) + "**"
}

// ReviewFilter captures filtering options for listing reviews.
type ReviewFilter struct {
	CounselorID *string
	Approved    *bool
	Active      *bool
	Limit       int
	Offset      int
}
