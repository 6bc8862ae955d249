package models

import "time"

// Counselor is a service provider profile. Rating and TotalReviews are
// derived from the review rows referencing the counselor and are never
// written by profile updates.
type Counselor struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Email           *string   `db:"email" json:"email,omitempty"`
	Phone           *string   `db:"phone" json:"phone,omitempty"`
	Specialization  string    `db:"specialization" json:"specialization"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	Education       string    `db:"education" json:"education"`
	Certification   *string   `db:"certification" json:"certification,omitempty"`
	Bio             string    `db:"bio" json:"bio"`
	ProfileImage    *string   `db:"profile_image" json:"profile_image,omitempty"`
	IsOnline        bool      `db:"is_online" json:"is_online"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	Rating          float64   `db:"rating" json:"rating"`
	TotalReviews    int       `db:"total_reviews" json:"total_reviews"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// CounselorFilter captures filtering options for listing counselors.
type CounselorFilter struct {
	Active *bool
	Online *bool
	Limit  int
	Offset int
}
