package models

import "time"

// ConsultationType enumerates the kinds of counseling offered.
type ConsultationType string

const (
	ConsultationIndividual ConsultationType = "individual"
	ConsultationCouple     ConsultationType = "couple"
	ConsultationFamily     ConsultationType = "family"
	ConsultationYouth      ConsultationType = "youth"
	ConsultationTrauma     ConsultationType = "trauma"
)

// ValidConsultationType reports whether t is a known consultation type.
func ValidConsultationType(t ConsultationType) bool {
	switch t {
	case ConsultationIndividual, ConsultationCouple, ConsultationFamily, ConsultationYouth, ConsultationTrauma:
		return true
	}
	return false
}

// ConsultationStatus is the lifecycle state of a consultation request.
// Transitions are admin-driven; only membership is validated.
type ConsultationStatus string

const (
	StatusPending   ConsultationStatus = "pending"
	StatusConfirmed ConsultationStatus = "confirmed"
	StatusCompleted ConsultationStatus = "completed"
	StatusCancelled ConsultationStatus = "cancelled"
)

// ValidConsultationStatus reports whether s is a known status.
func ValidConsultationStatus(s ConsultationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ConsultationMethod is the delivery channel for a session.
type ConsultationMethod string

const (
	MethodOnline  ConsultationMethod = "online"
	MethodOffline ConsultationMethod = "offline"
)

// ValidConsultationMethod reports whether m is a known method.
func ValidConsultationMethod(m ConsultationMethod) bool {
	return m == MethodOnline || m == MethodOffline
}

// UrgencyLevel flags how quickly a request should be triaged.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyUrgent UrgencyLevel = "urgent"
)

// ValidUrgencyLevel reports whether u is a known urgency level.
func ValidUrgencyLevel(u UrgencyLevel) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Consultation is a client's request to be matched with a counselor.
type Consultation struct {
	ID             string             `db:"id" json:"id"`
	CounselorID    string             `db:"counselor_id" json:"counselor_id"`
	ContactName    string             `db:"contact_name" json:"contact_name"`
	ContactPhone   string             `db:"contact_phone" json:"contact_phone"`
	ContactEmail   *string            `db:"contact_email" json:"contact_email,omitempty"`
	Type           ConsultationType   `db:"consultation_type" json:"consultation_type"`
	Urgency        UrgencyLevel       `db:"urgency" json:"urgency"`
	Method         ConsultationMethod `db:"method" json:"method"`
	PreferredDate  time.Time          `db:"preferred_date" json:"preferred_date"`
	PreferredTime  string             `db:"preferred_time" json:"preferred_time"`
	Description    string             `db:"description" json:"description"`
	Notes          *string            `db:"notes" json:"notes,omitempty"`
	IsConfidential bool               `db:"is_confidential" json:"is_confidential"`
	Status         ConsultationStatus `db:"status" json:"status"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at" json:"updated_at"`
}

// ConsultationFilter captures filtering options for listing consultations.
type ConsultationFilter struct {
	Contact   string
	Status    *ConsultationStatus
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}
