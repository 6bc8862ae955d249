package models

import "time"

// NoticeType categorizes an announcement for badge rendering and filtering.
type NoticeType string

const (
	NoticeGeneral     NoticeType = "general"
	NoticeImportant   NoticeType = "important"
	NoticeEvent       NoticeType = "event"
	NoticeMaintenance NoticeType = "maintenance"
)

// ValidNoticeType reports whether t is a known notice type.
func ValidNoticeType(t NoticeType) bool {
	switch t {
	case NoticeGeneral, NoticeImportant, NoticeEvent, NoticeMaintenance:
		return true
	}
	return false
}

// NoticeStatus is the single source of truth for publication state.
type NoticeStatus string

const (
	NoticeDraft     NoticeStatus = "draft"
	NoticePublished NoticeStatus = "published"
	NoticeArchived  NoticeStatus = "archived"
)

// ValidNoticeStatus reports whether s is a known notice status.
func ValidNoticeStatus(s NoticeStatus) bool {
	switch s {
	case NoticeDraft, NoticePublished, NoticeArchived:
		return true
	}
	return false
}

// Notice is an administrator-authored announcement.
type Notice struct {
	ID            string       `db:"id" json:"id"`
	AuthorName    string       `db:"author_name" json:"author_name"`
	Title         string       `db:"title" json:"title"`
	Content       string       `db:"content" json:"content"`
	Type          NoticeType   `db:"notice_type" json:"notice_type"`
	Status        NoticeStatus `db:"status" json:"status"`
	IsPinned      bool         `db:"is_pinned" json:"is_pinned"`
	IsActive      bool         `db:"is_active" json:"is_active"`
	AttachmentURL *string      `db:"attachment_url" json:"attachment_url,omitempty"`
	ViewCount     int          `db:"view_count" json:"view_count"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updated_at"`
}

// NoticeFilter captures filtering options for listing notices.
type NoticeFilter struct {
	Type          *NoticeType
	Status        *NoticeStatus
	PublishedOnly bool
	Limit         int
	Offset        int
}
