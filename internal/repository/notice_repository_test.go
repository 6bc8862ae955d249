package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/healing-center/counseling-api/internal/models"
)

func noticeRows(notices ...models.Notice) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "author_name", "title", "content", "notice_type", "status", "is_pinned", "is_active", "attachment_url", "view_count", "created_at", "updated_at"})
	for _, n := range notices {
		rows.AddRow(n.ID, n.AuthorName, n.Title, n.Content, n.Type, n.Status, n.IsPinned, n.IsActive, n.AttachmentURL, n.ViewCount, n.CreatedAt, n.UpdatedAt)
	}
	return rows
}

func TestNoticeRepositoryCreateAndGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewNoticeRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notices")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	notice := &models.Notice{
		AuthorName: "admin",
		Title:      "holiday hours",
		Content:    "closed on the 15th",
		Type:       models.NoticeGeneral,
		Status:     models.NoticePublished,
		IsActive:   true,
	}
	require.NoError(t, repo.Create(context.Background(), notice))
	require.NotEmpty(t, notice.ID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, author_name, title")).
		WithArgs(notice.ID).
		WillReturnRows(noticeRows(*notice))

	found, err := repo.FindByID(context.Background(), notice.ID)
	require.NoError(t, err)
	require.Equal(t, "holiday hours", found.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoticeRepositoryListPublishedOnly(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewNoticeRepository(db)
	row := models.Notice{
		ID:         "notice-1",
		AuthorName: "admin",
		Title:      "published",
		Content:    "body",
		Type:       models.NoticeImportant,
		Status:     models.NoticePublished,
		IsPinned:   true,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("status = $1 AND is_active = TRUE")).
		WithArgs(string(models.NoticePublished)).
		WillReturnRows(noticeRows(row))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notices")).
		WithArgs(string(models.NoticePublished)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	list, total, err := repo.List(context.Background(), models.NoticeFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 1, total)
	require.Equal(t, models.NoticePublished, list[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoticeRepositoryListPinnedFirstOrdering(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewNoticeRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY is_pinned DESC, created_at DESC")).
		WillReturnRows(noticeRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notices")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	list, total, err := repo.List(context.Background(), models.NoticeFilter{})
	require.NoError(t, err)
	require.Empty(t, list)
	require.Zero(t, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoticeRepositoryIncrementViewCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewNoticeRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE notices SET view_count = view_count + 1")).
		WithArgs("notice-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementViewCount(context.Background(), "notice-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
