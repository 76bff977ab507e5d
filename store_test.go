package website

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testingfly/website/logger"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetResource(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	id, err := s.SaveResource(ctx, Resource{
		Title:       "A Tour of Go",
		URL:         "https://go.dev/tour",
		Description: "Interactive introduction",
		Category:    "Go",
		Position:    2,
		Published:   true,
		CreatedAt:   created,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := s.GetResource(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, Resource{
		ID:          id,
		Title:       "A Tour of Go",
		URL:         "https://go.dev/tour",
		Description: "Interactive introduction",
		Category:    "Go",
		Position:    2,
		Published:   true,
		CreatedAt:   created,
	}, got)
}

func TestSaveResourceUpdate(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.SaveResource(ctx, Resource{Title: "Old", URL: "https://old.example", Published: true})
	require.NoError(t, err)

	updatedID, err := s.SaveResource(ctx, Resource{ID: id, Title: "New", URL: "https://new.example", Category: "Web"})
	require.NoError(t, err)
	assert.Equal(t, id, updatedID)

	got, err := s.GetResource(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "Web", got.Category)
	assert.False(t, got.Published)
	assert.False(t, got.CreatedAt.IsZero(), "created_at survives updates")
}

func TestSaveResourceUpdateMissing(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.SaveResource(context.Background(), Resource{ID: 99, Title: "x", URL: "https://x.example"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetResourceNotFound(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.GetResource(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListResourcesOrderAndDrafts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	for _, r := range []Resource{
		{Title: "web-2", URL: "https://w2.example", Category: "Web", Position: 2, Published: true},
		{Title: "go-1", URL: "https://g1.example", Category: "go", Position: 1, Published: true},
		{Title: "web-1", URL: "https://w1.example", Category: "Web", Position: 1, Published: true},
		{Title: "draft", URL: "https://d.example", Category: "Go", Position: 0, Published: false},
	} {
		_, err := s.SaveResource(ctx, r)
		require.NoError(t, err)
	}

	published, err := s.ListResources(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"go-1", "web-1", "web-2"}, titles(published))

	all, err := s.ListAllResources(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "draft", all[0].Title)
}

func TestDeleteResource(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.SaveResource(ctx, Resource{Title: "gone", URL: "https://gone.example", Published: true})
	require.NoError(t, err)

	require.NoError(t, s.DeleteResource(ctx, id))
	_, err = s.GetResource(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteResource(ctx, id), ErrNotFound)
}

func TestNewStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	s, err := NewStore(path, logger.Nop())
	require.NoError(t, err)
	_, err = s.SaveResource(context.Background(), Resource{Title: "kept", URL: "https://k.example", Published: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStore(path, logger.Nop())
	require.NoError(t, err)
	defer s.Close()
	got, err := s.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, titles(got))
}

func titles(rs []Resource) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Title)
	}
	return out
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Store{db: db}, mock
}

func TestListResourcesQuery(t *testing.T) {
	s, mock := newMockStore(t)
	rows := sqlmock.NewRows([]string{"id", "title", "url", "description", "category", "position", "published", "created_at"}).
		AddRow(1, "Tour", "https://go.dev/tour", "", "Go", 0, 1, "2024-01-15T10:00:00Z").
		AddRow(2, "Bad date", "https://x.example", "", "Go", 1, 1, "yesterday")
	mock.ExpectQuery(`SELECT id, title, url, description, category, position, published, created_at FROM resources WHERE published = \? ORDER BY category COLLATE NOCASE, position, id`).
		WithArgs(1).
		WillReturnRows(rows)

	got, err := s.ListResources(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), got[0].CreatedAt)
	assert.True(t, got[1].CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListResourcesQueryError(t *testing.T) {
	s, mock := newMockStore(t)
	boom := errors.New("disk I/O error")
	mock.ExpectQuery(`SELECT (.+) FROM resources`).WillReturnError(boom)

	_, err := s.ListResources(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteResourceExecError(t *testing.T) {
	s, mock := newMockStore(t)
	boom := errors.New("database is locked")
	mock.ExpectExec(`DELETE FROM resources WHERE id = \?`).WithArgs(int64(3)).WillReturnError(boom)

	err := s.DeleteResource(context.Background(), 3)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
