package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestChangelog(t *testing.T, repo *DocstoreRepository, author, title string, date time.Time) string {
	t.Helper()

	uid, err := repo.Changelog.Create(context.Background(), model.Changelog{
		Author:   author,
		Title:    title,
		Date:     date,
		Category: "Career",
		Content:  "changed things",
	})
	require.NoError(t, err)
	return uid
}

func TestChangelogRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	uid := createTestChangelog(t, repo, "alice", "Joined the circus", date)
	require.Len(t, uid, UID_LENGTH)

	entry, err := repo.Changelog.Find(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "Joined the circus", entry.Title)
	assert.Equal(t, "Career", entry.Category)
	assert.True(t, entry.Date.Equal(date))
	assert.False(t, entry.Archived)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.False(t, entry.LastUpdated.IsZero())

	_, err = repo.Changelog.Find(ctx, "missing1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangelogRepo_SortByDate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	// Insertion order deliberately disagrees with the date order.
	mid := createTestChangelog(t, repo, "alice", "Mid", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	newest := createTestChangelog(t, repo, "alice", "Newest", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	oldest := createTestChangelog(t, repo, "alice", "Oldest", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	entries, err := repo.Changelog.FindAuthorChangelogs(ctx, "alice", true)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, newest, entries[0].ChangelogUID)
	assert.Equal(t, mid, entries[1].ChangelogUID)
	assert.Equal(t, oldest, entries[2].ChangelogUID)
}

func TestChangelogRepo_ArchiveSplit(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	live := createTestChangelog(t, repo, "alice", "Live", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	archived := createTestChangelog(t, repo, "alice", "Archived", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Changelog.SetArchived(ctx, archived, true))

	entries, err := repo.Changelog.FindAuthorChangelogs(ctx, "alice", false)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, live, entries[0].ChangelogUID)

	entries, err = repo.Changelog.FindArchivedChangelogs(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, archived, entries[0].ChangelogUID)
}

func TestChangelogRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	uid := createTestChangelog(t, repo, "alice", "Before", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	newDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	err := repo.Changelog.Update(ctx, uid, model.ChangelogUpdate{
		Title:           "After",
		Date:            newDate,
		Category:        "Personal",
		Content:         "rewritten",
		Tags:            []string{"move"},
		Link:            "https://example.com",
		LinkDescription: "details",
	})
	require.NoError(t, err)

	entry, err := repo.Changelog.Find(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "After", entry.Title)
	assert.Equal(t, "Personal", entry.Category)
	assert.True(t, entry.Date.Equal(newDate))
	assert.Equal(t, "rewritten", entry.Content)
	assert.Equal(t, []string{"move"}, entry.Tags)
	assert.Equal(t, "https://example.com", entry.Link)
	assert.Equal(t, "details", entry.LinkDescription)

	err = repo.Changelog.Update(ctx, "missing1", model.ChangelogUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangelogRepo_Pagination(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	for i := 0; i < 12; i++ {
		createTestChangelog(t, repo, "alice", "Entry", time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC))
	}

	entries, pagination, err := repo.Changelog.FindAuthorChangelogsPaginated(ctx, "alice", 1, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
	assert.Equal(t, 2, pagination.Pages)
	assert.Equal(t, int64(12), pagination.Total)
	assert.True(t, pagination.HasNext)

	entries, _, err = repo.Changelog.FindAuthorChangelogsPaginated(ctx, "alice", 2, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, _, err = repo.Changelog.FindAuthorChangelogsPaginated(ctx, "alice", 3, 10)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestChangelogRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	uid := createTestChangelog(t, repo, "alice", "Gone", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Changelog.Delete(ctx, uid))

	_, err := repo.Changelog.Find(ctx, uid)
	assert.ErrorIs(t, err, ErrNotFound)
}
