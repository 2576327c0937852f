package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPostRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	uid := createTestPost(t, repo, "alice", "First post", []string{"go", "web"})
	require.Len(t, uid, UID_LENGTH)

	info, err := repo.Post.FindInfo(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "First post", info.Title)
	assert.Equal(t, "alice", info.Author)
	assert.Equal(t, []string{"go", "web"}, info.Tags)
	assert.False(t, info.Archived)
	assert.False(t, info.Featured)
	assert.Zero(t, info.Views)
	assert.Zero(t, info.Reads)
	assert.False(t, info.CreatedAt.IsZero())
	assert.False(t, info.LastUpdated.IsZero())

	full, err := repo.Post.FindFull(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, uid, full.Info.PostUID)
	assert.Equal(t, "# First post\n\nbody", full.Content)

	_, err = repo.Post.FindInfo(ctx, "missing1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Post.FindFull(ctx, "missing1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepo_TagAccounting(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	uid := createTestPost(t, repo, "alice", "Tagged", []string{"go", "web"})
	assert.Equal(t, map[string]int{"go": 1, "web": 1}, userTags(t, repo, "alice"))

	// Editing decrements the old set and increments the new one.
	err := repo.Post.Update(ctx, uid, model.PostUpdate{
		Title:    "Tagged",
		Subtitle: "sub",
		Tags:     []string{"go", "cloud"},
		Content:  "new body",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"go": 1, "web": 0, "cloud": 1}, userTags(t, repo, "alice"))

	// Archiving releases the post's tags, restoring claims them again.
	require.NoError(t, repo.Post.SetArchived(ctx, uid, true))
	assert.Equal(t, map[string]int{"go": 0, "web": 0, "cloud": 0}, userTags(t, repo, "alice"))

	require.NoError(t, repo.Post.SetArchived(ctx, uid, false))
	assert.Equal(t, map[string]int{"go": 1, "web": 0, "cloud": 1}, userTags(t, repo, "alice"))

	// Deleting does not adjust counters.
	require.NoError(t, repo.Post.Delete(ctx, uid))
	assert.Equal(t, map[string]int{"go": 1, "web": 0, "cloud": 1}, userTags(t, repo, "alice"))

	_, err = repo.Post.FindInfo(ctx, uid)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Post.FindFull(ctx, uid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepo_Pagination(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)
	createTestUser(t, repo, "erin")

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		uid := createTestPost(t, repo, "erin", "Post", nil)
		err := store.PostInfo.SetFields(ctx, bson.M{"post_uid": uid}, bson.M{"created_at": base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
		uids = append(uids, uid)
	}

	posts, pagination, err := repo.Post.FindAuthorPostsPaginated(ctx, "erin", 1, 5)
	require.NoError(t, err)
	require.Len(t, posts, 5)
	assert.Equal(t, uids[11], posts[0].PostUID, "newest first")
	assert.Equal(t, uids[7], posts[4].PostUID)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 3, pagination.Pages)
	assert.Equal(t, int64(12), pagination.Total)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)

	posts, pagination, err = repo.Post.FindAuthorPostsPaginated(ctx, "erin", 3, 5)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, uids[1], posts[0].PostUID)
	assert.Equal(t, uids[0], posts[1].PostUID)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)

	_, _, err = repo.Post.FindAuthorPostsPaginated(ctx, "erin", 4, 5)
	assert.ErrorIs(t, err, ErrInvalidPage)
	_, _, err = repo.Post.FindAuthorPostsPaginated(ctx, "erin", 0, 5)
	assert.ErrorIs(t, err, ErrInvalidPage)

	// Archived posts drop out of the paginated listing.
	require.NoError(t, repo.Post.SetArchived(ctx, uids[11], true))
	posts, pagination, err = repo.Post.FindAuthorPostsPaginated(ctx, "erin", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, uids[10], posts[0].PostUID)
	assert.Equal(t, int64(11), pagination.Total)
}

func TestPostRepo_EmptyPageIsValid(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	posts, pagination, err := repo.Post.FindAuthorPostsPaginated(ctx, "nobody", 1, 5)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, 1, pagination.Pages)
	assert.Zero(t, pagination.Total)
	assert.False(t, pagination.HasNext)

	_, _, err = repo.Post.FindAuthorPostsPaginated(ctx, "nobody", 2, 5)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestPostRepo_PageSizeIsCapped(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "erin")

	for i := 0; i < MAX_PAGE_SIZE+5; i++ {
		createTestPost(t, repo, "erin", "Post", nil)
	}

	posts, pagination, err := repo.Post.FindAuthorPostsPaginated(ctx, "erin", 1, 100)
	require.NoError(t, err)
	assert.Len(t, posts, MAX_PAGE_SIZE)
	assert.Equal(t, MAX_PAGE_SIZE, pagination.PageSize)
	assert.Equal(t, 2, pagination.Pages)
}

func TestPostRepo_ArchiveFilters(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	live1 := createTestPost(t, repo, "alice", "Live 1", nil)
	live2 := createTestPost(t, repo, "alice", "Live 2", nil)
	archived := createTestPost(t, repo, "alice", "Archived", nil)
	require.NoError(t, repo.Post.SetArchived(ctx, archived, true))
	_ = live1
	_ = live2

	posts, err := repo.Post.FindAuthorPosts(ctx, "alice", ArchiveExclude)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = repo.Post.FindAuthorPosts(ctx, "alice", ArchiveOnly)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, archived, posts[0].PostUID)

	posts, err = repo.Post.FindAuthorPosts(ctx, "alice", ArchiveInclude)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	all, err := repo.Post.FindAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	all, err = repo.Post.FindAll(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPostRepo_FeaturedPosts(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	featured := createTestPost(t, repo, "alice", "Featured", nil)
	plain := createTestPost(t, repo, "alice", "Plain", nil)
	gone := createTestPost(t, repo, "alice", "Featured but archived", nil)

	require.NoError(t, repo.Post.SetFeatured(ctx, featured, true))
	require.NoError(t, repo.Post.SetFeatured(ctx, gone, true))
	require.NoError(t, repo.Post.SetArchived(ctx, gone, true))
	_ = plain

	posts, err := repo.Post.FindFeaturedPosts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, featured, posts[0].PostUID)
}

func TestPostRepo_Counters(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	uid := createTestPost(t, repo, "alice", "Counted", nil)
	require.NoError(t, repo.Post.IncrViews(ctx, uid))
	require.NoError(t, repo.Post.IncrViews(ctx, uid))
	require.NoError(t, repo.Post.IncrReads(ctx, uid))

	info, err := repo.Post.FindInfo(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Views)
	assert.Equal(t, int64(1), info.Reads)
}

func TestPostRepo_DeleteByAuthor(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")
	createTestUser(t, repo, "bob")

	a1 := createTestPost(t, repo, "alice", "A1", nil)
	a2 := createTestPost(t, repo, "alice", "A2", nil)
	require.NoError(t, repo.Post.SetArchived(ctx, a2, true))
	b1 := createTestPost(t, repo, "bob", "B1", nil)

	// Archived posts are part of the author's UID set.
	uids, err := repo.Post.FindAuthorPostUIDs(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a1, a2}, uids)

	require.NoError(t, repo.Post.DeleteByAuthor(ctx, "alice"))

	_, err = repo.Post.FindInfo(ctx, a1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Post.FindFull(ctx, a2)
	assert.ErrorIs(t, err, ErrNotFound)

	full, err := repo.Post.FindFull(ctx, b1)
	require.NoError(t, err)
	assert.Equal(t, "bob", full.Info.Author)
}
