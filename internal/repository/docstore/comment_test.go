package docstore

import (
	"context"
	"testing"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepo_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")
	postUID := createTestPost(t, repo, "alice", "Commented", nil)

	first, err := repo.Comment.Create(ctx, model.Comment{
		PostUID: postUID,
		Name:    "bob",
		Email:   "bob@example.com",
		Comment: "first!",
	})
	require.NoError(t, err)
	require.Len(t, first, UID_LENGTH)

	second, err := repo.Comment.Create(ctx, model.Comment{
		PostUID: postUID,
		Name:    "carol (Visitor)",
		Comment: "second",
	})
	require.NoError(t, err)

	comments, err := repo.Comment.FindPostComments(ctx, postUID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first, comments[0].CommentUID, "oldest first")
	assert.Equal(t, second, comments[1].CommentUID)
	assert.Equal(t, "bob", comments[0].Name)
	assert.False(t, comments[0].CreatedAt.IsZero())

	comments, err = repo.Comment.FindPostComments(ctx, "otherpost")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentRepo_Count(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")
	postUID := createTestPost(t, repo, "alice", "Commented", nil)

	for i := 0; i < 3; i++ {
		_, err := repo.Comment.Create(ctx, model.Comment{PostUID: postUID, Name: "bob", Comment: "hi"})
		require.NoError(t, err)
	}

	n, err := repo.Comment.CountPostComments(ctx, postUID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.Comment.CountPostComments(ctx, "otherpost")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCommentRepo_DeleteByPostUID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")
	postUID := createTestPost(t, repo, "alice", "Commented", nil)
	other := createTestPost(t, repo, "alice", "Untouched", nil)

	for i := 0; i < 2; i++ {
		_, err := repo.Comment.Create(ctx, model.Comment{PostUID: postUID, Name: "bob", Comment: "hi"})
		require.NoError(t, err)
	}
	_, err := repo.Comment.Create(ctx, model.Comment{PostUID: other, Name: "bob", Comment: "hi"})
	require.NoError(t, err)

	deleted, err := repo.Comment.DeleteByPostUID(ctx, postUID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	n, err := repo.Comment.CountPostComments(ctx, postUID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Comment.CountPostComments(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCommentAuthor_DisplayName(t *testing.T) {
	registered := model.RegisteredCommenter("alice", "alice@example.com")
	assert.Equal(t, "alice", registered.DisplayName())

	visitor := model.VisitorCommenter("dave", "")
	assert.Equal(t, "dave (Visitor)", visitor.DisplayName())
}
