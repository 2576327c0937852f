package service

import (
	"context"
	"errors"
	"testing"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CaptchaGate(t *testing.T) {
	ctx := context.Background()

	t.Run("failed check drops the comment silently", func(t *testing.T) {
		env := newTestEnvWithCaptcha(t, &fakeVerifier{passed: false})
		env.signUp(t, "alice")
		uid := env.createPost(t, "alice", "Post", "go")

		commentUID, err := env.services.Comment.Create(ctx, uid, model.VisitorCommenter("dave", ""), dto.CreateCommentRequest{
			Comment:      "spam",
			CaptchaToken: "token",
		})
		require.NoError(t, err)
		assert.Empty(t, commentUID)

		comments, err := env.services.Comment.GetPostComments(ctx, uid)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("verifier error drops the comment silently", func(t *testing.T) {
		env := newTestEnvWithCaptcha(t, &fakeVerifier{err: errors.New("siteverify unreachable")})
		env.signUp(t, "alice")
		uid := env.createPost(t, "alice", "Post", "go")

		commentUID, err := env.services.Comment.Create(ctx, uid, model.VisitorCommenter("dave", ""), dto.CreateCommentRequest{
			Comment:      "hello",
			CaptchaToken: "token",
		})
		require.NoError(t, err)
		assert.Empty(t, commentUID)
	})
}

func TestCommentService_AuthorVariants(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signUp(t, "alice")
	env.signUp(t, "bob")
	uid := env.createPost(t, "alice", "Post", "go")

	_, err := env.services.Comment.Create(ctx, uid, model.VisitorCommenter("dave", "dave@example.com"), dto.CreateCommentRequest{
		Comment:      "first",
		CaptchaToken: "token",
	})
	require.NoError(t, err)

	_, err = env.services.Comment.Create(ctx, uid, model.RegisteredCommenter("bob", "bob@example.com"), dto.CreateCommentRequest{
		Comment:      "second",
		CaptchaToken: "token",
	})
	require.NoError(t, err)

	comments, err := env.services.Comment.GetPostComments(ctx, uid)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	// Oldest first; visitors get the suffix, registered users do not.
	assert.Equal(t, "dave (Visitor)", comments[0].Name)
	assert.Equal(t, "first", comments[0].Comment)
	assert.Equal(t, "bob", comments[1].Name)
	assert.Equal(t, "second", comments[1].Comment)
}
