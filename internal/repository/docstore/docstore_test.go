package docstore

import (
	"context"
	"testing"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/storage"
	"github.com/BloggingApp/blog-service/internal/storage/memstore"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*DocstoreRepository, *storage.Store) {
	t.Helper()
	store := memstore.New()
	return New(store), store
}

func createTestUser(t *testing.T, repo *DocstoreRepository, username string) {
	t.Helper()
	err := repo.User.Create(context.Background(),
		model.UserCreds{Username: username, Email: username + "@example.com", Password: "$2a$12$hash"},
		model.UserInfo{Username: username, Email: username + "@example.com", Blogname: username + "'s blog", Tags: map[string]int{}},
		model.UserAbout{Username: username},
	)
	require.NoError(t, err)
}

func createTestPost(t *testing.T, repo *DocstoreRepository, author string, title string, tags []string) string {
	t.Helper()
	uid, err := repo.Post.Create(context.Background(), model.PostInfo{
		Title:    title,
		Subtitle: "sub",
		Author:   author,
		Tags:     tags,
	}, "# "+title+"\n\nbody")
	require.NoError(t, err)
	return uid
}

func userTags(t *testing.T, repo *DocstoreRepository, username string) map[string]int {
	t.Helper()
	info, err := repo.User.FindInfo(context.Background(), username)
	require.NoError(t, err)
	return info.Tags
}
