package docstore

import (
	"context"
	"testing"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	creds, err := repo.User.FindCreds(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", creds.Username)
	assert.NotEmpty(t, creds.Password)

	creds, err = repo.User.FindCredsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", creds.Email)

	info, err := repo.User.FindInfo(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice's blog", info.Blogname)
	assert.Empty(t, info.Tags)

	about, err := repo.User.FindAbout(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", about.Username)

	_, err = repo.User.FindCreds(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.User.FindCredsByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.User.FindInfo(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.User.FindAbout(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Exists(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	exists, err := repo.User.EmailExists(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.User.EmailExists(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.User.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.User.UsernameExists(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepo_FeatureUsernames(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")
	createTestUser(t, repo, "bob")
	createTestUser(t, repo, "carol")

	err := repo.User.UpdateSettings(ctx, "alice", model.UserSettingsUpdate{
		Blogname:       "alice's blog",
		GalleryEnabled: true,
	})
	require.NoError(t, err)
	err = repo.User.UpdateSettings(ctx, "bob", model.UserSettingsUpdate{
		Blogname:         "bob's blog",
		ChangelogEnabled: true,
	})
	require.NoError(t, err)

	all, err := repo.User.FindAllUsernames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob", "carol"}, all)

	gallery, err := repo.User.FindGalleryEnabledUsernames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, gallery)

	changelog, err := repo.User.FindChangelogEnabledUsernames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, changelog)
}

func TestUserRepo_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	err := repo.User.UpdateSettings(ctx, "alice", model.UserSettingsUpdate{
		Blogname:         "renamed",
		CoverURL:         "https://cdn.example.com/cover.png",
		GalleryEnabled:   true,
		ChangelogEnabled: true,
	})
	require.NoError(t, err)

	info, err := repo.User.FindInfo(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "renamed", info.Blogname)
	assert.Equal(t, "https://cdn.example.com/cover.png", info.CoverURL)
	assert.True(t, info.GalleryEnabled)
	assert.True(t, info.ChangelogEnabled)
	assert.Equal(t, "alice@example.com", info.Email, "settings update leaves other fields alone")
}

func TestUserRepo_UpdateAbout(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	err := repo.User.UpdateAbout(ctx, "alice", model.UserAboutUpdate{
		ProfileImgURL: "https://cdn.example.com/me.png",
		ShortBio:      "writes about Go",
		About:         "# Hello\n\nLong form about text.",
	})
	require.NoError(t, err)

	info, err := repo.User.FindInfo(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/me.png", info.ProfileImgURL)
	assert.Equal(t, "writes about Go", info.ShortBio)

	about, err := repo.User.FindAbout(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n\nLong form about text.", about.About)
}

func TestUserRepo_UpdateSocialLinks(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	links := model.SocialLinks{
		{URL: "https://github.com/alice", Platform: "github"},
		{URL: "https://alice.example.com", Platform: "website"},
	}
	require.NoError(t, repo.User.UpdateSocialLinks(ctx, "alice", links))

	info, err := repo.User.FindInfo(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, links, info.SocialLinks, "slot order and empty slots survive the round trip")
	assert.Empty(t, info.SocialLinks[2].URL)
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	require.NoError(t, repo.User.UpdatePassword(ctx, "alice", "$2a$12$newhash"))

	creds, err := repo.User.FindCredsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "$2a$12$newhash", creds.Password)
}

func TestUserRepo_IncrTotalViews(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.User.IncrTotalViews(ctx, "alice"))
	}

	info, err := repo.User.FindInfo(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.TotalViews)

	// No upsert: incrementing a missing user must not create one.
	require.NoError(t, repo.User.IncrTotalViews(ctx, "ghost"))
	_, err = repo.User.FindInfo(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")
	createTestUser(t, repo, "bob")

	require.NoError(t, repo.User.Delete(ctx, "alice"))

	_, err := repo.User.FindCreds(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.User.FindCredsByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.User.FindInfo(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.User.FindAbout(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.User.FindInfo(ctx, "bob")
	require.NoError(t, err)
}
