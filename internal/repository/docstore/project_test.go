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

func createTestProject(t *testing.T, repo *DocstoreRepository, author, title string, tags []string) string {
	t.Helper()

	uid, err := repo.Project.Create(context.Background(), model.ProjectInfo{
		Author:           author,
		Title:            title,
		ShortDescription: "short",
		Tags:             tags,
	}, "# "+title+"\n\nbody")
	require.NoError(t, err)
	return uid
}

func TestProjectRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	uid := createTestProject(t, repo, "alice", "Orrery", []string{"hardware"})
	require.Len(t, uid, UID_LENGTH)

	info, err := repo.Project.FindInfo(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "Orrery", info.Title)
	assert.Equal(t, "alice", info.Author)
	assert.False(t, info.Archived)
	assert.Zero(t, info.Views)
	assert.Zero(t, info.Reads)

	full, err := repo.Project.FindFull(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, uid, full.Info.ProjectUID)
	assert.Equal(t, "# Orrery\n\nbody", full.Content)

	_, err = repo.Project.FindInfo(ctx, "missing1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_TagsLeaveCountersAlone(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	uid := createTestProject(t, repo, "alice", "Orrery", []string{"hardware", "cad"})
	assert.Empty(t, userTags(t, repo, "alice"))

	require.NoError(t, repo.Project.SetArchived(ctx, uid, true))
	assert.Empty(t, userTags(t, repo, "alice"))
}

func TestProjectRepo_ImagesRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	uid := createTestProject(t, repo, "alice", "Orrery", nil)

	images := model.ProjectImages{
		{URL: "https://cdn.example.com/1.png", Caption: "assembled"},
		{URL: "https://cdn.example.com/2.png", Caption: "gears"},
	}
	err := repo.Project.Update(ctx, uid, model.ProjectUpdate{
		Title:            "Orrery",
		ShortDescription: "short",
		Images:           images,
		Content:          "updated",
	})
	require.NoError(t, err)

	info, err := repo.Project.FindInfo(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, images, info.Images)
	assert.Empty(t, info.Images[4].URL)

	full, err := repo.Project.FindFull(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "updated", full.Content)

	err = repo.Project.Update(ctx, "missing1", model.ProjectUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_Pagination(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)
	createTestUser(t, repo, "erin")

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	uids := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		uid := createTestProject(t, repo, "erin", "Project", nil)
		err := store.ProjectInfo.SetFields(ctx, bson.M{"project_uid": uid}, bson.M{"created_at": base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
		uids = append(uids, uid)
	}

	projects, pagination, err := repo.Project.FindAuthorProjectsPaginated(ctx, "erin", 1, 5)
	require.NoError(t, err)
	require.Len(t, projects, 5)
	assert.Equal(t, uids[6], projects[0].ProjectUID, "newest first")
	assert.Equal(t, 2, pagination.Pages)
	assert.True(t, pagination.HasNext)

	projects, _, err = repo.Project.FindAuthorProjectsPaginated(ctx, "erin", 2, 5)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	_, _, err = repo.Project.FindAuthorProjectsPaginated(ctx, "erin", 3, 5)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestProjectRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	createTestUser(t, repo, "alice")

	uid := createTestProject(t, repo, "alice", "Orrery", nil)
	require.NoError(t, repo.Project.Delete(ctx, uid))

	_, err := repo.Project.FindInfo(ctx, uid)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Project.FindFull(ctx, uid)
	assert.ErrorIs(t, err, ErrNotFound)
}
