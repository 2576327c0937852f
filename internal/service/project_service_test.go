package service

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/repository/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Ownership(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signUp(t, "alice")
	env.signUp(t, "bob")

	uid := env.createProject(t, "alice", "Mine", "go")

	_, err := env.services.Project.GetFull(ctx, "bob", uid)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
	err = env.services.Project.Edit(ctx, "bob", uid, dto.EditProjectRequest{
		Title:            "Stolen",
		ShortDescription: "short",
		Tags:             "go",
		Content:          "body",
	})
	assert.ErrorIs(t, err, docstore.ErrNotFound)
	err = env.services.Project.Delete(ctx, "bob", uid)
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	info, err := env.repos.Docstore.Project.FindInfo(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "Mine", info.Title)
}

func TestProjectService_GetTaggedIncludesArchived(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signUp(t, "alice")

	live := env.createProject(t, "alice", "Live", "go")
	archived := env.createProject(t, "alice", "Archived", "go")
	require.NoError(t, env.services.Project.SetArchived(ctx, "alice", archived, true))

	// Unlike posts, archived projects keep showing on tag pages.
	projects, err := env.services.Project.GetTagged(ctx, "alice", "go")
	require.NoError(t, err)
	require.Len(t, projects, 2)

	uids := []string{projects[0].ProjectUID, projects[1].ProjectUID}
	assert.Contains(t, uids, live)
	assert.Contains(t, uids, archived)
}

func TestProjectService_ViewIncrementSuppressesSelf(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signUp(t, "alice")
	uid := env.createProject(t, "alice", "Counted", "go")

	env.services.Project.ViewIncrement("alice", uid, "alice")
	time.Sleep(100 * time.Millisecond)
	info, err := env.repos.Docstore.Project.FindInfo(ctx, uid)
	require.NoError(t, err)
	assert.Zero(t, info.Views)

	env.services.Project.ViewIncrement("alice", uid, "bob")
	require.Eventually(t, func() bool {
		info, err := env.repos.Docstore.Project.FindInfo(ctx, uid)
		return err == nil && info.Views == 1
	}, time.Second, 10*time.Millisecond)
}
