package docstore

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/storage"
)

const MAX_PAGE_SIZE = 20

func maxPageSize(pageSize *int) {
	if *pageSize > MAX_PAGE_SIZE {
		*pageSize = MAX_PAGE_SIZE
	}
}

// Archive filter options for listing queries.
const (
	ArchiveExclude = "exclude"
	ArchiveInclude = "include"
	ArchiveOnly    = "only"
)

type User interface {
	Create(ctx context.Context, creds model.UserCreds, info model.UserInfo, about model.UserAbout) error
	FindCreds(ctx context.Context, email string) (*model.UserCreds, error)
	FindCredsByUsername(ctx context.Context, username string) (*model.UserCreds, error)
	FindInfo(ctx context.Context, username string) (*model.UserInfo, error)
	FindAbout(ctx context.Context, username string) (*model.UserAbout, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	FindAllUsernames(ctx context.Context) ([]string, error)
	FindGalleryEnabledUsernames(ctx context.Context) ([]string, error)
	FindChangelogEnabledUsernames(ctx context.Context) ([]string, error)
	UpdateSettings(ctx context.Context, username string, settings model.UserSettingsUpdate) error
	UpdateAbout(ctx context.Context, username string, about model.UserAboutUpdate) error
	UpdateSocialLinks(ctx context.Context, username string, links model.SocialLinks) error
	UpdatePassword(ctx context.Context, username string, passwordHash string) error
	IncrTotalViews(ctx context.Context, username string) error
	Delete(ctx context.Context, username string) error
}

type Post interface {
	Create(ctx context.Context, info model.PostInfo, content string) (string, error)
	FindInfo(ctx context.Context, postUID string) (*model.PostInfo, error)
	FindFull(ctx context.Context, postUID string) (*model.FullPost, error)
	FindAll(ctx context.Context, includeArchive bool) ([]*model.PostInfo, error)
	FindAuthorPosts(ctx context.Context, author string, archive string) ([]*model.PostInfo, error)
	FindAuthorPostsPaginated(ctx context.Context, author string, page int, pageSize int) ([]*model.PostInfo, *model.Pagination, error)
	FindFeaturedPosts(ctx context.Context, author string) ([]*model.PostInfo, error)
	Update(ctx context.Context, postUID string, update model.PostUpdate) error
	SetArchived(ctx context.Context, postUID string, archived bool) error
	SetFeatured(ctx context.Context, postUID string, featured bool) error
	IncrViews(ctx context.Context, postUID string) error
	IncrReads(ctx context.Context, postUID string) error
	Delete(ctx context.Context, postUID string) error
	FindAuthorPostUIDs(ctx context.Context, author string) ([]string, error)
	DeleteByAuthor(ctx context.Context, author string) error
}

type Project interface {
	Create(ctx context.Context, info model.ProjectInfo, content string) (string, error)
	FindInfo(ctx context.Context, projectUID string) (*model.ProjectInfo, error)
	FindFull(ctx context.Context, projectUID string) (*model.FullProject, error)
	FindAll(ctx context.Context, includeArchive bool) ([]*model.ProjectInfo, error)
	FindAuthorProjects(ctx context.Context, author string, archive string) ([]*model.ProjectInfo, error)
	FindAuthorProjectsPaginated(ctx context.Context, author string, page int, pageSize int) ([]*model.ProjectInfo, *model.Pagination, error)
	Update(ctx context.Context, projectUID string, update model.ProjectUpdate) error
	SetArchived(ctx context.Context, projectUID string, archived bool) error
	IncrViews(ctx context.Context, projectUID string) error
	IncrReads(ctx context.Context, projectUID string) error
	Delete(ctx context.Context, projectUID string) error
}

type Changelog interface {
	Create(ctx context.Context, entry model.Changelog) (string, error)
	Find(ctx context.Context, changelogUID string) (*model.Changelog, error)
	FindAuthorChangelogs(ctx context.Context, author string, byDate bool) ([]*model.Changelog, error)
	FindArchivedChangelogs(ctx context.Context, author string) ([]*model.Changelog, error)
	FindAuthorChangelogsPaginated(ctx context.Context, author string, page int, pageSize int) ([]*model.Changelog, *model.Pagination, error)
	Update(ctx context.Context, changelogUID string, update model.ChangelogUpdate) error
	SetArchived(ctx context.Context, changelogUID string, archived bool) error
	Delete(ctx context.Context, changelogUID string) error
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (string, error)
	FindPostComments(ctx context.Context, postUID string) ([]*model.Comment, error)
	CountPostComments(ctx context.Context, postUID string) (int64, error)
	DeleteByPostUID(ctx context.Context, postUID string) (int64, error)
}

type DocstoreRepository struct {
	User
	Post
	Project
	Changelog
	Comment
}

func New(store *storage.Store) *DocstoreRepository {
	return &DocstoreRepository{
		User:      newUserRepo(store),
		Post:      newPostRepo(store),
		Project:   newProjectRepo(store),
		Changelog: newChangelogRepo(store),
		Comment:   newCommentRepo(store),
	}
}
