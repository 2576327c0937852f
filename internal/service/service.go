package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/BloggingApp/blog-service/internal/captcha"
	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"go.uber.org/zap"
)

const (
	BLOG_POSTS_PER_PAGE           = 5
	GALLERY_PROJECTS_PER_PAGE     = 12
	BACKSTAGE_POSTS_PER_PAGE      = 20
	BACKSTAGE_PROJECTS_PER_PAGE   = 10
	BACKSTAGE_CHANGELOGS_PER_PAGE = 10
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func validateSlug(slug string) error {
	if slug == "" {
		return nil
	}
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	return nil
}

// processTags splits a comma separated tag string and trims each entry.
// Empty entries are dropped; the result is never nil.
func processTags(tags string) []string {
	processed := []string{}
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		processed = append(processed, tag)
	}
	return processed
}

// invalidateCache drops every cache key matching pattern. Failures are
// logged and swallowed; entries expire on their own anyway.
func invalidateCache(ctx context.Context, logger *zap.Logger, rdb redisrepo.Default, pattern string) {
	keys, err := rdb.Keys(ctx, pattern).Result()
	if err != nil {
		logger.Sugar().Errorf("failed to scan cache keys(%s): %s", pattern, err.Error())
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Sugar().Errorf("failed to delete cache keys(%s): %s", pattern, err.Error())
	}
}

type User interface {
	SignUp(ctx context.Context, input dto.SignUpRequest) (*model.AuthUser, error)
	SignIn(ctx context.Context, input dto.SignInRequest) (string, error)
	IsEmailUnique(ctx context.Context, email string) (bool, error)
	IsUsernameUnique(ctx context.Context, username string) (bool, error)
	GetUsernames(ctx context.Context, feature string) ([]string, error)
	GetProfile(ctx context.Context, username string) (*model.UserProfile, error)
	GetInfo(ctx context.Context, username string) (*model.UserInfo, error)
	GetAboutPage(ctx context.Context, username string) (*model.AboutPage, error)
	GetProfileImgURL(ctx context.Context, username string) (string, error)
	UpdateSettings(ctx context.Context, username string, input dto.UpdateSettingsRequest) error
	UpdateSocialLinks(ctx context.Context, username string, input dto.UpdateSocialLinksRequest) error
	UpdateAbout(ctx context.Context, username string, input dto.UpdateAboutRequest) error
	ChangePassword(ctx context.Context, username string, input dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, username string, password string) error
	Export(ctx context.Context, username string) (*model.UserExport, error)
	Sitemap(ctx context.Context) (*model.Sitemap, error)
	TotalViewIncrement(username string, viewer string)
}

type Post interface {
	Create(ctx context.Context, author string, input dto.CreatePostRequest) (string, error)
	GetInfo(ctx context.Context, username string, postUID string) (*model.PostInfo, error)
	GetRendered(ctx context.Context, username string, postUID string) (*model.RenderedPost, error)
	GetFull(ctx context.Context, author string, postUID string) (*model.FullPost, error)
	GetBlogPage(ctx context.Context, username string, page int) (*dto.PostPage, error)
	GetAll(ctx context.Context) ([]*model.PostInfo, error)
	GetFeatured(ctx context.Context, username string) ([]*model.PostInfo, error)
	GetTagged(ctx context.Context, username string, tag string) ([]*model.PostInfo, error)
	GetBackstagePage(ctx context.Context, author string, page int) (*dto.BackstagePostPage, error)
	GetArchived(ctx context.Context, author string) ([]*dto.BackstagePost, error)
	Edit(ctx context.Context, author string, postUID string, input dto.EditPostRequest) error
	SetArchived(ctx context.Context, author string, postUID string, archived bool) error
	SetFeatured(ctx context.Context, author string, postUID string, featured bool) error
	Delete(ctx context.Context, author string, postUID string) error
	ViewIncrement(author string, postUID string, viewer string)
	ReadIncrement(postUID string, viewer string)
}

type Project interface {
	Create(ctx context.Context, author string, input dto.CreateProjectRequest) (string, error)
	GetInfo(ctx context.Context, username string, projectUID string) (*model.ProjectInfo, error)
	GetRendered(ctx context.Context, username string, projectUID string) (*model.RenderedProject, error)
	GetFull(ctx context.Context, author string, projectUID string) (*model.FullProject, error)
	GetGalleryPage(ctx context.Context, username string, page int) (*dto.ProjectPage, error)
	GetAll(ctx context.Context) ([]*model.ProjectInfo, error)
	GetTagged(ctx context.Context, username string, tag string) ([]*model.ProjectInfo, error)
	GetBackstagePage(ctx context.Context, author string, page int) (*dto.ProjectPage, error)
	GetArchived(ctx context.Context, author string) ([]*model.ProjectInfo, error)
	Edit(ctx context.Context, author string, projectUID string, input dto.EditProjectRequest) error
	SetArchived(ctx context.Context, author string, projectUID string, archived bool) error
	Delete(ctx context.Context, author string, projectUID string) error
	ViewIncrement(author string, projectUID string, viewer string)
	ReadIncrement(projectUID string, viewer string)
}

type Changelog interface {
	Create(ctx context.Context, author string, input dto.CreateChangelogRequest) (string, error)
	Get(ctx context.Context, author string, changelogUID string) (*model.Changelog, error)
	GetPage(ctx context.Context, username string) ([]*model.RenderedChangelog, error)
	GetBackstagePage(ctx context.Context, author string, page int) (*dto.ChangelogPage, error)
	GetArchived(ctx context.Context, author string) ([]*model.Changelog, error)
	Edit(ctx context.Context, author string, changelogUID string, input dto.EditChangelogRequest) error
	SetArchived(ctx context.Context, author string, changelogUID string, archived bool) error
	Delete(ctx context.Context, author string, changelogUID string) error
}

type Comment interface {
	Create(ctx context.Context, postUID string, author model.CommentAuthor, input dto.CreateCommentRequest) (string, error)
	GetPostComments(ctx context.Context, postUID string) ([]*model.Comment, error)
}

type Service struct {
	User
	Post
	Project
	Changelog
	Comment
}

func New(logger *zap.Logger, repo *repository.Repository, captchaVerifier captcha.Verifier) *Service {
	return &Service{
		User:      newUserService(logger, repo),
		Post:      newPostService(logger, repo),
		Project:   newProjectService(logger, repo),
		Changelog: newChangelogService(logger, repo),
		Comment:   newCommentService(logger, repo, captchaVerifier),
	}
}
