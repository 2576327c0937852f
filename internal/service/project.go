package service

import (
	"context"
	"slices"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/markdown"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/docstore"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type projectService struct {
	logger *zap.Logger
	repo *repository.Repository
}

func newProjectService(logger *zap.Logger, repo *repository.Repository) Project {
	return &projectService{
		logger: logger,
		repo: repo,
	}
}

func projectImages(inputs []dto.ProjectImageInput) model.ProjectImages {
	var images model.ProjectImages
	for i, input := range inputs {
		images[i] = model.ProjectImage{URL: input.URL, Caption: input.Caption}
	}
	return images
}

func (s *projectService) Create(ctx context.Context, author string, input dto.CreateProjectRequest) (string, error) {
	if err := validateSlug(input.CustomSlug); err != nil {
		return "", err
	}

	info := model.ProjectInfo{
		Author:           author,
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		Tags:             processTags(input.Tags),
		Images:           projectImages(input.Images),
		CustomSlug:       input.CustomSlug,
	}

	projectUID, err := s.repo.Docstore.Project.Create(ctx, info, input.Content)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create project for user(%s): %s", author, err.Error())
		return "", ErrInternal
	}

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(author))

	return projectUID, nil
}

func (s *projectService) ownedInfo(ctx context.Context, author string, projectUID string) (*model.ProjectInfo, error) {
	info, err := s.repo.Docstore.Project.FindInfo(ctx, projectUID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find project(%s) info: %s", projectUID, err.Error())
		return nil, ErrInternal
	}

	if info.Author != author {
		return nil, docstore.ErrNotFound
	}

	return info, nil
}

func (s *projectService) GetInfo(ctx context.Context, username string, projectUID string) (*model.ProjectInfo, error) {
	return s.ownedInfo(ctx, username, projectUID)
}

func (s *projectService) GetRendered(ctx context.Context, username string, projectUID string) (*model.RenderedProject, error) {
	cachedProject, err := redisrepo.Get[model.RenderedProject](s.repo.Redis.Default, ctx, redisrepo.RenderedProjectKey(projectUID))
	if err == nil {
		if cachedProject.Info.Author != username {
			return nil, docstore.ErrNotFound
		}
		return cachedProject, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get rendered project(%s) from redis: %s", projectUID, err.Error())
		return nil, ErrInternal
	}

	full, err := s.repo.Docstore.Project.FindFull(ctx, projectUID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find full project(%s): %s", projectUID, err.Error())
		return nil, ErrInternal
	}
	if full.Info.Author != username {
		return nil, docstore.ErrNotFound
	}

	contentHTML, err := markdown.RenderProject(full.Content)
	if err != nil {
		s.logger.Sugar().Errorf("failed to render project(%s): %s", projectUID, err.Error())
		return nil, ErrInternal
	}

	rendered := model.RenderedProject{
		Info:        full.Info,
		ContentHTML: contentHTML,
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.RenderedProjectKey(projectUID), rendered, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set rendered project(%s) in redis: %s", projectUID, err.Error())
		return nil, ErrInternal
	}

	return &rendered, nil
}

func (s *projectService) GetFull(ctx context.Context, author string, projectUID string) (*model.FullProject, error) {
	full, err := s.repo.Docstore.Project.FindFull(ctx, projectUID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find full project(%s): %s", projectUID, err.Error())
		return nil, ErrInternal
	}

	if full.Info.Author != author {
		return nil, docstore.ErrNotFound
	}

	return full, nil
}

func (s *projectService) GetGalleryPage(ctx context.Context, username string, page int) (*dto.ProjectPage, error) {
	cachedPage, err := redisrepo.Get[dto.ProjectPage](s.repo.Redis.Default, ctx, redisrepo.UserGalleryPageKey(username, page, GALLERY_PROJECTS_PER_PAGE))
	if err == nil {
		return cachedPage, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get user(%s) gallery page from redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	projects, pagination, err := s.repo.Docstore.Project.FindAuthorProjectsPaginated(ctx, username, page, GALLERY_PROJECTS_PER_PAGE)
	if err != nil {
		if err == docstore.ErrInvalidPage {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) gallery page(%d): %s", username, page, err.Error())
		return nil, ErrInternal
	}

	projectPage := dto.ProjectPage{Projects: projects, Pagination: *pagination}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserGalleryPageKey(username, page, GALLERY_PROJECTS_PER_PAGE), projectPage, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) gallery page in redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	return &projectPage, nil
}

// GetAll feeds the sitemap builder with every live project.
func (s *projectService) GetAll(ctx context.Context) ([]*model.ProjectInfo, error) {
	projects, err := s.repo.Docstore.Project.FindAll(ctx, false)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find all projects: %s", err.Error())
		return nil, ErrInternal
	}

	return projects, nil
}

// GetTagged lists the author's projects carrying the tag. Unlike the
// blog listing, archived projects stay visible on tag pages.
func (s *projectService) GetTagged(ctx context.Context, username string, tag string) ([]*model.ProjectInfo, error) {
	projects, err := s.repo.Docstore.Project.FindAuthorProjects(ctx, username, docstore.ArchiveInclude)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) projects: %s", username, err.Error())
		return nil, ErrInternal
	}

	tagged := []*model.ProjectInfo{}
	for _, project := range projects {
		if slices.Contains(project.Tags, tag) {
			tagged = append(tagged, project)
		}
	}

	return tagged, nil
}

func (s *projectService) GetBackstagePage(ctx context.Context, author string, page int) (*dto.ProjectPage, error) {
	projects, pagination, err := s.repo.Docstore.Project.FindAuthorProjectsPaginated(ctx, author, page, BACKSTAGE_PROJECTS_PER_PAGE)
	if err != nil {
		if err == docstore.ErrInvalidPage {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) backstage projects page(%d): %s", author, page, err.Error())
		return nil, ErrInternal
	}

	return &dto.ProjectPage{Projects: projects, Pagination: *pagination}, nil
}

func (s *projectService) GetArchived(ctx context.Context, author string) ([]*model.ProjectInfo, error) {
	projects, err := s.repo.Docstore.Project.FindAuthorProjects(ctx, author, docstore.ArchiveOnly)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) archived projects: %s", author, err.Error())
		return nil, ErrInternal
	}

	return projects, nil
}

func (s *projectService) Edit(ctx context.Context, author string, projectUID string, input dto.EditProjectRequest) error {
	if err := validateSlug(input.CustomSlug); err != nil {
		return err
	}

	if _, err := s.ownedInfo(ctx, author, projectUID); err != nil {
		return err
	}

	update := model.ProjectUpdate{
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		Tags:             processTags(input.Tags),
		Images:           projectImages(input.Images),
		CustomSlug:       input.CustomSlug,
		Content:          input.Content,
	}
	if err := s.repo.Docstore.Project.Update(ctx, projectUID, update); err != nil {
		s.logger.Sugar().Errorf("failed to update project(%s): %s", projectUID, err.Error())
		return ErrInternal
	}

	s.invalidateProjectCache(ctx, author, projectUID)

	return nil
}

func (s *projectService) SetArchived(ctx context.Context, author string, projectUID string, archived bool) error {
	if _, err := s.ownedInfo(ctx, author, projectUID); err != nil {
		return err
	}

	if err := s.repo.Docstore.Project.SetArchived(ctx, projectUID, archived); err != nil {
		s.logger.Sugar().Errorf("failed to set project(%s) archived=%t: %s", projectUID, archived, err.Error())
		return ErrInternal
	}

	s.invalidateProjectCache(ctx, author, projectUID)

	return nil
}

func (s *projectService) Delete(ctx context.Context, author string, projectUID string) error {
	if _, err := s.ownedInfo(ctx, author, projectUID); err != nil {
		return err
	}

	if err := s.repo.Docstore.Project.Delete(ctx, projectUID); err != nil {
		s.logger.Sugar().Errorf("failed to delete project(%s): %s", projectUID, err.Error())
		return ErrInternal
	}

	s.invalidateProjectCache(ctx, author, projectUID)

	return nil
}

func (s *projectService) invalidateProjectCache(ctx context.Context, author string, projectUID string) {
	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.ProjectKeysPattern(projectUID))
	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(author))
}

func (s *projectService) ViewIncrement(author string, projectUID string, viewer string) {
	if viewer == author {
		return
	}

	go func(projectUID string) {
		ctx := context.Background()
		if err := s.repo.Docstore.Project.IncrViews(ctx, projectUID); err != nil {
			s.logger.Sugar().Errorf("failed to increment views for project(%s): %s", projectUID, err.Error())
		}
	}(projectUID)
}

func (s *projectService) ReadIncrement(projectUID string, viewer string) {
	go func(projectUID string) {
		ctx := context.Background()

		info, err := s.repo.Docstore.Project.FindInfo(ctx, projectUID)
		if err != nil {
			if err != docstore.ErrNotFound {
				s.logger.Sugar().Errorf("failed to find project(%s) info: %s", projectUID, err.Error())
			}
			return
		}
		if viewer == info.Author {
			return
		}

		if err := s.repo.Docstore.Project.IncrReads(ctx, projectUID); err != nil {
			s.logger.Sugar().Errorf("failed to increment reads for project(%s): %s", projectUID, err.Error())
		}
	}(projectUID)
}
