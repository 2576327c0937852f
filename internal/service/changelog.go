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

// Entry dates arrive as MM/DD/YYYY strings from the date picker.
const CHANGELOG_DATE_LAYOUT = "01/02/2006"

type changelogService struct {
	logger *zap.Logger
	repo *repository.Repository
}

func newChangelogService(logger *zap.Logger, repo *repository.Repository) Changelog {
	return &changelogService{
		logger: logger,
		repo: repo,
	}
}

func parseChangelogDate(date string) (time.Time, error) {
	parsed, err := time.Parse(CHANGELOG_DATE_LAYOUT, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

func validateCategory(category string) error {
	if !slices.Contains(model.ChangelogCategories, category) {
		return ErrInvalidCategory
	}
	return nil
}

func (s *changelogService) Create(ctx context.Context, author string, input dto.CreateChangelogRequest) (string, error) {
	date, err := parseChangelogDate(input.Date)
	if err != nil {
		return "", err
	}
	if err := validateCategory(input.Category); err != nil {
		return "", err
	}

	entry := model.Changelog{
		Author:          author,
		Title:           input.Title,
		Date:            date,
		Category:        input.Category,
		Content:         input.Content,
		Tags:            processTags(input.Tags),
		Link:            input.Link,
		LinkDescription: input.LinkDescription,
	}

	changelogUID, err := s.repo.Docstore.Changelog.Create(ctx, entry)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create changelog for user(%s): %s", author, err.Error())
		return "", ErrInternal
	}

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(author))

	return changelogUID, nil
}

func (s *changelogService) ownedEntry(ctx context.Context, author string, changelogUID string) (*model.Changelog, error) {
	entry, err := s.repo.Docstore.Changelog.Find(ctx, changelogUID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find changelog(%s): %s", changelogUID, err.Error())
		return nil, ErrInternal
	}

	if entry.Author != author {
		return nil, docstore.ErrNotFound
	}

	return entry, nil
}

func (s *changelogService) Get(ctx context.Context, author string, changelogUID string) (*model.Changelog, error) {
	return s.ownedEntry(ctx, author, changelogUID)
}

// GetPage returns the public changelog, newest entry date first, with
// every entry rendered to HTML.
func (s *changelogService) GetPage(ctx context.Context, username string) ([]*model.RenderedChangelog, error) {
	cachedEntries, err := redisrepo.GetMany[model.RenderedChangelog](s.repo.Redis.Default, ctx, redisrepo.UserChangelogKey(username))
	if err == nil {
		return cachedEntries, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get user(%s) changelog from redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	entries, err := s.repo.Docstore.Changelog.FindAuthorChangelogs(ctx, username, true)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) changelogs: %s", username, err.Error())
		return nil, ErrInternal
	}

	rendered := make([]*model.RenderedChangelog, 0, len(entries))
	for _, entry := range entries {
		contentHTML, err := markdown.RenderChangelog(entry.Content)
		if err != nil {
			s.logger.Sugar().Errorf("failed to render changelog(%s): %s", entry.ChangelogUID, err.Error())
			return nil, ErrInternal
		}

		rendered = append(rendered, &model.RenderedChangelog{
			Entry:       *entry,
			ContentHTML: contentHTML,
		})
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserChangelogKey(username), rendered, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) changelog in redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	return rendered, nil
}

func (s *changelogService) GetBackstagePage(ctx context.Context, author string, page int) (*dto.ChangelogPage, error) {
	entries, pagination, err := s.repo.Docstore.Changelog.FindAuthorChangelogsPaginated(ctx, author, page, BACKSTAGE_CHANGELOGS_PER_PAGE)
	if err != nil {
		if err == docstore.ErrInvalidPage {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) backstage changelogs page(%d): %s", author, page, err.Error())
		return nil, ErrInternal
	}

	return &dto.ChangelogPage{Entries: entries, Pagination: *pagination}, nil
}

func (s *changelogService) GetArchived(ctx context.Context, author string) ([]*model.Changelog, error) {
	entries, err := s.repo.Docstore.Changelog.FindArchivedChangelogs(ctx, author)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) archived changelogs: %s", author, err.Error())
		return nil, ErrInternal
	}

	return entries, nil
}

func (s *changelogService) Edit(ctx context.Context, author string, changelogUID string, input dto.EditChangelogRequest) error {
	date, err := parseChangelogDate(input.Date)
	if err != nil {
		return err
	}
	if err := validateCategory(input.Category); err != nil {
		return err
	}

	if _, err := s.ownedEntry(ctx, author, changelogUID); err != nil {
		return err
	}

	update := model.ChangelogUpdate{
		Title:           input.Title,
		Date:            date,
		Category:        input.Category,
		Content:         input.Content,
		Tags:            processTags(input.Tags),
		Link:            input.Link,
		LinkDescription: input.LinkDescription,
	}
	if err := s.repo.Docstore.Changelog.Update(ctx, changelogUID, update); err != nil {
		s.logger.Sugar().Errorf("failed to update changelog(%s): %s", changelogUID, err.Error())
		return ErrInternal
	}

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(author))

	return nil
}

func (s *changelogService) SetArchived(ctx context.Context, author string, changelogUID string, archived bool) error {
	if _, err := s.ownedEntry(ctx, author, changelogUID); err != nil {
		return err
	}

	if err := s.repo.Docstore.Changelog.SetArchived(ctx, changelogUID, archived); err != nil {
		s.logger.Sugar().Errorf("failed to set changelog(%s) archived=%t: %s", changelogUID, archived, err.Error())
		return ErrInternal
	}

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(author))

	return nil
}

func (s *changelogService) Delete(ctx context.Context, author string, changelogUID string) error {
	if _, err := s.ownedEntry(ctx, author, changelogUID); err != nil {
		return err
	}

	if err := s.repo.Docstore.Changelog.Delete(ctx, changelogUID); err != nil {
		s.logger.Sugar().Errorf("failed to delete changelog(%s): %s", changelogUID, err.Error())
		return ErrInternal
	}

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(author))

	return nil
}
