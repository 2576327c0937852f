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

type postService struct {
	logger *zap.Logger
	repo *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo: repo,
	}
}

func (s *postService) Create(ctx context.Context, author string, input dto.CreatePostRequest) (string, error) {
	if err := validateSlug(input.CustomSlug); err != nil {
		return "", err
	}

	info := model.PostInfo{
		Title:      input.Title,
		Subtitle:   input.Subtitle,
		Author:     author,
		Tags:       processTags(input.Tags),
		CoverURL:   input.CoverURL,
		CustomSlug: input.CustomSlug,
	}

	postUID, err := s.repo.Docstore.Post.Create(ctx, info, input.Content)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post for user(%s): %s", author, err.Error())
		return "", ErrInternal
	}

	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(author))

	return postUID, nil
}

// ownedInfo resolves a post and verifies it belongs to author. A post
// reached under the wrong username is reported as missing, not as
// forbidden.
func (s *postService) ownedInfo(ctx context.Context, author string, postUID string) (*model.PostInfo, error) {
	info, err := s.repo.Docstore.Post.FindInfo(ctx, postUID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find post(%s) info: %s", postUID, err.Error())
		return nil, ErrInternal
	}

	if info.Author != author {
		return nil, docstore.ErrNotFound
	}

	return info, nil
}

func (s *postService) GetInfo(ctx context.Context, username string, postUID string) (*model.PostInfo, error) {
	return s.ownedInfo(ctx, username, postUID)
}

func (s *postService) GetRendered(ctx context.Context, username string, postUID string) (*model.RenderedPost, error) {
	cachedPost, err := redisrepo.Get[model.RenderedPost](s.repo.Redis.Default, ctx, redisrepo.RenderedPostKey(postUID))
	if err == nil {
		if cachedPost.Info.Author != username {
			return nil, docstore.ErrNotFound
		}
		return cachedPost, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get rendered post(%s) from redis: %s", postUID, err.Error())
		return nil, ErrInternal
	}

	full, err := s.repo.Docstore.Post.FindFull(ctx, postUID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find full post(%s): %s", postUID, err.Error())
		return nil, ErrInternal
	}
	if full.Info.Author != username {
		return nil, docstore.ErrNotFound
	}

	contentHTML, err := markdown.RenderPost(full.Content)
	if err != nil {
		s.logger.Sugar().Errorf("failed to render post(%s): %s", postUID, err.Error())
		return nil, ErrInternal
	}

	rendered := model.RenderedPost{
		Info:        full.Info,
		ContentHTML: contentHTML,
		ReadTime:    markdown.EstimateReadTime(contentHTML),
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.RenderedPostKey(postUID), rendered, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set rendered post(%s) in redis: %s", postUID, err.Error())
		return nil, ErrInternal
	}

	return &rendered, nil
}

func (s *postService) GetFull(ctx context.Context, author string, postUID string) (*model.FullPost, error) {
	full, err := s.repo.Docstore.Post.FindFull(ctx, postUID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find full post(%s): %s", postUID, err.Error())
		return nil, ErrInternal
	}

	if full.Info.Author != author {
		return nil, docstore.ErrNotFound
	}

	return full, nil
}

func (s *postService) GetBlogPage(ctx context.Context, username string, page int) (*dto.PostPage, error) {
	cachedPage, err := redisrepo.Get[dto.PostPage](s.repo.Redis.Default, ctx, redisrepo.UserBlogPageKey(username, page, BLOG_POSTS_PER_PAGE))
	if err == nil {
		return cachedPage, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get user(%s) blog page from redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	posts, pagination, err := s.repo.Docstore.Post.FindAuthorPostsPaginated(ctx, username, page, BLOG_POSTS_PER_PAGE)
	if err != nil {
		if err == docstore.ErrInvalidPage {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) blog page(%d): %s", username, page, err.Error())
		return nil, ErrInternal
	}

	postPage := dto.PostPage{Posts: posts, Pagination: *pagination}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserBlogPageKey(username, page, BLOG_POSTS_PER_PAGE), postPage, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set user(%s) blog page in redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	return &postPage, nil
}

// GetAll feeds the sitemap builder with every live post.
func (s *postService) GetAll(ctx context.Context) ([]*model.PostInfo, error) {
	posts, err := s.repo.Docstore.Post.FindAll(ctx, false)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find all posts: %s", err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) GetFeatured(ctx context.Context, username string) ([]*model.PostInfo, error) {
	posts, err := s.repo.Docstore.Post.FindFeaturedPosts(ctx, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) featured posts: %s", username, err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) GetTagged(ctx context.Context, username string, tag string) ([]*model.PostInfo, error) {
	posts, err := s.repo.Docstore.Post.FindAuthorPosts(ctx, username, docstore.ArchiveExclude)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) posts: %s", username, err.Error())
		return nil, ErrInternal
	}

	tagged := []*model.PostInfo{}
	for _, post := range posts {
		if slices.Contains(post.Tags, tag) {
			tagged = append(tagged, post)
		}
	}

	return tagged, nil
}

func (s *postService) GetBackstagePage(ctx context.Context, author string, page int) (*dto.BackstagePostPage, error) {
	posts, pagination, err := s.repo.Docstore.Post.FindAuthorPostsPaginated(ctx, author, page, BACKSTAGE_POSTS_PER_PAGE)
	if err != nil {
		if err == docstore.ErrInvalidPage {
			return nil, err
		}

		s.logger.Sugar().Errorf("failed to find user(%s) backstage page(%d): %s", author, page, err.Error())
		return nil, ErrInternal
	}

	backstagePosts, err := s.withCommentCounts(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &dto.BackstagePostPage{Posts: backstagePosts, Pagination: *pagination}, nil
}

func (s *postService) GetArchived(ctx context.Context, author string) ([]*dto.BackstagePost, error) {
	posts, err := s.repo.Docstore.Post.FindAuthorPosts(ctx, author, docstore.ArchiveOnly)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) archived posts: %s", author, err.Error())
		return nil, ErrInternal
	}

	return s.withCommentCounts(ctx, posts)
}

func (s *postService) withCommentCounts(ctx context.Context, posts []*model.PostInfo) ([]*dto.BackstagePost, error) {
	backstagePosts := make([]*dto.BackstagePost, 0, len(posts))
	for _, post := range posts {
		count, err := s.repo.Docstore.Comment.CountPostComments(ctx, post.PostUID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to count comments of post(%s): %s", post.PostUID, err.Error())
			return nil, ErrInternal
		}
		backstagePosts = append(backstagePosts, &dto.BackstagePost{Info: post, CommentCount: count})
	}

	return backstagePosts, nil
}

func (s *postService) Edit(ctx context.Context, author string, postUID string, input dto.EditPostRequest) error {
	if err := validateSlug(input.CustomSlug); err != nil {
		return err
	}

	if _, err := s.ownedInfo(ctx, author, postUID); err != nil {
		return err
	}

	update := model.PostUpdate{
		Title:      input.Title,
		Subtitle:   input.Subtitle,
		Tags:       processTags(input.Tags),
		CoverURL:   input.CoverURL,
		CustomSlug: input.CustomSlug,
		Content:    input.Content,
	}
	if err := s.repo.Docstore.Post.Update(ctx, postUID, update); err != nil {
		s.logger.Sugar().Errorf("failed to update post(%s): %s", postUID, err.Error())
		return ErrInternal
	}

	s.invalidatePostCache(ctx, author, postUID)

	return nil
}

func (s *postService) SetArchived(ctx context.Context, author string, postUID string, archived bool) error {
	if _, err := s.ownedInfo(ctx, author, postUID); err != nil {
		return err
	}

	if err := s.repo.Docstore.Post.SetArchived(ctx, postUID, archived); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%s) archived=%t: %s", postUID, archived, err.Error())
		return ErrInternal
	}

	s.invalidatePostCache(ctx, author, postUID)

	return nil
}

func (s *postService) SetFeatured(ctx context.Context, author string, postUID string, featured bool) error {
	if _, err := s.ownedInfo(ctx, author, postUID); err != nil {
		return err
	}

	if err := s.repo.Docstore.Post.SetFeatured(ctx, postUID, featured); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%s) featured=%t: %s", postUID, featured, err.Error())
		return ErrInternal
	}

	s.invalidatePostCache(ctx, author, postUID)

	return nil
}

func (s *postService) Delete(ctx context.Context, author string, postUID string) error {
	if _, err := s.ownedInfo(ctx, author, postUID); err != nil {
		return err
	}

	if err := s.repo.Docstore.Post.Delete(ctx, postUID); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", postUID, err.Error())
		return ErrInternal
	}

	s.invalidatePostCache(ctx, author, postUID)

	return nil
}

func (s *postService) invalidatePostCache(ctx context.Context, author string, postUID string) {
	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.PostKeysPattern(postUID))
	invalidateCache(ctx, s.logger, s.repo.Redis.Default, redisrepo.UserKeysPattern(author))
}

// ViewIncrement counts one page view in the background. The author
// reading their own post does not count.
func (s *postService) ViewIncrement(author string, postUID string, viewer string) {
	if viewer == author {
		return
	}

	go func(postUID string) {
		ctx := context.Background()
		if err := s.repo.Docstore.Post.IncrViews(ctx, postUID); err != nil {
			s.logger.Sugar().Errorf("failed to increment views for post(%s): %s", postUID, err.Error())
		}
	}(postUID)
}

// ReadIncrement counts one completed read. The author is resolved from
// the post itself since the read beacon only carries the UID.
func (s *postService) ReadIncrement(postUID string, viewer string) {
	go func(postUID string) {
		ctx := context.Background()

		info, err := s.repo.Docstore.Post.FindInfo(ctx, postUID)
		if err != nil {
			if err != docstore.ErrNotFound {
				s.logger.Sugar().Errorf("failed to find post(%s) info: %s", postUID, err.Error())
			}
			return
		}
		if viewer == info.Author {
			return
		}

		if err := s.repo.Docstore.Post.IncrReads(ctx, postUID); err != nil {
			s.logger.Sugar().Errorf("failed to increment reads for post(%s): %s", postUID, err.Error())
		}
	}(postUID)
}
