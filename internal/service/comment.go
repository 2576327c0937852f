package service

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/captcha"
	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo *repository.Repository
	captcha captcha.Verifier
}

func newCommentService(logger *zap.Logger, repo *repository.Repository, captchaVerifier captcha.Verifier) Comment {
	return &commentService{
		logger: logger,
		repo: repo,
		captcha: captchaVerifier,
	}
}

// Create stores a comment once the captcha token checks out. A failed
// check drops the comment without an error; the submitter gets no
// signal that sets bots apart.
func (s *commentService) Create(ctx context.Context, postUID string, author model.CommentAuthor, input dto.CreateCommentRequest) (string, error) {
	passed, err := s.captcha.Verify(ctx, input.CaptchaToken)
	if err != nil {
		s.logger.Sugar().Errorf("failed to verify captcha token for post(%s): %s", postUID, err.Error())
		return "", nil
	}
	if !passed {
		return "", nil
	}

	comment := model.Comment{
		PostUID: postUID,
		Name:    author.DisplayName(),
		Email:   author.Email,
		Comment: input.Comment,
	}

	commentUID, err := s.repo.Docstore.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create comment for post(%s): %s", postUID, err.Error())
		return "", ErrInternal
	}

	return commentUID, nil
}

func (s *commentService) GetPostComments(ctx context.Context, postUID string) ([]*model.Comment, error) {
	comments, err := s.repo.Docstore.Comment.FindPostComments(ctx, postUID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comments of post(%s): %s", postUID, err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}
