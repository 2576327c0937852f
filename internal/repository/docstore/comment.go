package docstore

import (
	"context"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type commentRepo struct {
	store *storage.Store
}

func newCommentRepo(store *storage.Store) Comment {
	return &commentRepo{
		store: store,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (string, error) {
	uid, err := newUID(ctx, r.store.Comments, "comment_uid")
	if err != nil {
		return "", err
	}

	comment.CommentUID = uid
	comment.CreatedAt = time.Now().UTC()

	if err := r.store.Comments.InsertOne(ctx, comment); err != nil {
		return "", err
	}

	return uid, nil
}

// FindPostComments returns the comments under a post, oldest first.
func (r *commentRepo) FindPostComments(ctx context.Context, postUID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.store.Comments.Find(ctx, bson.M{"post_uid": postUID}).
		Sort("created_at", storage.Asc).
		All(ctx, &comments)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) CountPostComments(ctx context.Context, postUID string) (int64, error) {
	return r.store.Comments.Count(ctx, bson.M{"post_uid": postUID})
}

func (r *commentRepo) DeleteByPostUID(ctx context.Context, postUID string) (int64, error) {
	return r.store.Comments.DeleteMany(ctx, bson.M{"post_uid": postUID})
}
