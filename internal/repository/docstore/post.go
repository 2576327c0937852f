package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const FEATURED_POSTS_LIMIT = 10

type postRepo struct {
	store *storage.Store
}

func newPostRepo(store *storage.Store) Post {
	return &postRepo{
		store: store,
	}
}

func (r *postRepo) Create(ctx context.Context, info model.PostInfo, content string) (string, error) {
	uid, err := newUID(ctx, r.store.PostInfo, "post_uid")
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	info.PostUID = uid
	info.CreatedAt = now
	info.LastUpdated = now
	info.Archived = false
	info.Featured = false
	info.Views = 0
	info.Reads = 0

	if err := r.store.PostInfo.InsertOne(ctx, info); err != nil {
		return "", err
	}

	postContent := model.PostContent{
		PostUID: uid,
		Author:  info.Author,
		Content: content,
	}
	if err := r.store.PostContent.InsertOne(ctx, postContent); err != nil {
		return "", err
	}

	if err := applyTagDeltas(ctx, r.store.UserInfo, info.Author, info.Tags, 1, true); err != nil {
		return "", err
	}

	return uid, nil
}

func (r *postRepo) FindInfo(ctx context.Context, postUID string) (*model.PostInfo, error) {
	var info model.PostInfo
	if err := r.store.PostInfo.FindOne(ctx, bson.M{"post_uid": postUID}, &info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &info, nil
}

func (r *postRepo) FindFull(ctx context.Context, postUID string) (*model.FullPost, error) {
	info, err := r.FindInfo(ctx, postUID)
	if err != nil {
		return nil, err
	}

	var content model.PostContent
	if err := r.store.PostContent.FindOne(ctx, bson.M{"post_uid": postUID}, &content); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.FullPost{
		Info:    *info,
		Content: content.Content,
	}, nil
}

func (r *postRepo) FindAll(ctx context.Context, includeArchive bool) ([]*model.PostInfo, error) {
	filter := bson.M{}
	if !includeArchive {
		filter["archived"] = false
	}

	var posts []*model.PostInfo
	if err := r.store.PostInfo.Find(ctx, filter).All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) FindAuthorPosts(ctx context.Context, author string, archive string) ([]*model.PostInfo, error) {
	filter := bson.M{"author": author}
	switch archive {
	case ArchiveExclude:
		filter["archived"] = false
	case ArchiveOnly:
		filter["archived"] = true
	}

	var posts []*model.PostInfo
	if err := r.store.PostInfo.Find(ctx, filter).Sort("created_at", storage.Desc).All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) FindAuthorPostsPaginated(ctx context.Context, author string, page int, pageSize int) ([]*model.PostInfo, *model.Pagination, error) {
	maxPageSize(&pageSize)

	filter := bson.M{"author": author, "archived": false}
	pagination, err := paginate(ctx, r.store.PostInfo, filter, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	var posts []*model.PostInfo
	err = r.store.PostInfo.Find(ctx, filter).
		Sort("created_at", storage.Desc).
		Skip(int64(page-1) * int64(pageSize)).
		Limit(int64(pageSize)).
		All(ctx, &posts)
	if err != nil {
		return nil, nil, err
	}

	return posts, pagination, nil
}

func (r *postRepo) FindFeaturedPosts(ctx context.Context, author string) ([]*model.PostInfo, error) {
	filter := bson.M{"author": author, "featured": true, "archived": false}

	var posts []*model.PostInfo
	err := r.store.PostInfo.Find(ctx, filter).
		Sort("created_at", storage.Desc).
		Limit(FEATURED_POSTS_LIMIT).
		All(ctx, &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) Update(ctx context.Context, postUID string, update model.PostUpdate) error {
	current, err := r.FindInfo(ctx, postUID)
	if err != nil {
		return err
	}

	// Counters for the old tag set go down before the new set goes up,
	// even when both sets are identical.
	if err := applyTagDeltas(ctx, r.store.UserInfo, current.Author, current.Tags, -1, false); err != nil {
		return err
	}
	if err := applyTagDeltas(ctx, r.store.UserInfo, current.Author, update.Tags, 1, true); err != nil {
		return err
	}

	fields := bson.M{
		"title":        update.Title,
		"subtitle":     update.Subtitle,
		"tags":         update.Tags,
		"cover_url":    update.CoverURL,
		"custom_slug":  update.CustomSlug,
		"last_updated": time.Now().UTC(),
	}
	if err := r.store.PostInfo.SetFields(ctx, bson.M{"post_uid": postUID}, fields); err != nil {
		return err
	}

	return r.store.PostContent.SetFields(ctx, bson.M{"post_uid": postUID}, bson.M{"content": update.Content})
}

func (r *postRepo) SetArchived(ctx context.Context, postUID string, archived bool) error {
	info, err := r.FindInfo(ctx, postUID)
	if err != nil {
		return err
	}

	if err := r.store.PostInfo.SetFields(ctx, bson.M{"post_uid": postUID}, bson.M{"archived": archived}); err != nil {
		return err
	}

	delta := 1
	if archived {
		delta = -1
	}
	return applyTagDeltas(ctx, r.store.UserInfo, info.Author, info.Tags, delta, true)
}

func (r *postRepo) SetFeatured(ctx context.Context, postUID string, featured bool) error {
	return r.store.PostInfo.SetFields(ctx, bson.M{"post_uid": postUID}, bson.M{"featured": featured})
}

func (r *postRepo) IncrViews(ctx context.Context, postUID string) error {
	return r.store.PostInfo.IncFields(ctx, bson.M{"post_uid": postUID}, bson.M{"views": 1}, false)
}

func (r *postRepo) IncrReads(ctx context.Context, postUID string) error {
	return r.store.PostInfo.IncFields(ctx, bson.M{"post_uid": postUID}, bson.M{"reads": 1}, false)
}

// Delete removes the info and content documents of a single post. Tag
// counters keep the values the post contributed; only archiving
// releases them.
func (r *postRepo) Delete(ctx context.Context, postUID string) error {
	if err := r.store.PostInfo.DeleteOne(ctx, bson.M{"post_uid": postUID}); err != nil {
		return err
	}
	return r.store.PostContent.DeleteOne(ctx, bson.M{"post_uid": postUID})
}

func (r *postRepo) FindAuthorPostUIDs(ctx context.Context, author string) ([]string, error) {
	var posts []*model.PostInfo
	if err := r.store.PostInfo.Find(ctx, bson.M{"author": author}).All(ctx, &posts); err != nil {
		return nil, err
	}

	uids := make([]string, 0, len(posts))
	for _, post := range posts {
		uids = append(uids, post.PostUID)
	}
	return uids, nil
}

func (r *postRepo) DeleteByAuthor(ctx context.Context, author string) error {
	if _, err := r.store.PostInfo.DeleteMany(ctx, bson.M{"author": author}); err != nil {
		return err
	}
	_, err := r.store.PostContent.DeleteMany(ctx, bson.M{"author": author})
	return err
}
