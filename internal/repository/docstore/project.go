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

type projectRepo struct {
	store *storage.Store
}

func newProjectRepo(store *storage.Store) Project {
	return &projectRepo{
		store: store,
	}
}

// Create inserts the info and content documents for a new project.
// Project tags never touch the author's tag counters.
func (r *projectRepo) Create(ctx context.Context, info model.ProjectInfo, content string) (string, error) {
	uid, err := newUID(ctx, r.store.ProjectInfo, "project_uid")
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	info.ProjectUID = uid
	info.CreatedAt = now
	info.LastUpdated = now
	info.Archived = false
	info.Views = 0
	info.Reads = 0

	if err := r.store.ProjectInfo.InsertOne(ctx, info); err != nil {
		return "", err
	}

	projectContent := model.ProjectContent{
		ProjectUID: uid,
		Author:     info.Author,
		Content:    content,
	}
	if err := r.store.ProjectContent.InsertOne(ctx, projectContent); err != nil {
		return "", err
	}

	return uid, nil
}

func (r *projectRepo) FindInfo(ctx context.Context, projectUID string) (*model.ProjectInfo, error) {
	var info model.ProjectInfo
	if err := r.store.ProjectInfo.FindOne(ctx, bson.M{"project_uid": projectUID}, &info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &info, nil
}

func (r *projectRepo) FindFull(ctx context.Context, projectUID string) (*model.FullProject, error) {
	info, err := r.FindInfo(ctx, projectUID)
	if err != nil {
		return nil, err
	}

	var content model.ProjectContent
	if err := r.store.ProjectContent.FindOne(ctx, bson.M{"project_uid": projectUID}, &content); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.FullProject{
		Info:    *info,
		Content: content.Content,
	}, nil
}

func (r *projectRepo) FindAll(ctx context.Context, includeArchive bool) ([]*model.ProjectInfo, error) {
	filter := bson.M{}
	if !includeArchive {
		filter["archived"] = false
	}

	var projects []*model.ProjectInfo
	if err := r.store.ProjectInfo.Find(ctx, filter).All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) FindAuthorProjects(ctx context.Context, author string, archive string) ([]*model.ProjectInfo, error) {
	filter := bson.M{"author": author}
	switch archive {
	case ArchiveExclude:
		filter["archived"] = false
	case ArchiveOnly:
		filter["archived"] = true
	}

	var projects []*model.ProjectInfo
	if err := r.store.ProjectInfo.Find(ctx, filter).Sort("created_at", storage.Desc).All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) FindAuthorProjectsPaginated(ctx context.Context, author string, page int, pageSize int) ([]*model.ProjectInfo, *model.Pagination, error) {
	maxPageSize(&pageSize)

	filter := bson.M{"author": author, "archived": false}
	pagination, err := paginate(ctx, r.store.ProjectInfo, filter, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	var projects []*model.ProjectInfo
	err = r.store.ProjectInfo.Find(ctx, filter).
		Sort("created_at", storage.Desc).
		Skip(int64(page-1) * int64(pageSize)).
		Limit(int64(pageSize)).
		All(ctx, &projects)
	if err != nil {
		return nil, nil, err
	}

	return projects, pagination, nil
}

func (r *projectRepo) Update(ctx context.Context, projectUID string, update model.ProjectUpdate) error {
	if _, err := r.FindInfo(ctx, projectUID); err != nil {
		return err
	}

	fields := bson.M{
		"title":             update.Title,
		"short_description": update.ShortDescription,
		"tags":              update.Tags,
		"images":            update.Images,
		"custom_slug":       update.CustomSlug,
		"last_updated":      time.Now().UTC(),
	}
	if err := r.store.ProjectInfo.SetFields(ctx, bson.M{"project_uid": projectUID}, fields); err != nil {
		return err
	}

	return r.store.ProjectContent.SetFields(ctx, bson.M{"project_uid": projectUID}, bson.M{"content": update.Content})
}

func (r *projectRepo) SetArchived(ctx context.Context, projectUID string, archived bool) error {
	return r.store.ProjectInfo.SetFields(ctx, bson.M{"project_uid": projectUID}, bson.M{"archived": archived})
}

func (r *projectRepo) IncrViews(ctx context.Context, projectUID string) error {
	return r.store.ProjectInfo.IncFields(ctx, bson.M{"project_uid": projectUID}, bson.M{"views": 1}, false)
}

func (r *projectRepo) IncrReads(ctx context.Context, projectUID string) error {
	return r.store.ProjectInfo.IncFields(ctx, bson.M{"project_uid": projectUID}, bson.M{"reads": 1}, false)
}

func (r *projectRepo) Delete(ctx context.Context, projectUID string) error {
	if err := r.store.ProjectInfo.DeleteOne(ctx, bson.M{"project_uid": projectUID}); err != nil {
		return err
	}
	return r.store.ProjectContent.DeleteOne(ctx, bson.M{"project_uid": projectUID})
}
