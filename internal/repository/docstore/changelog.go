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

type changelogRepo struct {
	store *storage.Store
}

func newChangelogRepo(store *storage.Store) Changelog {
	return &changelogRepo{
		store: store,
	}
}

func (r *changelogRepo) Create(ctx context.Context, entry model.Changelog) (string, error) {
	uid, err := newUID(ctx, r.store.Changelogs, "changelog_uid")
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	entry.ChangelogUID = uid
	entry.CreatedAt = now
	entry.LastUpdated = now
	entry.Archived = false

	if err := r.store.Changelogs.InsertOne(ctx, entry); err != nil {
		return "", err
	}

	return uid, nil
}

func (r *changelogRepo) Find(ctx context.Context, changelogUID string) (*model.Changelog, error) {
	var entry model.Changelog
	if err := r.store.Changelogs.FindOne(ctx, bson.M{"changelog_uid": changelogUID}, &entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// FindAuthorChangelogs lists non-archived entries, sorted by the
// user-facing date field when byDate is set, by creation time otherwise.
func (r *changelogRepo) FindAuthorChangelogs(ctx context.Context, author string, byDate bool) ([]*model.Changelog, error) {
	sortField := "created_at"
	if byDate {
		sortField = "date"
	}

	var entries []*model.Changelog
	err := r.store.Changelogs.Find(ctx, bson.M{"author": author, "archived": false}).
		Sort(sortField, storage.Desc).
		All(ctx, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *changelogRepo) FindArchivedChangelogs(ctx context.Context, author string) ([]*model.Changelog, error) {
	var entries []*model.Changelog
	err := r.store.Changelogs.Find(ctx, bson.M{"author": author, "archived": true}).
		Sort("created_at", storage.Desc).
		All(ctx, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *changelogRepo) FindAuthorChangelogsPaginated(ctx context.Context, author string, page int, pageSize int) ([]*model.Changelog, *model.Pagination, error) {
	maxPageSize(&pageSize)

	filter := bson.M{"author": author, "archived": false}
	pagination, err := paginate(ctx, r.store.Changelogs, filter, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	var entries []*model.Changelog
	err = r.store.Changelogs.Find(ctx, filter).
		Sort("created_at", storage.Desc).
		Skip(int64(page-1) * int64(pageSize)).
		Limit(int64(pageSize)).
		All(ctx, &entries)
	if err != nil {
		return nil, nil, err
	}

	return entries, pagination, nil
}

func (r *changelogRepo) Update(ctx context.Context, changelogUID string, update model.ChangelogUpdate) error {
	if _, err := r.Find(ctx, changelogUID); err != nil {
		return err
	}

	fields := bson.M{
		"title":            update.Title,
		"date":             update.Date,
		"category":         update.Category,
		"content":          update.Content,
		"tags":             update.Tags,
		"link":             update.Link,
		"link_description": update.LinkDescription,
		"last_updated":     time.Now().UTC(),
	}
	return r.store.Changelogs.SetFields(ctx, bson.M{"changelog_uid": changelogUID}, fields)
}

func (r *changelogRepo) SetArchived(ctx context.Context, changelogUID string, archived bool) error {
	return r.store.Changelogs.SetFields(ctx, bson.M{"changelog_uid": changelogUID}, bson.M{"archived": archived})
}

func (r *changelogRepo) Delete(ctx context.Context, changelogUID string) error {
	return r.store.Changelogs.DeleteOne(ctx, bson.M{"changelog_uid": changelogUID})
}
