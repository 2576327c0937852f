package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	Asc  = 1
	Desc = -1
)

// Collection is the narrow slice of document store operations the
// repositories are written against. Every call is atomic at the
// single-document level; nothing here spans documents.
type Collection interface {
	InsertOne(ctx context.Context, doc interface{}) error
	FindOne(ctx context.Context, filter bson.M, out interface{}) error
	Find(ctx context.Context, filter bson.M) Cursor
	Count(ctx context.Context, filter bson.M) (int64, error)
	DeleteOne(ctx context.Context, filter bson.M) error
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
	// SetFields overwrites the named fields of the first matching
	// document ($set) and leaves every other field untouched.
	SetFields(ctx context.Context, filter bson.M, fields bson.M) error
	// IncFields atomically adds the given deltas ($inc), negative
	// deltas included. With upsert enabled a missing document is
	// created from the filter so counters can start from absent.
	IncFields(ctx context.Context, filter bson.M, deltas bson.M, upsert bool) error
}

// Cursor stays lazy until All materializes it.
type Cursor interface {
	Sort(field string, order int) Cursor
	Skip(n int64) Cursor
	Limit(n int64) Cursor
	All(ctx context.Context, results interface{}) error
}

// Store holds one handle per collection of the platform's layout:
// three user collections, the split post and project documents,
// comments and changelog entries.
type Store struct {
	UserInfo       Collection
	UserCreds      Collection
	UserAbout      Collection
	PostInfo       Collection
	PostContent    Collection
	Comments       Collection
	ProjectInfo    Collection
	ProjectContent Collection
	Changelogs     Collection
}
