package mongostore

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/config"
	"github.com/BloggingApp/blog-service/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

func New(client *mongo.Client) *storage.Store {
	users := client.Database("users")
	posts := client.Database("posts")
	comments := client.Database("comments")
	projects := client.Database("projects")
	changelog := client.Database("changelog")

	return &storage.Store{
		UserInfo:       &collection{users.Collection("user-info")},
		UserCreds:      &collection{users.Collection("user-creds")},
		UserAbout:      &collection{users.Collection("user-about")},
		PostInfo:       &collection{posts.Collection("posts-info")},
		PostContent:    &collection{posts.Collection("posts-content")},
		Comments:       &collection{comments.Collection("comment")},
		ProjectInfo:    &collection{projects.Collection("project-info")},
		ProjectContent: &collection{projects.Collection("project-content")},
		Changelogs:     &collection{changelog.Collection("changelog-entry")},
	}
}

type collection struct {
	coll *mongo.Collection
}

func (c *collection) InsertOne(ctx context.Context, doc interface{}) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

func (c *collection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	return c.coll.FindOne(ctx, filter).Decode(out)
}

func (c *collection) Find(ctx context.Context, filter bson.M) storage.Cursor {
	return &cursor{coll: c.coll, filter: filter, opts: options.Find()}
}

func (c *collection) Count(ctx context.Context, filter bson.M) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}

func (c *collection) DeleteOne(ctx context.Context, filter bson.M) error {
	_, err := c.coll.DeleteOne(ctx, filter)
	return err
}

func (c *collection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (c *collection) SetFields(ctx context.Context, filter bson.M, fields bson.M) error {
	_, err := c.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	return err
}

func (c *collection) IncFields(ctx context.Context, filter bson.M, deltas bson.M, upsert bool) error {
	_, err := c.coll.UpdateOne(ctx, filter, bson.M{"$inc": deltas}, options.UpdateOne().SetUpsert(upsert))
	return err
}

type cursor struct {
	coll   *mongo.Collection
	filter bson.M
	opts   *options.FindOptionsBuilder
}

func (cur *cursor) Sort(field string, order int) storage.Cursor {
	cur.opts.SetSort(bson.D{{Key: field, Value: order}})
	return cur
}

func (cur *cursor) Skip(n int64) storage.Cursor {
	cur.opts.SetSkip(n)
	return cur
}

func (cur *cursor) Limit(n int64) storage.Cursor {
	cur.opts.SetLimit(n)
	return cur
}

func (cur *cursor) All(ctx context.Context, results interface{}) error {
	c, err := cur.coll.Find(ctx, cur.filter, cur.opts)
	if err != nil {
		return err
	}
	return c.All(ctx, results)
}
