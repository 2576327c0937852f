package docstore

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// applyTagDeltas adjusts the per-tag counters stored on the author's
// user-info document. With upsert set, counters for unseen tags are
// created on the fly.
func applyTagDeltas(ctx context.Context, userInfo storage.Collection, username string, tags []string, delta int, upsert bool) error {
	if len(tags) == 0 {
		return nil
	}

	deltas := bson.M{}
	for _, tag := range tags {
		deltas["tags."+tag] = delta
	}
	return userInfo.IncFields(ctx, bson.M{"username": username}, deltas, upsert)
}
