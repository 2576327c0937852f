package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type testDoc struct {
	Name    string    `bson:"name"`
	Group   string    `bson:"group"`
	Rank    int64     `bson:"rank"`
	Created time.Time `bson:"created"`
}

func seed(t *testing.T, c *collection, docs ...testDoc) {
	t.Helper()
	for _, doc := range docs {
		require.NoError(t, c.InsertOne(context.Background(), doc))
	}
}

func TestCollection_InsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	c := newCollection()
	seed(t, c,
		testDoc{Name: "alice", Group: "a", Rank: 1},
		testDoc{Name: "bob", Group: "a", Rank: 2},
	)

	var got testDoc
	require.NoError(t, c.FindOne(ctx, bson.M{"name": "bob"}, &got))
	assert.Equal(t, "bob", got.Name)
	assert.Equal(t, int64(2), got.Rank)

	err := c.FindOne(ctx, bson.M{"name": "carol"}, &got)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestCollection_TimeRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newCollection()

	created := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)
	seed(t, c, testDoc{Name: "alice", Created: created})

	var got testDoc
	require.NoError(t, c.FindOne(ctx, bson.M{"name": "alice"}, &got))
	assert.True(t, got.Created.Equal(created))

	// A time value also works as an equality filter.
	require.NoError(t, c.FindOne(ctx, bson.M{"created": created}, &got))
	assert.Equal(t, "alice", got.Name)
}

func TestCursor_SortSkipLimit(t *testing.T) {
	ctx := context.Background()
	c := newCollection()
	seed(t, c,
		testDoc{Name: "a", Group: "g", Rank: 3},
		testDoc{Name: "b", Group: "g", Rank: 1},
		testDoc{Name: "c", Group: "g", Rank: 4},
		testDoc{Name: "d", Group: "other", Rank: 5},
		testDoc{Name: "e", Group: "g", Rank: 2},
	)

	var docs []testDoc
	err := c.Find(ctx, bson.M{"group": "g"}).Sort("rank", -1).All(ctx, &docs)
	require.NoError(t, err)
	require.Len(t, docs, 4)
	assert.Equal(t, []string{"c", "a", "e", "b"}, names(docs))

	docs = nil
	err = c.Find(ctx, bson.M{"group": "g"}).Sort("rank", 1).Skip(1).Limit(2).All(ctx, &docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "a"}, names(docs))

	// Skipping past the end leaves an empty result, not an error.
	docs = nil
	err = c.Find(ctx, bson.M{"group": "g"}).Skip(10).All(ctx, &docs)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func names(docs []testDoc) []string {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.Name)
	}
	return out
}

func TestCursor_DecodesPointerSlices(t *testing.T) {
	ctx := context.Background()
	c := newCollection()
	seed(t, c, testDoc{Name: "a", Rank: 1}, testDoc{Name: "b", Rank: 2})

	var docs []*testDoc
	err := c.Find(ctx, bson.M{}).Sort("rank", 1).All(ctx, &docs)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].Name)
	assert.Equal(t, "b", docs[1].Name)
}

func TestCollection_Count(t *testing.T) {
	ctx := context.Background()
	c := newCollection()
	seed(t, c,
		testDoc{Name: "a", Group: "g"},
		testDoc{Name: "b", Group: "g"},
		testDoc{Name: "c", Group: "other"},
	)

	n, err := c.Count(ctx, bson.M{"group": "g"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = c.Count(ctx, bson.M{"group": "missing"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCollection_DeleteOneAndMany(t *testing.T) {
	ctx := context.Background()
	c := newCollection()
	seed(t, c,
		testDoc{Name: "a", Group: "g"},
		testDoc{Name: "b", Group: "g"},
		testDoc{Name: "c", Group: "other"},
	)

	require.NoError(t, c.DeleteOne(ctx, bson.M{"name": "a"}))
	n, err := c.Count(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	deleted, err := c.DeleteMany(ctx, bson.M{"group": "g"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	n, err = c.Count(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCollection_SetFields(t *testing.T) {
	ctx := context.Background()
	c := newCollection()
	seed(t, c, testDoc{Name: "a", Group: "g", Rank: 1})

	err := c.SetFields(ctx, bson.M{"name": "a"}, bson.M{"rank": 9})
	require.NoError(t, err)

	var got testDoc
	require.NoError(t, c.FindOne(ctx, bson.M{"name": "a"}, &got))
	assert.Equal(t, int64(9), got.Rank)
	assert.Equal(t, "g", got.Group, "untouched fields keep their value")
}

func TestCollection_IncFields(t *testing.T) {
	ctx := context.Background()
	c := newCollection()
	seed(t, c, testDoc{Name: "a", Rank: 1})

	require.NoError(t, c.IncFields(ctx, bson.M{"name": "a"}, bson.M{"rank": 2}, false))
	require.NoError(t, c.IncFields(ctx, bson.M{"name": "a"}, bson.M{"rank": -1}, false))

	var got testDoc
	require.NoError(t, c.FindOne(ctx, bson.M{"name": "a"}, &got))
	assert.Equal(t, int64(2), got.Rank)
}

func TestCollection_IncFields_DottedPathUpsert(t *testing.T) {
	ctx := context.Background()
	c := newCollection()

	// Without upsert a missing document stays missing.
	require.NoError(t, c.IncFields(ctx, bson.M{"username": "alice"}, bson.M{"tags.go": 1}, false))
	n, err := c.Count(ctx, bson.M{"username": "alice"})
	require.NoError(t, err)
	assert.Zero(t, n)

	// With upsert the document is seeded from the filter.
	require.NoError(t, c.IncFields(ctx, bson.M{"username": "alice"}, bson.M{"tags.go": 1}, true))
	require.NoError(t, c.IncFields(ctx, bson.M{"username": "alice"}, bson.M{"tags.go": 1, "tags.web": 1}, true))

	var got struct {
		Username string         `bson:"username"`
		Tags     map[string]int `bson:"tags"`
	}
	require.NoError(t, c.FindOne(ctx, bson.M{"username": "alice"}, &got))
	assert.Equal(t, 2, got.Tags["go"])
	assert.Equal(t, 1, got.Tags["web"])

	n, err = c.Count(ctx, bson.M{"username": "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "upsert must not duplicate the document")
}

func TestNew_CollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.PostInfo.InsertOne(ctx, bson.M{"post_uid": "aaaa1111"}))

	n, err := store.PostContent.Count(ctx, bson.M{})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = store.PostInfo.Count(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
