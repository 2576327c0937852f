package docstore

import (
	"context"
	"strings"
	"testing"

	"github.com/BloggingApp/blog-service/internal/storage/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestRandomUID_Format(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		uid, err := randomUID()
		require.NoError(t, err)
		require.Len(t, uid, UID_LENGTH)
		for _, r := range uid {
			assert.True(t, strings.ContainsRune(uidAlphabet, r), "unexpected rune %q in uid %s", r, uid)
		}
		seen[uid] = true
	}
	assert.Len(t, seen, 100, "100 draws should not collide")
}

func TestNewUID_ChecksCollection(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	uid1, err := newUID(ctx, store.PostInfo, "post_uid")
	require.NoError(t, err)
	require.NoError(t, store.PostInfo.InsertOne(ctx, bson.M{"post_uid": uid1}))

	uid2, err := newUID(ctx, store.PostInfo, "post_uid")
	require.NoError(t, err)
	assert.NotEqual(t, uid1, uid2)

	// The same value can live in another collection's namespace.
	uid3, err := newUID(ctx, store.ProjectInfo, "project_uid")
	require.NoError(t, err)
	assert.Len(t, uid3, UID_LENGTH)
}
