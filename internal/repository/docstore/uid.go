package docstore

import (
	"context"
	"crypto/rand"

	"github.com/BloggingApp/blog-service/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	UID_LENGTH   = 8
	uidAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
	uidByteLimit = 252 // largest multiple of len(uidAlphabet) below 256
)

func randomUID() (string, error) {
	uid := make([]byte, 0, UID_LENGTH)
	buf := make([]byte, 16)
	for len(uid) < UID_LENGTH {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			// Reject bytes past the limit so every rune stays equally likely.
			if b >= uidByteLimit {
				continue
			}
			uid = append(uid, uidAlphabet[int(b)%len(uidAlphabet)])
			if len(uid) == UID_LENGTH {
				break
			}
		}
	}
	return string(uid), nil
}

// newUID generates an 8-rune lowercase alphanumeric identifier that no
// document in coll currently holds under the given field.
func newUID(ctx context.Context, coll storage.Collection, field string) (string, error) {
	for {
		uid, err := randomUID()
		if err != nil {
			return "", err
		}

		n, err := coll.Count(ctx, bson.M{field: uid})
		if err != nil {
			return "", err
		}
		if n == 0 {
			return uid, nil
		}
	}
}
