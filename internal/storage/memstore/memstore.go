// Package memstore keeps the whole document layout in process memory
// behind the same storage contract the mongo backend implements. It
// backs the "memory" storage profile and the test suite.
package memstore

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/BloggingApp/blog-service/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func New() *storage.Store {
	return &storage.Store{
		UserInfo:       newCollection(),
		UserCreds:      newCollection(),
		UserAbout:      newCollection(),
		PostInfo:       newCollection(),
		PostContent:    newCollection(),
		Comments:       newCollection(),
		ProjectInfo:    newCollection(),
		ProjectContent: newCollection(),
		Changelogs:     newCollection(),
	}
}

type collection struct {
	mu   sync.RWMutex
	docs []bson.M
}

func newCollection() *collection {
	return &collection{}
}

// normalize round-trips a value through bson so that stored documents,
// filters and updates all carry the same bson types (bson.DateTime for
// time.Time, int32/int64 for ints). Matching and sorting then behave
// like the real store's.
func normalize(value interface{}) (bson.M, error) {
	raw, err := bson.Marshal(value)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (c *collection) InsertOne(ctx context.Context, doc interface{}) error {
	normalized, err := normalize(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, normalized)
	return nil
}

func (c *collection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	normalized, err := normalize(filter)
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if matches(doc, normalized) {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return err
			}
			return bson.Unmarshal(raw, out)
		}
	}

	return mongo.ErrNoDocuments
}

func (c *collection) Find(ctx context.Context, filter bson.M) storage.Cursor {
	normalized, err := normalize(filter)
	return &cursor{coll: c, filter: normalized, err: err}
}

func (c *collection) Count(ctx context.Context, filter bson.M) (int64, error) {
	normalized, err := normalize(filter)
	if err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int64
	for _, doc := range c.docs {
		if matches(doc, normalized) {
			n++
		}
	}
	return n, nil
}

func (c *collection) DeleteOne(ctx context.Context, filter bson.M) error {
	normalized, err := normalize(filter)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if matches(doc, normalized) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (c *collection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	normalized, err := normalize(filter)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var kept []bson.M
	var deleted int64
	for _, doc := range c.docs {
		if matches(doc, normalized) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	c.docs = kept
	return deleted, nil
}

func (c *collection) SetFields(ctx context.Context, filter bson.M, fields bson.M) error {
	normalizedFilter, err := normalize(filter)
	if err != nil {
		return err
	}
	normalizedFields, err := normalize(fields)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if matches(doc, normalizedFilter) {
			for path, value := range normalizedFields {
				pathSet(doc, path, value)
			}
			return nil
		}
	}
	return nil
}

func (c *collection) IncFields(ctx context.Context, filter bson.M, deltas bson.M, upsert bool) error {
	normalizedFilter, err := normalize(filter)
	if err != nil {
		return err
	}
	normalizedDeltas, err := normalize(deltas)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if matches(doc, normalizedFilter) {
			for path, delta := range normalizedDeltas {
				addAt(doc, path, delta)
			}
			return nil
		}
	}

	if !upsert {
		return nil
	}

	// Upserted documents are seeded from the filter's equality
	// fields, the way the real store builds them.
	doc := bson.M{}
	for path, value := range normalizedFilter {
		pathSet(doc, path, value)
	}
	for path, delta := range normalizedDeltas {
		addAt(doc, path, delta)
	}
	c.docs = append(c.docs, doc)
	return nil
}

// matches checks every filter entry for equality against the document,
// resolving dotted paths. Operator filters are not supported; the
// repositories only issue equality filters.
func matches(doc bson.M, filter bson.M) bool {
	for path, want := range filter {
		got, ok := pathGet(doc, path)
		if !ok {
			return false
		}
		if !sameType(got, want) || compare(got, want) != 0 {
			return false
		}
	}
	return true
}

func pathGet(doc bson.M, path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	current := interface{}(doc)
	for i, part := range parts {
		m, ok := current.(bson.M)
		if !ok {
			return nil, false
		}
		value, ok := m[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return value, true
		}
		current = value
	}
	return nil, false
}

func pathSet(doc bson.M, path string, value interface{}) {
	parts := strings.Split(path, ".")
	current := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(bson.M)
		if !ok {
			next = bson.M{}
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func addAt(doc bson.M, path string, delta interface{}) {
	current, ok := pathGet(doc, path)
	if !ok {
		pathSet(doc, path, delta)
		return
	}

	if isInteger(current) && isInteger(delta) {
		pathSet(doc, path, asInt64(current)+asInt64(delta))
		return
	}

	currentFloat, _ := asFloat(current)
	deltaFloat, _ := asFloat(delta)
	pathSet(doc, path, currentFloat+deltaFloat)
}

const (
	rankNull = iota
	rankNumber
	rankString
	rankBool
	rankDateTime
	rankOther
)

func rank(value interface{}) int {
	switch value.(type) {
	case nil:
		return rankNull
	case int32, int64, float64:
		return rankNumber
	case string:
		return rankString
	case bool:
		return rankBool
	case bson.DateTime:
		return rankDateTime
	default:
		return rankOther
	}
}

func sameType(a, b interface{}) bool {
	return rank(a) == rank(b)
}

func compare(a, b interface{}) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}

	switch ra {
	case rankNull:
		return 0
	case rankNumber:
		af, _ := asFloat(a)
		bf, _ := asFloat(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case rankString:
		return strings.Compare(a.(string), b.(string))
	case rankBool:
		av, bv := a.(bool), b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		}
		return 1
	case rankDateTime:
		av, bv := int64(a.(bson.DateTime)), int64(b.(bson.DateTime))
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	default:
		if reflect.DeepEqual(a, b) {
			return 0
		}
		return 1
	}
}

func isInteger(value interface{}) bool {
	switch value.(type) {
	case int32, int64:
		return true
	}
	return false
}

func asInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int32:
		return int64(v)
	case int64:
		return v
	}
	return 0
}

func asFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

type cursor struct {
	coll      *collection
	filter    bson.M
	err       error
	sortField string
	sortOrder int
	skip      int64
	limit     int64
}

func (cur *cursor) Sort(field string, order int) storage.Cursor {
	cur.sortField = field
	cur.sortOrder = order
	return cur
}

func (cur *cursor) Skip(n int64) storage.Cursor {
	cur.skip = n
	return cur
}

func (cur *cursor) Limit(n int64) storage.Cursor {
	cur.limit = n
	return cur
}

func (cur *cursor) All(ctx context.Context, results interface{}) error {
	if cur.err != nil {
		return cur.err
	}

	cur.coll.mu.RLock()
	defer cur.coll.mu.RUnlock()

	var matched []bson.M
	for _, doc := range cur.coll.docs {
		if matches(doc, cur.filter) {
			matched = append(matched, doc)
		}
	}

	if cur.sortField != "" {
		field, order := cur.sortField, cur.sortOrder
		sort.SliceStable(matched, func(i, j int) bool {
			a, _ := pathGet(matched[i], field)
			b, _ := pathGet(matched[j], field)
			if order == storage.Desc {
				return compare(a, b) > 0
			}
			return compare(a, b) < 0
		})
	}

	if cur.skip > 0 {
		if cur.skip >= int64(len(matched)) {
			matched = nil
		} else {
			matched = matched[cur.skip:]
		}
	}
	if cur.limit > 0 && int64(len(matched)) > cur.limit {
		matched = matched[:cur.limit]
	}

	return decodeAll(matched, results)
}

// decodeAll unmarshals each matched document into a freshly allocated
// element of the results slice, mirroring what the driver's cursor
// does. results must be a pointer to a slice.
func decodeAll(docs []bson.M, results interface{}) error {
	pointer := reflect.ValueOf(results)
	if pointer.Kind() != reflect.Ptr || pointer.Elem().Kind() != reflect.Slice {
		return errors.New("results argument must be a pointer to a slice")
	}

	sliceValue := pointer.Elem()
	elemType := sliceValue.Type().Elem()
	out := reflect.MakeSlice(sliceValue.Type(), 0, len(docs))

	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}

		if elemType.Kind() == reflect.Ptr {
			elem := reflect.New(elemType.Elem())
			if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
				return err
			}
			out = reflect.Append(out, elem)
		} else {
			elem := reflect.New(elemType)
			if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
				return err
			}
			out = reflect.Append(out, elem.Elem())
		}
	}

	sliceValue.Set(out)
	return nil
}
