package docstore

import (
	"context"
	"math"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// paginate counts the documents matching filter and validates the
// requested page against the result. Page numbers outside [1, pages]
// return ErrInvalidPage; they are never clamped. An empty collection
// still has exactly one (empty) page.
func paginate(ctx context.Context, coll storage.Collection, filter bson.M, page int, pageSize int) (*model.Pagination, error) {
	total, err := coll.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := 1
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	if page < 1 || page > pages {
		return nil, ErrInvalidPage
	}

	return &model.Pagination{
		Page:     page,
		PageSize: pageSize,
		Pages:    pages,
		Total:    total,
		HasNext:  int64(page)*int64(pageSize) < total,
		HasPrev:  page > 1,
	}, nil
}
