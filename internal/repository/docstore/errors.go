package docstore

import "errors"

var (
	ErrNotFound    = errors.New("document not found")
	ErrInvalidPage = errors.New("invalid page number")
)
