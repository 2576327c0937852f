package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/blog-service/internal/repository/docstore"
	"github.com/BloggingApp/blog-service/internal/service"
)

var (
	errNotAuthorized           = errors.New("user is not authorized")
	errPageMustBeInt           = errors.New("page must be int")
	errAuthorRequired          = errors.New("author query parameter is required")
	errEmailOrUsernameRequired = errors.New("email or username query parameter is required")
	errNameRequired            = errors.New("name is required")
	errPageNotFound            = errors.New("page not found")
)

// errorStatus picks the HTTP status for a service error. Anything not
// listed is treated as internal.
func errorStatus(err error) int {
	switch err {
	case docstore.ErrNotFound, docstore.ErrInvalidPage:
		return http.StatusNotFound
	case service.ErrInvalidSlug, service.ErrInvalidDate, service.ErrInvalidCategory:
		return http.StatusBadRequest
	case service.ErrEmailAlreadyTaken, service.ErrUsernameAlreadyTaken:
		return http.StatusConflict
	case service.ErrAccountNotFound, service.ErrInvalidPassword:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
