package service

import "errors"

var (
	ErrInternal             = errors.New("internal server error")
	ErrEmailAlreadyTaken    = errors.New("email is already taken")
	ErrUsernameAlreadyTaken = errors.New("username is already taken")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrInvalidSlug          = errors.New("slug must be an url-friendly string")
	ErrInvalidDate          = errors.New("date must use the MM/DD/YYYY format")
	ErrInvalidCategory      = errors.New("unknown changelog category")
)
