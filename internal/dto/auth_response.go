package dto

import "github.com/BloggingApp/blog-service/internal/model"

type SignInResponse struct {
	Ok          bool   `json:"ok"`
	AccessToken string `json:"access_token"`
}

type SignUpResponse struct {
	Ok   bool           `json:"ok"`
	User model.AuthUser `json:"user"`
}
