package dto

import "github.com/BloggingApp/blog-service/internal/model"

type UsernamesResponse struct {
	Usernames []string `json:"usernames"`
}

type UniqueResponse struct {
	Unique bool `json:"unique"`
}

type ProfileImgResponse struct {
	ProfileImgURL string `json:"profile_img_url"`
}

// TagPage collects everything published under one tag. Archived posts
// drop off tag pages; archived projects do not.
type TagPage struct {
	Tag      string               `json:"tag"`
	Posts    []*model.PostInfo    `json:"posts"`
	Projects []*model.ProjectInfo `json:"projects"`
}
