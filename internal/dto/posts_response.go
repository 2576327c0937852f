package dto

import "github.com/BloggingApp/blog-service/internal/model"

// PostPage is one page of a public blog listing. It is cached as a
// unit, pagination state included.
type PostPage struct {
	Posts      []*model.PostInfo `json:"posts"`
	Pagination model.Pagination  `json:"pagination"`
}

type BlogPage struct {
	Profile model.UserProfile `json:"profile"`
	Page    PostPage          `json:"page"`
}

// PostView is the public reading view: rendered content plus the
// comment thread, oldest comment first.
type PostView struct {
	Post     *model.RenderedPost `json:"post"`
	Comments []*model.Comment    `json:"comments"`
}

type BackstagePost struct {
	Info         *model.PostInfo `json:"info"`
	CommentCount int64           `json:"comment_count"`
}

type BackstagePostPage struct {
	Posts      []*BackstagePost `json:"posts"`
	Pagination model.Pagination `json:"pagination"`
}
