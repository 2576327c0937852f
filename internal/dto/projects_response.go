package dto

import "github.com/BloggingApp/blog-service/internal/model"

type ProjectPage struct {
	Projects   []*model.ProjectInfo `json:"projects"`
	Pagination model.Pagination     `json:"pagination"`
}
