package dto

import "github.com/BloggingApp/blog-service/internal/model"

type ChangelogPage struct {
	Entries    []*model.Changelog `json:"entries"`
	Pagination model.Pagination   `json:"pagination"`
}
