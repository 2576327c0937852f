package dto

// Tags are submitted as one comma separated string, like the editor
// sends them.
type CreatePostRequest struct {
	Title      string `json:"title" binding:"required"`
	Subtitle   string `json:"subtitle" binding:"required"`
	Tags       string `json:"tags" binding:"required"`
	CoverURL   string `json:"cover_url" binding:"omitempty,url"`
	CustomSlug string `json:"custom_slug"`
	Content    string `json:"content" binding:"required"`
}

type EditPostRequest struct {
	Title      string `json:"title" binding:"required"`
	Subtitle   string `json:"subtitle" binding:"required"`
	Tags       string `json:"tags" binding:"required"`
	CoverURL   string `json:"cover_url" binding:"omitempty,url"`
	CustomSlug string `json:"custom_slug"`
	Content    string `json:"content" binding:"required"`
}

// Pointers so that an explicit false is told apart from a missing field.
type SetArchivedRequest struct {
	Archived *bool `json:"archived" binding:"required"`
}

type SetFeaturedRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}
