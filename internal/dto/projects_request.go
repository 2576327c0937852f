package dto

type ProjectImageInput struct {
	URL     string `json:"url" binding:"required,url"`
	Caption string `json:"caption"`
}

type CreateProjectRequest struct {
	Title            string              `json:"title" binding:"required"`
	ShortDescription string              `json:"short_description" binding:"required"`
	Tags             string              `json:"tags" binding:"required"`
	Images           []ProjectImageInput `json:"images" binding:"required,min=1,max=5,dive"`
	CustomSlug       string              `json:"custom_slug"`
	Content          string              `json:"content" binding:"required"`
}

type EditProjectRequest struct {
	Title            string              `json:"title" binding:"required"`
	ShortDescription string              `json:"short_description" binding:"required"`
	Tags             string              `json:"tags" binding:"required"`
	Images           []ProjectImageInput `json:"images" binding:"required,min=1,max=5,dive"`
	CustomSlug       string              `json:"custom_slug"`
	Content          string              `json:"content" binding:"required"`
}
