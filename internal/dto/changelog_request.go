package dto

// Date uses the MM/DD/YYYY format the changelog editor produces.
type CreateChangelogRequest struct {
	Title           string `json:"title" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Category        string `json:"category" binding:"required"`
	Tags            string `json:"tags" binding:"required"`
	Content         string `json:"content" binding:"required"`
	Link            string `json:"link" binding:"omitempty,url"`
	LinkDescription string `json:"link_description"`
}

type EditChangelogRequest struct {
	Title           string `json:"title" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Category        string `json:"category" binding:"required"`
	Tags            string `json:"tags" binding:"required"`
	Content         string `json:"content" binding:"required"`
	Link            string `json:"link" binding:"omitempty,url"`
	LinkDescription string `json:"link_description"`
}
