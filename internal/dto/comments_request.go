package dto

// Name and Email are only read for visitor comments; signed in users
// comment under their account identity.
type CreateCommentRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"omitempty,email"`
	Comment      string `json:"comment" binding:"required,min=1"`
	CaptchaToken string `json:"captcha_token" binding:"required"`
}
