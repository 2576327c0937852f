package dto

type UpdateSettingsRequest struct {
	Blogname         string `json:"blogname" binding:"required,max=40"`
	CoverURL         string `json:"cover_url" binding:"omitempty,url"`
	GalleryEnabled   bool   `json:"gallery_enabled"`
	ChangelogEnabled bool   `json:"changelog_enabled"`
}

type UpdateAboutRequest struct {
	ProfileImgURL string `json:"profile_img_url" binding:"omitempty,url"`
	ShortBio      string `json:"short_bio"`
	About         string `json:"about"`
}

type SocialLinkInput struct {
	URL      string `json:"url" binding:"required,url"`
	Platform string `json:"platform" binding:"required"`
}

type UpdateSocialLinksRequest struct {
	Links []SocialLinkInput `json:"links" binding:"max=5,dive"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}
