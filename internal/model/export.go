package model

import "time"

type ExportedInfo struct {
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Blogname      string      `json:"blogname"`
	ProfileImgURL string      `json:"profile_img_url"`
	CoverURL      string      `json:"cover_url"`
	CreatedAt     time.Time   `json:"created_at"`
	ShortBio      string      `json:"short_bio"`
	About         string      `json:"about"`
	SocialLinks   SocialLinks `json:"social_links"`
	TotalViews    int64       `json:"total_views"`
}

type ExportedPost struct {
	PostInfo
	Content string `json:"content"`
}

type ExportedProject struct {
	ProjectInfo
	Content string `json:"content"`
}

// UserExport is the denormalized document tree served by the data
// portability feature. Projects and changelogs are present only when
// the matching feature is enabled for the user.
type UserExport struct {
	Info       ExportedInfo               `json:"info"`
	Posts      map[string]ExportedPost    `json:"posts"`
	Projects   map[string]ExportedProject `json:"projects,omitempty"`
	Changelogs map[string]Changelog       `json:"changelogs,omitempty"`
}
