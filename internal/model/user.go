package model

import "time"

const SOCIAL_LINK_SLOTS = 5

type SocialLink struct {
	URL      string `bson:"url" json:"url"`
	Platform string `bson:"platform" json:"platform"`
}

// SocialLinks is a positional list: slot order is preserved across
// reads and writes, empty slots stay zero-valued.
type SocialLinks [SOCIAL_LINK_SLOTS]SocialLink

type UserInfo struct {
	Username         string         `bson:"username" json:"username"`
	Email            string         `bson:"email" json:"email"`
	Blogname         string         `bson:"blogname" json:"blogname"`
	ProfileImgURL    string         `bson:"profile_img_url" json:"profile_img_url"`
	CoverURL         string         `bson:"cover_url" json:"cover_url"`
	CreatedAt        time.Time      `bson:"created_at" json:"created_at"`
	ShortBio         string         `bson:"short_bio" json:"short_bio"`
	SocialLinks      SocialLinks    `bson:"social_links" json:"social_links"`
	GalleryEnabled   bool           `bson:"gallery_enabled" json:"gallery_enabled"`
	ChangelogEnabled bool           `bson:"changelog_enabled" json:"changelog_enabled"`
	TotalViews       int64          `bson:"total_views" json:"total_views"`
	Tags             map[string]int `bson:"tags" json:"tags"`
}

type UserCreds struct {
	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
}

type UserAbout struct {
	Username string `bson:"username" json:"username"`
	About    string `bson:"about" json:"about"`
}

type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type UserProfile struct {
	Info     UserInfo   `json:"info"`
	TagCloud []TagCount `json:"tag_cloud"`
}

type AboutPage struct {
	Info      UserInfo `json:"info"`
	About     string   `json:"about"`
	AboutHTML string   `json:"about_html"`
}

type UserSettingsUpdate struct {
	Blogname         string
	CoverURL         string
	GalleryEnabled   bool
	ChangelogEnabled bool
}

type UserAboutUpdate struct {
	ProfileImgURL string
	ShortBio      string
	About         string
}

type AuthUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
