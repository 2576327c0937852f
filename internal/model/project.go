package model

import "time"

const PROJECT_IMAGE_SLOTS = 5

type ProjectImage struct {
	URL     string `bson:"url" json:"url"`
	Caption string `bson:"caption" json:"caption"`
}

// ProjectImages is a positional list just like SocialLinks.
type ProjectImages [PROJECT_IMAGE_SLOTS]ProjectImage

type ProjectInfo struct {
	ProjectUID       string        `bson:"project_uid" json:"project_uid"`
	Author           string        `bson:"author" json:"author"`
	Title            string        `bson:"title" json:"title"`
	ShortDescription string        `bson:"short_description" json:"short_description"`
	Tags             []string      `bson:"tags" json:"tags"`
	Images           ProjectImages `bson:"images" json:"images"`
	CustomSlug       string        `bson:"custom_slug" json:"custom_slug"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
	LastUpdated      time.Time     `bson:"last_updated" json:"last_updated"`
	Archived         bool          `bson:"archived" json:"archived"`
	Views            int64         `bson:"views" json:"views"`
	Reads            int64         `bson:"reads" json:"reads"`
}

type ProjectContent struct {
	ProjectUID string `bson:"project_uid" json:"project_uid"`
	Author     string `bson:"author" json:"author"`
	Content    string `bson:"content" json:"content"`
}

type FullProject struct {
	Info    ProjectInfo `json:"info"`
	Content string      `json:"content"`
}

type RenderedProject struct {
	Info        ProjectInfo `json:"info"`
	ContentHTML string      `json:"content_html"`
}

type ProjectUpdate struct {
	Title            string
	ShortDescription string
	Tags             []string
	Images           ProjectImages
	CustomSlug       string
	Content          string
}
