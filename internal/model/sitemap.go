package model

import "time"

type SitemapEntry struct {
	Author      string    `json:"author"`
	UID         string    `json:"uid"`
	Slug        string    `json:"slug,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// Sitemap lists every crawlable page: profile, blog, about and gallery
// pages per user, plus one entry per live post and project.
type Sitemap struct {
	Usernames          []string       `json:"usernames"`
	GalleryUsernames   []string       `json:"gallery_usernames"`
	ChangelogUsernames []string       `json:"changelog_usernames"`
	Posts              []SitemapEntry `json:"posts"`
	Projects           []SitemapEntry `json:"projects"`
}
