package model

import "time"

var ChangelogCategories = []string{"Career", "Personal", "About this site", "Others"}

type Changelog struct {
	ChangelogUID    string    `bson:"changelog_uid" json:"changelog_uid"`
	Author          string    `bson:"author" json:"author"`
	Title           string    `bson:"title" json:"title"`
	Date            time.Time `bson:"date" json:"date"`
	Category        string    `bson:"category" json:"category"`
	Content         string    `bson:"content" json:"content"`
	Tags            []string  `bson:"tags" json:"tags"`
	Link            string    `bson:"link" json:"link"`
	LinkDescription string    `bson:"link_description" json:"link_description"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	LastUpdated     time.Time `bson:"last_updated" json:"last_updated"`
	Archived        bool      `bson:"archived" json:"archived"`
}

type RenderedChangelog struct {
	Entry       Changelog `json:"entry"`
	ContentHTML string    `json:"content_html"`
}

type ChangelogUpdate struct {
	Title           string
	Date            time.Time
	Category        string
	Content         string
	Tags            []string
	Link            string
	LinkDescription string
}
