package model

import "time"

type PostInfo struct {
	PostUID     string    `bson:"post_uid" json:"post_uid"`
	Title       string    `bson:"title" json:"title"`
	Subtitle    string    `bson:"subtitle" json:"subtitle"`
	Author      string    `bson:"author" json:"author"`
	Tags        []string  `bson:"tags" json:"tags"`
	CoverURL    string    `bson:"cover_url" json:"cover_url"`
	CustomSlug  string    `bson:"custom_slug" json:"custom_slug"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	LastUpdated time.Time `bson:"last_updated" json:"last_updated"`
	Archived    bool      `bson:"archived" json:"archived"`
	Featured    bool      `bson:"featured" json:"featured"`
	Views       int64     `bson:"views" json:"views"`
	Reads       int64     `bson:"reads" json:"reads"`
}

type PostContent struct {
	PostUID string `bson:"post_uid" json:"post_uid"`
	Author  string `bson:"author" json:"author"`
	Content string `bson:"content" json:"content"`
}

type FullPost struct {
	Info    PostInfo `json:"info"`
	Content string   `json:"content"`
}

type RenderedPost struct {
	Info        PostInfo `json:"info"`
	ContentHTML string   `json:"content_html"`
	ReadTime    string   `json:"read_time"`
}

type PostUpdate struct {
	Title      string
	Subtitle   string
	Tags       []string
	CoverURL   string
	CustomSlug string
	Content    string
}
