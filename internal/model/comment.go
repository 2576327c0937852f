package model

import "time"

type Comment struct {
	CommentUID string    `bson:"comment_uid" json:"comment_uid"`
	PostUID    string    `bson:"post_uid" json:"post_uid"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Comment    string    `bson:"comment" json:"comment"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// CommentAuthor is the identity variant a comment is created under.
// Both variants persist with the same document shape; the visitor
// variant carries a " (Visitor)" name suffix.
type CommentAuthor struct {
	Registered bool
	Name       string
	Email      string
}

func RegisteredCommenter(username string, email string) CommentAuthor {
	return CommentAuthor{
		Registered: true,
		Name:       username,
		Email:      email,
	}
}

func VisitorCommenter(name string, email string) CommentAuthor {
	return CommentAuthor{
		Registered: false,
		Name:       name,
		Email:      email,
	}
}

func (a CommentAuthor) DisplayName() string {
	if a.Registered {
		return a.Name
	}
	return a.Name + " (Visitor)"
}
