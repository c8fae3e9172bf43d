package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"editorial-cms/richtext"
)

// Status is the stored publication status. "Scheduled" has no value of its own;
// see PublishState for the explicit view.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// WriteOperation distinguishes the two write paths of the content store.
type WriteOperation string

const (
	OperationCreate WriteOperation = "create"
	OperationUpdate WriteOperation = "update"
)

// Post is the editorial content document.
// Collection: posts
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     richtext.Content   `bson:"content" json:"content"`
	Category    string             `bson:"category" json:"category"`
	Tags        TagList            `bson:"tags" json:"tags"`
	Status      Status             `bson:"status" json:"status"`
	PublishedAt *time.Time         `bson:"published_at,omitempty" json:"published_at,omitempty"`
	SEO         *SEOMeta           `bson:"seo,omitempty" json:"seo,omitempty"`
	CoverImage  *NormalizedImage   `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
}

// State returns the explicit publication state the document is in at now.
func (p Post) State(now time.Time) PublishState {
	return DerivePublishState(p.Status, p.PublishedAt, now)
}

// SEOMeta nested info in Post
type SEOMeta struct {
	MetaTitle       string   `bson:"meta_title" json:"meta_title"`
	MetaDescription string   `bson:"meta_description" json:"meta_description"`
	FocusKeyword    string   `bson:"focus_keyword" json:"focus_keyword"`
	Keywords        []string `bson:"keywords" json:"keywords"`
}
