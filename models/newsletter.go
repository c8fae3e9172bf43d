package models

import "time"

// NewsletterFrequency is part of the schedule data shape; nothing in this module executes it.
type NewsletterFrequency string

const (
	FrequencyOnce    NewsletterFrequency = "once"
	FrequencyDaily   NewsletterFrequency = "daily"
	FrequencyWeekly  NewsletterFrequency = "weekly"
	FrequencyMonthly NewsletterFrequency = "monthly"
)

// Newsletter is a composed issue ready to be handed to a sender.
type Newsletter struct {
	Subject   string              `bson:"subject" json:"subject"`
	Preheader string              `bson:"preheader" json:"preheader"`
	Intro     string              `bson:"intro" json:"intro"`
	Sections  []NewsletterSection `bson:"sections" json:"sections"`
	Outro     string              `bson:"outro" json:"outro"`
	Markdown  string              `bson:"markdown" json:"markdown"`
	HTML      string              `bson:"html" json:"html"`
	Schedule  NewsletterSchedule  `bson:"schedule" json:"schedule"`
}

type NewsletterSection struct {
	PostID  string `bson:"post_id" json:"post_id"`
	Heading string `bson:"heading" json:"heading"`
	Blurb   string `bson:"blurb" json:"blurb"`
	URL     string `bson:"url" json:"url"`
}

type NewsletterSchedule struct {
	Frequency NewsletterFrequency `bson:"frequency" json:"frequency"`
	SendAt    *time.Time          `bson:"send_at,omitempty" json:"send_at,omitempty"`
}
