package models

import "time"

// PublishKind enumerates the publication states of a post.
type PublishKind int

const (
	PublishDraft PublishKind = iota
	PublishScheduled
	PublishPublished
	PublishArchived
)

func (k PublishKind) String() string {
	switch k {
	case PublishScheduled:
		return "scheduled"
	case PublishPublished:
		return "published"
	case PublishArchived:
		return "archived"
	default:
		return "draft"
	}
}

// PublishState is the explicit form of the (status, published_at) pair.
// At is meaningful for Scheduled and Published, and optional for Archived.
type PublishState struct {
	Kind PublishKind
	At   time.Time
}

// DerivePublishState resolves the publish-date policy:
//   - published without a date is published now;
//   - a future date on a draft (or on a published post) is scheduled;
//   - an elapsed date on a draft, or without a status, is published.
//
// Archived posts stay archived and keep their date.
func DerivePublishState(status Status, publishedAt *time.Time, now time.Time) PublishState {
	switch status {
	case StatusArchived:
		st := PublishState{Kind: PublishArchived}
		if publishedAt != nil {
			st.At = *publishedAt
		}
		return st
	case StatusPublished:
		if publishedAt == nil {
			return PublishState{Kind: PublishPublished, At: now}
		}
		if publishedAt.After(now) {
			return PublishState{Kind: PublishScheduled, At: *publishedAt}
		}
		return PublishState{Kind: PublishPublished, At: *publishedAt}
	default:
		if publishedAt == nil {
			return PublishState{Kind: PublishDraft}
		}
		if publishedAt.After(now) {
			return PublishState{Kind: PublishScheduled, At: *publishedAt}
		}
		return PublishState{Kind: PublishPublished, At: *publishedAt}
	}
}

// Fields maps the state back onto the stored fields.
func (s PublishState) Fields() (Status, *time.Time) {
	at := s.At
	switch s.Kind {
	case PublishScheduled:
		return StatusDraft, &at
	case PublishPublished:
		return StatusPublished, &at
	case PublishArchived:
		if at.IsZero() {
			return StatusArchived, nil
		}
		return StatusArchived, &at
	default:
		return StatusDraft, nil
	}
}

// ApplyPublishPolicy normalizes the stored pair so that a published post always
// carries a date that is not in the future.
func ApplyPublishPolicy(status Status, publishedAt *time.Time, now time.Time) (Status, *time.Time) {
	return DerivePublishState(status, publishedAt, now).Fields()
}
