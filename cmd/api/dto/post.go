package dto

import (
	"time"

	"editorial-cms/lifecycle"
	"editorial-cms/models"
	"editorial-cms/richtext"
)

// PostRequestDTO is the body of create and update. Tags accept strings or {"tag": ...} objects.
type PostRequestDTO struct {
	Title       string                  `json:"title"`
	Slug        string                  `json:"slug"`
	Excerpt     string                  `json:"excerpt"`
	Content     richtext.Content        `json:"content"`
	Category    string                  `json:"category"`
	Tags        models.TagList          `json:"tags"`
	Status      models.Status           `json:"status"`
	PublishedAt *time.Time              `json:"published_at"`
	SEO         *models.SEOMeta         `json:"seo"`
	CoverImage  *models.NormalizedImage `json:"cover_image"`
}

func (r PostRequestDTO) ToModel() models.Post {
	return models.Post{
		Title:       r.Title,
		Slug:        r.Slug,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		Category:    r.Category,
		Tags:        r.Tags,
		Status:      r.Status,
		PublishedAt: r.PublishedAt,
		SEO:         r.SEO,
		CoverImage:  r.CoverImage,
	}
}

// PostDTO is a post as API consumers see it. ID is a hex string and State
// is the derived publication state (draft, scheduled, published, archived).
type PostDTO struct {
	ID          string                  `json:"id"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	Title       string                  `json:"title"`
	Slug        string                  `json:"slug"`
	Excerpt     string                  `json:"excerpt"`
	Content     richtext.Content        `json:"content"`
	Category    string                  `json:"category"`
	Tags        []string                `json:"tags"`
	Status      models.Status           `json:"status"`
	State       string                  `json:"state"`
	PublishedAt *time.Time              `json:"published_at,omitempty"`
	SEO         *models.SEOMeta         `json:"seo,omitempty"`
	CoverImage  *models.NormalizedImage `json:"cover_image,omitempty"`
}

func NewPostDTO(p models.Post, now time.Time) PostDTO {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return PostDTO{
		ID:          p.ID.Hex(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		Category:    p.Category,
		Tags:        tags,
		Status:      p.Status,
		State:       p.State(now).Kind.String(),
		PublishedAt: p.PublishedAt,
		SEO:         p.SEO,
		CoverImage:  p.CoverImage,
	}
}

// SavePostResponseDTO reports the saved post and whether its slug was
// confirmed unique before the write.
type SavePostResponseDTO struct {
	Post         PostDTO `json:"post"`
	SlugVerified bool    `json:"slug_verified"`
	SlugWarning  string  `json:"slug_warning,omitempty"`
}

func NewSavePostResponseDTO(p models.Post, slug lifecycle.SlugResult, now time.Time) SavePostResponseDTO {
	out := SavePostResponseDTO{Post: NewPostDTO(p, now), SlugVerified: slug.Verified}
	if !slug.Verified && slug.Err != nil {
		out.SlugWarning = slug.Err.Error()
	}
	return out
}
