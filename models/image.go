package models

// ImageProvider tags the stock-photo service an image came from.
type ImageProvider string

const (
	ProviderPexels   ImageProvider = "pexels"
	ProviderUnsplash ImageProvider = "unsplash"
	ProviderPixabay  ImageProvider = "pixabay"
)

// NormalizedImage is the provider-agnostic search result.
// ID is unique only within its provider.
type NormalizedImage struct {
	ID              string        `bson:"id" json:"id"`
	URL             string        `bson:"url" json:"url"`
	ThumbnailURL    string        `bson:"thumbnail_url" json:"thumbnailUrl"`
	Alt             string        `bson:"alt" json:"alt"`
	Photographer    *string       `bson:"photographer,omitempty" json:"photographer"`
	PhotographerURL string        `bson:"photographer_url,omitempty" json:"photographerUrl,omitempty"`
	SourceURL       string        `bson:"source_url,omitempty" json:"sourceUrl,omitempty"`
	Width           int           `bson:"width,omitempty" json:"width,omitempty"`
	Height          int           `bson:"height,omitempty" json:"height,omitempty"`
	Provider        ImageProvider `bson:"provider" json:"provider"`
}
