package images

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"editorial-cms/config"
	"editorial-cms/models"
)

type unsplashResponse struct {
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Results    []struct {
		ID             string `json:"id"`
		Width          int    `json:"width"`
		Height         int    `json:"height"`
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Raw     string `json:"raw"`
			Full    string `json:"full"`
			Regular string `json:"regular"`
			Small   string `json:"small"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

// Unsplash searches GET /search/photos with "Client-ID <key>" auth.
type Unsplash struct{ client }

func NewUnsplash(cfg config.ImageProviderConfig, hc *http.Client) *Unsplash {
	return &Unsplash{newClient(models.ProviderUnsplash, cfg, hc)}
}

func (u *Unsplash) Search(ctx context.Context, q Query) (Page, error) {
	q = q.normalized()
	v := url.Values{}
	v.Set("query", q.Text)
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("per_page", strconv.Itoa(q.PerPage))
	switch q.Orientation {
	case OrientationSquare:
		v.Set("orientation", "squarish")
	case OrientationLandscape, OrientationPortrait:
		v.Set("orientation", string(q.Orientation))
	}
	h := http.Header{}
	h.Set("Authorization", "Client-ID "+u.apiKey)
	h.Set("Accept-Version", "v1")

	var resp unsplashResponse
	if err := u.getJSON(ctx, "/search/photos", v, h, &resp); err != nil {
		return Page{}, err
	}

	page := Page{Images: make([]models.NormalizedImage, 0, len(resp.Results)), HasMore: q.Page < resp.TotalPages}
	for _, r := range resp.Results {
		full := firstNonEmpty(r.URLs.Regular, r.URLs.Full, r.URLs.Raw)
		if r.ID == "" || full == "" {
			continue
		}
		page.Images = append(page.Images, models.NormalizedImage{
			ID:              r.ID,
			URL:             full,
			ThumbnailURL:    firstNonEmpty(r.URLs.Small, r.URLs.Thumb, full),
			Alt:             firstNonEmpty(r.AltDescription, r.Description),
			Photographer:    optional(r.User.Name),
			PhotographerURL: r.User.Links.HTML,
			SourceURL:       r.Links.HTML,
			Width:           r.Width,
			Height:          r.Height,
			Provider:        models.ProviderUnsplash,
		})
	}
	return page, nil
}
