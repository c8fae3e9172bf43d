package images

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"editorial-cms/config"
	"editorial-cms/models"
)

type pexelsResponse struct {
	Page         int    `json:"page"`
	PerPage      int    `json:"per_page"`
	TotalResults int    `json:"total_results"`
	NextPage     string `json:"next_page"`
	Photos       []struct {
		ID              int64  `json:"id"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
		URL             string `json:"url"`
		Photographer    string `json:"photographer"`
		PhotographerURL string `json:"photographer_url"`
		Alt             string `json:"alt"`
		Src             struct {
			Original string `json:"original"`
			Large2x  string `json:"large2x"`
			Large    string `json:"large"`
			Medium   string `json:"medium"`
			Tiny     string `json:"tiny"`
		} `json:"src"`
	} `json:"photos"`
}

// Pexels searches GET /search with the raw key in Authorization.
type Pexels struct{ client }

func NewPexels(cfg config.ImageProviderConfig, hc *http.Client) *Pexels {
	return &Pexels{newClient(models.ProviderPexels, cfg, hc)}
}

func (p *Pexels) Search(ctx context.Context, q Query) (Page, error) {
	q = q.normalized()
	v := url.Values{}
	v.Set("query", q.Text)
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("per_page", strconv.Itoa(q.PerPage))
	if q.Orientation != OrientationAny {
		v.Set("orientation", string(q.Orientation))
	}
	h := http.Header{}
	h.Set("Authorization", p.apiKey)

	var resp pexelsResponse
	if err := p.getJSON(ctx, "/search", v, h, &resp); err != nil {
		return Page{}, err
	}

	page := Page{Images: make([]models.NormalizedImage, 0, len(resp.Photos)), HasMore: resp.NextPage != ""}
	for _, ph := range resp.Photos {
		full := firstNonEmpty(ph.Src.Large2x, ph.Src.Large, ph.Src.Original)
		// 원본 URL 이 없으면 쓸 수 없는 결과
		if full == "" {
			continue
		}
		page.Images = append(page.Images, models.NormalizedImage{
			ID:              strconv.FormatInt(ph.ID, 10),
			URL:             full,
			ThumbnailURL:    firstNonEmpty(ph.Src.Medium, ph.Src.Tiny, full),
			Alt:             ph.Alt,
			Photographer:    optional(ph.Photographer),
			PhotographerURL: ph.PhotographerURL,
			SourceURL:       ph.URL,
			Width:           ph.Width,
			Height:          ph.Height,
			Provider:        models.ProviderPexels,
		})
	}
	return page, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
