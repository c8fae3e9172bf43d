package images

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"editorial-cms/config"
	"editorial-cms/models"
)

// pixabay rejects per_page below 3
const pixabayMinPerPage = 3

type pixabayResponse struct {
	Total     int `json:"total"`
	TotalHits int `json:"totalHits"`
	Hits      []struct {
		ID            int64  `json:"id"`
		PageURL       string `json:"pageURL"`
		Tags          string `json:"tags"`
		PreviewURL    string `json:"previewURL"`
		WebformatURL  string `json:"webformatURL"`
		LargeImageURL string `json:"largeImageURL"`
		ImageWidth    int    `json:"imageWidth"`
		ImageHeight   int    `json:"imageHeight"`
		User          string `json:"user"`
		UserID        int64  `json:"user_id"`
	} `json:"hits"`
}

// Pixabay searches GET /api/ with the key as a query parameter.
type Pixabay struct{ client }

func NewPixabay(cfg config.ImageProviderConfig, hc *http.Client) *Pixabay {
	return &Pixabay{newClient(models.ProviderPixabay, cfg, hc)}
}

func (p *Pixabay) Search(ctx context.Context, q Query) (Page, error) {
	q = q.normalized()
	v := url.Values{}
	v.Set("key", p.apiKey)
	v.Set("q", q.Text)
	v.Set("image_type", "photo")
	v.Set("safesearch", "true")
	w := pixabayWindow(q)
	v.Set("page", strconv.Itoa(w.page))
	v.Set("per_page", strconv.Itoa(w.perPage))
	switch q.Orientation {
	case OrientationLandscape:
		v.Set("orientation", "horizontal")
	case OrientationPortrait:
		v.Set("orientation", "vertical")
	}

	var resp pixabayResponse
	if err := p.getJSON(ctx, "", v, nil, &resp); err != nil {
		return Page{}, err
	}

	hits := resp.Hits
	start := min(w.skip, len(hits))
	hits = hits[start:min(start+q.PerPage, len(hits))]
	page := Page{
		Images:  make([]models.NormalizedImage, 0, len(hits)),
		HasMore: w.offset+len(hits) < resp.TotalHits,
	}
	for _, h := range hits {
		full := firstNonEmpty(h.LargeImageURL, h.WebformatURL)
		if full == "" {
			continue
		}
		img := models.NormalizedImage{
			ID:           strconv.FormatInt(h.ID, 10),
			URL:          full,
			ThumbnailURL: firstNonEmpty(h.WebformatURL, h.PreviewURL, full),
			Alt:          h.Tags,
			Photographer: optional(h.User),
			SourceURL:    h.PageURL,
			Width:        h.ImageWidth,
			Height:       h.ImageHeight,
			Provider:     models.ProviderPixabay,
		}
		if h.User != "" && h.UserID != 0 {
			img.PhotographerURL = "https://pixabay.com/users/" + url.PathEscape(h.User) + "-" + strconv.FormatInt(h.UserID, 10) + "/"
		}
		page.Images = append(page.Images, img)
	}
	return page, nil
}

type pixabayPage struct {
	page, perPage int
	// offset 은 요청한 페이지의 첫 결과 위치, skip 은 upstream 페이지 안에서의 위치
	offset, skip int
}

// pixabayWindow maps the caller's page onto an upstream page whose size is a
// multiple of q.PerPage and at least pixabayMinPerPage, so the requested
// window always falls inside one upstream page.
func pixabayWindow(q Query) pixabayPage {
	per := q.PerPage
	if per < pixabayMinPerPage {
		per *= (pixabayMinPerPage + q.PerPage - 1) / q.PerPage
	}
	offset := (q.Page - 1) * q.PerPage
	return pixabayPage{page: offset/per + 1, perPage: per, offset: offset, skip: offset % per}
}
