package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"editorial-cms/aigateway"
	"editorial-cms/models"
	"editorial-cms/richtext"
)

// MaxNewsletterPosts caps how many posts go into one issue.
const MaxNewsletterPosts = 10

var ErrNoPosts = errors.New("newsletter needs at least one post")

type NewsletterPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	URL     string `json:"url"`
}

type NewsletterRequest struct {
	Posts     []NewsletterPost           `json:"posts"`
	Audience  string                     `json:"audience"`
	Frequency models.NewsletterFrequency `json:"frequency"`
	SendAt    *time.Time                 `json:"send_at"`
}

type newsletterResponse struct {
	Subject   string `json:"subject"`
	Preheader string `json:"preheader"`
	Intro     string `json:"intro"`
	Sections  []struct {
		Index   int    `json:"index"`
		Heading string `json:"heading"`
		Blurb   string `json:"blurb"`
	} `json:"sections"`
	Outro string `json:"outro"`
}

const newsletterSystemPrompt = `You write the editorial newsletter of a publication.
Respond ONLY with a JSON object with the keys:
subject (string, at most 80 characters), preheader (string, at most 120 characters), intro (string),
sections (array of objects with index (the number of the post in the list), heading (string) and blurb (string, 1 to 3 sentences)),
outro (string).
Do not wrap the JSON in a markdown code block.`

type NewsletterComposer struct{ base }

func NewNewsletterComposer(gen aigateway.Generator, tiers Tiers, language string) *NewsletterComposer {
	return &NewsletterComposer{newBase(gen, tiers, language)}
}

func (c *NewsletterComposer) Compose(ctx context.Context, req NewsletterRequest) (models.Newsletter, error) {
	posts := req.Posts
	if len(posts) == 0 {
		return models.Newsletter{}, ErrNoPosts
	}
	if len(posts) > MaxNewsletterPosts {
		posts = posts[:MaxNewsletterPosts]
	}

	var b strings.Builder
	if a := clip(req.Audience, TitleLimit); a != "" {
		fmt.Fprintf(&b, "Audience: %s\n", a)
	}
	b.WriteString("Posts:\n")
	// excerpts share the preview budget
	per := PreviewLimit / len(posts)
	for i, p := range posts {
		fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, clip(p.Title, TitleLimit), clip(p.Excerpt, per))
	}
	fmt.Fprintf(&b, "\nWrite every value in %s.", c.language)

	raw, err := aigateway.GenerateJSON[newsletterResponse](ctx, c.gen, b.String(), c.fast(newsletterSystemPrompt, 1500))
	if err != nil {
		return models.Newsletter{}, err
	}

	nl := models.Newsletter{
		Subject:   clip(raw.Subject, 80),
		Preheader: clip(raw.Preheader, 120),
		Intro:     strings.TrimSpace(raw.Intro),
		Outro:     strings.TrimSpace(raw.Outro),
		Sections:  make([]models.NewsletterSection, 0, len(posts)),
		Schedule:  schedule(req),
	}
	if nl.Subject == "" {
		nl.Subject = clip(posts[0].Title, 80)
	}

	used := make(map[int]bool, len(posts))
	for _, s := range raw.Sections {
		i := s.Index - 1
		if i < 0 || i >= len(posts) || used[i] {
			continue
		}
		used[i] = true
		nl.Sections = append(nl.Sections, section(posts[i], s.Heading, s.Blurb))
	}
	// posts the model skipped still get a section
	for i, p := range posts {
		if !used[i] {
			nl.Sections = append(nl.Sections, section(p, "", ""))
		}
	}

	nl.Markdown = newsletterMarkdown(nl)
	html, err := richtext.RenderMarkdown([]byte(nl.Markdown))
	if err != nil {
		return models.Newsletter{}, fmt.Errorf("render newsletter: %w", err)
	}
	nl.HTML = html
	return nl, nil
}

func section(p NewsletterPost, heading, blurb string) models.NewsletterSection {
	s := models.NewsletterSection{
		PostID:  p.ID,
		Heading: strings.TrimSpace(heading),
		Blurb:   strings.TrimSpace(blurb),
		URL:     p.URL,
	}
	if s.Heading == "" {
		s.Heading = strings.TrimSpace(p.Title)
	}
	if s.Blurb == "" {
		s.Blurb = strings.TrimSpace(p.Excerpt)
	}
	return s
}

func schedule(req NewsletterRequest) models.NewsletterSchedule {
	f := req.Frequency
	switch f {
	case models.FrequencyOnce, models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
	default:
		f = models.FrequencyOnce
	}
	return models.NewsletterSchedule{Frequency: f, SendAt: req.SendAt}
}

func newsletterMarkdown(nl models.Newsletter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", nl.Subject)
	if nl.Intro != "" {
		fmt.Fprintf(&b, "%s\n\n", nl.Intro)
	}
	for _, s := range nl.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Heading)
		if s.Blurb != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Blurb)
		}
		if s.URL != "" {
			fmt.Fprintf(&b, "[Leia mais](%s)\n\n", s.URL)
		}
	}
	if nl.Outro != "" {
		fmt.Fprintf(&b, "%s\n", nl.Outro)
	}
	return strings.TrimSpace(b.String()) + "\n"
}
