package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"editorial-cms/cmd/api/dto"
	"editorial-cms/generation"
	"editorial-cms/services"
	"editorial-cms/validation"
)

// maxBatchItems caps one batch categorization request.
const maxBatchItems = 30

// bindAndRun binds the JSON body into Req, runs check and then run, and
// writes the result as 200.
func bindAndRun[Req, Resp any](check func(Req) error, run func(ctx context.Context, req Req) (Resp, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Req
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		if check != nil {
			if err := check(req); err != nil {
				respondError(c, err)
				return
			}
		}
		resp, err := run(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validation.New(field, field+" is required")
	}
	return nil
}

// KeywordsHandler godoc
// @Summary      Plan keywords for a topic
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      generation.KeywordRequest  true  "topic"
// @Success      200   {object}  generation.KeywordPlan
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/keywords [post]
func KeywordsHandler(p *generation.KeywordPlanner) gin.HandlerFunc {
	return bindAndRun(
		func(r generation.KeywordRequest) error { return required("topic", r.Topic) },
		p.Plan,
	)
}

// DraftHandler godoc
// @Summary      Write a full draft for a topic
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      generation.DraftRequest  true  "topic"
// @Success      200   {object}  generation.Draft
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/draft [post]
func DraftHandler(w *generation.DraftWriter) gin.HandlerFunc {
	return bindAndRun(
		func(r generation.DraftRequest) error { return required("topic", r.Topic) },
		w.Write,
	)
}

// CategorizeHandler godoc
// @Summary      Suggest a category from the catalog
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      generation.CategorizeInput  true  "post"
// @Success      200   {object}  generation.CategorySuggestion
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/categorize [post]
func CategorizeHandler(cz *generation.Categorizer, categories services.CategoryLister) gin.HandlerFunc {
	return bindAndRun(
		func(r generation.CategorizeInput) error { return required("title", r.Title) },
		func(ctx context.Context, r generation.CategorizeInput) (generation.CategorySuggestion, error) {
			catalog, err := categories.List(ctx)
			if err != nil {
				return generation.CategorySuggestion{}, err
			}
			return cz.Categorize(ctx, r, catalog)
		},
	)
}

// CategorizeBatchHandler godoc
// @Summary      Suggest categories for several posts
// @Description  Runs in batches of 3; a failed item carries an error code instead of a suggestion
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CategorizeBatchRequestDTO  true  "posts"
// @Success      200   {array}   dto.CategorizeBatchItemDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /ai/categorize/batch [post]
func CategorizeBatchHandler(cz *generation.Categorizer, categories services.CategoryLister) gin.HandlerFunc {
	return bindAndRun(
		func(r dto.CategorizeBatchRequestDTO) error {
			switch {
			case len(r.Items) == 0:
				return validation.New("items", "items is required")
			case len(r.Items) > maxBatchItems:
				return validation.New("items", "items must contain at most 30 entries")
			}
			return nil
		},
		func(ctx context.Context, r dto.CategorizeBatchRequestDTO) ([]dto.CategorizeBatchItemDTO, error) {
			catalog, err := categories.List(ctx)
			if err != nil {
				return nil, err
			}
			outcomes := cz.CategorizeBatch(ctx, r.Items, catalog)
			out := make([]dto.CategorizeBatchItemDTO, 0, len(outcomes))
			for _, o := range outcomes {
				item := dto.CategorizeBatchItemDTO{Input: o.Input}
				if o.Err != nil {
					_, item.Error = normalizeError(o.Err)
				} else {
					s := o.Suggestion
					item.Suggestion = &s
				}
				out = append(out, item)
			}
			return out, nil
		},
	)
}

// SEOHandler godoc
// @Summary      Analyze a post for SEO
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      generation.SEORequest  true  "post"
// @Success      200   {object}  generation.SEOResult
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/seo [post]
func SEOHandler(o *generation.SEOOptimizer) gin.HandlerFunc {
	return bindAndRun(
		func(r generation.SEORequest) error {
			if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.Content) == "" {
				return validation.New("content", "title or content is required")
			}
			return nil
		},
		o.Optimize,
	)
}

// RewriteHandler godoc
// @Summary      Rewrite a text following an instruction
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      generation.RewriteRequest  true  "text"
// @Success      200   {object}  dto.TextResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/rewrite [post]
func RewriteHandler(rw *generation.Rewriter) gin.HandlerFunc {
	return bindAndRun(nil, func(ctx context.Context, r generation.RewriteRequest) (dto.TextResponseDTO, error) {
		text, err := rw.Rewrite(ctx, r)
		return dto.TextResponseDTO{Text: text}, err
	})
}

// NewsletterHandler godoc
// @Summary      Compose a newsletter issue from posts
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      generation.NewsletterRequest  true  "posts"
// @Success      200   {object}  models.Newsletter
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/newsletter [post]
func NewsletterHandler(n *generation.NewsletterComposer) gin.HandlerFunc {
	return bindAndRun(nil, n.Compose)
}

// InlineHandler godoc
// @Summary      Apply an inline edit to a selection
// @Description  operation: improve | shorten | expand | fix_grammar | simplify | continue | tone
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      generation.InlineRequest  true  "selection"
// @Success      200   {object}  dto.TextResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/inline [post]
func InlineHandler(e *generation.InlineEditor) gin.HandlerFunc {
	return bindAndRun(nil, func(ctx context.Context, r generation.InlineRequest) (dto.TextResponseDTO, error) {
		text, err := e.Apply(ctx, r)
		return dto.TextResponseDTO{Text: text}, err
	})
}

// VisualKeywordsHandler godoc
// @Summary      Suggest stock photo search terms
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      dto.VisualKeywordsRequestDTO  true  "post"
// @Success      200   {object}  dto.VisualKeywordsResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/visual-keywords [post]
func VisualKeywordsHandler(v *generation.VisualKeywords) gin.HandlerFunc {
	return bindAndRun(
		func(r dto.VisualKeywordsRequestDTO) error { return required("title", r.Title) },
		func(ctx context.Context, r dto.VisualKeywordsRequestDTO) (dto.VisualKeywordsResponseDTO, error) {
			kws, err := v.Suggest(ctx, r.Title, r.Content)
			return dto.VisualKeywordsResponseDTO{Keywords: kws}, err
		},
	)
}
