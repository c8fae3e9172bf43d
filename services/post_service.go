package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"editorial-cms/aigateway"
	"editorial-cms/generation"
	"editorial-cms/lifecycle"
	"editorial-cms/logger"
	"editorial-cms/models"
	"editorial-cms/repositories"
	"editorial-cms/richtext"
	"editorial-cms/trace"
	"editorial-cms/validation"
)

var ErrPostNotFound = errors.New("post not found")

// PostStore is what the save path needs from the content store.
type PostStore interface {
	lifecycle.SlugStore
	Find(ctx context.Context, opt repositories.ListPostsOptions) ([]models.Post, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Create(ctx context.Context, p *models.Post) error
	Update(ctx context.Context, p *models.Post) error
}

type CategoryLister interface {
	List(ctx context.Context) ([]models.Category, error)
}

type PostCategorizer interface {
	Categorize(ctx context.Context, in generation.CategorizeInput, catalog []models.Category) (generation.CategorySuggestion, error)
}

// SaveResult is a persisted post plus how its slug was checked.
type SaveResult struct {
	Post models.Post
	Slug lifecycle.SlugResult
}

// PostService encapsulates the save pipeline: optional enrichment,
// validation, pre-persist normalization, the write and post-persist hooks.
type PostService struct {
	repo  PostStore
	hooks *lifecycle.Hooks

	categorizer PostCategorizer
	categories  CategoryLister
}

type PostServiceOption func(*PostService)

// WithAutoCategorize fills a blank category from the model's suggestion
// before validation.
func WithAutoCategorize(c PostCategorizer, categories CategoryLister) PostServiceOption {
	return func(s *PostService) {
		s.categorizer = c
		s.categories = categories
	}
}

func NewPostService(repo PostStore, hooks *lifecycle.Hooks, opts ...PostServiceOption) *PostService {
	s := &PostService{repo: repo, hooks: hooks}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type ListPostsInput struct {
	Page     int
	PageSize int
	Status   models.Status
	Category string
	Tag      string
	Search   string
}

func (s *PostService) List(ctx context.Context, in ListPostsInput) ([]models.Post, int64, error) {
	return s.repo.Find(ctx, repositories.ListPostsOptions{
		Page:     in.Page,
		PageSize: in.PageSize,
		Status:   in.Status,
		Category: in.Category,
		Tag:      in.Tag,
		Search:   in.Search,
	})
}

// GetByID loads a post by its ObjectID hex.
func (s *PostService) GetByID(ctx context.Context, hexID string) (*models.Post, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return p, err
}

func (s *PostService) Create(ctx context.Context, p models.Post) (SaveResult, error) {
	p.ID = primitive.NilObjectID
	return s.save(ctx, models.OperationCreate, nil, p)
}

// Update replaces the post with hexID by p. created_at is kept.
func (s *PostService) Update(ctx context.Context, hexID string, p models.Post) (SaveResult, error) {
	prev, err := s.GetByID(ctx, hexID)
	if err != nil {
		return SaveResult{}, err
	}
	p.ID = prev.ID
	p.CreatedAt = prev.CreatedAt
	return s.save(ctx, models.OperationUpdate, prev, p)
}

func (s *PostService) save(ctx context.Context, op models.WriteOperation, prev *models.Post, p models.Post) (SaveResult, error) {
	p = s.enrich(ctx, p)

	if err := s.hooks.BeforeValidate(p); err != nil {
		return SaveResult{}, err
	}

	p, slugRes := s.hooks.BeforeChange(ctx, op, p)

	var err error
	if op == models.OperationCreate {
		err = s.repo.Create(ctx, &p)
	} else {
		err = s.repo.Update(ctx, &p)
	}
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return SaveResult{}, ErrPostNotFound
	case errors.Is(err, repositories.ErrDuplicateSlug):
		return SaveResult{}, validation.New("slug", "slug is already in use")
	case err != nil:
		return SaveResult{}, fmt.Errorf("%s post: %w", op, err)
	}

	s.hooks.AfterChange(ctx, lifecycle.Change{Op: op, Previous: prev, Post: p, Slug: slugRes})

	logger.InfoWithFields("post saved", logger.Fields{
		"request_id":    trace.RequestIDFromContext(ctx),
		"operation":     string(op),
		"post_id":       p.ID.Hex(),
		"slug":          p.Slug,
		"slug_verified": slugRes.Verified,
		"status":        string(p.Status),
	})
	return SaveResult{Post: p, Slug: slugRes}, nil
}

// enrich never fails the save; a failed suggestion leaves the post as it was.
func (s *PostService) enrich(ctx context.Context, p models.Post) models.Post {
	if s.categorizer == nil || s.categories == nil || p.Category != "" || p.Title == "" {
		return p
	}

	fields := logger.Fields{"request_id": trace.RequestIDFromContext(ctx), "title": p.Title}
	catalog, err := s.categories.List(ctx)
	if err != nil || len(catalog) == 0 {
		if err != nil {
			fields["error"] = err.Error()
		}
		logger.WarnWithFields("auto-categorize skipped: no catalog", fields)
		return p
	}

	sug, err := s.categorizer.Categorize(ctx, generation.CategorizeInput{
		Title:   p.Title,
		Content: richtext.ExtractPlainText(p.Content),
	}, catalog)
	switch {
	case errors.Is(err, aigateway.ErrNotConfigured):
		return p
	case err != nil:
		fields["error"] = err.Error()
		logger.WarnWithFields("auto-categorize skipped", fields)
		return p
	case sug.CategoryID == nil:
		fields["suggestion"] = sug.Name
		logger.DebugWithFields("auto-categorize suggestion not in catalog", fields)
		return p
	}

	// 작성자가 입력하는 값과 같은 형태(카탈로그 slug)로 저장한다
	p.Category = catalogSlug(catalog, *sug.CategoryID, sug.Name)
	if len(p.Tags) == 0 {
		p.Tags = sug.Tags
	}
	return p
}

func catalogSlug(catalog []models.Category, id, fallback string) string {
	for _, c := range catalog {
		if c.ID.Hex() == id && c.Slug != "" {
			return c.Slug
		}
	}
	return fallback
}

func parseID(hexID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return primitive.NilObjectID, validation.New("id", "id must be a valid ObjectID")
	}
	return id, nil
}
