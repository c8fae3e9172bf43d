package repositories

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"editorial-cms/models"
)

var (
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateSlug 는 slug 에 unique 인덱스가 남아 있는 배포에서만 나온다
	ErrDuplicateSlug = errors.New("slug already in use")
)

type PostRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts"), now: time.Now}
}

type ListPostsOptions struct {
	Page     int
	PageSize int
	Status   models.Status
	Category string
	Tag      string
	// Search matches title case-insensitively.
	Search string
}

// Find returns one page of posts and the total matching the filter,
// sorted by published_at desc then _id desc.
func (r *PostRepository) Find(ctx context.Context, opt ListPostsOptions) ([]models.Post, int64, error) {
	filter := bson.M{}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	if opt.Category != "" {
		filter["category"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(opt.Category) + "$", Options: "i"}
	}
	if tag := strings.ToLower(strings.TrimSpace(opt.Tag)); tag != "" {
		filter["tags"] = tag
	}
	if s := strings.TrimSpace(opt.Search); s != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
	}

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 || opt.PageSize > 100 {
		opt.PageSize = 20
	}
	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{
		{Key: "published_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	results := []models.Post{}
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, 0, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// FindByID returns ErrNotFound when no post has id.
func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) FindExactSlug(ctx context.Context, slug string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"slug": slug}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return err == nil, err
}

// FindSlugsContaining returns at most limit slugs containing fragment.
// fragment is matched literally.
func (r *PostRepository) FindSlugsContaining(ctx context.Context, fragment string, limit int) ([]string, error) {
	filter := bson.M{"slug": primitive.Regex{Pattern: regexp.QuoteMeta(fragment)}}
	findOpts := options.Find().
		SetProjection(bson.M{"slug": 1, "_id": 0}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	slugs := []string{}
	for cur.Next(ctx) {
		var doc struct {
			Slug string `bson:"slug"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		slugs = append(slugs, doc.Slug)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return slugs, nil
}

func (r *PostRepository) CountSlug(ctx context.Context, slug string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"slug": slug})
}

// Create inserts p and fills its ID and timestamps.
func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	now := r.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return nil
}

// Update replaces the stored document with p. created_at is kept.
func (r *PostRepository) Update(ctx context.Context, p *models.Post) error {
	p.UpdatedAt = r.now()
	set := bson.M{
		"updated_at":   p.UpdatedAt,
		"title":        p.Title,
		"slug":         p.Slug,
		"excerpt":      p.Excerpt,
		"content":      p.Content,
		"category":     p.Category,
		"tags":         p.Tags,
		"status":       p.Status,
		"published_at": p.PublishedAt,
		"seo":          p.SEO,
		"cover_image":  p.CoverImage,
	}
	res, err := r.col.UpdateByID(ctx, p.ID, bson.M{"$set": set})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
