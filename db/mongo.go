package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"editorial-cms/config"
	"editorial-cms/logger"
)

const (
	CollectionPosts      = "posts"
	CollectionCategories = "categories"
	CollectionAILogs     = "ai_logs"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init connects the global Mongo client and ensures indexes. Later calls
// return the first call's result.
func Init(ctx context.Context, cfg config.MongoConfig) error {
	var initErr error
	clientOnce.Do(func() {
		uri := cfg.URI
		if uri == "" {
			// local docker-compose 기본값
			uri = "mongodb://localhost:27017"
		}
		dbName := cfg.DBName
		if dbName == "" {
			dbName = "editorial"
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		if err := EnsureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.InfoWithFields("MongoDB connected and indexes ensured", logger.Fields{"db": dbName})
	})
	return initErr
}

func Client() *mongo.Client { return client }

func Database() *mongo.Database { return db }

// Ping checks the primary. It fails before Init.
func Ping(ctx context.Context) error {
	if client == nil {
		return errors.New("mongo client is not initialized")
	}
	return client.Ping(ctx, readpref.Primary())
}

// Disconnect is a no-op before Init.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// retiredIndexes 는 이전 배포가 만든 인덱스 중 지금은 없어야 하는 것들.
// posts.uniq_slug 는 slug 검사가 실패한 저장까지 막는다.
var retiredIndexes = map[string][]string{
	CollectionPosts: {"uniq_slug"},
}

func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	for col, names := range retiredIndexes {
		for _, name := range names {
			_, err := d.Collection(col).Indexes().DropOne(ctx, name)
			switch {
			case err == nil:
				logger.InfoWithFields("retired index dropped", logger.Fields{"collection": col, "index": name})
			case !isMissingIndex(err):
				return err
			}
		}
	}
	for col, models := range indexModels() {
		if _, err := d.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CollectionPosts: {
			// 조회용. unique 가 아니다: 검사가 실패한 저장도 통과시키고 중복은 SlugVerifier 가 사후에 잡는다
			{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetName("idx_slug"),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "published_at", Value: -1}},
				Options: options.Index().SetName("idx_status_published_at"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("idx_category"),
			},
			{
				Keys:    bson.D{{Key: "tags", Value: 1}},
				Options: options.Index().SetName("idx_tags"),
			},
		},
		CollectionCategories: {
			{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetName("uniq_category_slug").SetUnique(true),
			},
		},
		CollectionAILogs: {
			{
				Keys:    bson.D{{Key: "requested_at", Value: -1}},
				Options: options.Index().SetName("idx_requested_at_desc"),
			},
			{
				Keys:    bson.D{{Key: "request_id", Value: 1}},
				Options: options.Index().SetName("idx_request_id"),
			},
		},
	}
}

func isMissingIndex(err error) bool {
	var ce mongo.CommandError
	if !errors.As(err, &ce) {
		return false
	}
	// 27 IndexNotFound, 26 NamespaceNotFound
	return ce.Code == 27 || ce.Code == 26
}
