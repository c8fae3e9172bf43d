package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"editorial-cms/aigateway"
	"editorial-cms/cmd/api/handlers"
	"editorial-cms/cmd/api/router"
	"editorial-cms/config"
	"editorial-cms/db"
	"editorial-cms/eventbus"
	"editorial-cms/generation"
	"editorial-cms/images"
	"editorial-cms/lifecycle"
	"editorial-cms/logger"
	"editorial-cms/quota"
	"editorial-cms/repositories"
	"editorial-cms/services"
)

// @title           Editorial CMS API
// @version         1.0
// @description     Posts, AI-assisted writing and stock photo search for the editorial back office
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx, cfg.Mongo); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	database := db.Database()
	posts := repositories.NewPostRepository(database)
	categories := repositories.NewCategoryRepository(database)
	aiLogs := repositories.NewAILogRepository(database)

	ai := aigateway.New(
		aigateway.ConfigFrom(cfg.AI, cfg.Server.BaseURL),
		aigateway.WithUsageRecorder(aiLogs),
		aigateway.WithLimiter(quota.NewFromConfig(cfg.AI.Quota)),
	)
	if !ai.Configured() {
		logger.Log.Warn("AI API key is not set; generation endpoints answer 503")
	}

	locale := language.Make(cfg.Content.Locale)
	gen := generation.NewServices(ai, generation.TiersFrom(cfg.AI), display.English.Tags().Name(locale))

	hookOpts := []lifecycle.Option{
		lifecycle.WithLocale(locale),
		lifecycle.WithExcerptLength(cfg.Content.ExcerptLength),
	}
	var bus *eventbus.KafkaEventBus
	if eventbus.Enabled(cfg.Kafka) {
		topic := eventbus.TopicFromConfig(cfg.Kafka)
		if err := eventbus.EnsureTopics(cfg.Kafka.BootstrapServers, 3, topic); err != nil {
			logger.Log.Errorf("failed to ensure eventbus topics: %v", err)
		}
		b, err := eventbus.NewKafkaEventBus(cfg.Kafka.BootstrapServers)
		if err != nil {
			logger.Log.Errorf("failed to create event bus: %v", err)
			os.Exit(1)
		}
		bus = b
		hookOpts = append(hookOpts, lifecycle.WithAuditor(eventbus.NewPublisher(bus, topic)))
	}
	hooks := lifecycle.NewHooks(posts, hookOpts...)

	var postOpts []services.PostServiceOption
	if cfg.Content.AutoCategorize {
		postOpts = append(postOpts, services.WithAutoCategorize(gen.Categories, categories))
	}
	postSvc := services.NewPostService(posts, hooks, postOpts...)

	imageSearch := images.NewAggregator(images.FromConfig(cfg.Images, nil)...)
	coverSvc := services.NewCoverImageService(gen.Visual, imageSearch)

	engine := router.New(router.Deps{
		Database:   handlers.PingFunc(db.Ping),
		AI:         ai,
		Streamer:   ai,
		Posts:      postSvc,
		Categories: categories,
		Generation: gen,
		Images:     coverSvc,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	})
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           corsHandler.Handler(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("starting api server", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("api server error: %v", err)
			cancel()
		}
	}()

	// Graceful shutdown 설정
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
		logger.Log.Info("received shutdown signal, shutting down api server...")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("api server shutdown: %v", err)
	}
	// 백그라운드 slug 검증이 끝나야 감사 이벤트가 유실되지 않는다.
	hooks.Verifier().Wait()
	if bus != nil {
		bus.Close()
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		logger.Log.Errorf("mongo disconnect: %v", err)
	}
	logger.Log.Info("api server stopped")
}
