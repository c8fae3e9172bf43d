package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"editorial-cms/cmd/api/handlers"
	"editorial-cms/cmd/api/middleware"
	_ "editorial-cms/docs"
	"editorial-cms/generation"
	"editorial-cms/services"
)

// Deps 는 라우터가 필요로 하는 서비스 묶음이다. main 에서 조립한다.
type Deps struct {
	Database   handlers.Pinger
	AI         handlers.Feature
	Streamer   handlers.ChatStreamer
	Posts      *services.PostService
	Categories services.CategoryLister
	Generation *generation.Services
	Images     *services.CoverImageService
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.ErrorLogging())

	r.GET("/health", handlers.HealthHandler(d.Database, d.AI, d.Images))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/posts", handlers.ListPostsHandler(d.Posts))
		api.POST("/posts", handlers.CreatePostHandler(d.Posts))
		api.GET("/posts/:id", handlers.GetPostHandler(d.Posts))
		api.PUT("/posts/:id", handlers.UpdatePostHandler(d.Posts))
		api.GET("/categories", handlers.ListCategoriesHandler(d.Categories))
	}

	ai := api.Group("/ai")
	{
		g := d.Generation
		ai.POST("/stream", handlers.GenerateStreamHandler(d.Streamer))
		ai.POST("/keywords", handlers.KeywordsHandler(g.Keywords))
		ai.POST("/draft", handlers.DraftHandler(g.Drafts))
		ai.POST("/categorize", handlers.CategorizeHandler(g.Categories, d.Categories))
		ai.POST("/categorize/batch", handlers.CategorizeBatchHandler(g.Categories, d.Categories))
		ai.POST("/seo", handlers.SEOHandler(g.SEO))
		ai.POST("/rewrite", handlers.RewriteHandler(g.Rewriter))
		ai.POST("/newsletter", handlers.NewsletterHandler(g.Newsletter))
		ai.POST("/inline", handlers.InlineHandler(g.Inline))
		ai.POST("/visual-keywords", handlers.VisualKeywordsHandler(g.Visual))
	}

	img := api.Group("/images")
	{
		img.GET("/search", handlers.SearchImagesHandler(d.Images))
		img.POST("/auto", handlers.AutoSearchImagesHandler(d.Images))
	}

	return r
}
