package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"editorial-cms/cmd/api/dto"
	"editorial-cms/models"
	"editorial-cms/services"
)

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List posts with filters and pagination, newest first
// @Tags         posts
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Param        status     query  string  false  "draft | published | archived"
// @Param        category   query  string  false  "Category (case-insensitive)"
// @Param        tag        query  string  false  "Tag"
// @Param        q          query  string  false  "Title search"
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListPostsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
		in.Status = models.Status(c.Query("status"))
		in.Category = c.Query("category")
		in.Tag = c.Query("tag")
		in.Search = c.Query("q")

		items, total, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		now := time.Now()
		out := dto.Pagination[dto.PostDTO]{Data: make([]dto.PostDTO, 0, len(items)), Page: in.Page, PageSize: in.PageSize, Total: total}
		for _, p := range items {
			out.Data = append(out.Data, dto.NewPostDTO(p, now))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewPostDTO(*post, time.Now()))
	}
}

// CreatePostHandler godoc
// @Summary      Create post
// @Description  Validates, fills slug/excerpt/tags/publish date and stores the post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PostRequestDTO  true  "post"
// @Success      201   {object}  dto.SavePostResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /posts [post]
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		res, err := svc.Create(c.Request.Context(), req.ToModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.NewSavePostResponseDTO(res.Post, res.Slug, time.Now()))
	}
}

// UpdatePostHandler godoc
// @Summary      Update post
// @Description  Replaces the post; the slug is kept unless a new one is given
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "ObjectID"
// @Param        body  body      dto.PostRequestDTO  true  "post"
// @Success      200   {object}  dto.SavePostResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [put]
func UpdatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		res, err := svc.Update(c.Request.Context(), c.Param("id"), req.ToModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSavePostResponseDTO(res.Post, res.Slug, time.Now()))
	}
}

// ListCategoriesHandler godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  models.Category
// @Router       /categories [get]
func ListCategoriesHandler(categories services.CategoryLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := categories.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}
