package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"editorial-cms/cmd/api/dto"
	"editorial-cms/images"
	"editorial-cms/services"
)

// SearchImagesHandler godoc
// @Summary      Search stock photos
// @Description  Merges results from every configured provider; failing providers are reported as false in providers
// @Tags         images
// @Produce      json
// @Param        query        query  string  true   "Search terms"
// @Param        provider     query  string  false  "all | pexels | unsplash | pixabay"
// @Param        orientation  query  string  false  "landscape | portrait | square"
// @Param        page         query  int     false  "Page number (1-based)"
// @Param        per_page     query  int     false  "Results per provider (<=30)"
// @Success      200  {object}  images.SearchResult
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /images/search [get]
func SearchImagesHandler(svc *services.CoverImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !svc.Configured() {
			respondError(c, errImagesNotConfigured)
			return
		}
		params := images.SearchParams{
			Query:       c.Query("query"),
			Provider:    c.DefaultQuery("provider", images.ProviderAll),
			Orientation: images.Orientation(c.Query("orientation")),
		}
		params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		params.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(images.DefaultPerPage)))

		res, err := svc.Search(c.Request.Context(), params)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// AutoSearchImagesHandler godoc
// @Summary      Search stock photos for a post
// @Description  Derives search terms from title and content; falls back to the title
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AutoImageSearchRequestDTO  true  "post"
// @Success      200   {object}  services.AutoSearchResult
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /images/auto [post]
func AutoSearchImagesHandler(svc *services.CoverImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AutoImageSearchRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(c, err)
			return
		}
		if !svc.Configured() {
			respondError(c, errImagesNotConfigured)
			return
		}
		if err := required("title", req.Title); err != nil {
			respondError(c, err)
			return
		}
		res, err := svc.AutoSearch(c.Request.Context(), req.Title, req.Content, req.Params())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
