package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/service"
)

// BlogHandler handles public blog reads and admin blog writes.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// BlogPostRequest represents an admin create/update payload.
type BlogPostRequest struct {
	Title         string   `json:"title" validate:"required,max=255"`
	Slug          string   `json:"slug" validate:"required,max=255"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content" validate:"required"`
	FeaturedImage string   `json:"featured_image"`
	Category      string   `json:"category" validate:"max=100"`
	Tags          []string `json:"tags"`
	ReadTime      int      `json:"read_time" validate:"min=0"`
	Author        string   `json:"author" validate:"max=255"`
	Published     bool     `json:"published"`
}

func (r *BlogPostRequest) toModel() *model.BlogPost {
	return &model.BlogPost{
		Title:         r.Title,
		Slug:          r.Slug,
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		FeaturedImage: r.FeaturedImage,
		Category:      r.Category,
		Tags:          r.Tags,
		ReadTime:      r.ReadTime,
		Author:        r.Author,
		Published:     r.Published,
	}
}

// List godoc
// @Summary List published blog posts
// @Tags blog
// @Produce json
// @Success 200 {array} model.BlogPostSummary
// @Router /blog [get]
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.blogService.ListPublished(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a published blog post by slug
// @Description Increments the post view counter as a side effect.
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} errors.ErrorResponse
// @Router /blog/{slug} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	post, err := h.blogService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// Create godoc
// @Summary Create a blog post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BlogPostRequest true "Post fields"
// @Success 201 {object} model.BlogPost
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/blog [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := req.toModel()
	if err := h.blogService.Create(c.Request().Context(), post); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, post)
}

// Update godoc
// @Summary Update a blog post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body BlogPostRequest true "Post fields"
// @Success 200 {object} model.BlogPost
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/blog/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid post ID",
			Code:  "INVALID_UUID",
		})
	}

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := req.toModel()
	post.ID = id
	if err := h.blogService.Update(c.Request().Context(), post); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a blog post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/blog/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid post ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.blogService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post deleted"})
}
