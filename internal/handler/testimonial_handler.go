package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/service"
)

// TestimonialHandler handles public testimonial reads and admin writes.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// TestimonialRequest represents an admin create/update payload.
type TestimonialRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Role     string `json:"role" validate:"max=255"`
	Company  string `json:"company" validate:"max=255"`
	Image    string `json:"image"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Message  string `json:"message" validate:"required"`
	Approved bool   `json:"approved"`
	Order    int    `json:"order"`
}

func (r *TestimonialRequest) toModel() *model.Testimonial {
	return &model.Testimonial{
		Name:     r.Name,
		Role:     r.Role,
		Company:  r.Company,
		Image:    r.Image,
		Rating:   r.Rating,
		Message:  r.Message,
		Approved: r.Approved,
		Order:    r.Order,
	}
}

// List godoc
// @Summary List approved testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} model.Testimonial
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	testimonials, err := h.testimonialService.ListApproved(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Create godoc
// @Summary Create a testimonial
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TestimonialRequest true "Testimonial fields"
// @Success 201 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t := req.toModel()
	if err := h.testimonialService.Create(c.Request().Context(), t); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, t)
}

// Update godoc
// @Summary Update a testimonial
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param request body TestimonialRequest true "Testimonial fields"
// @Success 200 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid testimonial ID",
			Code:  "INVALID_UUID",
		})
	}

	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t := req.toModel()
	t.ID = id
	if err := h.testimonialService.Update(c.Request().Context(), t); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, t)
}

// Delete godoc
// @Summary Delete a testimonial
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid testimonial ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.testimonialService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "testimonial deleted"})
}
