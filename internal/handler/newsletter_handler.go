package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devfolio/internal/errors"
	"devfolio/internal/service"
)

// NewsletterHandler handles newsletter subscription endpoints.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// NewsletterRequest carries the email for subscribe and unsubscribe.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body NewsletterRequest true "Subscriber email"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /newsletter [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.newsletterService.Subscribe(c.Request().Context(), req.Email); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Successfully subscribed! Check your email for confirmation.",
	})
}

// Unsubscribe godoc
// @Summary Unsubscribe from the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body NewsletterRequest true "Subscriber email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.newsletterService.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Successfully unsubscribed",
	})
}

// ListSubscribers godoc
// @Summary List newsletter subscribers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Subscriber
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/subscribers [get]
func (h *NewsletterHandler) ListSubscribers(c echo.Context) error {
	subs, err := h.newsletterService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, subs)
}
