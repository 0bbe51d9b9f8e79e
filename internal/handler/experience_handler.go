package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/service"
)

// ExperienceHandler handles public work history reads and admin writes.
type ExperienceHandler struct {
	experienceService service.ExperienceService
}

// NewExperienceHandler creates a new experience handler.
func NewExperienceHandler(experienceService service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

// ExperienceRequest represents an admin create/update payload.
type ExperienceRequest struct {
	Title        string   `json:"title" validate:"required,max=255"`
	Company      string   `json:"company" validate:"required,max=255"`
	Location     string   `json:"location" validate:"max=255"`
	StartDate    string   `json:"start_date" validate:"max=50"`
	EndDate      string   `json:"end_date" validate:"max=50"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	Order        int      `json:"order"`
}

func (r *ExperienceRequest) toModel() *model.Experience {
	return &model.Experience{
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Description:  r.Description,
		Achievements: r.Achievements,
		Technologies: r.Technologies,
		Order:        r.Order,
	}
}

// List godoc
// @Summary List work history entries
// @Tags experience
// @Produce json
// @Success 200 {array} model.Experience
// @Router /experience [get]
func (h *ExperienceHandler) List(c echo.Context) error {
	entries, err := h.experienceService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary Create a work history entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExperienceRequest true "Experience fields"
// @Success 201 {object} model.Experience
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/experience [post]
func (h *ExperienceHandler) Create(c echo.Context) error {
	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exp := req.toModel()
	if err := h.experienceService.Create(c.Request().Context(), exp); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, exp)
}

// Update godoc
// @Summary Update a work history entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Param request body ExperienceRequest true "Experience fields"
// @Success 200 {object} model.Experience
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/experience/{id} [put]
func (h *ExperienceHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid experience ID",
			Code:  "INVALID_UUID",
		})
	}

	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exp := req.toModel()
	exp.ID = id
	if err := h.experienceService.Update(c.Request().Context(), exp); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, exp)
}

// Delete godoc
// @Summary Delete a work history entry
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/experience/{id} [delete]
func (h *ExperienceHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid experience ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.experienceService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "experience entry deleted"})
}
