package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devfolio/internal/errors"
	"devfolio/internal/model"
	"devfolio/internal/service"
)

// SkillHandler handles public skill reads and admin skill writes.
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// SkillRequest represents an admin create/update payload.
type SkillRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"max=100"`
	Level    int    `json:"level" validate:"min=0,max=100"`
	Icon     string `json:"icon" validate:"max=100"`
	Color    string `json:"color" validate:"max=50"`
	Order    int    `json:"order"`
}

// List godoc
// @Summary List skills
// @Tags skills
// @Produce json
// @Success 200 {array} model.Skill
// @Router /skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.skillService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skills)
}

// Create godoc
// @Summary Create a skill
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SkillRequest true "Skill fields"
// @Success 201 {object} model.Skill
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill := &model.Skill{
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
		Icon:     req.Icon,
		Color:    req.Color,
		Order:    req.Order,
	}
	if err := h.skillService.Create(c.Request().Context(), skill); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, skill)
}

// Update godoc
// @Summary Update a skill
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Param request body SkillRequest true "Skill fields"
// @Success 200 {object} model.Skill
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/skills/{id} [put]
func (h *SkillHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid skill ID",
			Code:  "INVALID_UUID",
		})
	}

	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill := &model.Skill{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
		Icon:     req.Icon,
		Color:    req.Color,
		Order:    req.Order,
	}
	if err := h.skillService.Update(c.Request().Context(), skill); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skill)
}

// Delete godoc
// @Summary Delete a skill
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid skill ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.skillService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "skill deleted"})
}
