package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/api/middleware"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// ExperienceHandler handles HTTP requests for work experience entries.
type ExperienceHandler struct {
	service ports.ExperienceService
}

func NewExperienceHandler(service ports.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

type experienceRequest struct {
	Company            string   `json:"company" validate:"required"`
	CompanyEn          string   `json:"company_en"`
	Role               string   `json:"role" validate:"required"`
	RoleEn             string   `json:"role_en"`
	Period             string   `json:"period" validate:"required"`
	Responsibilities   []string `json:"responsibilities"`
	ResponsibilitiesEn []string `json:"responsibilities_en"`
	Technologies       []string `json:"technologies"`
	DisplayOrder       int      `json:"display_order"`
	IsActive           bool     `json:"is_active"`
	IsCurrent          bool     `json:"is_current"`
}

func (r experienceRequest) toInput() ports.ExperienceInput {
	return ports.ExperienceInput{
		Company:            r.Company,
		CompanyEn:          r.CompanyEn,
		Role:               r.Role,
		RoleEn:             r.RoleEn,
		Period:             r.Period,
		Responsibilities:   r.Responsibilities,
		ResponsibilitiesEn: r.ResponsibilitiesEn,
		Technologies:       r.Technologies,
		DisplayOrder:       r.DisplayOrder,
		IsActive:           r.IsActive,
		IsCurrent:          r.IsCurrent,
	}
}

// List returns experiences visible to the caller.
//
// @Summary      List experiences
// @Tags         experiences
// @Produce      json
// @Success      200  {array}  domain.Experience
// @Router       /api/experiences [get]
func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.service.List(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experiences)
}

// Get returns a single experience by id.
//
// @Summary      Get an experience
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Experience id"
// @Success      200  {object}  domain.Experience
// @Failure      404  {object}  map[string]string
// @Router       /api/experiences/{id} [get]
func (h *ExperienceHandler) Get(c echo.Context) error {
	experience, err := h.service.Get(c.Request().Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experience)
}

// Create adds a new experience. Admin only.
//
// @Summary      Create an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      experienceRequest  true  "Experience details"
// @Success      201   {object}  domain.Experience
// @Failure      422   {object}  map[string]string
// @Router       /api/experiences [post]
func (h *ExperienceHandler) Create(c echo.Context) error {
	var req experienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	experience, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, experience)
}

// Update replaces an experience document. Admin only.
//
// @Summary      Update an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Experience id"
// @Param        body  body      experienceRequest  true  "Experience details"
// @Success      200   {object}  domain.Experience
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/experiences/{id} [put]
func (h *ExperienceHandler) Update(c echo.Context) error {
	var req experienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	experience, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experience)
}

// Delete removes an experience. Admin only.
//
// @Summary      Delete an experience
// @Tags         experiences
// @Security     BearerAuth
// @Param        id  path  string  true  "Experience id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
