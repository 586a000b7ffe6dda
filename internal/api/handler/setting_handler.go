package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// SettingHandler handles the site settings map. Reads are public; mutations
// are admin only.
type SettingHandler struct {
	service ports.SettingService
}

func NewSettingHandler(service ports.SettingService) *SettingHandler {
	return &SettingHandler{service: service}
}

type upsertSettingRequest struct {
	Value any `json:"value" validate:"required"`
}

// All returns every setting collapsed into a key→value object.
//
// @Summary      Get all settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/settings [get]
func (h *SettingHandler) All(c echo.Context) error {
	settings, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Get returns a single setting by key.
//
// @Summary      Get a setting
// @Tags         settings
// @Produce      json
// @Param        key  path      string  true  "Setting key"
// @Success      200  {object}  domain.SiteSetting
// @Failure      404  {object}  map[string]string
// @Router       /api/settings/{key} [get]
func (h *SettingHandler) Get(c echo.Context) error {
	setting, err := h.service.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, setting)
}

// Upsert creates or replaces a single setting. Admin only.
//
// @Summary      Upsert a setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string                true  "Setting key"
// @Param        body  body      upsertSettingRequest  true  "Setting value"
// @Success      200   {object}  domain.SiteSetting
// @Failure      422   {object}  map[string]string
// @Router       /api/settings/{key} [put]
func (h *SettingHandler) Upsert(c echo.Context) error {
	var req upsertSettingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	setting, err := h.service.Upsert(c.Request().Context(), c.Param("key"), req.Value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, setting)
}

// BulkUpsert creates or replaces several settings in one request. Admin only.
//
// @Summary      Bulk upsert settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]any  true  "Key to value map"
// @Success      200   {array}   domain.SiteSetting
// @Failure      400   {object}  map[string]string
// @Router       /api/settings [put]
func (h *SettingHandler) BulkUpsert(c echo.Context) error {
	var values map[string]any
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(values) == 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "at least one setting is required")
	}

	settings, err := h.service.BulkUpsert(c.Request().Context(), values)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Delete removes a setting by key. Admin only.
//
// @Summary      Delete a setting
// @Tags         settings
// @Security     BearerAuth
// @Param        key  path  string  true  "Setting key"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/settings/{key} [delete]
func (h *SettingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("key")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
