package handlers

import (
	"net/http"

	"imagetags/internal/services"
	"imagetags/pkg/models"

	"github.com/labstack/echo/v4"
)

// SettingsHandler handles tagging settings endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the current settings
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settingsService.Load()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load settings"})
	}

	return c.JSON(http.StatusOK, settings)
}

// Update replaces the settings with the submitted values
func (h *SettingsHandler) Update(c echo.Context) error {
	var settings models.Settings
	if err := c.Bind(&settings); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.settingsService.Save(settings); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, settings)
}

// Export returns a portable snapshot of the settings
func (h *SettingsHandler) Export(c echo.Context) error {
	export, err := h.settingsService.Export()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to export settings"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="imagetags-settings.json"`)
	return c.JSON(http.StatusOK, export)
}

// Import restores settings from a previously exported snapshot
func (h *SettingsHandler) Import(c echo.Context) error {
	var export models.SettingsExport
	if err := c.Bind(&export); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.settingsService.Import(export); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	settings, err := h.settingsService.Load()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load settings"})
	}

	return c.JSON(http.StatusOK, settings)
}
