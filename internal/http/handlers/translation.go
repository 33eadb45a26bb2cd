package handlers

import (
	"errors"
	"net/http"

	"imagetags/internal/services"
	"imagetags/internal/translate"
	"imagetags/pkg/models"

	"github.com/labstack/echo/v4"
)

// TranslationHandler handles metadata translation endpoints
type TranslationHandler struct {
	batchService   *services.BatchService
	previewService *services.PreviewService
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(batchService *services.BatchService, previewService *services.PreviewService) *TranslationHandler {
	return &TranslationHandler{
		batchService:   batchService,
		previewService: previewService,
	}
}

// Stats reports translation coverage and whether the configured
// provider is usable
func (h *TranslationHandler) Stats(c echo.Context) error {
	stats, err := h.previewService.TranslationStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load translation stats"})
	}

	return c.JSON(http.StatusOK, stats)
}

// Process runs one translate chunk
func (h *TranslationHandler) Process(c echo.Context) error {
	var req models.TranslateBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	response, err := h.batchService.TranslateChunk(c.Request().Context(), req)
	if err != nil {
		return c.JSON(translateErrorStatus(err), map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, response)
}

// Test translates a caller-supplied sample with the configured provider
func (h *TranslationHandler) Test(c echo.Context) error {
	var req struct {
		Text string `json:"text" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	translated, provider, err := h.batchService.TestTranslation(c.Request().Context(), req.Text)
	if err != nil {
		return c.JSON(translateErrorStatus(err), map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"original":   req.Text,
		"translated": translated,
		"provider":   provider,
	})
}

// translateErrorStatus maps a translation failure to an HTTP status.
// Misconfiguration is the caller's problem, provider and transport
// failures are upstream.
func translateErrorStatus(err error) int {
	var valErr *services.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest
	}

	var cfgErr *translate.ConfigError
	if errors.As(err, &cfgErr) {
		return http.StatusBadRequest
	}

	var provErr *translate.ProviderError
	if errors.As(err, &provErr) {
		return http.StatusBadGateway
	}

	var transportErr *translate.TransportError
	if errors.As(err, &transportErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
