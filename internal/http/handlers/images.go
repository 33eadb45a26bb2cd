package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"imagetags/internal/services"
	"imagetags/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ImagesHandler handles metadata generation, preview and removal endpoints
type ImagesHandler struct {
	batchService   *services.BatchService
	previewService *services.PreviewService
}

// NewImagesHandler creates a new images handler
func NewImagesHandler(batchService *services.BatchService, previewService *services.PreviewService) *ImagesHandler {
	return &ImagesHandler{
		batchService:   batchService,
		previewService: previewService,
	}
}

// filtersFromQuery reads the optional date/status/parent narrowing from
// query parameters.
func filtersFromQuery(c echo.Context) (models.BatchFilters, error) {
	filters := models.BatchFilters{
		Date:   c.QueryParam("date"),
		Status: c.QueryParam("status"),
	}

	if raw := c.QueryParam("parent"); raw != "" {
		parentID, err := uuid.Parse(raw)
		if err != nil {
			return filters, errors.New("invalid parent id")
		}
		filters.Parent = &parentID
	}

	return filters, nil
}

// GetCount returns how many images the current filters match and how
// many of them still need processing
func (h *ImagesHandler) GetCount(c echo.Context) error {
	filters, err := filtersFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	count, err := h.previewService.ImageCount(c.Request().Context(), filters)
	if err != nil {
		if errors.Is(err, services.ErrTooManyResults) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count images"})
	}

	return c.JSON(http.StatusOK, count)
}

// Preview returns a dry-run projection of what a generate run would
// change on the first matching images
func (h *ImagesHandler) Preview(c echo.Context) error {
	filters, err := filtersFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	preview, err := h.previewService.PreviewChanges(c.Request().Context(), limit, filters)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to build preview"})
	}

	return c.JSON(http.StatusOK, preview)
}

// FilterOptions returns the parent posts that have attached images,
// for the filter dropdown
func (h *ImagesHandler) FilterOptions(c echo.Context) error {
	options, err := h.previewService.FilterOptions()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load filter options"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"parents": options})
}

// Process runs one generate chunk
func (h *ImagesHandler) Process(c echo.Context) error {
	var req models.ProcessBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	response, err := h.batchService.ProcessChunk(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, response)
}

// RemoveStats reports how much metadata a remove run would clear
func (h *ImagesHandler) RemoveStats(c echo.Context) error {
	stats, err := h.previewService.RemovalStats(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		if errors.Is(err, services.ErrTooManyResults) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load removal stats"})
	}

	return c.JSON(http.StatusOK, stats)
}

// Remove runs one removal chunk
func (h *ImagesHandler) Remove(c echo.Context) error {
	var req models.RemoveBatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	response, err := h.batchService.RemoveChunk(c.Request().Context(), req)
	if err != nil {
		var valErr *services.ValidationError
		if errors.As(err, &valErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove metadata"})
	}

	return c.JSON(http.StatusOK, response)
}
