package handlers

import (
	"net/http"
	"strconv"

	"imagetags/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandler handles processing history endpoints
type StatsHandler struct {
	previewService *services.PreviewService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(previewService *services.PreviewService) *StatsHandler {
	return &StatsHandler{previewService: previewService}
}

// Logs returns the most recent processing runs together with
// accumulated lifetime totals
func (h *StatsHandler) Logs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	logs, totals, err := h.previewService.RunHistory(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load process logs"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"logs":   logs,
		"totals": totals,
	})
}
