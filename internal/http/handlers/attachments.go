package handlers

import (
	"net/http"

	"imagetags/internal/repo"
	"imagetags/internal/services"
	"imagetags/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AttachmentsHandler handles media upload endpoints
type AttachmentsHandler struct {
	attachmentRepo *repo.AttachmentRepository
	storageService *services.StorageService
	batchService   *services.BatchService
}

// NewAttachmentsHandler creates a new attachments handler
func NewAttachmentsHandler(attachmentRepo *repo.AttachmentRepository, storageService *services.StorageService, batchService *services.BatchService) *AttachmentsHandler {
	return &AttachmentsHandler{
		attachmentRepo: attachmentRepo,
		storageService: storageService,
		batchService:   batchService,
	}
}

// Upload stores a new media-library image and runs the on-upload
// metadata hook over it
func (h *AttachmentsHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing file"})
	}

	attachment := models.Attachment{
		FileName:  fileHeader.Filename,
		IsGallery: c.FormValue("is_gallery") == "true",
	}

	if raw := c.FormValue("parent_id"); raw != "" {
		parentID, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid parent id"})
		}
		attachment.ParentID = &parentID
	}

	if h.storageService != nil {
		storageKey, contentType, err := h.storageService.UploadImage(fileHeader)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		attachment.StorageKey = storageKey
		attachment.MimeType = contentType
	} else {
		attachment.MimeType = fileHeader.Header.Get("Content-Type")
	}

	if err := h.attachmentRepo.Create(&attachment); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save attachment"})
	}

	if err := h.batchService.ProcessSingle(c.Request().Context(), attachment.ID); err != nil {
		// upload succeeded, tagging failure is reported but not fatal
		log.Warn().Err(err).Str("attachment_id", attachment.ID.String()).Msg("On-upload processing failed")
	}

	created, err := h.attachmentRepo.GetByID(attachment.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to reload attachment"})
	}

	return c.JSON(http.StatusCreated, created)
}
