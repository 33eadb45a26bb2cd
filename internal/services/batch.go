package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"imagetags/internal/repo"
	"imagetags/internal/tagging"
	"imagetags/internal/translate"
	"imagetags/pkg/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Chunk sizes per batch kind. Translation pages are small because every
// image costs up to four external API calls.
const (
	GenerateChunkSize  = 10
	TranslateChunkSize = 5
	RemoveChunkSize    = 20
)

// AttachmentStore is the image persistence surface the coordinator needs
type AttachmentStore interface {
	List(opts repo.ListOptions, limit, offset int) ([]models.Attachment, int64, error)
	Count(opts repo.ListOptions) (int64, error)
	GetByID(id uuid.UUID) (*models.Attachment, error)
	UpdateFields(id uuid.UUID, fields map[string]string) error
	ClearFields(id uuid.UUID, fields []string) error
}

// ContentStore resolves parent posts/pages/products
type ContentStore interface {
	GetByID(id uuid.UUID) (*models.Content, error)
}

// RunLogStore records completed runs
type RunLogStore interface {
	Append(entry *models.ProcessLog) error
}

// BatchService drives the three chunked workflows. It is stateless
// between calls; the caller round-trips offset and totals.
type BatchService struct {
	attachments AttachmentStore
	contents    ContentStore
	logs        RunLogStore
	settings    *SettingsService
	hub         *ProgressHub

	// swapped out in tests
	newTranslator func(models.Settings) (translate.Translator, error)
	now           func() time.Time
}

// NewBatchService creates a new batch service
func NewBatchService(attachments AttachmentStore, contents ContentStore, logs RunLogStore, settings *SettingsService, hub *ProgressHub) *BatchService {
	return &BatchService{
		attachments:   attachments,
		contents:      contents,
		logs:          logs,
		settings:      settings,
		hub:           hub,
		newTranslator: translate.New,
		now:           time.Now,
	}
}

func listOptions(filters models.BatchFilters, settings models.Settings) repo.ListOptions {
	return repo.ListOptions{
		Date:           filters.Date,
		Parent:         filters.Parent,
		ExcludeGallery: settings.EcommerceEnabled && !settings.EcommerceProcessGallery,
	}
}

// matchesStatus applies the status filter against the image's current
// alt and title, after the page fetch.
func matchesStatus(status string, att models.Attachment) bool {
	switch status {
	case models.StatusNoAlt:
		return att.AltText == ""
	case models.StatusNoTitle:
		return att.Title == ""
	case models.StatusNoTags:
		return att.AltText == "" || att.Title == ""
	}
	return true
}

// ProcessChunk runs one generate chunk. Settings are re-read at chunk
// start, so a mid-run settings change shifts the rules for later chunks.
func (s *BatchService) ProcessChunk(ctx context.Context, req models.ProcessBatchRequest) (*models.ProcessBatchResponse, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return nil, err
	}

	page, total, err := s.attachments.List(listOptions(req.Filters, settings), GenerateChunkSize, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("fetching images: %w", err)
	}

	stopWords := tagging.MergeStopWords(settings.StopWords, settings.CustomStopWords)
	chunk := models.BatchTotals{}
	for _, att := range page {
		chunk.Processed++
		if !matchesStatus(req.Filters.Status, att) {
			chunk.Skipped++
			continue
		}
		switch s.processImage(att, settings, stopWords) {
		case outcomeSuccess:
			chunk.Success++
		case outcomeSkipped:
			chunk.Skipped++
		default:
			chunk.Errors++
		}
	}

	totals := req.Totals
	totals.Add(chunk)
	hasMore := int64(req.Offset+GenerateChunkSize) < total

	if !hasMore && !settings.TestMode {
		entry := &models.ProcessLog{
			ProcessDate: s.now(),
			Operation:   "generate",
			TotalImages: int(total),
			Processed:   totals.Processed,
			Success:     totals.Success,
			Skipped:     totals.Skipped,
			Errors:      totals.Errors,
			TestMode:    false,
		}
		if err := s.logs.Append(entry); err != nil {
			log.Error().Err(err).Msg("Failed to append run log")
		}
	}

	s.broadcast("generate", chunk, hasMore)
	return &models.ProcessBatchResponse{
		Processed: chunk.Processed,
		Success:   chunk.Success,
		Skipped:   chunk.Skipped,
		Errors:    chunk.Errors,
		HasMore:   hasMore,
		Total:     total,
		Totals:    totals,
		TestMode:  settings.TestMode,
	}, nil
}

// ValidationError marks a rejected request, as opposed to a processing
// failure inside an accepted one.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeSkipped
	outcomeError
)

// processImage applies normalizer, resolver and decision policy to one
// image. In test mode the computed update is discarded but still counts
// as success.
func (s *BatchService) processImage(att models.Attachment, settings models.Settings, stopWords []string) outcome {
	updates := s.computeUpdates(att, settings, stopWords)
	if len(updates) == 0 {
		return outcomeSkipped
	}
	if settings.TestMode {
		return outcomeSuccess
	}
	if err := s.attachments.UpdateFields(att.ID, updates); err != nil {
		log.Error().Err(err).Str("attachment_id", att.ID.String()).Msg("Failed to update image metadata")
		return outcomeError
	}
	return outcomeSuccess
}

// computeUpdates resolves the new field values one image would receive.
// Shared between batch processing and the preview estimator.
func (s *BatchService) computeUpdates(att models.Attachment, settings models.Settings, stopWords []string) map[string]string {
	parent := s.parentOf(att)
	ctx := s.tagContext(att, parent, settings, stopWords)
	ext := s.extendedContext(att, parent, settings)

	updates := make(map[string]string)
	for _, field := range models.MetaFields {
		format := settings.FieldFormat(field)
		if !tagging.FieldDecision(format, settings.FieldOverwrite(field), att.FieldValue(field)) {
			continue
		}
		resolved := tagging.ResolveTag(format, settings.FieldCustomText(field), ctx, ext)
		if resolved == "" {
			continue
		}
		updates[field] = resolved
	}
	return updates
}

func (s *BatchService) parentOf(att models.Attachment) *models.Content {
	if att.ParentID == nil {
		return nil
	}
	parent, err := s.contents.GetByID(*att.ParentID)
	if err != nil {
		return nil
	}
	return parent
}

func (s *BatchService) tagContext(att models.Attachment, parent *models.Content, settings models.Settings, stopWords []string) tagging.TagContext {
	opts := tagging.CleanupOptions{
		RemoveHyphens:    settings.RemoveHyphens,
		RemoveDots:       settings.RemoveDots,
		CapitalizeWords:  settings.CapitalizeWords,
		RemoveNumbers:    settings.RemoveNumbers,
		CamelCaseSplit:   settings.CamelCaseSplit,
		RemoveSizeSuffix: settings.RemoveSizeSuffix,
	}
	postTitle := ""
	if parent != nil {
		postTitle = parent.Title
		if parent.Kind == models.ContentKindProduct && settings.EcommerceEnabled && !settings.EcommerceUseTitle {
			postTitle = ""
		}
	}
	return tagging.TagContext{
		Filename:  tagging.CleanFilename(att.FileStem(), opts, stopWords),
		PostTitle: postTitle,
		SiteName:  settings.SiteName,
	}
}

func (s *BatchService) extendedContext(att models.Attachment, parent *models.Content, settings models.Settings) tagging.ExtendedContext {
	return &attachmentContext{att: att, parent: parent, settings: settings}
}

// TranslateChunk runs one translate chunk. A missing credential or
// target language aborts before any image work; per-field failures are
// collected and the chunk keeps going.
func (s *BatchService) TranslateChunk(ctx context.Context, req models.TranslateBatchRequest) (*models.TranslateBatchResponse, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return nil, err
	}
	if settings.TranslateTargetLang == "" {
		return nil, &translate.ConfigError{Provider: settings.TranslationService, Reason: "missing target language"}
	}
	enabled := enabledTranslateFields(settings)
	if len(enabled) == 0 {
		return nil, &translate.ConfigError{Provider: settings.TranslationService, Reason: "no fields enabled for translation"}
	}
	translator, err := s.newTranslator(settings)
	if err != nil {
		return nil, err
	}

	page, total, err := s.attachments.List(repo.ListOptions{}, TranslateChunkSize, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("fetching images: %w", err)
	}

	chunk := models.BatchTotals{}
	var messages []string
	translated := 0
	for _, att := range page {
		chunk.Processed++
		updates := make(map[string]string)
		attempted := 0
		for _, field := range enabled {
			text := att.FieldValue(field)
			if text == "" {
				continue
			}
			attempted++
			out, err := translator.Translate(ctx, text, settings.TranslateSourceLang, settings.TranslateTargetLang)
			if err != nil {
				var cfgErr *translate.ConfigError
				if errors.As(err, &cfgErr) {
					// credential problems are global, not per-field
					return nil, err
				}
				messages = append(messages, fmt.Sprintf("%s %s: %v", att.FileName, field, err))
				continue
			}
			updates[field] = out
		}
		switch {
		case attempted == 0:
			chunk.Skipped++
		case len(updates) == 0:
			chunk.Errors++
		default:
			if err := s.attachments.UpdateFields(att.ID, updates); err != nil {
				log.Error().Err(err).Str("attachment_id", att.ID.String()).Msg("Failed to write translations")
				chunk.Errors++
				continue
			}
			chunk.Success++
			translated += len(updates)
		}
	}

	totals := req.Totals
	totals.Add(chunk)
	hasMore := int64(req.Offset+TranslateChunkSize) < total

	s.broadcast("translate", chunk, hasMore)
	return &models.TranslateBatchResponse{
		Processed:  chunk.Processed,
		Success:    chunk.Success,
		Translated: translated,
		Skipped:    chunk.Skipped,
		Errors:     chunk.Errors,
		HasMore:    hasMore,
		Total:      total,
		Totals:     totals,
		Messages:   messages,
	}, nil
}

func enabledTranslateFields(settings models.Settings) []string {
	var fields []string
	for _, field := range models.MetaFields {
		if settings.FieldTranslate(field) {
			fields = append(fields, field)
		}
	}
	return fields
}

// RemoveChunk runs one remove chunk. Clearing is unconditional for the
// selected fields; no decision policy applies.
func (s *BatchService) RemoveChunk(ctx context.Context, req models.RemoveBatchRequest) (*models.RemoveBatchResponse, error) {
	if len(req.Fields) == 0 {
		return nil, &ValidationError{Msg: "no fields selected for removal"}
	}
	for _, field := range req.Fields {
		if !models.IsMetaField(field) {
			return nil, &ValidationError{Msg: fmt.Sprintf("unknown field %q", field)}
		}
	}

	page, total, err := s.attachments.List(repo.ListOptions{Date: req.Date}, RemoveChunkSize, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("fetching images: %w", err)
	}

	chunk := models.BatchTotals{}
	for _, att := range page {
		chunk.Processed++
		if err := s.attachments.ClearFields(att.ID, req.Fields); err != nil {
			log.Error().Err(err).Str("attachment_id", att.ID.String()).Msg("Failed to clear image metadata")
			chunk.Errors++
			continue
		}
		chunk.Success++
	}

	totals := req.Totals
	totals.Add(chunk)
	hasMore := int64(req.Offset+RemoveChunkSize) < total

	s.broadcast("remove", chunk, hasMore)
	return &models.RemoveBatchResponse{
		Processed:      chunk.Processed,
		HasMore:        hasMore,
		Total:          total,
		TotalProcessed: totals.Processed,
		Totals:         totals,
	}, nil
}

// ProcessSingle is the upload hook: tag one freshly registered image and
// optionally chain into translation of the fields it just set.
func (s *BatchService) ProcessSingle(ctx context.Context, attachmentID uuid.UUID) error {
	settings, err := s.settings.Load()
	if err != nil {
		return err
	}
	if !settings.ProcessOnUpload {
		return nil
	}
	att, err := s.attachments.GetByID(attachmentID)
	if err != nil {
		return fmt.Errorf("loading attachment: %w", err)
	}

	stopWords := tagging.MergeStopWords(settings.StopWords, settings.CustomStopWords)
	updates := s.computeUpdates(*att, settings, stopWords)
	if len(updates) == 0 || settings.TestMode {
		return nil
	}

	if settings.AutoTranslateOnUpload && settings.TranslateTargetLang != "" {
		translator, err := s.newTranslator(settings)
		if err == nil {
			for _, field := range enabledTranslateFields(settings) {
				text, ok := updates[field]
				if !ok {
					continue
				}
				out, err := translator.Translate(ctx, text, settings.TranslateSourceLang, settings.TranslateTargetLang)
				if err != nil {
					log.Warn().Err(err).Str("field", field).Msg("Upload translation failed")
					continue
				}
				updates[field] = out
			}
		}
	}

	if err := s.attachments.UpdateFields(att.ID, updates); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// TestTranslation translates a caller-supplied sample through the
// configured provider.
func (s *BatchService) TestTranslation(ctx context.Context, text string) (string, string, error) {
	if text == "" {
		return "", "", &ValidationError{Msg: "text is required"}
	}
	settings, err := s.settings.Load()
	if err != nil {
		return "", "", err
	}
	if settings.TranslateTargetLang == "" {
		return "", "", &translate.ConfigError{Provider: settings.TranslationService, Reason: "missing target language"}
	}
	translator, err := s.newTranslator(settings)
	if err != nil {
		return "", "", err
	}
	out, err := translator.Translate(ctx, text, settings.TranslateSourceLang, settings.TranslateTargetLang)
	if err != nil {
		return "", "", err
	}
	return out, translator.Name(), nil
}

func (s *BatchService) broadcast(operation string, chunk models.BatchTotals, hasMore bool) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(ProgressEvent{
		Type:      "batch_progress",
		Operation: operation,
		Processed: chunk.Processed,
		Success:   chunk.Success,
		Skipped:   chunk.Skipped,
		Errors:    chunk.Errors,
		HasMore:   hasMore,
	})
}

// attachmentContext resolves the custom-format placeholders from the
// image and its parent.
type attachmentContext struct {
	att      models.Attachment
	parent   *models.Content
	settings models.Settings
}

func (c *attachmentContext) Category() string {
	if c.parent == nil {
		return ""
	}
	if c.parent.Kind == models.ContentKindProduct && c.settings.EcommerceEnabled && !c.settings.EcommerceUseCategory {
		return ""
	}
	return c.parent.CategoryName
}

func (c *attachmentContext) Tags() string {
	if c.parent == nil {
		return ""
	}
	return c.parent.Tags
}

func (c *attachmentContext) Author() string {
	if c.parent == nil {
		return ""
	}
	return c.parent.AuthorName
}

func (c *attachmentContext) Date() string {
	return c.att.CreatedAt.Format("2006-01-02")
}

func (c *attachmentContext) Year() string {
	return c.att.CreatedAt.Format("2006")
}

func (c *attachmentContext) Month() string {
	return c.att.CreatedAt.Format("01")
}

func (c *attachmentContext) SKU() string {
	if c.parent == nil || c.parent.Kind != models.ContentKindProduct {
		return ""
	}
	if c.settings.EcommerceEnabled && !c.settings.EcommerceUseSKU {
		return ""
	}
	return c.parent.SKU
}
