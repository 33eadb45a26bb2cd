package services

import (
	"context"
	"errors"
	"fmt"

	"imagetags/internal/repo"
	"imagetags/internal/tagging"
	"imagetags/pkg/models"
)

// CountCeiling is the largest matching set the estimator will inspect.
const CountCeiling = 5000

// ErrTooManyResults is returned instead of a count when the matching set
// exceeds CountCeiling. The caller must narrow the filters.
var ErrTooManyResults = errors.New("too many images to count, narrow your filters")

// ParentLister supplies the parent filter dropdown
type ParentLister interface {
	ListParentsWithImages(limit int) ([]repo.ParentOption, error)
}

// RunLogReader reads the persisted run history
type RunLogReader interface {
	ListRecent(limit int) ([]models.ProcessLog, error)
	Sum(column string) (int64, error)
}

// PreviewService is the read-only side of the coordinator: counts,
// dry-run previews and statistics. It shares the batch service's
// computation so the two can never diverge in decision logic.
type PreviewService struct {
	attachments AttachmentStore
	parents     ParentLister
	logs        RunLogReader
	settings    *SettingsService
	storage     *StorageService
	batch       *BatchService
}

// NewPreviewService creates a new preview service
func NewPreviewService(attachments AttachmentStore, parents ParentLister, logs RunLogReader, settings *SettingsService, storage *StorageService, batch *BatchService) *PreviewService {
	return &PreviewService{
		attachments: attachments,
		parents:     parents,
		logs:        logs,
		settings:    settings,
		storage:     storage,
		batch:       batch,
	}
}

// ImageCount estimates how much work a generate run would do. The same
// decision predicate as batch processing classifies each candidate,
// restricted to alt and title.
func (s *PreviewService) ImageCount(ctx context.Context, filters models.BatchFilters) (*models.ImageCountResponse, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return nil, err
	}
	opts := listOptions(filters, settings)
	total, err := s.attachments.Count(opts)
	if err != nil {
		return nil, fmt.Errorf("counting images: %w", err)
	}
	if total > CountCeiling {
		return nil, ErrTooManyResults
	}

	page, _, err := s.attachments.List(opts, int(total), 0)
	if err != nil {
		return nil, fmt.Errorf("fetching images: %w", err)
	}

	resp := &models.ImageCountResponse{Total: total}
	for _, att := range page {
		if !matchesStatus(filters.Status, att) {
			continue
		}
		if att.AltText == "" {
			resp.WithoutAlt++
		}
		if att.Title == "" {
			resp.WithoutTitle++
		}
		if tagging.FieldDecision(settings.AltFormat, settings.OverwriteAlt, att.AltText) ||
			tagging.FieldDecision(settings.TitleFormat, settings.OverwriteTitle, att.Title) {
			resp.NeedsProcessing++
		}
	}
	return resp, nil
}

// PreviewChanges computes, without writing, what the first images of a
// run would receive.
func (s *PreviewService) PreviewChanges(ctx context.Context, limit int, filters models.BatchFilters) (*models.PreviewResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	settings, err := s.settings.Load()
	if err != nil {
		return nil, err
	}
	page, total, err := s.attachments.List(listOptions(filters, settings), limit, 0)
	if err != nil {
		return nil, fmt.Errorf("fetching images: %w", err)
	}

	stopWords := tagging.MergeStopWords(settings.StopWords, settings.CustomStopWords)
	resp := &models.PreviewResponse{Total: total}
	for _, att := range page {
		updates := s.batch.computeUpdates(att, settings, stopWords)
		image := models.PreviewImage{
			ID:           att.ID,
			FileName:     att.FileName,
			ThumbnailURL: s.storage.ThumbnailURL(att.StorageKey),
		}
		for _, field := range models.MetaFields {
			proposed, willSet := updates[field]
			current := att.FieldValue(field)
			if !willSet {
				proposed = current
			}
			image.Fields = append(image.Fields, models.PreviewField{
				Field:    field,
				Current:  current,
				Proposed: proposed,
				WillSet:  willSet && proposed != current,
			})
		}
		resp.Images = append(resp.Images, image)
	}
	return resp, nil
}

// FilterOptions returns the parents usable in the parent filter
func (s *PreviewService) FilterOptions() ([]repo.ParentOption, error) {
	return s.parents.ListParentsWithImages(500)
}

// RemovalStats reports how many images a remove run would touch and how
// many currently carry each field.
func (s *PreviewService) RemovalStats(ctx context.Context, dateFilter string) (*models.RemovalStats, error) {
	opts := repo.ListOptions{Date: dateFilter}
	total, err := s.attachments.Count(opts)
	if err != nil {
		return nil, fmt.Errorf("counting images: %w", err)
	}
	if total > CountCeiling {
		return nil, ErrTooManyResults
	}
	page, _, err := s.attachments.List(opts, int(total), 0)
	if err != nil {
		return nil, fmt.Errorf("fetching images: %w", err)
	}
	stats := &models.RemovalStats{Total: total}
	for _, att := range page {
		if att.AltText != "" {
			stats.WithAlt++
		}
		if att.Title != "" {
			stats.WithTitle++
		}
		if att.Caption != "" {
			stats.WithCaption++
		}
		if att.Description != "" {
			stats.WithDesc++
		}
		if att.AltText != "" || att.Title != "" || att.Caption != "" || att.Description != "" {
			stats.AnyMetadata++
		}
	}
	return stats, nil
}

// TranslationStats reports translation coverage and configuration state
func (s *PreviewService) TranslationStats(ctx context.Context) (*models.TranslationStats, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return nil, err
	}
	total, err := s.attachments.Count(repo.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("counting images: %w", err)
	}
	return &models.TranslationStats{
		Total:         total,
		Service:       settings.TranslationService,
		SourceLang:    settings.TranslateSourceLang,
		TargetLang:    settings.TranslateTargetLang,
		Configured:    settings.TranslateTargetLang != "",
		FieldsEnabled: len(enabledTranslateFields(settings)),
	}, nil
}

// RunHistory returns recent run log entries plus lifetime totals
func (s *PreviewService) RunHistory(limit int) ([]models.ProcessLog, models.BatchTotals, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries, err := s.logs.ListRecent(limit)
	if err != nil {
		return nil, models.BatchTotals{}, fmt.Errorf("loading run log: %w", err)
	}
	var sums models.BatchTotals
	for column, target := range map[string]*int{
		"processed": &sums.Processed,
		"success":   &sums.Success,
		"skipped":   &sums.Skipped,
		"errors":    &sums.Errors,
	} {
		value, err := s.logs.Sum(column)
		if err != nil {
			return nil, models.BatchTotals{}, fmt.Errorf("summing run log: %w", err)
		}
		*target = int(value)
	}
	return entries, sums, nil
}
