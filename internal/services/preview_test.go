package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"imagetags/internal/repo"
	"imagetags/pkg/models"
)

type fakeParentLister struct {
	options []repo.ParentOption
}

func (f *fakeParentLister) ListParentsWithImages(limit int) ([]repo.ParentOption, error) {
	return f.options, nil
}

type fakeRunLogReader struct {
	entries []models.ProcessLog
	sums    map[string]int64
}

func (f *fakeRunLogReader) ListRecent(limit int) ([]models.ProcessLog, error) {
	return f.entries, nil
}

func (f *fakeRunLogReader) Sum(column string) (int64, error) {
	return f.sums[column], nil
}

func newPreviewService(atts *fakeAttachmentStore, settings map[string]string) *PreviewService {
	store := &fakeSettingsStore{values: models.DefaultSettings().ToMap()}
	for k, v := range settings {
		store.values[k] = v
	}
	settingsSvc := NewSettingsService(store)
	batch := NewBatchService(atts, &fakeContentStore{}, &fakeRunLog{}, settingsSvc, nil)
	return NewPreviewService(atts, &fakeParentLister{}, &fakeRunLogReader{sums: map[string]int64{}}, settingsSvc, nil, batch)
}

func TestImageCount(t *testing.T) {
	atts := &fakeAttachmentStore{items: []models.Attachment{
		newAttachment("one.jpg", "", ""),
		newAttachment("two.jpg", "has alt", ""),
		newAttachment("three.jpg", "has alt", "has title"),
	}}
	svc := newPreviewService(atts, nil)

	resp, err := svc.ImageCount(context.Background(), models.BatchFilters{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Total)
	}
	if resp.WithoutAlt != 1 || resp.WithoutTitle != 2 {
		t.Errorf("without_alt/without_title = %d/%d, want 1/2", resp.WithoutAlt, resp.WithoutTitle)
	}
	// alt and title both populated on three.jpg, overwrite off
	if resp.NeedsProcessing != 2 {
		t.Errorf("needs_processing = %d, want 2", resp.NeedsProcessing)
	}
}

func TestImageCountCeiling(t *testing.T) {
	atts := &fakeAttachmentStore{}
	for i := 0; i <= CountCeiling; i++ {
		atts.items = append(atts.items, newAttachment(fmt.Sprintf("photo-%04d.jpg", i), "", ""))
	}
	svc := newPreviewService(atts, nil)

	_, err := svc.ImageCount(context.Background(), models.BatchFilters{})
	if !errors.Is(err, ErrTooManyResults) {
		t.Fatalf("expected ErrTooManyResults, got %v", err)
	}
}

// Previewing must compute proposed values without a single write.
func TestPreviewChangesIsReadOnly(t *testing.T) {
	atts := &fakeAttachmentStore{items: []models.Attachment{
		newAttachment("sunset-beach.jpg", "", "kept title"),
	}}
	svc := newPreviewService(atts, nil)

	resp, err := svc.PreviewChanges(context.Background(), 10, models.BatchFilters{})
	if err != nil {
		t.Fatal(err)
	}
	if len(atts.updateCalls) != 0 || len(atts.clearCalls) != 0 {
		t.Fatal("preview issued writes")
	}
	if len(resp.Images) != 1 {
		t.Fatalf("images = %d, want 1", len(resp.Images))
	}

	byField := map[string]models.PreviewField{}
	for _, f := range resp.Images[0].Fields {
		byField[f.Field] = f
	}
	alt := byField[models.FieldAlt]
	if !alt.WillSet || alt.Proposed != "Sunset Beach" || alt.Current != "" {
		t.Errorf("alt preview = %+v", alt)
	}
	title := byField[models.FieldTitle]
	if title.WillSet || title.Proposed != "kept title" {
		t.Errorf("title preview = %+v", title)
	}
	caption := byField[models.FieldCaption]
	if caption.WillSet {
		t.Errorf("caption preview = %+v, format is disabled", caption)
	}
}

func TestRemovalStats(t *testing.T) {
	atts := &fakeAttachmentStore{items: []models.Attachment{
		newAttachment("one.jpg", "alt", ""),
		newAttachment("two.jpg", "", ""),
	}}
	svc := newPreviewService(atts, nil)

	stats, err := svc.RemovalStats(context.Background(), models.DateAll)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 2 || stats.WithAlt != 1 || stats.AnyMetadata != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestTranslationStats(t *testing.T) {
	atts := &fakeAttachmentStore{items: []models.Attachment{
		newAttachment("one.jpg", "", ""),
	}}
	svc := newPreviewService(atts, map[string]string{
		"translation_service":   models.ServiceDeepL,
		"translate_target_lang": "de",
		"translate_alt":         "1",
	})

	stats, err := svc.TranslationStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 1 || stats.Service != models.ServiceDeepL || !stats.Configured || stats.FieldsEnabled != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
