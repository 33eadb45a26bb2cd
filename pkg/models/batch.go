package models

import "github.com/google/uuid"

// BatchFilters narrows which attachments a batch run or count touches.
// Zero values mean "no filter". Date buckets are all/today/week/month/year;
// Status is all/no_alt/no_title/no_tags and is applied client-side by the
// coordinator after the page fetch.
type BatchFilters struct {
	Date   string     `json:"date,omitempty"`
	Status string     `json:"status,omitempty"`
	Parent *uuid.UUID `json:"parent,omitempty"`
}

// Filter status values
const (
	StatusAll     = "all"
	StatusNoAlt   = "no_alt"
	StatusNoTitle = "no_title"
	StatusNoTags  = "no_tags"
)

// Date bucket values
const (
	DateAll   = "all"
	DateToday = "today"
	DateWeek  = "week"
	DateMonth = "month"
	DateYear  = "year"
)

// BatchTotals is the running counter set a chunked run accumulates.
// The caller round-trips it between chunk requests so the terminal
// chunk can log whole-run totals.
type BatchTotals struct {
	Processed int `json:"processed"`
	Success   int `json:"success"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// Add folds one chunk's counters into the running totals.
func (t *BatchTotals) Add(c BatchTotals) {
	t.Processed += c.Processed
	t.Success += c.Success
	t.Skipped += c.Skipped
	t.Errors += c.Errors
}

// ProcessBatchRequest drives one chunk of the generate operation.
type ProcessBatchRequest struct {
	Offset  int          `json:"offset" validate:"min=0"`
	Filters BatchFilters `json:"filters"`
	Totals  BatchTotals  `json:"totals"`
}

// ProcessBatchResponse reports one generate chunk.
type ProcessBatchResponse struct {
	Processed int         `json:"processed"`
	Success   int         `json:"success"`
	Skipped   int         `json:"skipped"`
	Errors    int         `json:"errors"`
	HasMore   bool        `json:"has_more"`
	Total     int64       `json:"total"`
	Totals    BatchTotals `json:"totals"`
	TestMode  bool        `json:"test_mode"`
}

// TranslateBatchRequest drives one chunk of the translate operation.
type TranslateBatchRequest struct {
	Offset int         `json:"offset" validate:"min=0"`
	Totals BatchTotals `json:"totals"`
}

// TranslateBatchResponse reports one translate chunk. Messages carries
// the per-field error strings collected while the chunk kept going.
type TranslateBatchResponse struct {
	Processed  int         `json:"processed"`
	Success    int         `json:"success"`
	Translated int         `json:"translated"`
	Skipped    int         `json:"skipped"`
	Errors     int         `json:"errors"`
	HasMore    bool        `json:"has_more"`
	Total      int64       `json:"total"`
	Totals     BatchTotals `json:"totals"`
	Messages   []string    `json:"messages,omitempty"`
}

// RemoveBatchRequest drives one chunk of the remove operation.
type RemoveBatchRequest struct {
	Offset int         `json:"offset" validate:"min=0"`
	Fields []string    `json:"fields" validate:"required,min=1"`
	Date   string      `json:"date,omitempty"`
	Totals BatchTotals `json:"totals"`
}

// RemoveBatchResponse reports one remove chunk. TotalProcessed is the
// running count across all chunks of the run.
type RemoveBatchResponse struct {
	Processed      int         `json:"processed"`
	HasMore        bool        `json:"has_more"`
	Total          int64       `json:"total"`
	TotalProcessed int         `json:"total_processed"`
	Totals         BatchTotals `json:"totals"`
}

// ImageCountResponse answers a pre-run estimate. NeedsProcessing uses
// the same decision predicate as batch generation.
type ImageCountResponse struct {
	Total           int64 `json:"total"`
	WithoutAlt      int64 `json:"without_alt"`
	WithoutTitle    int64 `json:"without_title"`
	NeedsProcessing int64 `json:"needs_processing"`
}

// PreviewField shows one field's projected change for a single image.
type PreviewField struct {
	Field    string `json:"field"`
	Current  string `json:"current"`
	Proposed string `json:"proposed"`
	WillSet  bool   `json:"will_set"`
}

// PreviewImage is the per-image unit of a dry-run preview.
type PreviewImage struct {
	ID           uuid.UUID      `json:"id"`
	FileName     string         `json:"file_name"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	Fields       []PreviewField `json:"fields"`
}

// PreviewResponse is a dry-run projection over the first images of a run.
type PreviewResponse struct {
	Total  int64          `json:"total"`
	Images []PreviewImage `json:"images"`
}

// RemovalStats summarizes what a remove run would clear.
type RemovalStats struct {
	Total        int64 `json:"total"`
	WithAlt      int64 `json:"with_alt"`
	WithTitle    int64 `json:"with_title"`
	WithCaption  int64 `json:"with_caption"`
	WithDesc     int64 `json:"with_description"`
	AnyMetadata  int64 `json:"any_metadata"`
}

// TranslationStats summarizes translation coverage of the library.
type TranslationStats struct {
	Total         int64  `json:"total"`
	Service       string `json:"service"`
	SourceLang    string `json:"source_lang"`
	TargetLang    string `json:"target_lang"`
	Configured    bool   `json:"configured"`
	FieldsEnabled int    `json:"fields_enabled"`
}
