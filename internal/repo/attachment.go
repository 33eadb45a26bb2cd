package repo

import (
	"time"

	"imagetags/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentRepository handles media-library image data access
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// ListOptions narrows an attachment page fetch
type ListOptions struct {
	Date           string
	Parent         *uuid.UUID
	ExcludeGallery bool
}

// dateCutoff maps a date bucket to its lower bound; nil means no bound
func dateCutoff(bucket string, now time.Time) *time.Time {
	var cutoff time.Time
	switch bucket {
	case models.DateToday:
		cutoff = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case models.DateWeek:
		cutoff = now.AddDate(0, 0, -7)
	case models.DateMonth:
		cutoff = now.AddDate(0, -1, 0)
	case models.DateYear:
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &cutoff
}

func (r *AttachmentRepository) scope(opts ListOptions) *gorm.DB {
	q := r.db.Model(&models.Attachment{}).Where("mime_type LIKE ?", "image/%")
	if cutoff := dateCutoff(opts.Date, time.Now()); cutoff != nil {
		q = q.Where("created_at >= ?", *cutoff)
	}
	if opts.Parent != nil {
		q = q.Where("parent_id = ?", *opts.Parent)
	}
	if opts.ExcludeGallery {
		q = q.Where("is_gallery = ?", false)
	}
	return q
}

// List returns one page of matching images plus the total matching count.
// Ordering is fixed to created_at then id so repeated offset fetches walk
// a stable sequence.
func (r *AttachmentRepository) List(opts ListOptions, limit, offset int) ([]models.Attachment, int64, error) {
	var total int64
	if err := r.scope(opts).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var attachments []models.Attachment
	err := r.scope(opts).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&attachments).Error
	if err != nil {
		return nil, 0, err
	}
	return attachments, total, nil
}

// Count returns the total matching count without fetching a page
func (r *AttachmentRepository) Count(opts ListOptions) (int64, error) {
	var total int64
	if err := r.scope(opts).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountEmptyField counts matching images whose metadata field is empty
func (r *AttachmentRepository) CountEmptyField(opts ListOptions, field string) (int64, error) {
	var total int64
	col := models.FieldColumn(field)
	if err := r.scope(opts).Where(col+" = ''").Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountNonEmptyField counts matching images whose metadata field is set
func (r *AttachmentRepository) CountNonEmptyField(opts ListOptions, field string) (int64, error) {
	var total int64
	col := models.FieldColumn(field)
	if err := r.scope(opts).Where(col+" <> ''").Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetByID gets an attachment by ID
func (r *AttachmentRepository) GetByID(id uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	if err := r.db.Where("id = ?", id).First(&attachment).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

// Create creates a new attachment
func (r *AttachmentRepository) Create(attachment *models.Attachment) error {
	return r.db.Create(attachment).Error
}

// UpdateFields applies a partial metadata update in one statement.
// Keys are metadata field names, not column names.
func (r *AttachmentRepository) UpdateFields(id uuid.UUID, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	updates := make(map[string]any, len(fields))
	for field, value := range fields {
		updates[models.FieldColumn(field)] = value
	}
	return r.db.Model(&models.Attachment{}).Where("id = ?", id).Updates(updates).Error
}

// ClearFields blanks the selected metadata fields
func (r *AttachmentRepository) ClearFields(id uuid.UUID, fields []string) error {
	updates := make(map[string]any, len(fields))
	for _, field := range fields {
		updates[models.FieldColumn(field)] = ""
	}
	return r.db.Model(&models.Attachment{}).Where("id = ?", id).Updates(updates).Error
}
