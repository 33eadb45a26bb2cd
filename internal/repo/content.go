package repo

import (
	"imagetags/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository handles parent post/page/product data access
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// GetByID gets a content record by ID
func (r *ContentRepository) GetByID(id uuid.UUID) (*models.Content, error) {
	var content models.Content
	if err := r.db.Where("id = ?", id).First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// ParentOption is one entry of the parent filter dropdown
type ParentOption struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// ListParentsWithImages returns the distinct parents that have at least
// one image attached, ordered by title, capped at limit.
func (r *ContentRepository) ListParentsWithImages(limit int) ([]ParentOption, error) {
	var options []ParentOption
	err := r.db.Model(&models.Content{}).
		Select("DISTINCT contents.id, contents.title").
		Joins("JOIN attachments ON attachments.parent_id = contents.id").
		Where("attachments.mime_type LIKE ?", "image/%").
		Order("contents.title ASC").
		Limit(limit).
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}
