package models

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Content kinds for attachment parents
const (
	ContentKindPost    = "post"
	ContentKindPage    = "page"
	ContentKindProduct = "product"
)

// Content represents a post, page or product an image can be attached to
type Content struct {
	BaseModel
	Title        string `gorm:"not null" json:"title"`
	Kind         string `gorm:"not null;default:'post';index" json:"kind"`
	CategoryName string `json:"category_name,omitempty"`
	Tags         string `json:"tags,omitempty"` // comma-joined tag names
	AuthorName   string `json:"author_name,omitempty"`
	SKU          string `json:"sku,omitempty"` // products only
}

// Attachment represents a media-library image record with editable text metadata
type Attachment struct {
	BaseModel
	FileName    string     `gorm:"not null" json:"file_name"` // stored file name, e.g. IMG_0042-300x200.jpg
	MimeType    string     `gorm:"not null;default:'image/jpeg';index" json:"mime_type"`
	StorageKey  string     `json:"storage_key,omitempty"` // object key in media storage
	AltText     string     `json:"alt_text"`
	Title       string     `json:"title"`
	Caption     string     `json:"caption"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	IsGallery   bool       `gorm:"default:false" json:"is_gallery"` // product gallery image rather than featured
}

// Metadata field names accepted by the batch operations
const (
	FieldAlt         = "alt"
	FieldTitle       = "title"
	FieldCaption     = "caption"
	FieldDescription = "description"
)

// MetaFields lists the four editable metadata fields in processing order.
var MetaFields = []string{FieldAlt, FieldTitle, FieldCaption, FieldDescription}

// IsMetaField reports whether name is one of the editable metadata fields.
func IsMetaField(name string) bool {
	for _, f := range MetaFields {
		if f == name {
			return true
		}
	}
	return false
}

// FieldValue returns the current value of the named metadata field.
func (a *Attachment) FieldValue(field string) string {
	switch field {
	case FieldAlt:
		return a.AltText
	case FieldTitle:
		return a.Title
	case FieldCaption:
		return a.Caption
	case FieldDescription:
		return a.Description
	}
	return ""
}

// FieldColumn maps a metadata field name to its database column.
func FieldColumn(field string) string {
	switch field {
	case FieldAlt:
		return "alt_text"
	case FieldTitle:
		return "title"
	case FieldCaption:
		return "caption"
	case FieldDescription:
		return "description"
	}
	return ""
}

// FileStem returns the file name without directory and extension,
// the raw input of the filename cleanup pipeline.
func (a *Attachment) FileStem() string {
	base := filepath.Base(a.FileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
