package repo

import (
	"imagetags/pkg/models"

	"gorm.io/gorm"
)

// ProcessLogRepository handles the append-only batch run log
type ProcessLogRepository struct {
	db *gorm.DB
}

// NewProcessLogRepository creates a new process log repository
func NewProcessLogRepository(db *gorm.DB) *ProcessLogRepository {
	return &ProcessLogRepository{db: db}
}

// Append stores one completed run record
func (r *ProcessLogRepository) Append(entry *models.ProcessLog) error {
	return r.db.Create(entry).Error
}

// ListRecent returns the newest run records first
func (r *ProcessLogRepository) ListRecent(limit int) ([]models.ProcessLog, error) {
	var entries []models.ProcessLog
	if err := r.db.Order("process_date DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Sum totals one counter column across all non-test runs
func (r *ProcessLogRepository) Sum(column string) (int64, error) {
	var total int64
	err := r.db.Model(&models.ProcessLog{}).
		Where("test_mode = ?", false).
		Select("COALESCE(SUM(" + column + "), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
