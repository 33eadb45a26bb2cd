package repo

import (
	"errors"

	"imagetags/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository handles the key/value configuration rows
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetAll returns every stored setting as a key/value map
func (r *SettingsRepository) GetAll() (map[string]string, error) {
	var rows []models.Setting
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.SettingKey] = row.SettingValue
	}
	return out, nil
}

// Get returns one setting value, or the default when the key is absent
func (r *SettingsRepository) Get(key, defaultValue string) (string, error) {
	var row models.Setting
	err := r.db.Where("setting_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultValue, nil
	}
	if err != nil {
		return "", err
	}
	return row.SettingValue, nil
}

// Set upserts one setting value
func (r *SettingsRepository) Set(key, value string) error {
	row := models.Setting{SettingKey: key, SettingValue: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&row).Error
}

// SetAll upserts a batch of settings in one transaction
func (r *SettingsRepository) SetAll(values map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			row := models.Setting{SettingKey: key, SettingValue: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "setting_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
