package services

import (
	"fmt"
	"slices"
	"time"

	"imagetags/pkg/models"

	"github.com/rs/zerolog/log"
)

// SettingsStore is the persistence surface the settings service needs
type SettingsStore interface {
	GetAll() (map[string]string, error)
	SetAll(values map[string]string) error
}

// SettingsService owns the typed view of the stored configuration. The
// "1"/"0" flag representation never leaves this boundary.
type SettingsService struct {
	store SettingsStore
}

// NewSettingsService creates a new settings service
func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Load reads the stored configuration, falling back to defaults for
// missing keys.
func (s *SettingsService) Load() (models.Settings, error) {
	raw, err := s.store.GetAll()
	if err != nil {
		return models.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return models.SettingsFromMap(raw), nil
}

// Save validates and persists the whole configuration
func (s *SettingsService) Save(settings models.Settings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}
	if err := s.store.SetAll(settings.ToMap()); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// EnsureDefaults seeds the full default configuration when the store is
// empty, so a fresh install behaves like the documented defaults.
func (s *SettingsService) EnsureDefaults() error {
	raw, err := s.store.GetAll()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if len(raw) > 0 {
		return nil
	}
	log.Info().Msg("Seeding default settings")
	return s.store.SetAll(models.DefaultSettings().ToMap())
}

// Export produces a portable snapshot of the stored configuration
func (s *SettingsService) Export() (*models.SettingsExport, error) {
	raw, err := s.store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return &models.SettingsExport{
		Version:    "1.2.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Settings:   raw,
	}, nil
}

// Import validates and applies a previously exported snapshot
func (s *SettingsService) Import(export models.SettingsExport) error {
	if len(export.Settings) == 0 {
		return fmt.Errorf("import contains no settings")
	}
	settings := models.SettingsFromMap(export.Settings)
	if err := validateSettings(settings); err != nil {
		return err
	}
	if err := s.store.SetAll(settings.ToMap()); err != nil {
		return fmt.Errorf("importing settings: %w", err)
	}
	log.Info().Int("keys", len(export.Settings)).Msg("Settings imported")
	return nil
}

func validateSettings(settings models.Settings) error {
	for field, format := range map[string]string{
		"alt_format":         settings.AltFormat,
		"title_format":       settings.TitleFormat,
		"caption_format":     settings.CaptionFormat,
		"description_format": settings.DescriptionFormat,
	} {
		if !slices.Contains(models.ValidFormats, format) {
			return fmt.Errorf("invalid %s value %q", field, format)
		}
	}
	if !slices.Contains(models.ValidServices, settings.TranslationService) {
		return fmt.Errorf("invalid translation_service value %q", settings.TranslationService)
	}
	return nil
}
