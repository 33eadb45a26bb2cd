package translate

import (
	"context"
	"net/http"
	"time"

	"imagetags/pkg/models"
)

// Translator is the single capability all five providers implement.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
	Name() string
}

const requestTimeout = 15 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// New selects a provider from the configured service tag. Credential
// checks happen per call, not here, so a saved configuration with a
// missing key still loads.
func New(settings models.Settings) (Translator, error) {
	switch settings.TranslationService {
	case models.ServiceGoogle:
		return NewGoogle(settings.GoogleAPIKey), nil
	case models.ServiceDeepL:
		return NewDeepL(settings.DeepLAPIKey, settings.DeepLEndpoint), nil
	case models.ServiceYandex:
		return NewYandex(settings.YandexAPIKey, settings.YandexFolderID), nil
	case models.ServiceLibre:
		return NewLibre(settings.LibreEndpoint, settings.LibreAPIKey), nil
	case models.ServiceMyMemory:
		return NewMyMemory(settings.MyMemoryEmail), nil
	}
	return nil, &ConfigError{Provider: settings.TranslationService, Reason: "unknown translation service"}
}
