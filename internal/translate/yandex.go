package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const yandexEndpoint = "https://translate.api.cloud.yandex.net/translate/v2/translate"

// Yandex calls the Cloud Translate v2 API with an Api-Key header plus
// the billing folder id.
type Yandex struct {
	apiKey   string
	folderID string
	endpoint string
	client   *http.Client
}

func NewYandex(apiKey, folderID string) *Yandex {
	return &Yandex{apiKey: apiKey, folderID: folderID, endpoint: yandexEndpoint, client: newHTTPClient()}
}

func (y *Yandex) Name() string { return "yandex" }

func (y *Yandex) Translate(ctx context.Context, text, source, target string) (string, error) {
	if y.apiKey == "" {
		return "", &ConfigError{Provider: y.Name(), Reason: "missing API key"}
	}
	if y.folderID == "" {
		return "", &ConfigError{Provider: y.Name(), Reason: "missing folder id"}
	}

	payload, err := json.Marshal(map[string]any{
		"folderId":           y.folderID,
		"texts":              []string{text},
		"sourceLanguageCode": source,
		"targetLanguageCode": target,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, y.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Api-Key "+y.apiKey)

	resp, err := y.client.Do(req)
	if err != nil {
		return "", &TransportError{Provider: y.Name(), Err: err}
	}
	defer resp.Body.Close()

	var body struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &ProviderError{Provider: y.Name(), Message: fmt.Sprintf("invalid response: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		msg := body.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected response (status %d)", resp.StatusCode)
		}
		return "", &ProviderError{Provider: y.Name(), Message: msg}
	}
	if len(body.Translations) == 0 {
		return "", &ProviderError{Provider: y.Name(), Message: "empty translation result"}
	}
	return body.Translations[0].Text, nil
}
