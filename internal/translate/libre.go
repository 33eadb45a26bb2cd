package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const libreDefaultEndpoint = "https://libretranslate.com/translate"

// Libre talks to a LibreTranslate instance. Self-hosted instances need
// no key; the public instance takes an optional api_key.
type Libre struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewLibre(endpoint, apiKey string) *Libre {
	if endpoint == "" {
		endpoint = libreDefaultEndpoint
	}
	return &Libre{endpoint: endpoint, apiKey: apiKey, client: newHTTPClient()}
}

func (l *Libre) Name() string { return "libre" }

func (l *Libre) Translate(ctx context.Context, text, source, target string) (string, error) {
	payload := map[string]any{
		"q":      text,
		"source": source,
		"target": target,
		"format": "text",
	}
	if l.apiKey != "" {
		payload["api_key"] = l.apiKey
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", &TransportError{Provider: l.Name(), Err: err}
	}
	defer resp.Body.Close()

	var body struct {
		TranslatedText string `json:"translatedText"`
		Error          string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &ProviderError{Provider: l.Name(), Message: fmt.Sprintf("invalid response: %v", err)}
	}
	if body.Error != "" {
		return "", &ProviderError{Provider: l.Name(), Message: body.Error}
	}
	if resp.StatusCode != http.StatusOK || body.TranslatedText == "" {
		return "", &ProviderError{Provider: l.Name(), Message: fmt.Sprintf("unexpected response (status %d)", resp.StatusCode)}
	}
	return body.TranslatedText, nil
}
