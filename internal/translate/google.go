package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const googleEndpoint = "https://translation.googleapis.com/language/translate/v2"

// Google calls the Cloud Translation v2 REST API with an API key.
type Google struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewGoogle(apiKey string) *Google {
	return &Google{apiKey: apiKey, endpoint: googleEndpoint, client: newHTTPClient()}
}

func (g *Google) Name() string { return "google" }

func (g *Google) Translate(ctx context.Context, text, source, target string) (string, error) {
	if g.apiKey == "" {
		return "", &ConfigError{Provider: g.Name(), Reason: "missing API key"}
	}

	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("q", text)
	params.Set("source", source)
	params.Set("target", target)
	params.Set("format", "text")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return "", &TransportError{Provider: g.Name(), Err: err}
	}
	defer resp.Body.Close()

	var body struct {
		Data struct {
			Translations []struct {
				TranslatedText string `json:"translatedText"`
			} `json:"translations"`
		} `json:"data"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &ProviderError{Provider: g.Name(), Message: fmt.Sprintf("invalid response: %v", err)}
	}
	if body.Error.Message != "" {
		return "", &ProviderError{Provider: g.Name(), Message: body.Error.Message}
	}
	if resp.StatusCode != http.StatusOK || len(body.Data.Translations) == 0 {
		return "", &ProviderError{Provider: g.Name(), Message: fmt.Sprintf("unexpected response (status %d)", resp.StatusCode)}
	}
	return body.Data.Translations[0].TranslatedText, nil
}
