package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const deeplDefaultEndpoint = "https://api-free.deepl.com/v2/translate"

// DeepL posts form-encoded requests with the DeepL-Auth-Key header. The
// endpoint is configurable so paid-tier accounts can point at api.deepl.com.
type DeepL struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewDeepL(apiKey, endpoint string) *DeepL {
	if endpoint == "" {
		endpoint = deeplDefaultEndpoint
	}
	return &DeepL{apiKey: apiKey, endpoint: endpoint, client: newHTTPClient()}
}

func (d *DeepL) Name() string { return "deepl" }

func (d *DeepL) Translate(ctx context.Context, text, source, target string) (string, error) {
	if d.apiKey == "" {
		return "", &ConfigError{Provider: d.Name(), Reason: "missing API key"}
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("source_lang", strings.ToUpper(source))
	form.Set("target_lang", strings.ToUpper(target))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", &TransportError{Provider: d.Name(), Err: err}
	}
	defer resp.Body.Close()

	var body struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &ProviderError{Provider: d.Name(), Message: fmt.Sprintf("invalid response: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		msg := body.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected response (status %d)", resp.StatusCode)
		}
		return "", &ProviderError{Provider: d.Name(), Message: msg}
	}
	if len(body.Translations) == 0 {
		return "", &ProviderError{Provider: d.Name(), Message: "empty translation result"}
	}
	return body.Translations[0].Text, nil
}
