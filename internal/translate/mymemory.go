package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const myMemoryEndpoint = "https://api.mymemory.translated.net/get"

// MyMemory is the keyless free tier. A contact email in the `de` query
// parameter raises the daily character quota but is never required.
type MyMemory struct {
	email    string
	endpoint string
	client   *http.Client
}

func NewMyMemory(email string) *MyMemory {
	return &MyMemory{email: email, endpoint: myMemoryEndpoint, client: newHTTPClient()}
}

func (m *MyMemory) Name() string { return "mymemory" }

func (m *MyMemory) Translate(ctx context.Context, text, source, target string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", source+"|"+target)
	if m.email != "" {
		params.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return "", &TransportError{Provider: m.Name(), Err: err}
	}
	defer resp.Body.Close()

	var body struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus  any    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &ProviderError{Provider: m.Name(), Message: fmt.Sprintf("invalid response: %v", err)}
	}
	// errors come back in-band with HTTP 200; the status can be a
	// number or a quoted string depending on the failure
	if status := fmt.Sprint(body.ResponseStatus); status != "200" {
		msg := body.ResponseDetails
		if msg == "" {
			msg = "unexpected response status " + status
		}
		return "", &ProviderError{Provider: m.Name(), Message: msg}
	}
	return body.ResponseData.TranslatedText, nil
}
