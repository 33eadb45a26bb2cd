package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"imagetags/pkg/models"
)

func TestNewSelectsProvider(t *testing.T) {
	tests := []struct {
		service string
		want    string
	}{
		{models.ServiceGoogle, "google"},
		{models.ServiceDeepL, "deepl"},
		{models.ServiceYandex, "yandex"},
		{models.ServiceLibre, "libre"},
		{models.ServiceMyMemory, "mymemory"},
	}
	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			tr, err := New(models.Settings{TranslationService: tt.service})
			if err != nil {
				t.Fatalf("New(%q): %v", tt.service, err)
			}
			if tr.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", tr.Name(), tt.want)
			}
		})
	}
}

func TestNewUnknownService(t *testing.T) {
	_, err := New(models.Settings{TranslationService: "babelfish"})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

// A credentialed provider with no credential must fail before any HTTP
// request goes out.
func TestMissingCredentialMakesNoRequest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	providers := []Translator{
		&Google{endpoint: srv.URL, client: srv.Client()},
		&DeepL{endpoint: srv.URL, client: srv.Client()},
		&Yandex{endpoint: srv.URL, client: srv.Client()},
	}
	for _, p := range providers {
		t.Run(p.Name(), func(t *testing.T) {
			_, err := p.Translate(context.Background(), "hello", "en", "de")
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
	if calls != 0 {
		t.Errorf("expected zero HTTP calls, got %d", calls)
	}
}

func TestYandexMissingFolderID(t *testing.T) {
	y := &Yandex{apiKey: "key", client: newHTTPClient()}
	_, err := y.Translate(context.Background(), "hello", "en", "de")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestGoogleTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "secret" || q.Get("q") != "hello" || q.Get("source") != "en" || q.Get("target") != "de" {
			t.Errorf("unexpected query %v", q)
		}
		fmt.Fprint(w, `{"data":{"translations":[{"translatedText":"hallo"}]}}`)
	}))
	defer srv.Close()

	g := &Google{apiKey: "secret", endpoint: srv.URL, client: srv.Client()}
	got, err := g.Translate(context.Background(), "hello", "en", "de")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hallo" {
		t.Errorf("got %q, want %q", got, "hallo")
	}
}

func TestGoogleProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"message":"API key not valid"}}`)
	}))
	defer srv.Close()

	g := &Google{apiKey: "bad", endpoint: srv.URL, client: srv.Client()}
	_, err := g.Translate(context.Background(), "hello", "en", "de")
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Message != "API key not valid" {
		t.Errorf("message = %q", provErr.Message)
	}
}

func TestDeepLTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "DeepL-Auth-Key secret" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("text") != "hello" || r.PostForm.Get("target_lang") != "DE" {
			t.Errorf("unexpected form %v", r.PostForm)
		}
		fmt.Fprint(w, `{"translations":[{"text":"hallo"}]}`)
	}))
	defer srv.Close()

	d := &DeepL{apiKey: "secret", endpoint: srv.URL, client: srv.Client()}
	got, err := d.Translate(context.Background(), "hello", "en", "de")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hallo" {
		t.Errorf("got %q, want %q", got, "hallo")
	}
}

func TestLibreTranslateOptionalKey(t *testing.T) {
	var sawKey bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatal(err)
		}
		_, sawKey = payload["api_key"]
		fmt.Fprint(w, `{"translatedText":"hallo"}`)
	}))
	defer srv.Close()

	l := &Libre{endpoint: srv.URL, client: srv.Client()}
	if _, err := l.Translate(context.Background(), "hello", "en", "de"); err != nil {
		t.Fatal(err)
	}
	if sawKey {
		t.Error("api_key sent without configuration")
	}

	l = &Libre{endpoint: srv.URL, apiKey: "k", client: srv.Client()}
	if _, err := l.Translate(context.Background(), "hello", "en", "de"); err != nil {
		t.Fatal(err)
	}
	if !sawKey {
		t.Error("configured api_key not sent")
	}
}

func TestMyMemoryEmailParam(t *testing.T) {
	var de string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		de = r.URL.Query().Get("de")
		if lp := r.URL.Query().Get("langpair"); lp != "en|de" {
			t.Errorf("langpair = %q", lp)
		}
		fmt.Fprint(w, `{"responseData":{"translatedText":"Schöner Sonnenuntergang"},"responseStatus":200}`)
	}))
	defer srv.Close()

	m := &MyMemory{endpoint: srv.URL, client: srv.Client()}
	if _, err := m.Translate(context.Background(), "Beautiful sunset", "en", "de"); err != nil {
		t.Fatal(err)
	}
	if de != "" {
		t.Errorf("de param sent without email: %q", de)
	}

	m = &MyMemory{email: "ops@example.com", endpoint: srv.URL, client: srv.Client()}
	if _, err := m.Translate(context.Background(), "Beautiful sunset", "en", "de"); err != nil {
		t.Fatal(err)
	}
	if de != "ops@example.com" {
		t.Errorf("de = %q, want configured email", de)
	}
}

func TestMyMemoryInBandError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseData":{"translatedText":""},"responseStatus":"403","responseDetails":"INVALID LANGUAGE PAIR"}`)
	}))
	defer srv.Close()

	m := &MyMemory{endpoint: srv.URL, client: srv.Client()}
	_, err := m.Translate(context.Background(), "hello", "en", "xx")
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Message != "INVALID LANGUAGE PAIR" {
		t.Errorf("message = %q", provErr.Message)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	g := &Google{apiKey: "secret", endpoint: url, client: newHTTPClient()}
	_, err := g.Translate(context.Background(), "hello", "en", "de")
	var transErr *TransportError
	if !errors.As(err, &transErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}
