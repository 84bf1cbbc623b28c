package config

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMustLoad(t *testing.T) {
	cfg := MustLoad("./test_data")

	if cfg.Public.Port != "8081" {
		t.Errorf("port, got: %s, want: %s", cfg.Public.Port, "8081")
	}
	if cfg.Public.ConfigURL != "http://localhost:8081/assets/config.json" {
		t.Errorf("config_url, got: %s", cfg.Public.ConfigURL)
	}
	if cfg.Public.APIBaseURL != "http://localhost:8080" {
		t.Errorf("api_base_url, got: %s", cfg.Public.APIBaseURL)
	}
	if cfg.Public.SecureCookies {
		t.Errorf("secure_cookies, got: true, want: false")
	}
	if cfg.Public.ReadTimeout != 5*time.Second {
		t.Errorf("read_timeout, got: %s, want: %s", cfg.Public.ReadTimeout, 5*time.Second)
	}
	if cfg.Public.MaxAttachmentSizeBytes != 20971520 {
		t.Errorf("max_attachment_size_bytes, got: %s, want: 20971520", fmt.Sprint(cfg.Public.MaxAttachmentSizeBytes))
	}
	if len(cfg.Public.AllowedImageMimeTypes) != 4 {
		t.Errorf("allowed_image_mime_types, got %d entries, want 4", len(cfg.Public.AllowedImageMimeTypes))
	}
}

func TestRegistryDefaultsAndLastWriteWins(t *testing.T) {
	r := NewRegistry()
	if r.BaseURL() != DefaultAPIBaseURL {
		t.Errorf("default base url, got: %s, want: %s", r.BaseURL(), DefaultAPIBaseURL)
	}

	r.Set("https://api.example.com")
	r.Set("https://api2.example.com")
	if r.BaseURL() != "https://api2.example.com" {
		t.Errorf("base url after writes, got: %s, want: %s", r.BaseURL(), "https://api2.example.com")
	}
}

func TestLoadAppConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"apiBaseUrl":"https://api.example.com"}`)
	}))
	defer server.Close()

	registry := NewRegistry()
	cfg := LoadAppConfig(context.Background(), server.Client(), server.URL, "", registry)

	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("loaded apiBaseUrl, got: %s, want: %s", cfg.APIBaseURL, "https://api.example.com")
	}
	if registry.BaseURL() != "https://api.example.com" {
		t.Errorf("registry base url, got: %s, want: %s", registry.BaseURL(), "https://api.example.com")
	}
}

func TestLoadAppConfigUnreachableFallsBack(t *testing.T) {
	registry := NewRegistry()
	cfg := LoadAppConfig(context.Background(), &http.Client{Timeout: 100 * time.Millisecond}, "http://127.0.0.1:1/config.json", "", registry)

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("fallback apiBaseUrl, got: %s, want: %s", cfg.APIBaseURL, DefaultAPIBaseURL)
	}
	if registry.BaseURL() != DefaultAPIBaseURL {
		t.Errorf("registry base url, got: %s, want: %s", registry.BaseURL(), DefaultAPIBaseURL)
	}
}

func TestLoadAppConfigMalformedFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	registry := NewRegistry()
	cfg := LoadAppConfig(context.Background(), server.Client(), server.URL, "http://fallback:9090", registry)

	if cfg.APIBaseURL != "http://fallback:9090" {
		t.Errorf("fallback apiBaseUrl, got: %s, want: %s", cfg.APIBaseURL, "http://fallback:9090")
	}
}
