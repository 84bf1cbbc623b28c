package config

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/logger"
)

// AppConfig is the runtime configuration document served next to the
// static assets. It is fetched once at startup and never re-fetched.
type AppConfig struct {
	APIBaseURL string `json:"apiBaseUrl"`
}

// LoadAppConfig fetches the runtime config document and stores the resolved
// origin in the registry. It never fails: any error (network, status,
// malformed body) falls back to the fallback origin so startup always
// completes. Must run before the first handler is served.
func LoadAppConfig(ctx context.Context, client *http.Client, url, fallback string, registry *Registry) AppConfig {
	if fallback == "" {
		fallback = DefaultAPIBaseURL
	}

	cfg, err := fetchAppConfig(ctx, client, url)
	if err != nil || cfg.APIBaseURL == "" {
		logger.Log.Warn("runtime config unavailable, using fallback origin", "url", url, "fallback", fallback, "error", err)
		cfg = AppConfig{APIBaseURL: fallback}
	}

	registry.Set(cfg.APIBaseURL)
	return cfg
}

func fetchAppConfig(ctx context.Context, client *http.Client, url string) (AppConfig, error) {
	var cfg AppConfig

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return cfg, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return cfg, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return cfg, &statusError{resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected status " + http.StatusText(e.code)
}
