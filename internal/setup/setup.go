package setup

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/greentrails-dev/greentrails/internal/apiclient"
	"github.com/greentrails-dev/greentrails/internal/config"
	"github.com/greentrails-dev/greentrails/internal/credentials"
	"github.com/greentrails-dev/greentrails/internal/handler"
	"github.com/greentrails-dev/greentrails/internal/localstore"
	"github.com/greentrails-dev/greentrails/internal/logger"
	"github.com/greentrails-dev/greentrails/internal/markdown"
)

const (
	baseTemplate           = "base.html"
	templateReloadInterval = 5 * time.Second
	appConfigTimeout       = 10 * time.Second
)

type Dependencies struct {
	Handler    *handler.Handler
	Public     config.Public
	Registry   *config.Registry
	LocalStore *localstore.Store
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	// Resolve the backend origin before the first handler is served. This
	// never fails; an unreachable config document means the fallback origin.
	registry := config.NewRegistry()
	ctx, cancel := context.WithTimeout(context.Background(), appConfigTimeout)
	defer cancel()
	config.LoadAppConfig(ctx, &http.Client{}, cfg.Public.ConfigURL, cfg.Public.APIBaseURL, registry)

	local, err := localstore.Open(cfg.Public.LocalStore)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	tmplPath := cfg.Public.TemplatesPath
	if tmplPath == "" {
		tmplPath = "templates"
	}
	templates := mustLoadTemplates(tmplPath)

	textProcessor := markdown.New()
	apiClient := apiclient.New(registry)
	creds := credentials.NewStore(cfg.Public.SecureCookies)

	h := handler.New(templates, cfg.Public, textProcessor, apiClient, creds, local)
	startTemplateReloader(h, tmplPath)

	return &Dependencies{
		Handler:    h,
		Public:     cfg.Public,
		Registry:   registry,
		LocalStore: local,
	}, nil
}

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

func bytesToMB(bytes int64) int64 {
	return bytes / (1024 * 1024)
}

func mimeTypeExtensions(mimeTypes []string) string {
	var exts []string
	for _, m := range mimeTypes {
		if parts := strings.Split(m, "/"); len(parts) == 2 {
			exts = append(exts, parts[1])
		}
	}
	return strings.Join(exts, ", ")
}

func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate && f.Name() != "partials.html" {
			templates[f.Name()] = template.Must(template.New(baseTemplate).Funcs(
				template.FuncMap{
					"sub":                sub,
					"add":                add,
					"dict":               dict,
					"bytesToMB":          bytesToMB,
					"mimeTypeExtensions": mimeTypeExtensions,
				},
			).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
				path.Join(tmplPath, "partials.html"),
			),
			)
		}
	}
	return templates
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") == "development" {
		ticker := time.NewTicker(templateReloadInterval)
		go func() {
			for range ticker.C {
				h.Templates = mustLoadTemplates(tmplPath)
			}
		}()
	}
}
