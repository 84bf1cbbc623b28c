package handler

import (
	"html/template"
	"net/http"

	"github.com/greentrails-dev/greentrails/internal/apiclient"
	"github.com/greentrails-dev/greentrails/internal/config"
	"github.com/greentrails-dev/greentrails/internal/credentials"
	"github.com/greentrails-dev/greentrails/internal/localstore"
	"github.com/greentrails-dev/greentrails/internal/markdown"
)

type Handler struct {
	Templates     map[string]*template.Template
	Public        config.Public
	TextProcessor *markdown.TextProcessor
	APIClient     *apiclient.Client
	Credentials   *credentials.Store
	LocalStore    *localstore.Store
}

func New(templates map[string]*template.Template, publicCfg config.Public, textProcessor *markdown.TextProcessor, apiClient *apiclient.Client, creds *credentials.Store, local *localstore.Store) *Handler {
	return &Handler{
		Templates:     templates,
		Public:        publicCfg,
		TextProcessor: textProcessor,
		APIClient:     apiClient,
		Credentials:   creds,
		LocalStore:    local,
	}
}

func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/favicon.ico")
}
