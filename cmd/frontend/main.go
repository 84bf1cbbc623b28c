package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/greentrails-dev/greentrails/internal/config"
	"github.com/greentrails-dev/greentrails/internal/router"
	"github.com/greentrails-dev/greentrails/internal/setup"
)

const (
	defaultPort         = "8081"
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

func main() {
	log.SetFlags(log.Lshortfile)

	configFolder := os.Getenv("CONFIG_FOLDER")
	if configFolder == "" {
		configFolder = "config"
	}
	cfg := config.MustLoad(configFolder)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer deps.LocalStore.Close()

	r := router.SetupRouter(deps)

	server := configureServer(r, cfg.Public)
	log.Printf("Starting frontend on %s", server.Addr)
	log.Fatal(server.ListenAndServe())
}

func configureServer(handler http.Handler, cfg config.Public) *http.Server {
	port := cfg.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	if port == "" {
		port = defaultPort
	}

	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = defaultReadTimeout
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = defaultWriteTimeout
	}

	return &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
