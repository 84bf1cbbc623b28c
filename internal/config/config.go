package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

// DefaultAPIBaseURL is the origin used until the runtime config document
// has been fetched, and the fallback when fetching it fails.
const DefaultAPIBaseURL = "http://localhost:8080"

type Config struct {
	Public Public
}

type Public struct {
	Port          string        `yaml:"port"`
	ConfigURL     string        `yaml:"config_url"`
	APIBaseURL    string        `yaml:"api_base_url"` // fallback origin when the config document is unreachable
	SecureCookies bool          `yaml:"secure_cookies"`
	TemplatesPath string        `yaml:"templates_path"`
	LocalStore    string        `yaml:"local_store"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	WriteTimeout  time.Duration `yaml:"write_timeout"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	MaxAttachmentSizeBytes int64    `yaml:"max_attachment_size_bytes"`
	AllowedImageMimeTypes  []string `yaml:"allowed_image_mime_types"`
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	cfg := &Config{public}
	if cfg.Public.APIBaseURL == "" {
		cfg.Public.APIBaseURL = DefaultAPIBaseURL
	}
	return cfg
}
