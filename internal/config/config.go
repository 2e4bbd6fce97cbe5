package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides. Only variables
// carrying this prefix are visible to the app (BLUEPRINT_ENVIRONMENT,
// BLUEPRINT_BACKEND_URL_DEV, ...).
const EnvPrefix = "BLUEPRINT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BLUEPRINT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: BLUEPRINT_ENVIRONMENT -> environment, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// BackendURL returns the backend base URL for the configured environment.
func (c *Config) BackendURL() string {
	if c.Environment == EnvProd {
		return c.BackendURLProd
	}
	return c.BackendURLDev
}

// FrontendURL returns the frontend base URL for the configured environment.
func (c *Config) FrontendURL() string {
	if c.Environment == EnvProd {
		return c.FrontendURLProd
	}
	return c.FrontendURLDev
}

// APIURL joins the backend base URL with an endpoint path.
func (c *Config) APIURL(path string) string {
	base := strings.TrimSuffix(c.BackendURL(), "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderOpenAI: true,
	ProviderOllama: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDev, EnvProd:
	default:
		return fmt.Errorf("invalid environment %q: must be dev or prod", c.Environment)
	}

	if c.BackendURL() == "" {
		return fmt.Errorf("backend URL for environment %q is required", c.Environment)
	}

	if c.Provider != "" && !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of openai, ollama", c.Provider)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.MaxRPM < 0 {
		return fmt.Errorf("max_rpm must be non-negative")
	}

	return nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}
