package config

// Environment selects which set of base URLs the client talks to.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// ProviderType identifies an LLM provider for the agent server.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level blueprint configuration, corresponding to .blueprint.yml.
// It is computed once at startup and never mutated afterwards.
type Config struct {
	Environment     Environment  `yaml:"environment" koanf:"environment"`
	AppName         string       `yaml:"app_name" koanf:"app_name"`
	AppVersion      string       `yaml:"app_version" koanf:"app_version"`
	BackendURLDev   string       `yaml:"backend_url_dev" koanf:"backend_url_dev"`
	BackendURLProd  string       `yaml:"backend_url_prod" koanf:"backend_url_prod"`
	FrontendURLDev  string       `yaml:"frontend_url_dev" koanf:"frontend_url_dev"`
	FrontendURLProd string       `yaml:"frontend_url_prod" koanf:"frontend_url_prod"`
	OutputDir       string       `yaml:"output_dir" koanf:"output_dir"`
	Provider        ProviderType `yaml:"provider" koanf:"provider"`
	Model           string       `yaml:"model" koanf:"model"`
	Port            int          `yaml:"port" koanf:"port"`
	MaxRPM          int          `yaml:"max_rpm" koanf:"max_rpm"`
	Screens         []string     `yaml:"screens" koanf:"screens"`
	Theme           string       `yaml:"theme" koanf:"theme"`
}
