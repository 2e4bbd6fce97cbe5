package cmd

import (
	"fmt"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/config"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `blueprint init` to create a config file", err)
	}
	return cfg, nil
}

// createProviderFromConfig builds the rate-limited LLM provider the agent
// server runs on.
func createProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	if cfg.MaxRPM > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.MaxRPM)
	}
	return provider, nil
}
