package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .blueprint.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to blueprint! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Environment selection.
	envPrompt := promptui.Select{
		Label: "Select environment",
		Items: []string{"dev", "prod"},
	}
	_, envStr, err := envPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("environment selection: %w", err)
	}
	cfg.Environment = Environment(envStr)

	// 2. Backend URL for the chosen environment.
	backendPrompt := promptui.Prompt{
		Label:   "Backend base URL",
		Default: cfg.BackendURL(),
	}
	backendURL, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend URL: %w", err)
	}
	if cfg.Environment == EnvProd {
		cfg.BackendURLProd = backendURL
	} else {
		cfg.BackendURLDev = backendURL
	}

	// 3. LLM provider for the agent server.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider (agent server)",
		Items: []string{"openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)
	if cfg.Provider == ProviderOllama {
		cfg.Model = "llama3"
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for generated docs",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 5. Mockup screens.
	screensPrompt := promptui.Prompt{
		Label:   "Mockup screens (comma-separated)",
		Default: strings.Join(cfg.Screens, ","),
	}
	screensStr, err := screensPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("screens: %w", err)
	}
	if screens := splitAndTrim(screensStr); len(screens) > 0 {
		cfg.Screens = screens
	}

	// 6. Server port.
	portPrompt := promptui.Prompt{
		Label:    "Agent server port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// Check for API key.
	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running blueprint server.\n", envVar)
		}
	}

	configPath := ".blueprint.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("invalid port")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
