package config

// DefaultScreens is the screen set requested from the mockups endpoint when
// the user does not specify their own.
var DefaultScreens = []string{"Home", "Dashboard", "Login", "Settings"}

// DefaultConfig returns a Config with sensible defaults for local development.
func DefaultConfig() *Config {
	return &Config{
		Environment:     EnvDev,
		AppName:         "blueprint",
		AppVersion:      "1.0.0",
		BackendURLDev:   "http://127.0.0.1:5000",
		BackendURLProd:  "https://blueprint-backend.up.railway.app",
		FrontendURLDev:  "http://localhost:3000",
		FrontendURLProd: "https://blueprint.up.railway.app",
		OutputDir:       "out",
		Provider:        ProviderOpenAI,
		Model:           "gpt-4o",
		Port:            5000,
		MaxRPM:          60,
		Screens:         DefaultScreens,
		Theme:           "dark",
	}
}
