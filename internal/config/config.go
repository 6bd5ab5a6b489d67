package config

import "os"

type Config struct {
	Port string

	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
	VisionAPIKey    string

	// empty means the result cache is off
	DatabaseURL string

	// empty means the embedded catalog
	CatalogPath string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads everything from the environment. Provider keys are all
// optional: with none configured the service runs in mock mode, which is a
// supported operating mode, not an error.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-7-sonnet-latest"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		VisionAPIKey:    os.Getenv("GOOGLE_VISION_API_KEY"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		CatalogPath: os.Getenv("TEMPLATE_CATALOG_PATH"),
	}
}
