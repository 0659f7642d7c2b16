package config

import "os"

// Config holds application configuration.
type Config struct {
	DBPath    string
	PlansPath string
	OpenAIKey string
	AIModel   string
	AIBaseURL string
	Debug     bool
}

// Load reads configuration from environment variables. Nothing is required:
// the DB path falls back to the per-user default and the AI key is optional
// (chat degrades to a configuration prompt without it).
func Load() *Config {
	return &Config{
		DBPath:    getEnv("HC_DB", ""),
		PlansPath: getEnv("HC_PLANS", ""),
		OpenAIKey: getEnv("OPENAI_API_KEY", ""),
		AIModel:   getEnv("AI_MODEL", ""),
		AIBaseURL: getEnv("AI_BASE_URL", ""),
		Debug:     getEnvBool("HC_DEBUG", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
