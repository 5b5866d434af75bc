package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Provider credentials, forwarded as-is to the backends
	OpenAIAPIKey string
	GoogleAPIKey string

	// Model selection
	ChatModel      string
	InterviewModel string

	// Frontend
	FrontendURL string
	AppURL      string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		Env:            getEnvOrDefault("ENV", "development"),
		OpenAIAPIKey:   getEnvOrDefault("OPENAI_API_KEY", ""),
		GoogleAPIKey:   getEnvOrDefault("GOOGLE_API_KEY", ""),
		ChatModel:      getEnvOrDefault("CHAT_MODEL", "gpt-3.5-turbo"),
		InterviewModel: getEnvOrDefault("INTERVIEW_MODEL", "gpt-4-turbo-preview"),
		FrontendURL:    getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		AppURL:         getEnvOrDefault("APP_URL", ""),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
