package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
	Speech   SpeechConfig
}

type AppConfig struct {
	Host               string
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	UploadDir          string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret          string
	TokenExpiryMinutes int
}

type AIConfig struct {
	Provider      string // "openai" (any OpenAI-compatible endpoint) or "ollama"
	BaseURL       string
	APIKey        string
	Model         string
	OllamaBaseURL string
	OllamaModel   string
}

type SpeechConfig struct {
	BaseURL  string
	APIKey   string
	Model    string
	Language string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Host:               getEnv("APP_HOST", "0.0.0.0"),
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
			UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:          getEnv("JWT_SECRET", "your-secret-key-here-change-in-production"),
			TokenExpiryMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			BaseURL:       getEnv("LLM_BASE_URL", "https://api.novita.ai/v3/openai"),
			APIKey:        getEnv("LLM_API_KEY", ""),
			Model:         getEnv("LLM_MODEL", "deepseek/deepseek-v3-0324"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),
		},
		Speech: SpeechConfig{
			BaseURL:  getEnv("SPEECH_BASE_URL", ""),
			APIKey:   getEnv("SPEECH_API_KEY", ""),
			Model:    getEnv("SPEECH_MODEL", "whisper-1"),
			Language: getEnv("SPEECH_LANGUAGE", "uz"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
