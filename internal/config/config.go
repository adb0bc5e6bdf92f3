package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Ai           AIConfig
	Orchestrator OrchestratorConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	UsageTopic         string
}

type AIConfig struct {
	LLMProvider    string // "huggingface" or "ollama"
	LLMModel       string
	HFBaseURL      string
	HFToken        string // absence is a normal operating mode, not an error
	OllamaBaseURL  string
	RequestTimeout time.Duration
}

type OrchestratorConfig struct {
	DefaultTool   string // catches intents no rule matches
	PracticeTool  string // quiz_generator or flashcard_generator, deployment policy
	HistoryWindow int
	SessionTTL    time.Duration
	SessionSweep  time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			UsageTopic:         getEnv("TOOL_USAGE_TOPIC_NAME", "TOOL_USAGE"),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "huggingface"),
			LLMModel:       getEnv("LLM_MODEL", "deepseek-ai/DeepSeek-R1"),
			HFBaseURL:      getEnv("HF_BASE_URL", "https://router.huggingface.co/v1"),
			HFToken:        getEnv("HF_TOKEN", ""),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			RequestTimeout: getEnvAsDuration("LLM_REQUEST_TIMEOUT", 30*time.Second),
		},
		Orchestrator: OrchestratorConfig{
			DefaultTool:   getEnv("DEFAULT_TOOL", "quiz_generator"),
			PracticeTool:  getEnv("PRACTICE_TOOL", "quiz_generator"),
			HistoryWindow: getEnvAsInt("HISTORY_WINDOW", 5),
			SessionTTL:    getEnvAsDuration("SESSION_TTL", 1*time.Hour),
			SessionSweep:  getEnvAsDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
