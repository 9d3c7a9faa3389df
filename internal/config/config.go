package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey         string
	GeminiModel          string
	GeminiConcurrentReqs int
	GenerateTimeoutSecs  int

	// Text-to-speech
	TTSBaseURL      string
	TTSTimeoutSecs  int
	TTSCacheTTLMins int

	// Redis (optional; empty disables the TTS cache)
	RedisURL string

	// Language routing
	RomanizedFallback string

	// HTTP
	AllowedOrigin     string
	ChatRatePerMinute int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:         mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		GenerateTimeoutSecs:  getEnvAsIntOrDefault("GENERATE_TIMEOUT_SECONDS", 30),
		TTSBaseURL:           getEnvOrDefault("TTS_BASE_URL", "https://translate.google.com/translate_tts"),
		TTSTimeoutSecs:       getEnvAsIntOrDefault("TTS_TIMEOUT_SECONDS", 30),
		TTSCacheTTLMins:      getEnvAsIntOrDefault("TTS_CACHE_TTL_MINUTES", 60),
		RedisURL:             getEnvOrDefault("REDIS_URL", ""),
		RomanizedFallback:    getEnvOrDefault("ROMANIZED_FALLBACK_LANGUAGE", "hi"),
		AllowedOrigin:        getEnvOrDefault("ALLOWED_ORIGIN", "*"),
		ChatRatePerMinute:    getEnvAsIntOrDefault("CHAT_RATE_LIMIT_PER_MINUTE", 30),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
