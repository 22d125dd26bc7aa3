package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port          string
	AllowedOrigin string

	// Language-model provider (OpenRouter, OpenAI-compatible)
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterReferer string
	Model             string

	// Travel data providers
	WeatherAPIKey       string
	AmadeusClientID     string
	AmadeusClientSecret string
	GooglePlacesAPIKey  string
	AviationStackAPIKey string
	ExchangeAPIBase     string

	// Session housekeeping
	SessionTTLMinutes int

	// System prompt spec file
	PromptFile string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:                getEnvDefault("PORT", "8080"),
		AllowedOrigin:       getEnvDefault("ALLOWED_ORIGIN", "*"),
		OpenRouterAPIKey:    os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL:   getEnvDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterReferer:   getEnvDefault("OPENROUTER_REFERER", "http://localhost:3000"),
		Model:               getEnvDefault("OPENROUTER_MODEL", "mistralai/mistral-7b-instruct"),
		WeatherAPIKey:       os.Getenv("WEATHER_API_KEY"),
		AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		GooglePlacesAPIKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		AviationStackAPIKey: os.Getenv("AVIATION_STACK_API_KEY"),
		ExchangeAPIBase:     getEnvDefault("EXCHANGE_API_BASE", "https://api.exchangerate-api.com/v4"),
		SessionTTLMinutes:   getEnvIntDefault("SESSION_TTL_MINUTES", 30),
		PromptFile:          getEnvDefault("PROMPT_FILE", "./prompts/system.yaml"),
	}
	// Missing credentials are not fatal; the affected provider calls fail
	// at request time instead.
	if cfg.OpenRouterAPIKey == "" {
		log.Warn().Msg("OPENROUTER_API_KEY is not set; chat completions will fail until provided")
	}
	for _, c := range []struct{ key, val string }{
		{"WEATHER_API_KEY", cfg.WeatherAPIKey},
		{"AMADEUS_CLIENT_ID", cfg.AmadeusClientID},
		{"AMADEUS_CLIENT_SECRET", cfg.AmadeusClientSecret},
		{"GOOGLE_PLACES_API_KEY", cfg.GooglePlacesAPIKey},
		{"AVIATION_STACK_API_KEY", cfg.AviationStackAPIKey},
	} {
		if c.val == "" {
			log.Warn().Str("key", c.key).Msg("travel provider credential not set; lookups via it will fail")
		}
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
