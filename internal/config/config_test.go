package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGIN", "OPENROUTER_MODEL", "EXCHANGE_API_BASE",
		"SESSION_TTL_MINUTES", "PROMPT_FILE",
	} {
		t.Setenv(key, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.Equal(t, "mistralai/mistral-7b-instruct", cfg.Model)
	assert.Equal(t, 30, cfg.SessionTTLMinutes)
	assert.Equal(t, "./prompts/system.yaml", cfg.PromptFile)
}

func TestLoadWarnsOnEveryMissingCredential(t *testing.T) {
	missing := []string{
		"OPENROUTER_API_KEY",
		"WEATHER_API_KEY",
		"AMADEUS_CLIENT_ID",
		"AMADEUS_CLIENT_SECRET",
		"GOOGLE_PLACES_API_KEY",
		"AVIATION_STACK_API_KEY",
	}
	for _, key := range missing {
		t.Setenv(key, "")
	}

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	Load()
	for _, key := range missing {
		assert.Contains(t, buf.String(), key)
	}
}
