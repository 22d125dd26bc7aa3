package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"travel-planner-backend/internal/config"
	"travel-planner-backend/internal/server"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	s, err := server.NewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}
	defer s.Close()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("model", cfg.Model).Msg("travel planner server listening")
	if err := http.ListenAndServe(addr, s.Router()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
