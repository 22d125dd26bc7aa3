package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"travel-planner-backend/internal/config"
	"travel-planner-backend/internal/llm"
	"travel-planner-backend/internal/store"
	"travel-planner-backend/internal/travel"
	"travel-planner-backend/internal/types"
)

type Server struct {
	router *chi.Mux
	store  *store.MemoryStore
	llm    llm.Client
	travel travel.Client
	stop   chan struct{}
}

func NewServer(cfg config.Config) (*Server, error) {
	spec, err := llm.LoadPromptSpec(cfg.PromptFile)
	if err != nil {
		return nil, err
	}
	travelClient, err := travel.NewAPIClient(travel.Config{
		WeatherAPIKey:       cfg.WeatherAPIKey,
		AmadeusClientID:     cfg.AmadeusClientID,
		AmadeusClientSecret: cfg.AmadeusClientSecret,
		GooglePlacesAPIKey:  cfg.GooglePlacesAPIKey,
		AviationStackAPIKey: cfg.AviationStackAPIKey,
		ExchangeBaseURL:     cfg.ExchangeAPIBase,
	})
	if err != nil {
		return nil, err
	}
	modelClient := llm.NewOpenRouterClient(llm.Config{
		APIKey:      cfg.OpenRouterAPIKey,
		BaseURL:     cfg.OpenRouterBaseURL,
		Model:       cfg.Model,
		Referer:     cfg.OpenRouterReferer,
		Temperature: spec.Style.Temperature,
		MaxTokens:   spec.Style.MaxTokens,
	})

	s := newServer(store.NewMemoryStore(spec.System), modelClient, travelClient, cfg.AllowedOrigin)
	s.store.StartJanitor(time.Duration(cfg.SessionTTLMinutes)*time.Minute, 5*time.Minute, s.stop)
	return s, nil
}

// newServer wires the pieces directly; tests use it with fakes.
func newServer(ms *store.MemoryStore, modelClient llm.Client, travelClient travel.Client, allowedOrigin string) *Server {
	r := chi.NewRouter()
	if allowedOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{allowedOrigin},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	s := &Server{
		router: r,
		store:  ms,
		llm:    modelClient,
		travel: travelClient,
		stop:   make(chan struct{}),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/chat", s.handleChat)
}

func (s *Server) Router() http.Handler { return s.router }

// Close stops background housekeeping.
func (s *Server) Close() { close(s.stop) }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg})
}
