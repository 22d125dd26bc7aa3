package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"travel-planner-backend/internal/intent"
	"travel-planner-backend/internal/llm"
	"travel-planner-backend/internal/store"
	"travel-planner-backend/internal/types"
)

// defaultSessionID is used when the caller does not supply one.
const defaultSessionID = "default"

const turnTimeout = 120 * time.Second

// handleChat runs one conversation turn: append the user message, fetch
// travel data the session already has enough fields for, ask the model, and
// record the reply. Turns on the same session key serialize; a model
// failure leaves the user message in history (matching upstream behavior).
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	sid := req.SessionID
	if sid == "" {
		sid = defaultSessionID
	}

	ctx, cancel := context.WithTimeout(r.Context(), turnTimeout)
	defer cancel()

	s.store.LockSession(sid)
	defer s.store.UnlockSession(sid)

	// Enrichment keys off what previous turns established, not the message
	// just typed; extraction for that runs at the end of the turn.
	knownInfo := s.store.TravelInfo(sid)

	s.store.Append(sid, store.Message{Role: store.RoleUser, Content: req.Message})

	if bundle := s.enrich(ctx, knownInfo); bundle != nil {
		data, err := json.Marshal(bundle)
		if err == nil {
			s.store.Append(sid, store.Message{
				Role:    store.RoleSystem,
				Content: "Here's the latest travel data: " + string(data),
			})
		}
	}

	reply, err := s.llm.Complete(ctx, s.store.History(sid))
	if err != nil {
		log.Error().Err(err).Str("session", sid).Msg("model completion failed")
		if errors.Is(err, llm.ErrProvider) {
			s.writeError(w, http.StatusBadGateway, "language model request failed")
		} else {
			s.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.store.Append(sid, store.Message{Role: store.RoleAssistant, Content: reply})
	s.store.Prune(sid)
	s.store.SetTravelInfo(sid, intent.Extract(s.store.TravelInfo(sid), req.Message))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(types.ChatResponse{SessionID: sid, Message: reply})
}
