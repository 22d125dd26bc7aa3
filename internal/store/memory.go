// Package store holds per-session conversation state in memory. Sessions
// live for the process lifetime unless idle-TTL eviction is enabled.
package store

import (
	"sync"
	"time"

	"travel-planner-backend/internal/intent"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// History cap: once a session exceeds maxMessages entries it is pruned to
// the seeded system message plus the most recent keepRecent entries.
const (
	maxMessages = 20
	keepRecent  = 10
)

type session struct {
	turnMu sync.Mutex // serializes whole turns for one session key

	mu         sync.Mutex // guards the fields below
	messages   []Message
	travelInfo intent.TravelInfo
	lastSeen   time.Time
}

type MemoryStore struct {
	mu           sync.RWMutex
	sessions     map[string]*session
	systemPrompt string
}

func NewMemoryStore(systemPrompt string) *MemoryStore {
	return &MemoryStore{
		sessions:     make(map[string]*session),
		systemPrompt: systemPrompt,
	}
}

// getOrCreate returns the session, creating it with the seeded system
// message on first access.
func (m *MemoryStore) getOrCreate(sessionID string) *session {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if ok {
		return s
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok = m.sessions[sessionID]; ok {
		return s
	}
	s = &session{
		messages: []Message{{Role: RoleSystem, Content: m.systemPrompt}},
		lastSeen: time.Now(),
	}
	m.sessions[sessionID] = s
	return s
}

// LockSession creates the session if needed and acquires its turn lock.
// Concurrent turns against the same session key serialize here; distinct
// keys proceed independently. The janitor may evict a session between the
// lookup and the lock, so after locking we confirm the map still holds the
// locked pointer and retry on the live entry if not.
func (m *MemoryStore) LockSession(sessionID string) {
	for {
		s := m.getOrCreate(sessionID)
		s.turnMu.Lock()
		m.mu.RLock()
		current := m.sessions[sessionID]
		m.mu.RUnlock()
		if current == s {
			s.mu.Lock()
			s.lastSeen = time.Now()
			s.mu.Unlock()
			return
		}
		s.turnMu.Unlock()
	}
}

func (m *MemoryStore) UnlockSession(sessionID string) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if ok {
		s.turnMu.Unlock()
	}
}

func (m *MemoryStore) Append(sessionID string, msg Message) {
	s := m.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Prune enforces the history cap for the session.
func (m *MemoryStore) Prune(sessionID string) {
	s := m.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) <= maxMessages {
		return
	}
	pruned := make([]Message, 0, keepRecent+1)
	pruned = append(pruned, s.messages[0])
	pruned = append(pruned, s.messages[len(s.messages)-keepRecent:]...)
	s.messages = pruned
}

// History returns a defensive copy of the session's messages.
func (m *MemoryStore) History(sessionID string) []Message {
	s := m.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (m *MemoryStore) TravelInfo(sessionID string) intent.TravelInfo {
	s := m.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.travelInfo
}

func (m *MemoryStore) SetTravelInfo(sessionID string, info intent.TravelInfo) {
	s := m.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.travelInfo = info
}

// Len reports the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartJanitor evicts sessions idle longer than ttl, checking every
// interval, until stop is closed. No-op when ttl <= 0.
func (m *MemoryStore) StartJanitor(ttl, interval time.Duration, stop <-chan struct{}) {
	if ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.evictIdle(ttl)
			case <-stop:
				return
			}
		}
	}()
}

func (m *MemoryStore) evictIdle(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		// Skip sessions with a turn in flight. The delete happens while the
		// turn lock is held so LockSession's re-check observes it.
		if !s.turnMu.TryLock() {
			continue
		}
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(m.sessions, id)
		}
		s.turnMu.Unlock()
	}
}
