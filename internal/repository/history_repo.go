package repository

import (
	"sync"

	"exam-tutor-backend/internal/models"
)

// MaxHistoryLength caps the number of exchanges kept per session.
const MaxHistoryLength = 10

// HistoryRepo keeps bounded chat transcripts in process memory, keyed by
// session id. Sessions are created on first append and never evicted.
type HistoryRepo struct {
	mu       sync.Mutex
	sessions map[string][]models.Exchange
	maxLen   int
}

func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{
		sessions: make(map[string][]models.Exchange),
		maxLen:   MaxHistoryLength,
	}
}

// Append records an exchange for the session, drops the oldest entries past
// the cap and returns a copy of the resulting transcript.
func (r *HistoryRepo) Append(sessionID string, ex models.Exchange) []models.Exchange {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := append(r.sessions[sessionID], ex)
	if len(history) > r.maxLen {
		trimmed := make([]models.Exchange, r.maxLen)
		copy(trimmed, history[len(history)-r.maxLen:])
		history = trimmed
	}
	r.sessions[sessionID] = history

	out := make([]models.Exchange, len(history))
	copy(out, history)
	return out
}

// SessionCount reports how many distinct sessions have been seen.
func (r *HistoryRepo) SessionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
