package journal

import (
	"context"
	"sync"
	"time"
)

// Entry is one appended interaction record. User text is summarized, never
// stored in full.
type Entry struct {
	SessionID          string    `json:"sessionId"`
	PersonaID          string    `json:"personaId"`
	UserMessageSummary string    `json:"userMessageSummary"`
	ResponseStyleTag   string    `json:"responseStyleTag"`
	CrisisLevel        string    `json:"crisisLevel"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Recorder is the append-only interaction log sink. Append failures are the
// caller's to log; they must never fail a user-facing response.
type Recorder interface {
	Append(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// MemoryRecorder keeps entries in process memory, for tests and single-node
// deployments.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryRecorder returns an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (m *MemoryRecorder) Append(_ context.Context, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()
	return nil
}

func (m *MemoryRecorder) Recent(_ context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]Entry, limit)
	copy(out, m.entries[len(m.entries)-limit:])
	return out, nil
}

// Summarize truncates a user message for journaling.
func Summarize(message string, max int) string {
	if max <= 0 {
		max = 80
	}
	runes := []rune(message)
	if len(runes) <= max {
		return message
	}
	return string(runes[:max]) + "…"
}
