package app

import (
	"sync"

	"github.com/google/uuid"
)

// requestTracker tracks the single outstanding save and load request.
// Every operation is issued a fresh token; a completion is accepted only
// when its token still matches the last issued request of that kind, which
// rejects stale or duplicate completions from the storage backend.
type requestTracker struct {
	mu       sync.Mutex
	lastSave uuid.UUID
	lastLoad uuid.UUID
	loading  bool
	saving   bool
}

func newRequestTracker() *requestTracker {
	return &requestTracker{}
}

// BeginSave issues a token for a new save request, superseding any
// outstanding one.
func (t *requestTracker) BeginSave() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSave = uuid.New()
	t.saving = true
	return t.lastSave
}

// FinishSave reports whether the completion for token is current. A stale
// token leaves the tracker untouched.
func (t *requestTracker) FinishSave(token uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if token != t.lastSave {
		return false
	}
	t.saving = false
	return true
}

// BeginLoad issues a token for a new load request, superseding any
// outstanding one.
func (t *requestTracker) BeginLoad() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastLoad = uuid.New()
	t.loading = true
	return t.lastLoad
}

// FinishLoad reports whether the completion for token is current.
func (t *requestTracker) FinishLoad(token uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if token != t.lastLoad {
		return false
	}
	t.loading = false
	return true
}

// LoadInProgress reports whether a load request is outstanding.
func (t *requestTracker) LoadInProgress() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// SaveInProgress reports whether a save request is outstanding.
func (t *requestTracker) SaveInProgress() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saving
}
