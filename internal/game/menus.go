package game

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

// Menus tracks which named menus are locked. Lock state survives saves so a
// menu disabled by story progress stays disabled after a reload.
type Menus struct {
	mu     sync.Mutex
	locked map[string]bool
}

func NewMenus() *Menus {
	return &Menus{locked: make(map[string]bool)}
}

func (m *Menus) Name() string { return "menus" }

// SetLocked locks or unlocks a menu by name.
func (m *Menus) SetLocked(name string, locked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if locked {
		m.locked[name] = true
	} else {
		delete(m.locked, name)
	}
}

// IsLocked reports whether the named menu is locked.
func (m *Menus) IsLocked(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locked[name]
}

// Capture encodes the locked menu names, sorted for a stable fragment.
func (m *Menus) Capture(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.locked))
	for name := range m.locked {
		names = append(names, name)
	}
	sort.Strings(names)
	return domain.JoinRecords(names), nil
}

func (m *Menus) Restore(ctx context.Context, fragment string, policy ports.RestorePolicy) error {
	locked := make(map[string]bool)
	for _, name := range domain.SplitRecords(fragment) {
		if name == "" {
			return fmt.Errorf("menus: %w: empty menu name", domain.ErrMalformedSnapshot)
		}
		locked[name] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.locked = locked
	return nil
}

func (m *Menus) OnLoadComplete(ctx context.Context) error { return nil }
