package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/keraunic-tonic/friendship/internal/ports"
	"github.com/keraunic-tonic/friendship/pkg/lang"
)

// Localization bridges the localization store into the snapshot pipeline.
// Its fragment is the spoken-once ledger; the active language travels as a
// main-data scalar. Language choice is a profile preference, so restoring a
// save does not switch languages.
type Localization struct {
	mu    sync.Mutex
	store *lang.Store
}

func NewLocalization(store *lang.Store) *Localization {
	return &Localization{store: store}
}

func (l *Localization) Name() string { return "localization" }

// Store exposes the wrapped localization store.
func (l *Localization) Store() *lang.Store {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store
}

// ActiveLanguage returns the store's current language index.
func (l *Localization) ActiveLanguage() int {
	return l.store.CurrentLanguage()
}

func (l *Localization) Capture(ctx context.Context) (string, error) {
	return l.store.ExportLedger(), nil
}

func (l *Localization) Restore(ctx context.Context, fragment string, policy ports.RestorePolicy) error {
	if err := l.store.ImportLedger(fragment); err != nil {
		return fmt.Errorf("localization: %w", err)
	}
	return nil
}

func (l *Localization) OnLoadComplete(ctx context.Context) error { return nil }
