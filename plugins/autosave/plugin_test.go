package autosave

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keraunic-tonic/friendship/pkg/log"
	"github.com/keraunic-tonic/friendship/pkg/saves"
)

// fakeSaver counts save requests and remembers the last slot and label.
type fakeSaver struct {
	mu    sync.Mutex
	calls int
	slot  int
	label string
	err   error
}

func (s *fakeSaver) Save(ctx context.Context, slotID int, label string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.slot = slotID
	s.label = label
	return uuid.New(), s.err
}

func (s *fakeSaver) snapshot() (int, int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls, s.slot, s.label
}

func waitForCalls(t *testing.T, s *fakeSaver, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if calls, _, _ := s.snapshot(); calls >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	calls, _, _ := s.snapshot()
	t.Fatalf("saver calls = %d, want at least %d", calls, want)
}

func TestAutosaveTicks(t *testing.T) {
	saver := &fakeSaver{}
	p := New(Config{Interval: 5 * time.Millisecond, Label: "Checkpoint"})

	require.NoError(t, p.Initialize(context.Background(), saves.PluginConfig{
		Logger: log.Noop{},
		Saver:  saver,
	}))
	defer func() { require.NoError(t, p.Shutdown(context.Background())) }()

	waitForCalls(t, saver, 2)
	_, slot, label := saver.snapshot()
	assert.Equal(t, saves.AutosaveSlot, slot)
	assert.Equal(t, "Checkpoint", label)
}

func TestAutosaveShutdownStopsLoop(t *testing.T) {
	saver := &fakeSaver{}
	p := New(Config{Interval: 5 * time.Millisecond})

	require.NoError(t, p.Initialize(context.Background(), saves.PluginConfig{
		Logger: log.Noop{},
		Saver:  saver,
	}))
	waitForCalls(t, saver, 1)
	require.NoError(t, p.Shutdown(context.Background()))

	calls, _, _ := saver.snapshot()
	time.Sleep(25 * time.Millisecond)
	after, _, _ := saver.snapshot()
	assert.Equal(t, calls, after, "no saves may land after shutdown")
}

func TestAutosaveToleratesLoadInProgress(t *testing.T) {
	saver := &fakeSaver{err: saves.ErrLoadInProgress}
	p := New(Config{Interval: 5 * time.Millisecond})

	require.NoError(t, p.Initialize(context.Background(), saves.PluginConfig{
		Logger: log.Noop{},
		Saver:  saver,
	}))
	defer func() { require.NoError(t, p.Shutdown(context.Background())) }()

	// The loop keeps ticking through skipped saves.
	waitForCalls(t, saver, 3)
}

func TestAutosaveWithoutSaver(t *testing.T) {
	p := New(DefaultConfig())
	require.NoError(t, p.Initialize(context.Background(), saves.PluginConfig{Logger: log.Noop{}}))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewAppliesDefaults(t *testing.T) {
	p := New(Config{})
	assert.Equal(t, 5*time.Minute, p.interval)
	assert.Equal(t, "Autosave", p.label)
}
