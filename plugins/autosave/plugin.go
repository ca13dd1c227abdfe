// Package autosave provides periodic automatic saving for the engine.
// When enabled, it saves to the reserved autosave slot on a fixed
// interval so a crash never costs more than one interval of progress.
package autosave

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/keraunic-tonic/friendship/pkg/saves"
)

// Plugin implements periodic autosaving. It ticks on a fixed interval and
// hands each save to the engine's coordinator, which already defers while a
// load is in progress.
type Plugin struct {
	mu sync.RWMutex

	// Configuration
	interval time.Duration
	label    string

	// Runtime state
	saver  saves.Saver
	logger saves.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds configuration options for the autosave plugin.
type Config struct {
	// Interval is how often to autosave.
	// Default: 5 minutes
	Interval time.Duration

	// Label is the display label written with each autosave.
	// Default: "Autosave"
	Label string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval: 5 * time.Minute,
		Label:    "Autosave",
	}
}

// New creates a new autosave plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Label == "" {
		cfg.Label = "Autosave"
	}

	return &Plugin{
		interval: cfg.Interval,
		label:    cfg.Label,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "autosave"
}

// Initialize sets up the plugin and starts the autosave loop.
func (p *Plugin) Initialize(ctx context.Context, cfg saves.PluginConfig) error {
	p.mu.Lock()
	p.saver = cfg.Saver
	p.logger = cfg.Logger
	p.mu.Unlock()

	if p.saver == nil {
		p.logger.Warn("autosave disabled: no saver configured")
		return nil
	}

	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("autosave plugin initialized")

	p.wg.Add(1)
	go p.saveLoop(loopCtx)

	return nil
}

// Shutdown stops the autosave loop.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	return nil
}

// saveLoop runs periodic autosaves until cancelled.
func (p *Plugin) saveLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.saveOnce(ctx)
		}
	}
}

// saveOnce performs a single autosave.
func (p *Plugin) saveOnce(ctx context.Context) {
	p.mu.RLock()
	saver := p.saver
	p.mu.RUnlock()

	if _, err := saver.Save(ctx, saves.AutosaveSlot, p.label); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		if errors.Is(err, saves.ErrLoadInProgress) {
			// Next tick catches up.
			p.logger.Debug("autosave skipped: load in progress")
			return
		}
		p.logger.Warn("autosave failed")
		return
	}
	p.logger.Debug("autosave completed")
}
