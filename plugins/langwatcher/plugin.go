// Package langwatcher provides translation table hot-reloading for the
// engine. When enabled, it watches the translations directory and
// re-imports a language's CSV table whenever the file changes, so
// translators see their edits without restarting the game.
package langwatcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/keraunic-tonic/friendship/pkg/saves"
)

// Plugin implements translation watching. It monitors <Language>.csv files
// in the translations directory and re-imports a table when its file is
// written, debouncing bursts of write events from editors.
type Plugin struct {
	mu sync.RWMutex

	// Configuration
	debounceDelay    time.Duration
	columnIndex      int
	ignoreEmptyCells bool

	// Runtime state
	translationsDir string
	importer        saves.TranslationImporter
	logger          saves.Logger
	cancel          context.CancelFunc
	wg              sync.WaitGroup

	debounce map[string]*time.Timer
}

// Config holds configuration options for the language watcher plugin.
type Config struct {
	// DebounceDelay is the delay to wait after a file change before
	// re-importing, so one editor save triggers one import.
	// Default: 250 milliseconds
	DebounceDelay time.Duration

	// ColumnIndex is the table column holding the translated text.
	// Default: 1
	ColumnIndex int

	// IgnoreEmptyCells keeps the existing translation when a cell is empty.
	// Default: true
	IgnoreEmptyCells bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay:    250 * time.Millisecond,
		ColumnIndex:      1,
		IgnoreEmptyCells: true,
	}
}

// New creates a new language watcher plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 250 * time.Millisecond
	}
	if cfg.ColumnIndex <= 0 {
		cfg.ColumnIndex = 1
	}

	return &Plugin{
		debounceDelay:    cfg.DebounceDelay,
		columnIndex:      cfg.ColumnIndex,
		ignoreEmptyCells: cfg.IgnoreEmptyCells,
		debounce:         make(map[string]*time.Timer),
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "langwatcher"
}

// Initialize sets up the plugin and starts the watcher loop.
func (p *Plugin) Initialize(ctx context.Context, cfg saves.PluginConfig) error {
	p.mu.Lock()
	p.translationsDir = cfg.TranslationsDir
	p.importer = cfg.Importer
	p.logger = cfg.Logger
	p.mu.Unlock()

	if p.translationsDir == "" || p.importer == nil {
		p.logger.Warn("language watcher disabled: no translations directory configured")
		return nil
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("language watcher plugin initialized")

	p.wg.Add(1)
	go p.watchLoop(watchCtx)

	return nil
}

// Shutdown stops the watcher loop.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()

	p.mu.Lock()
	for _, t := range p.debounce {
		t.Stop()
	}
	p.mu.Unlock()
	return nil
}

// watchLoop watches for translation file changes.
func (p *Plugin) watchLoop(ctx context.Context) {
	defer p.wg.Done()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.logger.Error("language watcher: failed to create watcher")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(p.translationsDir); err != nil {
		p.logger.Error("language watcher: failed to watch directory")
		return
	}

	// Import everything already on disk once at startup.
	p.importAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".csv") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.debounceImport(ctx, event.Name)

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("language watcher: watcher error")
		}
	}
}

// debounceImport (re)arms the per-file debounce timer.
func (p *Plugin) debounceImport(ctx context.Context, path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.debounce[path]; ok {
		t.Stop()
	}
	p.debounce[path] = time.AfterFunc(p.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		p.importFile(path)
	})
}

// importAll imports every CSV table in the translations directory.
func (p *Plugin) importAll(ctx context.Context) {
	entries, err := os.ReadDir(p.translationsDir)
	if err != nil {
		p.logger.Warn("language watcher: cannot read translations directory")
		return
	}
	for _, e := range entries {
		if ctx.Err() != nil {
			return
		}
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		p.importFile(filepath.Join(p.translationsDir, e.Name()))
	}
}

// importFile imports one table. The language name is the file name without
// extension; a name ending in ".rtl" (e.g. "Arabic.rtl.csv") marks the
// language right-to-left.
func (p *Plugin) importFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn("language watcher: read failed")
		return
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	rtl := false
	if strings.HasSuffix(strings.ToLower(name), ".rtl") {
		rtl = true
		name = name[:len(name)-len(".rtl")]
	}

	p.mu.RLock()
	importer := p.importer
	p.mu.RUnlock()

	if err := importer.ImportTable(string(data), name, p.columnIndex, p.ignoreEmptyCells, rtl); err != nil {
		p.logger.Warn("language watcher: import failed")
		return
	}
	p.logger.Info("language table imported")
}
