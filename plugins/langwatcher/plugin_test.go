package langwatcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keraunic-tonic/friendship/pkg/log"
	"github.com/keraunic-tonic/friendship/pkg/saves"
)

type importCall struct {
	language string
	column   int
	rtl      bool
	data     string
}

// fakeImporter records ImportTable calls.
type fakeImporter struct {
	mu    sync.Mutex
	calls []importCall
	err   error
}

func (f *fakeImporter) ImportTable(data, languageName string, columnIndex int, ignoreEmptyCells, rtl bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, importCall{
		language: languageName,
		column:   columnIndex,
		rtl:      rtl,
		data:     data,
	})
	return f.err
}

func (f *fakeImporter) snapshot() []importCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]importCall(nil), f.calls...)
}

func waitForImports(t *testing.T, f *fakeImporter, want int) []importCall {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if calls := f.snapshot(); len(calls) >= want {
			return calls
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("imports = %d, want at least %d", len(f.snapshot()), want)
	return nil
}

func TestImportFileNameAndRTL(t *testing.T) {
	dir := t.TempDir()
	table := "id,text\n1,Bonjour\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "French.csv"), []byte(table), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Arabic.rtl.csv"), []byte(table), 0o644))

	importer := &fakeImporter{}
	p := New(Config{ColumnIndex: 2})
	p.importer = importer
	p.logger = log.Noop{}

	p.importFile(filepath.Join(dir, "French.csv"))
	p.importFile(filepath.Join(dir, "Arabic.rtl.csv"))

	calls := importer.snapshot()
	require.Len(t, calls, 2)
	assert.Equal(t, "French", calls[0].language)
	assert.False(t, calls[0].rtl)
	assert.Equal(t, 2, calls[0].column)
	assert.Equal(t, table, calls[0].data)
	assert.Equal(t, "Arabic", calls[1].language)
	assert.True(t, calls[1].rtl)
}

func TestInitializeImportsExistingTables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "French.csv"), []byte("id,t\n1,x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	importer := &fakeImporter{}
	p := New(DefaultConfig())
	require.NoError(t, p.Initialize(context.Background(), saves.PluginConfig{
		TranslationsDir: dir,
		Logger:          log.Noop{},
		Importer:        importer,
	}))
	defer func() { require.NoError(t, p.Shutdown(context.Background())) }()

	calls := waitForImports(t, importer, 1)
	assert.Equal(t, "French", calls[0].language)
	assert.Len(t, calls, 1, "non-CSV files must not import")
}

func TestWatcherImportsChangedFile(t *testing.T) {
	dir := t.TempDir()

	importer := &fakeImporter{}
	p := New(Config{DebounceDelay: 10 * time.Millisecond})
	require.NoError(t, p.Initialize(context.Background(), saves.PluginConfig{
		TranslationsDir: dir,
		Logger:          log.Noop{},
		Importer:        importer,
	}))
	defer func() { require.NoError(t, p.Shutdown(context.Background())) }()

	// Give the watcher a moment to register before creating the file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "German.csv"), []byte("id,t\n1,Hallo\n"), 0o644))

	calls := waitForImports(t, importer, 1)
	assert.Equal(t, "German", calls[len(calls)-1].language)
}

func TestInitializeWithoutDirectoryDisables(t *testing.T) {
	p := New(DefaultConfig())
	require.NoError(t, p.Initialize(context.Background(), saves.PluginConfig{
		Logger:   log.Noop{},
		Importer: &fakeImporter{},
	}))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewAppliesDefaults(t *testing.T) {
	p := New(Config{})
	assert.Equal(t, 250*time.Millisecond, p.debounceDelay)
	assert.Equal(t, 1, p.columnIndex)
}
