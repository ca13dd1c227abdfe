package saves

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keraunic-tonic/friendship/internal/adapters/memory"
)

// handlerRecorder collects engine events for assertions.
type handlerRecorder struct {
	saved          []SaveEvent
	saveFailed     []SaveEvent
	loaded         []LoadEvent
	loadFailed     []LoadEvent
	catalogChanges int
}

func (h *handlerRecorder) OnSaveCompleted(e SaveEvent) { h.saved = append(h.saved, e) }
func (h *handlerRecorder) OnSaveFailed(e SaveEvent)    { h.saveFailed = append(h.saveFailed, e) }
func (h *handlerRecorder) OnLoadCompleted(e LoadEvent) { h.loaded = append(h.loaded, e) }
func (h *handlerRecorder) OnLoadFailed(e LoadEvent)    { h.loadFailed = append(h.loadFailed, e) }
func (h *handlerRecorder) OnCatalogChanged()           { h.catalogChanges++ }

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	cfg := Config{StartScene: "Harbor"}
	opts = append([]Option{WithStore(memory.NewSaveStore())}, opts...)
	eng, err := New(cfg, opts...)
	require.NoError(t, err)
	return eng
}

func TestNewRequiresStoreOrSaveDir(t *testing.T) {
	_, err := New(Config{StartScene: "Harbor"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	eng, err := New(Config{SaveDir: t.TempDir(), StartScene: "Harbor"})
	require.NoError(t, err)
	assert.NotNil(t, eng.World())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{SaveDir: t.TempDir(), MaxSaveSlots: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEngineSaveLoadRoundTrip(t *testing.T) {
	rec := &handlerRecorder{}
	eng := newTestEngine(t, WithEventHandler(rec))
	ctx := context.Background()

	world := eng.World()
	world.Inventory.Add(1, 3, "")
	world.Variables.Set(5, "true")

	_, err := eng.Save(ctx, 1, "checkpoint")
	require.NoError(t, err)

	world.Inventory.Remove(1, 3)
	world.Variables.Set(5, "false")

	_, err = eng.Load(ctx, 1, FullRestore())
	require.NoError(t, err)

	assert.Equal(t, 3, world.Inventory.Count(1))
	v, _ := world.Variables.Get(5)
	assert.Equal(t, "true", v)

	require.Len(t, rec.saved, 1)
	assert.Equal(t, 1, rec.saved[0].SlotID)
	require.Len(t, rec.loaded, 1)
	assert.NotEqual(t, rec.saved[0].Token, rec.loaded[0].Token)
}

func TestEngineEventHandlerFailures(t *testing.T) {
	rec := &handlerRecorder{}
	eng := newTestEngine(t, WithEventHandler(rec))

	_, err := eng.Load(context.Background(), 9, FullRestore())
	require.ErrorIs(t, err, ErrSlotNotFound)
	require.Len(t, rec.loadFailed, 1)
	assert.Equal(t, 9, rec.loadFailed[0].SlotID)
	assert.ErrorIs(t, rec.loadFailed[0].Err, ErrSlotNotFound)
}

func TestEngineCatalogOperations(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	_, err := eng.Save(ctx, 2, "harbor at dusk")
	require.NoError(t, err)

	require.NoError(t, eng.Rename(ctx, 2, "harbor at dawn"))
	descs := eng.Enumerate(ctx)
	require.Len(t, descs, 1)
	assert.Equal(t, "harbor at dawn", descs[0].Label)

	require.NoError(t, eng.Delete(ctx, 2))
	assert.Empty(t, eng.Enumerate(ctx))
}

func TestEngineImportSaveWithoutImportStore(t *testing.T) {
	eng := newTestEngine(t)
	err := eng.ImportSave(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEngineCustomSubsystemContributesFragment(t *testing.T) {
	custom := &countingSubsystem{}
	eng := newTestEngine(t, WithSubsystem(custom))
	ctx := context.Background()

	custom.value = "seven"
	_, err := eng.Save(ctx, 1, "")
	require.NoError(t, err)

	custom.value = "zero"
	_, err = eng.Load(ctx, 1, FullRestore())
	require.NoError(t, err)
	assert.Equal(t, "seven", custom.value)
}

type countingSubsystem struct {
	value string
}

func (c *countingSubsystem) Name() string { return "counter" }

func (c *countingSubsystem) Capture(ctx context.Context) (string, error) {
	return c.value, nil
}

func (c *countingSubsystem) Restore(ctx context.Context, fragment string, policy RestorePolicy) error {
	c.value = fragment
	return nil
}

func (c *countingSubsystem) OnLoadComplete(ctx context.Context) error { return nil }

// orderedPlugin records lifecycle calls into a shared journal.
type orderedPlugin struct {
	name    string
	journal *[]string
	initErr error
}

func (p *orderedPlugin) Name() string { return p.name }

func (p *orderedPlugin) Initialize(ctx context.Context, cfg PluginConfig) error {
	if p.initErr != nil {
		return p.initErr
	}
	*p.journal = append(*p.journal, "init "+p.name)
	return nil
}

func (p *orderedPlugin) Shutdown(ctx context.Context) error {
	*p.journal = append(*p.journal, "stop "+p.name)
	return nil
}

func TestEnginePluginLifecycleOrder(t *testing.T) {
	var journal []string
	eng := newTestEngine(t,
		WithPlugin(&orderedPlugin{name: "a", journal: &journal}),
		WithPlugin(&orderedPlugin{name: "b", journal: &journal}),
	)

	require.NoError(t, eng.Start(context.Background()))
	require.NoError(t, eng.Stop())

	assert.Equal(t, []string{"init a", "init b", "stop b", "stop a"}, journal)
}

func TestEngineStartTwice(t *testing.T) {
	eng := newTestEngine(t)
	require.NoError(t, eng.Start(context.Background()))
	assert.ErrorIs(t, eng.Start(context.Background()), ErrInvalidConfig)
	require.NoError(t, eng.Stop())
	assert.NoError(t, eng.Stop(), "stopping a stopped engine is a no-op")
}

func TestEngineStartRollsBackOnPluginFailure(t *testing.T) {
	var journal []string
	boom := errors.New("boom")
	eng := newTestEngine(t,
		WithPlugin(&orderedPlugin{name: "a", journal: &journal}),
		WithPlugin(&orderedPlugin{name: "b", journal: &journal, initErr: boom}),
	)

	err := eng.Start(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"init a", "stop a"}, journal,
		"plugins initialized before the failure must shut down again")
	assert.NoError(t, eng.Stop(), "a failed start leaves the engine stopped")
}

func TestVersionCompatibility(t *testing.T) {
	tests := []struct {
		version string
		min     string
		want    bool
	}{
		{"1.0.0", "1.0.0", true},
		{"1.2.3", "1.0.0", true},
		{"2.0.0", "1.9.9", true},
		{"1.0.0", "1.0.1", false},
		{"1.0.0", "2.0.0", false},
		{"0.9.0", "1.0.0", false},
	}
	for _, tt := range tests {
		got := isVersionCompatible(tt.version, tt.min)
		assert.Equal(t, tt.want, got, "isVersionCompatible(%q, %q)", tt.version, tt.min)
	}
}
