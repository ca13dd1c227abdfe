package game

import (
	"context"
	"sort"
	"sync"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

// SceneDirector owns the active scene, its sub-scenes, and the saved object
// state of every visited scene. It implements ports.SceneDirector, so it
// contributes both the scene half of the snapshot and the scene-change
// decision at load time.
type SceneDirector struct {
	mu sync.Mutex

	current   string
	subScenes []string

	// objects maps visited scene name to its encoded object state. The
	// current scene's entry is refreshed at capture time.
	objects map[string]string

	// subSceneSets remembers which sub-scenes each visited scene carried.
	subSceneSets map[string][]string

	transientAudio []string
}

// NewSceneDirector returns a director with the given starting scene active.
func NewSceneDirector(startScene string) *SceneDirector {
	return &SceneDirector{
		current:      startScene,
		objects:      map[string]string{startScene: ""},
		subSceneSets: make(map[string][]string),
	}
}

func (d *SceneDirector) Name() string { return "scene" }

// CurrentScene returns the name of the active scene.
func (d *SceneDirector) CurrentScene() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// SubScenes returns the sub-scenes loaded alongside the active scene.
func (d *SceneDirector) SubScenes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.subScenes))
	copy(out, d.subScenes)
	return out
}

// SetObjectState records the encoded object state for a scene.
func (d *SceneDirector) SetObjectState(scene, objects string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.objects[scene] = objects
}

// ObjectState returns the recorded object state for a scene.
func (d *SceneDirector) ObjectState(scene string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.objects[scene]
	return s, ok
}

// PlayTransientAudio registers a one-shot sound as playing.
func (d *SceneDirector) PlayTransientAudio(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.transientAudio = append(d.transientAudio, name)
}

// TransientAudio returns the one-shot sounds currently playing.
func (d *SceneDirector) TransientAudio() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.transientAudio))
	copy(out, d.transientAudio)
	return out
}

// Capture encodes the visited-scene roster so a restored game knows which
// scenes have state on record.
func (d *SceneDirector) Capture(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, 0, len(d.objects))
	for name := range d.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return domain.JoinRecords(names), nil
}

// Restore rebuilds the visited-scene roster. Object state arrives separately
// through RestoreScenes.
func (d *SceneDirector) Restore(ctx context.Context, fragment string, policy ports.RestorePolicy) error {
	visited := make(map[string]string)
	for _, name := range domain.SplitRecords(fragment) {
		visited[name] = ""
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	// Carry over state already held for scenes the snapshot also knows.
	for name := range visited {
		if objects, ok := d.objects[name]; ok {
			visited[name] = objects
		}
	}
	d.objects = visited
	return nil
}

func (d *SceneDirector) OnLoadComplete(ctx context.Context) error { return nil }

// CaptureScenes returns one data block per visited scene, current scene first.
func (d *SceneDirector) CaptureScenes(ctx context.Context) ([]domain.SceneData, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rest := make([]string, 0, len(d.objects))
	for name := range d.objects {
		if name != d.current {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	blocks := make([]domain.SceneData, 0, len(d.objects))
	blocks = append(blocks, domain.SceneData{
		Scene:     d.current,
		SubScenes: append([]string(nil), d.subScenes...),
		Objects:   d.objects[d.current],
	})
	for _, name := range rest {
		blocks = append(blocks, domain.SceneData{
			Scene:     name,
			SubScenes: append([]string(nil), d.subSceneSets[name]...),
			Objects:   d.objects[name],
		})
	}
	return blocks, nil
}

// RestoreScenes applies snapshot blocks back to the visited-scene state,
// honoring the SceneObjects and SubScenes policy toggles.
func (d *SceneDirector) RestoreScenes(ctx context.Context, blocks []domain.SceneData, policy ports.RestorePolicy) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, block := range blocks {
		if policy.SceneObjects {
			d.objects[block.Scene] = block.Objects
		} else if _, ok := d.objects[block.Scene]; !ok {
			d.objects[block.Scene] = ""
		}
		if policy.SubScenes {
			d.subSceneSets[block.Scene] = append([]string(nil), block.SubScenes...)
			if block.Scene == d.current {
				d.subScenes = append([]string(nil), block.SubScenes...)
			}
		}
	}
	return nil
}

// SwitchScene transitions to the target scene with the listed sub-scenes.
// Any one-shot audio from the previous scene stops with it.
func (d *SceneDirector) SwitchScene(ctx context.Context, scene string, subScenes []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev := d.current; prev != "" {
		d.subSceneSets[prev] = append([]string(nil), d.subScenes...)
	}
	d.current = scene
	d.subScenes = append([]string(nil), subScenes...)
	if _, ok := d.objects[scene]; !ok {
		d.objects[scene] = ""
	}
	d.transientAudio = nil
	return nil
}

// StopTransientAudio stops in-scene audio that is neither looping nor music.
func (d *SceneDirector) StopTransientAudio() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.transientAudio = nil
}
