package ports

import (
	"context"

	"github.com/keraunic-tonic/friendship/internal/domain"
)

// RestorePolicy gates which categories of state a load is allowed to
// restore. Every restore step checks its toggle before mutating state.
// The zero value restores nothing; use FullRestore for a normal load.
type RestorePolicy struct {
	Player       bool
	SceneObjects bool
	Scene        bool
	SubScenes    bool
	Inventory    bool
	Variables    bool
}

// FullRestore returns the policy used by an ordinary load: everything on.
func FullRestore() RestorePolicy {
	return RestorePolicy{
		Player:       true,
		SceneObjects: true,
		Scene:        true,
		SubScenes:    true,
		Inventory:    true,
		Variables:    true,
	}
}

// Subsystem is one of the peer subsystems the coordinator treats uniformly:
// a save-time fragment producer and a load-time fragment consumer.
//
// Restore order at load time is fixed (state handler, player input,
// inventory, variables, menus, localization, scene) so implementations may
// assume earlier subsystems are already consistent when theirs runs.
type Subsystem interface {
	// Name identifies the subsystem's fragment in the main-data segment.
	Name() string

	// Capture encodes the subsystem's current state as a main-data fragment.
	Capture(ctx context.Context) (string, error)

	// Restore decodes a fragment back into live state, honoring the
	// policy toggles that apply to this subsystem. A fragment that fails
	// to parse must leave the subsystem's state unchanged.
	Restore(ctx context.Context, fragment string, policy RestorePolicy) error

	// OnLoadComplete runs after every subsystem has restored, in the same
	// fixed order. Implementations resume activity suspended during load.
	OnLoadComplete(ctx context.Context) error
}

// SceneDirector is implemented by the scene subsystem, which the
// coordinator consults for scene-change decisions at load time and for the
// per-scene half of the snapshot.
type SceneDirector interface {
	Subsystem

	// CurrentScene returns the name of the active scene.
	CurrentScene() string

	// CaptureScenes encodes the per-scene data blocks for the snapshot,
	// current scene first.
	CaptureScenes(ctx context.Context) ([]domain.SceneData, error)

	// RestoreScenes applies per-scene data blocks back to live scenes,
	// honoring the SceneObjects and SubScenes policy toggles.
	RestoreScenes(ctx context.Context, blocks []domain.SceneData, policy RestorePolicy) error

	// SwitchScene transitions to the target scene, loading the listed
	// sub-scenes alongside it.
	SwitchScene(ctx context.Context, scene string, subScenes []string) error

	// StopTransientAudio stops in-scene audio that is neither looping nor
	// music. Called when a load resumes without a scene change.
	StopTransientAudio()
}

// PlayerIdentity is optionally implemented by the player subsystem to
// contribute the main-data scalars.
type PlayerIdentity interface {
	PlayerID() int
	MovementMethod() string
}

// LanguageState is optionally implemented by the localization subsystem to
// contribute the active language index to main data.
type LanguageState interface {
	ActiveLanguage() int
}
