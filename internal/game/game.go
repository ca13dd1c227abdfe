package game

import (
	"github.com/keraunic-tonic/friendship/internal/ports"
	"github.com/keraunic-tonic/friendship/pkg/lang"
)

// World bundles the first-party subsystems so the engine facade and the
// hosting game can reach them by type after registration.
type World struct {
	State        *StateHandler
	Input        *PlayerInput
	Player       *Player
	Inventory    *Inventory
	Variables    *Variables
	Menus        *Menus
	Localization *Localization
	Scenes       *SceneDirector
}

// NewWorld creates the subsystems with their starting state.
func NewWorld(store *lang.Store, startScene string) *World {
	return &World{
		State:        NewStateHandler(),
		Input:        NewPlayerInput(),
		Player:       NewPlayer(0, "direct"),
		Inventory:    NewInventory(),
		Variables:    NewVariables(),
		Menus:        NewMenus(),
		Localization: NewLocalization(store),
		Scenes:       NewSceneDirector(startScene),
	}
}

// Subsystems returns the world's subsystems in the fixed restore order:
// state handler, player input, player, inventory, variables, menus,
// localization, scene.
func (w *World) Subsystems() []ports.Subsystem {
	return []ports.Subsystem{
		w.State,
		w.Input,
		w.Player,
		w.Inventory,
		w.Variables,
		w.Menus,
		w.Localization,
		w.Scenes,
	}
}
