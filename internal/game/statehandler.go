package game

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

// GameState is the coarse mode the whole game runs in.
type GameState int

const (
	StateNormal GameState = iota
	StateCutscene
	StatePaused
)

// StateHandler owns the global game state and the per-system enable flags.
// It restores first so later subsystems see the right mode.
type StateHandler struct {
	mu sync.Mutex

	state       GameState
	movement    bool
	interaction bool
	menus       bool
}

// NewStateHandler returns a state handler in the normal state with every
// system enabled.
func NewStateHandler() *StateHandler {
	return &StateHandler{
		state:       StateNormal,
		movement:    true,
		interaction: true,
		menus:       true,
	}
}

func (h *StateHandler) Name() string { return "statehandler" }

// State returns the current game state.
func (h *StateHandler) State() GameState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// SetState switches the global game state.
func (h *StateHandler) SetState(s GameState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = s
}

// SetSystems toggles the movement, interaction, and menu systems at once.
func (h *StateHandler) SetSystems(movement, interaction, menus bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.movement, h.interaction, h.menus = movement, interaction, menus
}

// Systems reports the enable flags for movement, interaction, and menus.
func (h *StateHandler) Systems() (movement, interaction, menus bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.movement, h.interaction, h.menus
}

func (h *StateHandler) Capture(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return domain.JoinRecords([]string{
		"state" + domain.FieldSeparator + strconv.Itoa(int(h.state)),
		"movement" + domain.FieldSeparator + boolField(h.movement),
		"interaction" + domain.FieldSeparator + boolField(h.interaction),
		"menus" + domain.FieldSeparator + boolField(h.menus),
	}), nil
}

func (h *StateHandler) Restore(ctx context.Context, fragment string, policy ports.RestorePolicy) error {
	fields, err := parseFieldMap(fragment)
	if err != nil {
		return fmt.Errorf("state handler: %w", err)
	}

	state := StateNormal
	if v, ok := fields["state"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("state handler: %w: state %q", domain.ErrMalformedSnapshot, v)
		}
		state = GameState(n)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = state
	if v, ok := fields["movement"]; ok {
		h.movement = v == "1"
	}
	if v, ok := fields["interaction"]; ok {
		h.interaction = v == "1"
	}
	if v, ok := fields["menus"]; ok {
		h.menus = v == "1"
	}
	return nil
}

func (h *StateHandler) OnLoadComplete(ctx context.Context) error {
	// A load always lands in gameplay, never mid-cutscene.
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == StateCutscene {
		h.state = StateNormal
	}
	return nil
}
