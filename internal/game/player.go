package game

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

// Position is a world-space point plus a facing angle in degrees.
type Position struct {
	X, Y, Z float64
	Facing  float64
}

// Player holds the active player's identity and transform. It contributes
// the current-player scalars to the snapshot's main data.
type Player struct {
	mu sync.Mutex

	id             int
	movementMethod string
	pos            Position
}

// NewPlayer returns a player with the given identity and movement method
// ("direct", "pointandclick", "firstperson").
func NewPlayer(id int, movementMethod string) *Player {
	return &Player{id: id, movementMethod: movementMethod}
}

func (p *Player) Name() string { return "player" }

// PlayerID returns the active player's stable ID.
func (p *Player) PlayerID() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.id
}

// MovementMethod returns the active movement method name.
func (p *Player) MovementMethod() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.movementMethod
}

// SetIdentity swaps the active player.
func (p *Player) SetIdentity(id int, movementMethod string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.id = id
	p.movementMethod = movementMethod
}

// Position returns the player's transform.
func (p *Player) Position() Position {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

// MoveTo places the player at the given transform.
func (p *Player) MoveTo(pos Position) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = pos
}

func (p *Player) Capture(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.JoinRecords([]string{
		"x" + domain.FieldSeparator + formatFloat(p.pos.X),
		"y" + domain.FieldSeparator + formatFloat(p.pos.Y),
		"z" + domain.FieldSeparator + formatFloat(p.pos.Z),
		"facing" + domain.FieldSeparator + formatFloat(p.pos.Facing),
	}), nil
}

func (p *Player) Restore(ctx context.Context, fragment string, policy ports.RestorePolicy) error {
	if !policy.Player {
		return nil
	}
	fields, err := parseFieldMap(fragment)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	var pos Position
	for key, dst := range map[string]*float64{
		"x": &pos.X, "y": &pos.Y, "z": &pos.Z, "facing": &pos.Facing,
	} {
		v, ok := fields[key]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("player: %w: %s %q", domain.ErrMalformedSnapshot, key, v)
		}
		*dst = f
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = pos
	return nil
}

func (p *Player) OnLoadComplete(ctx context.Context) error { return nil }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
