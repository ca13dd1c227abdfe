package game

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

// PlayerInput tracks per-channel input lock counts. A channel is live only
// while its count is zero; nested cutscenes lock and unlock without
// clobbering each other.
type PlayerInput struct {
	mu sync.Mutex

	movementLocks    int
	interactionLocks int
	cameraLocks      int
}

func NewPlayerInput() *PlayerInput { return &PlayerInput{} }

func (p *PlayerInput) Name() string { return "input" }

// LockMovement increments the movement lock count.
func (p *PlayerInput) LockMovement() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.movementLocks++
}

// UnlockMovement decrements the movement lock count, never below zero.
func (p *PlayerInput) UnlockMovement() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.movementLocks > 0 {
		p.movementLocks--
	}
}

// MovementLocked reports whether any movement lock is held.
func (p *PlayerInput) MovementLocked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.movementLocks > 0
}

// SetLocks overwrites all three lock counts at once.
func (p *PlayerInput) SetLocks(movement, interaction, camera int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.movementLocks = movement
	p.interactionLocks = interaction
	p.cameraLocks = camera
}

// Locks reports the current lock counts.
func (p *PlayerInput) Locks() (movement, interaction, camera int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.movementLocks, p.interactionLocks, p.cameraLocks
}

func (p *PlayerInput) Capture(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.JoinRecords([]string{
		"movement" + domain.FieldSeparator + strconv.Itoa(p.movementLocks),
		"interaction" + domain.FieldSeparator + strconv.Itoa(p.interactionLocks),
		"camera" + domain.FieldSeparator + strconv.Itoa(p.cameraLocks),
	}), nil
}

func (p *PlayerInput) Restore(ctx context.Context, fragment string, policy ports.RestorePolicy) error {
	if !policy.Player {
		return nil
	}
	fields, err := parseFieldMap(fragment)
	if err != nil {
		return fmt.Errorf("player input: %w", err)
	}

	locks := make(map[string]int, len(fields))
	for key, value := range fields {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("player input: %w: %s %q", domain.ErrMalformedSnapshot, key, value)
		}
		locks[key] = n
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.movementLocks = locks["movement"]
	p.interactionLocks = locks["interaction"]
	p.cameraLocks = locks["camera"]
	return nil
}

func (p *PlayerInput) OnLoadComplete(ctx context.Context) error { return nil }
