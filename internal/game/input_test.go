package game

import (
	"context"
	"errors"
	"testing"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

func TestPlayerInputLockCounting(t *testing.T) {
	p := NewPlayerInput()

	p.LockMovement()
	p.LockMovement()
	if !p.MovementLocked() {
		t.Fatal("movement must be locked after two locks")
	}
	p.UnlockMovement()
	if !p.MovementLocked() {
		t.Fatal("one unlock of two must keep movement locked")
	}
	p.UnlockMovement()
	if p.MovementLocked() {
		t.Fatal("matching unlocks must release movement")
	}

	// Unlocking past zero is a no-op, not a negative count.
	p.UnlockMovement()
	if movement, _, _ := p.Locks(); movement != 0 {
		t.Errorf("movement locks = %d, want 0", movement)
	}
}

func TestPlayerInputRoundTrip(t *testing.T) {
	src := NewPlayerInput()
	src.SetLocks(2, 0, 1)

	frag, err := src.Capture(context.Background())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if want := "movement:2|interaction:0|camera:1"; frag != want {
		t.Errorf("fragment = %q, want %q", frag, want)
	}

	dst := NewPlayerInput()
	if err := dst.Restore(context.Background(), frag, ports.FullRestore()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	movement, interaction, camera := dst.Locks()
	if movement != 2 || interaction != 0 || camera != 1 {
		t.Errorf("locks = %d %d %d, want 2 0 1", movement, interaction, camera)
	}
}

func TestPlayerInputRestoreSkippedByPolicy(t *testing.T) {
	p := NewPlayerInput()
	p.SetLocks(1, 1, 1)

	policy := ports.FullRestore()
	policy.Player = false
	if err := p.Restore(context.Background(), "movement:0|interaction:0|camera:0", policy); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if movement, _, _ := p.Locks(); movement != 1 {
		t.Error("player toggle off must leave lock counts alone")
	}
}

func TestPlayerInputRestoreMalformed(t *testing.T) {
	tests := []string{
		"movement:abc|interaction:0|camera:0",
		"movement:-1|interaction:0|camera:0",
		"movement",
	}
	for _, frag := range tests {
		p := NewPlayerInput()
		p.SetLocks(3, 3, 3)
		err := p.Restore(context.Background(), frag, ports.FullRestore())
		if !errors.Is(err, domain.ErrMalformedSnapshot) {
			t.Errorf("Restore(%q) = %v, want ErrMalformedSnapshot", frag, err)
			continue
		}
		if movement, _, _ := p.Locks(); movement != 3 {
			t.Errorf("Restore(%q) mutated locks despite failing", frag)
		}
	}
}
