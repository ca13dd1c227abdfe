package game

import (
	"context"
	"errors"
	"testing"

	"github.com/keraunic-tonic/friendship/internal/domain"
	"github.com/keraunic-tonic/friendship/internal/ports"
)

func TestPlayerRoundTrip(t *testing.T) {
	src := NewPlayer(3, "pointandclick")
	src.MoveTo(Position{X: 1.5, Y: -0.25, Z: 12, Facing: 270.5})

	frag, err := src.Capture(context.Background())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	dst := NewPlayer(0, "direct")
	if err := dst.Restore(context.Background(), frag, ports.FullRestore()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	want := Position{X: 1.5, Y: -0.25, Z: 12, Facing: 270.5}
	if got := dst.Position(); got != want {
		t.Errorf("position = %+v, want %+v", got, want)
	}
}

func TestPlayerIdentity(t *testing.T) {
	p := NewPlayer(3, "pointandclick")
	if got := p.PlayerID(); got != 3 {
		t.Errorf("PlayerID = %d, want 3", got)
	}
	if got := p.MovementMethod(); got != "pointandclick" {
		t.Errorf("MovementMethod = %q, want %q", got, "pointandclick")
	}

	p.SetIdentity(7, "firstperson")
	if got := p.PlayerID(); got != 7 {
		t.Errorf("PlayerID after swap = %d, want 7", got)
	}
}

func TestPlayerRestoreSkippedByPolicy(t *testing.T) {
	p := NewPlayer(0, "direct")
	p.MoveTo(Position{X: 5})

	policy := ports.FullRestore()
	policy.Player = false
	if err := p.Restore(context.Background(), "x:0|y:0|z:0|facing:0", policy); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := p.Position(); got.X != 5 {
		t.Error("player toggle off must leave the transform alone")
	}
}

func TestPlayerRestoreMalformedFloat(t *testing.T) {
	p := NewPlayer(0, "direct")
	err := p.Restore(context.Background(), "x:north|y:0", ports.FullRestore())
	if !errors.Is(err, domain.ErrMalformedSnapshot) {
		t.Errorf("Restore = %v, want ErrMalformedSnapshot", err)
	}
}
