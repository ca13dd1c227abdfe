package game

import (
	"context"
	"testing"

	"github.com/keraunic-tonic/friendship/internal/ports"
)

func TestMenusCaptureSorted(t *testing.T) {
	m := NewMenus()
	m.SetLocked("pause", true)
	m.SetLocked("map", true)
	m.SetLocked("inventory", true)
	m.SetLocked("map", false)

	frag, err := m.Capture(context.Background())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if want := "inventory|pause"; frag != want {
		t.Errorf("fragment = %q, want %q", frag, want)
	}
}

func TestMenusRestoreReplaces(t *testing.T) {
	m := NewMenus()
	m.SetLocked("old", true)

	if err := m.Restore(context.Background(), "map|pause", ports.FullRestore()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if m.IsLocked("old") {
		t.Error("restore must replace the locked set, not merge into it")
	}
	if !m.IsLocked("map") || !m.IsLocked("pause") {
		t.Error("restored menus must be locked")
	}
}

func TestMenusRestoreEmptyFragment(t *testing.T) {
	m := NewMenus()
	m.SetLocked("old", true)

	if err := m.Restore(context.Background(), "", ports.FullRestore()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if m.IsLocked("old") {
		t.Error("empty fragment must unlock everything")
	}
}

func TestMenusRestoreToleratesDoubleSeparator(t *testing.T) {
	m := NewMenus()

	if err := m.Restore(context.Background(), "map||pause", ports.FullRestore()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !m.IsLocked("map") || !m.IsLocked("pause") {
		t.Error("records around a doubled separator must still lock")
	}
}
