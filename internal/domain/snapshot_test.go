package domain

import (
	"errors"
	"reflect"
	"testing"
)

func sampleSnapshot() SaveSnapshot {
	var snap SaveSnapshot
	snap.Main.CurrentPlayerID = 2
	snap.Main.MovementMethod = "pointandclick"
	snap.Main.LanguageIndex = 1
	snap.Main.CurrentScene = "Harbor"
	snap.Main.SetFragment("inventory", "1:2:|3:1:worn")
	snap.Main.SetFragment("variables", "10:true|11:42:extra")
	snap.Scenes = []SceneData{
		{Scene: "Harbor", SubScenes: []string{"Docks"}, Objects: "crate:open"},
		{Scene: "Forest", Objects: "door||locked"},
	}
	return snap
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	blob, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := DecodeSnapshot(blob)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, snap)
	}
}

func TestSnapshotRoundTripDividerInFragment(t *testing.T) {
	var snap SaveSnapshot
	snap.Main.SetFragment("variables", "5:a||b")

	blob, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeSnapshot(blob)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	frag, ok := got.Main.Fragment("variables")
	if !ok || frag != "5:a||b" {
		t.Fatalf("fragment = %q, %v; want %q", frag, ok, "5:a||b")
	}
}

func TestDecodeSnapshotMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"no divider", "just text"},
		{"bad main json", "not json||[]"},
		{"bad scene json", `{"main":{}}||{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSnapshot(tt.blob)
			if !errors.Is(err, ErrMalformedSnapshot) {
				t.Fatalf("err = %v, want ErrMalformedSnapshot", err)
			}
		})
	}
}

func TestSetFragmentReplaces(t *testing.T) {
	var m MainData
	m.SetFragment("inventory", "a")
	m.SetFragment("variables", "b")
	m.SetFragment("inventory", "c")

	if len(m.Fragments) != 2 {
		t.Fatalf("fragments = %d, want 2", len(m.Fragments))
	}
	if m.Fragments[0].Owner != "inventory" || m.Fragments[0].Data != "c" {
		t.Errorf("first fragment = %+v, want inventory/c", m.Fragments[0])
	}
}

func TestSetSceneBlockReplaces(t *testing.T) {
	var s SaveSnapshot
	s.SetSceneBlock(SceneData{Scene: "Harbor", Objects: "a"})
	s.SetSceneBlock(SceneData{Scene: "Harbor", Objects: "b"})

	if len(s.Scenes) != 1 {
		t.Fatalf("scenes = %d, want 1", len(s.Scenes))
	}
	if s.Scenes[0].Objects != "b" {
		t.Errorf("objects = %q, want %q", s.Scenes[0].Objects, "b")
	}
}
