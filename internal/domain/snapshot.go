package domain

import (
	"encoding/json"
	"fmt"
)

// Fragment is one subsystem's contribution to the main-data segment.
// Data uses whatever encoding the owning subsystem defines (colon-joined
// ledger, pipe-joined tables, plain values); the coordinator treats it as
// opaque text.
type Fragment struct {
	Owner string `json:"owner"`
	Data  string `json:"data"`
}

// MainData is the global half of a snapshot: scalar state plus the ordered
// per-subsystem fragments pulled at save time.
type MainData struct {
	CurrentPlayerID int        `json:"current_player_id"`
	MovementMethod  string     `json:"movement_method"`
	LanguageIndex   int        `json:"language_index"`
	CurrentScene    string     `json:"current_scene"`
	Fragments       []Fragment `json:"fragments"`
}

// Fragment returns the fragment owned by the named subsystem.
func (m MainData) Fragment(owner string) (string, bool) {
	for _, f := range m.Fragments {
		if f.Owner == owner {
			return f.Data, true
		}
	}
	return "", false
}

// SetFragment replaces the named subsystem's fragment, appending when the
// owner is unseen. Order of first appearance is preserved.
func (m *MainData) SetFragment(owner, data string) {
	for i := range m.Fragments {
		if m.Fragments[i].Owner == owner {
			m.Fragments[i].Data = data
			return
		}
	}
	m.Fragments = append(m.Fragments, Fragment{Owner: owner, Data: data})
}

// SceneData is the per-scene half of a snapshot: one block per visited scene.
type SceneData struct {
	Scene     string   `json:"scene"`
	SubScenes []string `json:"sub_scenes,omitempty"`

	// Objects holds the encoded state of scene-local objects.
	Objects string `json:"objects"`
}

// SaveSnapshot is the root aggregate serialized into a save blob.
type SaveSnapshot struct {
	Main   MainData    `json:"main"`
	Scenes []SceneData `json:"scenes"`
}

// SceneBlock returns the data block for the named scene.
func (s SaveSnapshot) SceneBlock(scene string) (SceneData, bool) {
	for _, sc := range s.Scenes {
		if sc.Scene == scene {
			return sc, true
		}
	}
	return SceneData{}, false
}

// SetSceneBlock replaces the block for its scene, appending when unseen.
func (s *SaveSnapshot) SetSceneBlock(block SceneData) {
	for i := range s.Scenes {
		if s.Scenes[i].Scene == block.Scene {
			s.Scenes[i] = block
			return
		}
	}
	s.Scenes = append(s.Scenes, block)
}

// Encode serializes the snapshot into the two-segment blob format:
// main and scene data as independently decodable JSON segments, escaped
// and joined around the segment divider.
func (s SaveSnapshot) Encode() (string, error) {
	main, err := json.Marshal(s.Main)
	if err != nil {
		return "", fmt.Errorf("encode main data: %w", err)
	}
	scenes, err := json.Marshal(s.Scenes)
	if err != nil {
		return "", fmt.Errorf("encode scene data: %w", err)
	}
	return JoinSegments(string(main), string(scenes)), nil
}

// DecodeSnapshot parses a save blob back into a snapshot. A blob that cannot
// be split or whose segments fail to decode yields ErrMalformedSnapshot.
func DecodeSnapshot(blob string) (SaveSnapshot, error) {
	mainSeg, sceneSeg, err := SplitSegments(blob)
	if err != nil {
		return SaveSnapshot{}, err
	}

	var snap SaveSnapshot
	if err := json.Unmarshal([]byte(mainSeg), &snap.Main); err != nil {
		return SaveSnapshot{}, fmt.Errorf("%w: main segment: %v", ErrMalformedSnapshot, err)
	}
	if sceneSeg != "" {
		if err := json.Unmarshal([]byte(sceneSeg), &snap.Scenes); err != nil {
			return SaveSnapshot{}, fmt.Errorf("%w: scene segment: %v", ErrMalformedSnapshot, err)
		}
	}
	return snap, nil
}
