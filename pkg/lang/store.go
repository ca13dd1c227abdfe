package lang

import (
	"fmt"
	"sync"

	"github.com/keraunic-tonic/friendship/pkg/log"
)

// OriginalLanguage is the language index of the authored text. Index 0 of
// the language table is fixed to it.
const OriginalLanguage = 0

// Language is one entry of the language table. Keeping name, RTL flag, and
// bundle names in a single struct makes the table's index alignment
// structural instead of an invariant spread over parallel slices.
type Language struct {
	Name string
	RTL  bool

	// AudioBundle and LipsyncBundle name the asset bundles holding this
	// language's speech audio and lipsync data. Empty when the language
	// ships without bundled speech.
	AudioBundle   string
	LipsyncBundle string
}

// Category classifies a translation line.
type Category string

const (
	CategorySpeech    Category = "speech"
	CategoryHotspot   Category = "hotspot"
	CategoryMenu      Category = "menu"
	CategoryInventory Category = "inventory"
	CategoryVariable  Category = "variable"
)

// Line is one localizable unit: a stable ID, the authored text, and its
// per-language translations. Translations is index-aligned to the language
// table, with index 0 holding the original text.
type Line struct {
	ID       int
	Category Category
	Original string

	Translations []string

	// DirectAudio and DirectLipsync hold per-language asset paths for the
	// direct-reference resolution strategy, index-aligned like
	// Translations. Missing entries fall back to index 0.
	DirectAudio   []string
	DirectLipsync []string

	// OnceOnly marks a line that may be spoken at most once per
	// playthrough.
	OnceOnly bool
}

// Text returns the line's text for a language index, falling back to the
// original when the index has no translation.
func (l Line) Text(language int) (string, bool) {
	if language == OriginalLanguage {
		return l.Original, true
	}
	if language < 0 || language >= len(l.Translations) || l.Translations[language] == "" {
		return l.Original, false
	}
	return l.Translations[language], true
}

// LineSource is the authoring source the line dictionary is built from.
type LineSource interface {
	Lines() []Line
}

// AssetSource selects the speech asset resolution strategy. The strategies
// are mutually exclusive; the active one is fixed at store construction.
type AssetSource int

const (
	// AssetFromCatalog resolves assets by naming convention in a flat
	// resource catalog, falling back to the original-language path.
	AssetFromCatalog AssetSource = iota

	// AssetFromBundle resolves assets inside the currently loaded
	// language bundle, failing soft while a bundle load is in flight.
	AssetFromBundle

	// AssetFromLine resolves assets from per-line direct references.
	AssetFromLine
)

// ResourceCatalog is a flat asset namespace used by the naming-convention
// strategy: paths like "speech/French/npc42" map to assets.
type ResourceCatalog interface {
	// Lookup resolves an asset by path. Returns false when absent.
	Lookup(path string) (AssetRef, bool)
}

// BundleLoader loads and unloads speech asset bundles. The loaded bundle is
// a singleton resource; loading a new one first unloads the previous.
type BundleLoader interface {
	Load(bundle string) error
	Unload(bundle string) error

	// Lookup resolves an asset by name inside a loaded bundle.
	Lookup(bundle, asset string) (AssetRef, bool)
}

// AssetRef identifies a resolved audio or lipsync asset.
type AssetRef struct {
	Path   string
	Bundle string
}

// IsZero reports whether the ref resolves to no asset.
func (r AssetRef) IsZero() bool { return r.Path == "" && r.Bundle == "" }

// StoreConfig configures a localization store.
type StoreConfig struct {
	// Source is the authoring source for the line dictionary. Optional;
	// lines can also be registered directly with AddLine.
	Source LineSource

	// AssetSource selects the speech asset resolution strategy.
	AssetSource AssetSource

	// SpeechRoot is the catalog path prefix for naming-convention
	// resolution. Defaults to "speech".
	SpeechRoot string

	// Catalog backs AssetFromCatalog resolution.
	Catalog ResourceCatalog

	// Bundles backs AssetFromBundle resolution.
	Bundles BundleLoader
}

// Store holds the translation dictionary, the language table, and the
// spoken-once ledger. It owns them exclusively; the save coordinator sees
// only the exported ledger fragment.
type Store struct {
	mu     sync.RWMutex
	cfg    StoreConfig
	logger log.Logger

	languages []Language
	lines     map[int]*Line
	spoken    map[int]struct{}
	current   int

	// Bundle state. Audio and lipsync bundle identity are tracked
	// independently; loading gates both.
	audioBundle   string
	lipsyncBundle string
	loading       bool
}

// NewStore creates a store with an empty dictionary and a language table
// holding only the original language. A nil logger discards output.
func NewStore(cfg StoreConfig, logger log.Logger) *Store {
	if logger == nil {
		logger = log.Noop{}
	}
	if cfg.SpeechRoot == "" {
		cfg.SpeechRoot = "speech"
	}
	s := &Store{
		cfg:       cfg,
		logger:    logger,
		languages: []Language{{Name: "Original"}},
		lines:     make(map[int]*Line),
		spoken:    make(map[int]struct{}),
	}
	return s
}

// Reload (re)builds the line dictionary from the authoring source and makes
// the given language current. The rebuild is skipped when the dictionary is
// already populated, since registered lines are addressed by stable ID and
// never go stale between reloads.
func (s *Store) Reload(language int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if language < 0 || language >= len(s.languages) {
		return fmt.Errorf("%w: %d", ErrUnknownLanguage, language)
	}

	if len(s.lines) == 0 && s.cfg.Source != nil {
		for _, line := range s.cfg.Source.Lines() {
			l := line
			s.alignLine(&l)
			s.lines[l.ID] = &l
		}
		s.logger.Debug("line dictionary built", log.Int("lines", len(s.lines)))
	}

	s.current = language
	return nil
}

// AddLine registers or replaces a line in the dictionary.
func (s *Store) AddLine(line Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := line
	s.alignLine(&l)
	s.lines[l.ID] = &l
}

// Line returns a copy of the registered line.
func (s *Store) Line(id int) (Line, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lines[id]
	if !ok {
		return Line{}, false
	}
	return *l, true
}

// Languages returns a copy of the language table.
func (s *Store) Languages() []Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Language, len(s.languages))
	copy(out, s.languages)
	return out
}

// CurrentLanguage returns the active language index.
func (s *Store) CurrentLanguage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetLanguage makes the given language index current.
func (s *Store) SetLanguage(language int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if language < 0 || language >= len(s.languages) {
		return fmt.Errorf("%w: %d", ErrUnknownLanguage, language)
	}
	s.current = language
	return nil
}

// IsRTL reports whether the given language reads right to left.
func (s *Store) IsRTL(language int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if language < 0 || language >= len(s.languages) {
		return false
	}
	return s.languages[language].RTL
}

// alignLine pads the line's per-language slices to the language table
// width and pins index 0 to the original. Callers hold s.mu.
func (s *Store) alignLine(l *Line) {
	width := len(s.languages)
	l.Translations = padTo(l.Translations, width)
	l.Translations[OriginalLanguage] = l.Original
	if l.DirectAudio != nil {
		l.DirectAudio = padTo(l.DirectAudio, width)
	}
	if l.DirectLipsync != nil {
		l.DirectLipsync = padTo(l.DirectLipsync, width)
	}
}

func padTo(ss []string, width int) []string {
	for len(ss) < width {
		ss = append(ss, "")
	}
	return ss
}
