package lang

import (
	"fmt"
	"strconv"

	"github.com/keraunic-tonic/friendship/pkg/log"
)

// assetKind distinguishes audio from lipsync resolution. The two kinds keep
// independent bundle identity; only the loading flag is shared.
type assetKind int

const (
	kindAudio assetKind = iota
	kindLipsync
)

func (k assetKind) String() string {
	if k == kindLipsync {
		return "lipsync"
	}
	return "audio"
}

// SetLanguageBundles records the audio and lipsync bundle names for a
// language table entry.
func (s *Store) SetLanguageBundles(language int, audioBundle, lipsyncBundle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if language < 0 || language >= len(s.languages) {
		return fmt.Errorf("%w: %d", ErrUnknownLanguage, language)
	}
	s.languages[language].AudioBundle = audioBundle
	s.languages[language].LipsyncBundle = lipsyncBundle
	return nil
}

// ResolveAudio resolves the speech audio asset for a line under the active
// language, using the configured resolution strategy. A miss resolves to a
// zero ref with a logged warning, never an error the caller must handle.
func (s *Store) ResolveAudio(lineID int, speaker string) AssetRef {
	return s.resolve(kindAudio, lineID, speaker)
}

// ResolveLipsync resolves the lipsync asset for a line under the active
// language, using the configured resolution strategy.
func (s *Store) ResolveLipsync(lineID int, speaker string) AssetRef {
	return s.resolve(kindLipsync, lineID, speaker)
}

func (s *Store) resolve(kind assetKind, lineID int, speaker string) AssetRef {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if lineID < 0 {
		return AssetRef{}
	}

	switch s.cfg.AssetSource {
	case AssetFromBundle:
		return s.resolveFromBundle(kind, lineID, speaker)
	case AssetFromLine:
		return s.resolveFromLine(kind, lineID)
	default:
		return s.resolveFromCatalog(kind, lineID, speaker)
	}
}

// resolveFromCatalog looks the asset up by naming convention, falling back
// to the original-language path when the localized path misses.
// Callers hold s.mu.
func (s *Store) resolveFromCatalog(kind assetKind, lineID int, speaker string) AssetRef {
	if s.cfg.Catalog == nil {
		s.logger.Warn("asset resolve: no resource catalog configured",
			log.String("kind", kind.String()),
			log.Int("line_id", lineID),
		)
		return AssetRef{}
	}

	path := s.catalogPath(s.current, lineID, speaker)
	if ref, ok := s.cfg.Catalog.Lookup(path); ok {
		return ref
	}
	if s.current != OriginalLanguage {
		fallback := s.catalogPath(OriginalLanguage, lineID, speaker)
		if ref, ok := s.cfg.Catalog.Lookup(fallback); ok {
			return ref
		}
	}

	s.logger.Warn("asset resolve: not in catalog",
		log.String("kind", kind.String()),
		log.String("path", path),
	)
	return AssetRef{}
}

// catalogPath builds the naming-convention path for a line: the speech
// root, the language directory (omitted for the original), then
// "<speaker><lineID>". Callers hold s.mu.
func (s *Store) catalogPath(language, lineID int, speaker string) string {
	name := speaker + strconv.Itoa(lineID)
	if language == OriginalLanguage {
		return s.cfg.SpeechRoot + "/" + name
	}
	return s.cfg.SpeechRoot + "/" + s.languages[language].Name + "/" + name
}

// resolveFromBundle looks the asset up inside the currently loaded bundle.
// While a bundle load is in flight, or when the wanted bundle is not the
// loaded one, resolution fails soft with a warning. Callers hold s.mu.
func (s *Store) resolveFromBundle(kind assetKind, lineID int, speaker string) AssetRef {
	if s.cfg.Bundles == nil {
		s.logger.Warn("asset resolve: no bundle loader configured",
			log.String("kind", kind.String()),
			log.Int("line_id", lineID),
		)
		return AssetRef{}
	}
	if s.loading {
		s.logger.Warn("asset resolve: bundle load in flight",
			log.String("kind", kind.String()),
			log.Int("line_id", lineID),
		)
		return AssetRef{}
	}

	want, loaded := s.bundleNames(kind)
	if want == "" || want != loaded {
		s.logger.Warn("asset resolve: bundle not loaded",
			log.String("kind", kind.String()),
			log.String("bundle", want),
			log.Int("line_id", lineID),
		)
		return AssetRef{}
	}

	name := speaker + strconv.Itoa(lineID)
	ref, ok := s.cfg.Bundles.Lookup(want, name)
	if !ok {
		s.logger.Warn("asset resolve: not in bundle",
			log.String("kind", kind.String()),
			log.String("bundle", want),
			log.String("asset", name),
		)
		return AssetRef{}
	}
	return ref
}

// bundleNames returns the wanted and currently loaded bundle names for the
// kind under the active language. Callers hold s.mu.
func (s *Store) bundleNames(kind assetKind) (want, loaded string) {
	l := s.languages[s.current]
	if kind == kindLipsync {
		return l.LipsyncBundle, s.lipsyncBundle
	}
	return l.AudioBundle, s.audioBundle
}

// resolveFromLine returns the line's direct reference for the active
// language, falling back to index 0. Callers hold s.mu.
func (s *Store) resolveFromLine(kind assetKind, lineID int) AssetRef {
	line, ok := s.lines[lineID]
	if !ok {
		s.logger.Warn("asset resolve: line not registered",
			log.String("kind", kind.String()),
			log.Int("line_id", lineID),
		)
		return AssetRef{}
	}

	refs := line.DirectAudio
	if kind == kindLipsync {
		refs = line.DirectLipsync
	}
	if len(refs) == 0 {
		return AssetRef{}
	}

	path := ""
	if s.current < len(refs) {
		path = refs[s.current]
	}
	if path == "" {
		path = refs[OriginalLanguage]
	}
	if path == "" {
		s.logger.Warn("asset resolve: no direct reference",
			log.String("kind", kind.String()),
			log.Int("line_id", lineID),
		)
		return AssetRef{}
	}
	return AssetRef{Path: path}
}

// LoadBundles swaps the loaded audio and lipsync bundles to the ones named
// by the given language. Audio and lipsync identity are checked
// independently: a bundle is only unloaded and reloaded when its name
// actually changes. While the swap runs, bundle-relative resolution fails
// soft; a second concurrent swap returns ErrBundleLoading.
func (s *Store) LoadBundles(language int) error {
	s.mu.Lock()
	if s.cfg.Bundles == nil {
		s.mu.Unlock()
		return nil
	}
	if language < 0 || language >= len(s.languages) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownLanguage, language)
	}
	if s.loading {
		s.mu.Unlock()
		return ErrBundleLoading
	}
	s.loading = true
	target := s.languages[language]
	prevAudio, prevLipsync := s.audioBundle, s.lipsyncBundle
	s.mu.Unlock()

	var err error
	newAudio := prevAudio
	if target.AudioBundle != prevAudio {
		newAudio, err = s.swapBundle(prevAudio, target.AudioBundle)
	}
	newLipsync := prevLipsync
	if err == nil && target.LipsyncBundle != prevLipsync {
		newLipsync, err = s.swapBundle(prevLipsync, target.LipsyncBundle)
	}

	s.mu.Lock()
	s.audioBundle = newAudio
	s.lipsyncBundle = newLipsync
	s.loading = false
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.logger.Info("language bundles loaded",
		log.Int("language", language),
		log.String("audio", newAudio),
		log.String("lipsync", newLipsync),
	)
	return nil
}

// swapBundle unloads prev (when set) and loads next (when set), returning
// the name now loaded.
func (s *Store) swapBundle(prev, next string) (string, error) {
	if prev != "" {
		if err := s.cfg.Bundles.Unload(prev); err != nil {
			s.logger.Warn("bundle unload failed",
				log.String("bundle", prev),
				log.Err(err),
			)
		}
	}
	if next == "" {
		return "", nil
	}
	if err := s.cfg.Bundles.Load(next); err != nil {
		return "", fmt.Errorf("load bundle %s: %w", next, err)
	}
	return next, nil
}

// BundleLoadInFlight reports whether a bundle swap is currently running.
func (s *Store) BundleLoadInFlight() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
