package lang

import "github.com/keraunic-tonic/friendship/pkg/log"

// Translate resolves a line's text for a language.
//
// The original text is returned unchanged when language is the original or
// lineID is negative (untracked text). An unregistered line or a missing
// translation index also falls back to the original, with a warning logged.
func (s *Store) Translate(original string, lineID, language int) string {
	if language == OriginalLanguage || lineID < 0 {
		return original
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if language < 0 || language >= len(s.languages) {
		s.logger.Warn("translate: language out of range",
			log.Int("line_id", lineID),
			log.Int("language", language),
		)
		return original
	}

	line, ok := s.lines[lineID]
	if !ok {
		s.logger.Warn("translate: line not registered",
			log.Int("line_id", lineID),
			log.Int("language", language),
		)
		return original
	}

	text, ok := line.Text(language)
	if !ok {
		s.logger.Warn("translate: no translation for line",
			log.Int("line_id", lineID),
			log.Int("language", language),
			log.String("language_name", s.languages[language].Name),
		)
		return original
	}
	return text
}
