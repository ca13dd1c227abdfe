package lang

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/keraunic-tonic/friendship/pkg/log"
)

// breakToken in a table cell maps to a literal newline in the imported text.
const breakToken = "[break]"

// ImportTable imports one language column from a tabular text blob.
//
// Row 0 is the header, column 0 holds the line ID, and columnIndex holds the
// translation text. An unseen languageName appends a new entry to the
// language table; a known one is updated in place, so the table length stays
// constant across repeated imports of the same name. Rows whose line ID is
// not registered are skipped with a warning.
//
// The import is two-phase: the whole table is parsed before any store
// mutation, so a malformed row aborts with no partial update.
func (s *Store) ImportTable(data, languageName string, columnIndex int, ignoreEmptyCells, rtl bool) error {
	if columnIndex <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, columnIndex)
	}

	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: empty table", ErrMalformedTable)
	}

	// Phase one: parse everything up front.
	parsed := make(map[int]string, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return fmt.Errorf("%w: row %d: line id %q", ErrMalformedTable, i+1, row[0])
		}
		if columnIndex >= len(row) {
			if ignoreEmptyCells {
				continue
			}
			return fmt.Errorf("%w: row %d: missing column %d", ErrMalformedTable, i+1, columnIndex)
		}
		cell := row[columnIndex]
		if cell == "" && ignoreEmptyCells {
			continue
		}
		parsed[id] = strings.ReplaceAll(cell, breakToken, "\n")
	}

	// Phase two: commit.
	s.mu.Lock()
	defer s.mu.Unlock()

	langIndex := s.languageIndex(languageName)
	if langIndex < 0 {
		s.languages = append(s.languages, Language{Name: languageName, RTL: rtl})
		langIndex = len(s.languages) - 1
		for _, line := range s.lines {
			s.alignLine(line)
		}
	} else {
		s.languages[langIndex].RTL = rtl
	}

	skipped := 0
	for id, text := range parsed {
		line, ok := s.lines[id]
		if !ok {
			skipped++
			s.logger.Warn("translation import: line not registered",
				log.Int("line_id", id),
				log.String("language", languageName),
			)
			continue
		}
		line.Translations[langIndex] = text
	}

	s.logger.Info("translation table imported",
		log.String("language", languageName),
		log.Int("language_index", langIndex),
		log.Int("lines", len(parsed)-skipped),
		log.Int("skipped", skipped),
	)
	return nil
}

// languageIndex returns the table index for a language name, -1 when
// unseen. Callers hold s.mu.
func (s *Store) languageIndex(name string) int {
	for i, l := range s.languages {
		if l.Name == name {
			return i
		}
	}
	return -1
}
