package lang

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/keraunic-tonic/friendship/pkg/log"
)

// ledgerSeparator joins line IDs in the exported spoken-once ledger.
const ledgerSeparator = ":"

// MarkSpoken reports whether a line may be spoken now, and registers
// once-only lines in the ledger as it does so.
//
// Lines with negative IDs and lines not flagged once-only are always
// speakable. A once-only line is speakable exactly once per ledger
// lifetime; repeat requests return false until the ledger is cleared.
func (s *Store) MarkSpoken(lineID int) bool {
	if lineID < 0 {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines[lineID]
	if !ok || !line.OnceOnly {
		return true
	}
	if _, spoken := s.spoken[lineID]; spoken {
		return false
	}
	s.spoken[lineID] = struct{}{}
	return true
}

// ClearLedger forgets every spoken-once marker, as when a new game starts.
func (s *Store) ClearLedger() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = make(map[int]struct{})
}

// ExportLedger serializes the spoken-once ledger as a colon-joined ID list
// for embedding in the save's main-data segment. IDs are sorted so the
// fragment is deterministic.
func (s *Store) ExportLedger() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.spoken))
	for id := range s.spoken {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ledgerSeparator)
}

// ImportLedger clears and rebuilds the ledger from an exported fragment.
// A malformed fragment returns ErrMalformedLedger and leaves the live
// ledger untouched.
func (s *Store) ImportLedger(fragment string) error {
	rebuilt := make(map[int]struct{})
	if fragment != "" {
		for _, part := range strings.Split(fragment, ledgerSeparator) {
			id, err := strconv.Atoi(part)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrMalformedLedger, part)
			}
			rebuilt[id] = struct{}{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = rebuilt
	s.logger.Debug("spoken ledger restored", log.Int("entries", len(rebuilt)))
	return nil
}
