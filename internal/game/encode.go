package game

import (
	"fmt"
	"strings"

	"github.com/keraunic-tonic/friendship/internal/domain"
)

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// parseFieldMap decodes a fragment of pipe-joined key:value records into a
// map. Records missing the field separator make the whole fragment invalid,
// so callers can refuse to apply a partially parsed snapshot.
func parseFieldMap(fragment string) (map[string]string, error) {
	fields := make(map[string]string)
	for _, rec := range domain.SplitRecords(fragment) {
		key, value, ok := strings.Cut(rec, domain.FieldSeparator)
		if !ok {
			return nil, fmt.Errorf("%w: record %q", domain.ErrMalformedSnapshot, rec)
		}
		fields[key] = value
	}
	return fields, nil
}
