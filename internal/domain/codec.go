package domain

import (
	"fmt"
	"strings"
)

// SegmentDivider separates the main-data segment from the scene-data segment
// in a serialized save blob. The token is reserved: any literal occurrence
// inside a segment is escaped before concatenation.
const SegmentDivider = "||"

// dividerEscape stands in for a literal SegmentDivider inside segment text.
// It is strictly longer than the divider so the escaped form can never be
// mistaken for a segment boundary.
const dividerEscape = "*PIPE1**PIPE2*"

// EscapeSegment replaces every literal divider in s with the escape token.
func EscapeSegment(s string) string {
	return strings.ReplaceAll(s, SegmentDivider, dividerEscape)
}

// UnescapeSegment restores literal dividers previously escaped by EscapeSegment.
func UnescapeSegment(s string) string {
	return strings.ReplaceAll(s, dividerEscape, SegmentDivider)
}

// JoinSegments escapes both segments and concatenates them around the divider.
// The result contains exactly one divider occurrence.
func JoinSegments(main, scene string) string {
	return EscapeSegment(main) + SegmentDivider + EscapeSegment(scene)
}

// SplitSegments splits a save blob back into its unescaped main and scene
// segments. Returns ErrMalformedSnapshot if the divider is absent.
func SplitSegments(blob string) (main, scene string, err error) {
	i := strings.Index(blob, SegmentDivider)
	if i < 0 {
		return "", "", fmt.Errorf("%w: missing segment divider", ErrMalformedSnapshot)
	}
	main = UnescapeSegment(blob[:i])
	scene = UnescapeSegment(blob[i+len(SegmentDivider):])
	return main, scene, nil
}

// RecordSeparator joins records inside a subsystem fragment (variable and
// inventory tables). FieldSeparator joins fields inside a record.
const (
	RecordSeparator = "|"
	FieldSeparator  = ":"
)

// JoinRecords joins non-empty records with the record separator.
func JoinRecords(records []string) string {
	out := records[:0:0]
	for _, r := range records {
		if r != "" {
			out = append(out, r)
		}
	}
	return strings.Join(out, RecordSeparator)
}

// SplitRecords splits a fragment into records, dropping empty entries so a
// trailing separator does not produce a phantom record.
func SplitRecords(fragment string) []string {
	if fragment == "" {
		return nil
	}
	parts := strings.Split(fragment, RecordSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
