package lang

import "errors"

// Package errors, checkable with errors.Is.
var (
	// ErrInvalidColumn is returned when a table import names a
	// non-positive translation column.
	ErrInvalidColumn = errors.New("lang: translation column index must be positive")

	// ErrMalformedTable is returned when a table import encounters an
	// unparseable row. No mutation has happened when it is returned.
	ErrMalformedTable = errors.New("lang: malformed translation table")

	// ErrMalformedLedger is returned when a spoken-once ledger string
	// contains a non-numeric entry. The live ledger is left unchanged.
	ErrMalformedLedger = errors.New("lang: malformed spoken ledger")

	// ErrBundleLoading is returned when a bundle operation is requested
	// while another bundle load is still in flight.
	ErrBundleLoading = errors.New("lang: asset bundle load in progress")

	// ErrUnknownLanguage is returned when a language index is outside the
	// language table.
	ErrUnknownLanguage = errors.New("lang: unknown language index")
)
