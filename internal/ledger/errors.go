package ledger

import "fmt"

// RowErrorKind names a recoverable per-row condition found while reading
// the transactions CSV.
type RowErrorKind string

const (
	// MalformedRow is a row with fewer fields than the format requires.
	MalformedRow RowErrorKind = "malformed-row"
	// ParseError is a row whose Amount (or another typed field) does not
	// parse. The row is dropped instead of propagating a bogus value.
	ParseError RowErrorKind = "parse-error"
)

// RowError reports one skipped CSV row. Reading never aborts on a bad
// row — a single damaged record should not make the rest of the ledger
// unreadable — but every skip is surfaced here so callers can warn.
type RowError struct {
	Record int // 1-based data record number, header excluded
	Kind   RowErrorKind
	Detail string
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s at record %d: %s", e.Kind, e.Record, e.Detail)
}
