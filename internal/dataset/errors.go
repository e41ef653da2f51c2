package dataset

import "errors"

// Sentinel errors for load failures. All are fatal to the run; callers wrap
// them with row and file context via %w.
var (
	ErrInputNotFound  = errors.New("input file not found")
	ErrSchemaMismatch = errors.New("header does not match record schema")
	ErrDateParse      = errors.New("unparseable date")
)
