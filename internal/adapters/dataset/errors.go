package dataset

import "errors"

// Sentinel kinds for dataset errors. Loaders never surface these to page
// callers; they are logged and the table degrades to empty.
var (
	ErrUnknownTable  = errors.New("unknown table")
	ErrMissingColumn = errors.New("required column missing")
	ErrNoHeader      = errors.New("csv has no header row")
)
