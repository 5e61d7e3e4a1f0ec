package service

import "errors"

var (
	// ErrInvalidDate is returned when a day view date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownExport is returned for an export name that does not exist.
	ErrUnknownExport = errors.New("unknown export")
)
