package report

import "errors"

// Sentinel kinds for report errors.
var (
	ErrWrite = errors.New("write report failed")
)
