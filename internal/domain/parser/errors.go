package parser

import "errors"

// Sentinel kinds for parser errors.
var (
	ErrRead = errors.New("read guess log failed")
)
