package service

import "errors"

// Sentinel kinds for pipeline errors.
var (
	ErrOpenInput    = errors.New("open input failed")
	ErrCreateOutput = errors.New("create output failed")
	ErrCloseOutput  = errors.New("close output failed")
)
