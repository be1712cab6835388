package model

import "errors"

// Core error kinds. Callers fix ErrInvalidInput/ErrOutOfRange/ErrInvalidValue
// at their layer; they are never recoverable here.
var (
	// ErrInvalidInput marks an out-of-domain value passed to a pure function.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfRange marks an index or selector outside its valid set.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidValue marks a configuration value outside its legal range.
	ErrInvalidValue = errors.New("invalid value")
)
