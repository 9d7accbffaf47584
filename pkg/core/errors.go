package core

import "errors"

// Common errors.
var (
	ErrTooFewOctaves  = errors.New("the number of octaves must be two or greater")
	ErrTooManyOctaves = errors.New("the number of octaves must be 30 or less")
)
