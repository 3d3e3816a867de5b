package nn

import "errors"

// Common errors.
var (
	ErrNumericDomain   = errors.New("numeric domain error")
	ErrUnknownFunction = errors.New("unknown function")
	ErrEmptyNetwork    = errors.New("network has no layers")
)
