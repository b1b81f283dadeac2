package motor

import "errors"

var (
	// ErrUnknownGrainType is returned when a definition names a grain type
	// with no implementation.
	ErrUnknownGrainType = errors.New("motor: unknown grain type")

	// ErrGrainProperties indicates a grain property map that could not be
	// applied.
	ErrGrainProperties = errors.New("motor: invalid grain properties")
)
