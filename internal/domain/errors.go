package domain

import "errors"

var (
	// ErrCrewNotFound is returned when a lookup by key matched no crew.
	ErrCrewNotFound = errors.New("crew not found")
	// ErrCrewNotUnique is returned when a lookup by key matched more than one crew.
	ErrCrewNotUnique = errors.New("crew lookup matched more than one record")
)
