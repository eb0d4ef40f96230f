package elev

import "errors"

var (
	ErrInvalidFloors   = errors.New("invalid car floor count")
	ErrInvalidCapacity = errors.New("invalid car capacity")
	// ErrInvalidCarState means a batch was handed to a car away from both termini.
	ErrInvalidCarState = errors.New("invalid car state")
)
