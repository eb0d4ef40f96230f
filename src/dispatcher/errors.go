package dispatcher

import "errors"

var (
	ErrInvalidFloorCount = errors.New("invalid floor count")
	ErrInvalidCarCount   = errors.New("invalid car count")
	ErrInvalidCapacity   = errors.New("invalid capacity")

	ErrNotAccepting      = errors.New("system not accepting requests")
	ErrInvalidFloor      = errors.New("invalid floor")
	ErrDegenerateRequest = errors.New("degenerate request")

	ErrStartWhileDraining = errors.New("cannot start while draining")
)
