package types

import "fmt"

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

// String returns the symbol used in car status lines.
func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "^"
	case MD_Down:
		return "v"
	case MD_Stop:
		return "-"
	}
	return "?"
}

type SystemState int

const (
	Stopped SystemState = iota
	Running
	Draining
)

func (s SystemState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	case Draining:
		return "Draining"
	}
	return "Unknown"
}

// Request is a single trip from StartFloor to EndFloor. Floors are checked on admission.
type Request struct {
	StartFloor int
	EndFloor   int
}

func (r Request) String() string {
	return fmt.Sprintf("%d->%d", r.StartFloor, r.EndFloor)
}

// Dir derives the travel direction. Equal floors give MD_Stop.
func (r Request) Dir() MotorDirection {
	switch {
	case r.StartFloor < r.EndFloor:
		return MD_Up
	case r.StartFloor > r.EndFloor:
		return MD_Down
	}
	return MD_Stop
}
