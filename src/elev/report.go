package elev

import (
	"fmt"
	"slices"
	"strings"

	"elevbank/src/types"
)

// Status is the car state derived from its fields. It is never stored.
type Status int

const (
	OutOfService Status = iota
	DoorOpen
	WaitingAtTerminus
	Moving
)

func (s Status) String() string {
	return [...]string{"OutOfService", "DoorOpen", "WaitingAtTerminus", "Moving"}[s]
}

func deriveStatus(inService, doorClosed bool, waitTicks int) Status {
	switch {
	case !inService:
		return OutOfService
	case !doorClosed:
		return DoorOpen
	case waitTicks > 0:
		return WaitingAtTerminus
	}
	return Moving
}

// CarReport is a read-only snapshot of a car.
type CarReport struct {
	ID            int
	Floor         int
	Direction     types.MotorDirection
	DoorClosed    bool
	Stops         []bool
	DoorOpenTicks int
	WaitTicks     int
	OutOfService  bool
	Accepting     bool
}

func (c *Car) Report() CarReport {
	return CarReport{
		ID:            c.id,
		Floor:         c.floor,
		Direction:     c.dir,
		DoorClosed:    c.doorClosed,
		Stops:         c.stops.bools(c.maxFloor),
		DoorOpenTicks: c.doorTicks,
		WaitTicks:     c.waitTicks,
		OutOfService:  !c.inService,
		Accepting:     c.accepting,
	}
}

func (r CarReport) Status() Status {
	return deriveStatus(!r.OutOfService, r.DoorClosed, r.WaitTicks)
}

func (r CarReport) Equal(other CarReport) bool {
	return r.ID == other.ID &&
		r.Floor == other.Floor &&
		r.Direction == other.Direction &&
		r.DoorClosed == other.DoorClosed &&
		r.DoorOpenTicks == other.DoorOpenTicks &&
		r.WaitTicks == other.WaitTicks &&
		r.OutOfService == other.OutOfService &&
		r.Accepting == other.Accepting &&
		slices.Equal(r.Stops, other.Stops)
}

// String renders the status line, e.g. "[3|^|O 2]< --  1 -- -->".
func (r CarReport) String() string {
	if r.OutOfService && r.Floor == 0 {
		return fmt.Sprintf("Out of Service[Floor %d]", r.Floor)
	}
	if r.WaitTicks > 0 {
		return fmt.Sprintf("Waiting[Floor %d, Time %d]", r.Floor, r.WaitTicks)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d|%s|", r.Floor, r.Direction)
	if r.DoorClosed {
		sb.WriteString("C  ]<")
	} else {
		fmt.Fprintf(&sb, "O %d]<", r.DoorOpenTicks)
	}
	for floor, marked := range r.Stops {
		if marked {
			fmt.Fprintf(&sb, " %2d", floor)
		} else {
			sb.WriteString(" --")
		}
	}
	sb.WriteString(">")
	return sb.String()
}
