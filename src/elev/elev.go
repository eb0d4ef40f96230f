// Package elev implements a single elevator car driven one tick at a time.
package elev

import (
	"fmt"
	"log/slog"

	"elevbank/src/config"
	"elevbank/src/types"
)

// Car is one elevator car. It is not safe for concurrent use; the building serializes access.
type Car struct {
	id       int
	maxFloor int
	capacity int

	floor      int
	dir        types.MotorDirection
	doorClosed bool
	doorTicks  int
	waitTicks  int
	stops      stopSet
	inService  bool
	accepting  bool
}

// IDCounter hands out sequential car ids. The zero value starts at 0.
type IDCounter struct {
	next int
}

func NewIDCounter(first int) *IDCounter {
	return &IDCounter{next: first}
}

func (c *IDCounter) Next() int {
	id := c.next
	c.next++
	return id
}

// NewCar creates a car parked out of service at floor 0 with its door closed.
func NewCar(id, maxFloor, capacity int) (*Car, error) {
	if maxFloor < config.MinCarFloors || maxFloor > config.MaxCarFloors {
		return nil, fmt.Errorf("%w: got %d, want %d..%d",
			ErrInvalidFloors, maxFloor, config.MinCarFloors, config.MaxCarFloors)
	}
	if capacity < config.MinCarCapacity || capacity > config.MaxCarCapacity {
		return nil, fmt.Errorf("%w: got %d, want %d..%d",
			ErrInvalidCapacity, capacity, config.MinCarCapacity, config.MaxCarCapacity)
	}
	return &Car{
		id:         id,
		maxFloor:   maxFloor,
		capacity:   capacity,
		dir:        types.MD_Stop,
		doorClosed: true,
	}, nil
}

func (c *Car) ID() int                         { return c.id }
func (c *Car) MaxFloor() int                   { return c.maxFloor }
func (c *Car) Capacity() int                   { return c.capacity }
func (c *Car) Floor() int                      { return c.floor }
func (c *Car) Direction() types.MotorDirection { return c.dir }
func (c *Car) DoorClosed() bool                { return c.doorClosed }
func (c *Car) InService() bool                 { return c.inService }

// Accepting reports whether the car may be handed a new batch this tick.
func (c *Car) Accepting() bool { return c.accepting }

func (c *Car) Stops() []bool { return c.stops.bools(c.maxFloor) }

func (c *Car) Status() Status { return deriveStatus(c.inService, c.doorClosed, c.waitTicks) }

func (c *Car) topFloor() int { return c.maxFloor - 1 }

func (c *Car) atTerminus() bool { return c.floor == 0 || c.floor == c.topFloor() }

// Start puts the car in service waiting at its current floor. The direction already points
// up while the wait runs; the status line shows "Waiting" regardless.
func (c *Car) Start() {
	if c.inService {
		return
	}
	c.inService = true
	c.accepting = true
	c.stops.reset()
	c.doorClosed = true
	c.doorTicks = 0
	c.waitTicks = config.TerminusWaitTicks
	c.dir = types.MD_Up
	slog.Debug("Car started", "car", c.id, "floor", c.floor)
}

// TakeOutOfService sends the car down to floor 0. A door that is already open keeps counting down.
func (c *Car) TakeOutOfService() {
	c.stops.reset()
	c.accepting = false
	c.dir = types.MD_Down
	c.inService = false
	c.waitTicks = 0
	slog.Debug("Car taken out of service", "car", c.id, "floor", c.floor)
}

// ProcessBatch replaces the car's stops with the start and end floors of every request and
// departs immediately. Batch size is the caller's responsibility.
func (c *Car) ProcessBatch(requests []types.Request) error {
	if !c.atTerminus() {
		return fmt.Errorf("%w: car %d at floor %d", ErrInvalidCarState, c.id, c.floor)
	}
	if len(requests) == 0 {
		return nil
	}

	c.stops.reset()
	for _, req := range requests {
		c.stops.mark(req.StartFloor)
		c.stops.mark(req.EndFloor)
	}
	c.waitTicks = 0
	if c.floor == 0 {
		c.dir = types.MD_Up
	} else {
		c.dir = types.MD_Down
	}
	c.accepting = false
	slog.Debug("Car accepted batch", "car", c.id, "floor", c.floor, "requests", len(requests), "dir", c.dir)
	return nil
}
