// Package dispatcher owns the cars of one building, queues requests by direction and hands
// capacity-bounded batches to cars parked at a terminus.
//
// A Building is driven by a single caller. It does no locking of its own.
package dispatcher

import (
	"fmt"
	"log/slog"

	"elevbank/src/elev"
	"elevbank/src/types"
)

type Building struct {
	numFloors int
	numCars   int
	capacity  int

	cars  []*elev.Car
	up    requestQueue
	down  requestQueue
	state types.SystemState
	ticks int
}

// New builds a stopped building. Car ids are drawn from ids in creation order; a nil counter
// starts at 0. Cars bound floors to 3..30 and capacity to 3..20, and those errors are returned
// wrapped with the car that rejected them.
func New(numFloors, numCars, capacity int, ids *elev.IDCounter) (*Building, error) {
	if numFloors < 2 {
		return nil, fmt.Errorf("%w: %d, need at least 2", ErrInvalidFloorCount, numFloors)
	}
	if numCars < 1 {
		return nil, fmt.Errorf("%w: %d, need at least 1", ErrInvalidCarCount, numCars)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d, need at least 1", ErrInvalidCapacity, capacity)
	}
	if ids == nil {
		ids = elev.NewIDCounter(0)
	}

	b := &Building{
		numFloors: numFloors,
		numCars:   numCars,
		capacity:  capacity,
		cars:      make([]*elev.Car, 0, numCars),
		state:     types.Stopped,
	}
	for i := 0; i < numCars; i++ {
		id := ids.Next()
		car, err := elev.NewCar(id, numFloors, capacity)
		if err != nil {
			return nil, fmt.Errorf("car %d: %w", id, err)
		}
		b.cars = append(b.cars, car)
	}
	return b, nil
}

func (b *Building) NumFloors() int           { return b.numFloors }
func (b *Building) NumCars() int             { return b.numCars }
func (b *Building) Capacity() int            { return b.capacity }
func (b *Building) State() types.SystemState { return b.state }

func (b *Building) topFloor() int { return b.numFloors - 1 }

// Admit queues a request behind earlier requests going the same way.
func (b *Building) Admit(req types.Request) error {
	if b.state != types.Running {
		return fmt.Errorf("%w: system is %v", ErrNotAccepting, b.state)
	}
	if !b.validFloor(req.StartFloor) {
		return fmt.Errorf("%w: start floor %d not in 0..%d", ErrInvalidFloor, req.StartFloor, b.topFloor())
	}
	if !b.validFloor(req.EndFloor) {
		return fmt.Errorf("%w: end floor %d not in 0..%d", ErrInvalidFloor, req.EndFloor, b.topFloor())
	}

	switch req.Dir() {
	case types.MD_Up:
		b.up.push(req)
	case types.MD_Down:
		b.down.push(req)
	default:
		return fmt.Errorf("%w: start and end floor are both %d", ErrDegenerateRequest, req.StartFloor)
	}
	return nil
}

func (b *Building) validFloor(floor int) bool {
	return floor >= 0 && floor < b.numFloors
}

// StartSystem puts every car in service. Starting a running system does nothing.
func (b *Building) StartSystem() error {
	switch b.state {
	case types.Running:
		return nil
	case types.Draining:
		return ErrStartWhileDraining
	}
	for _, car := range b.cars {
		car.Start()
	}
	b.state = types.Running
	slog.Info("Elevator system started", "cars", b.numCars, "floors", b.numFloors)
	return nil
}

// StopSystem takes every car out of service and drops all queued requests.
// The system is Draining until every car is back at floor 0.
func (b *Building) StopSystem() {
	if b.state != types.Running {
		return
	}
	dropped := b.up.Len() + b.down.Len()
	for _, car := range b.cars {
		car.TakeOutOfService()
	}
	b.up.clear()
	b.down.clear()
	b.state = types.Draining
	slog.Info("Elevator system draining", "droppedRequests", dropped)
}

// Tick advances the whole building by one step: distribute, step every car, then check
// whether draining has finished.
func (b *Building) Tick() {
	if b.state == types.Stopped {
		return
	}
	if b.state != types.Draining {
		b.distribute()
	}
	for _, car := range b.cars {
		car.Step()
	}
	b.ticks++

	if b.state == types.Draining && b.allAtGround() {
		b.state = types.Stopped
		slog.Info("Elevator system stopped", "tick", b.ticks)
	}
}

// distribute hands each accepting car parked at a terminus the next batch from the queue
// matching its departure direction. Cars are scanned in creation order.
func (b *Building) distribute() {
	if b.up.Len() == 0 && b.down.Len() == 0 {
		return
	}
	for _, car := range b.cars {
		if !car.Accepting() {
			continue
		}
		var queue *requestQueue
		switch car.Floor() {
		case 0:
			queue = &b.up
		case b.topFloor():
			queue = &b.down
		default:
			continue
		}

		batch := queue.popN(b.capacity)
		if len(batch) == 0 {
			continue
		}
		if err := car.ProcessBatch(batch); err != nil {
			panic(err)
		}
		slog.Debug("Assigned batch", "car", car.ID(), "floor", car.Floor(), "batch", batch)
	}
}

func (b *Building) allAtGround() bool {
	for _, car := range b.cars {
		if car.Floor() != 0 {
			return false
		}
	}
	return true
}
