// Step rules for a single car. Exactly one rule fires per tick: the first whose match holds.
package elev

import (
	"log/slog"

	"elevbank/src/config"
	"elevbank/src/types"
)

type stepRule struct {
	name  string
	match func(c *Car) bool
	apply func(c *Car)
}

var inServiceRules = []stepRule{
	{"door open", (*Car).doorOpen, (*Car).countDownDoor},
	{"terminus wait", (*Car).waiting, (*Car).countDownWait},
	{"scheduled stop", (*Car).stopHere, (*Car).openForStop},
	{"terminus arrival", (*Car).arrivingAtTerminus, (*Car).parkAtTerminus},
	{"cruise", always, (*Car).cruise},
}

var outOfServiceRules = []stepRule{
	{"parked", (*Car).parkedAtGround, func(*Car) {}},
	{"ground arrival", (*Car).atGround, (*Car).openAtGround},
	{"door open", (*Car).doorOpen, (*Car).countDownDoor},
	{"descend", always, (*Car).descend},
}

// Step advances the car by one tick.
func (c *Car) Step() {
	rules := inServiceRules
	if !c.inService {
		rules = outOfServiceRules
	}
	for _, rule := range rules {
		if rule.match(c) {
			rule.apply(c)
			return
		}
	}
}

func always(*Car) bool { return true }

func (c *Car) doorOpen() bool { return !c.doorClosed }

func (c *Car) waiting() bool { return c.waitTicks > 0 }

func (c *Car) stopHere() bool { return c.stops.has(c.floor) }

func (c *Car) atGround() bool { return c.floor == 0 }

func (c *Car) parkedAtGround() bool { return c.floor == 0 && !c.doorClosed }

func (c *Car) arrivingAtTerminus() bool {
	return (c.floor == 0 && c.dir == types.MD_Down) ||
		(c.floor == c.topFloor() && c.dir == types.MD_Up)
}

func (c *Car) countDownDoor() {
	c.doorTicks--
	if c.doorTicks == 0 {
		c.doorClosed = true
	}
}

func (c *Car) countDownWait() {
	c.waitTicks--
	if c.waitTicks > 0 {
		return
	}
	c.accepting = false
	switch c.floor {
	case 0:
		c.dir = types.MD_Up
	case c.topFloor():
		c.dir = types.MD_Down
	}
}

func (c *Car) openForStop() {
	c.doorClosed = false
	c.doorTicks = config.DoorOpenTicks
	c.stops.clear(c.floor)
	slog.Debug("Door opening", "car", c.id, "floor", c.floor)
}

func (c *Car) parkAtTerminus() {
	c.dir = types.MD_Stop
	c.waitTicks = config.TerminusWaitTicks
	c.accepting = true
	slog.Debug("Car parked at terminus", "car", c.id, "floor", c.floor)
}

func (c *Car) cruise() {
	c.floor += int(c.dir)
}

func (c *Car) openAtGround() {
	c.doorClosed = false
	c.stops.clear(0)
	c.dir = types.MD_Stop
	slog.Debug("Car parked out of service", "car", c.id)
}

func (c *Car) descend() {
	c.dir = types.MD_Down
	c.floor--
}
