// Package controller serializes all access to a Building through one goroutine, and drives
// it from a periodic timer when auto-run is on.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"elevbank/src/dispatcher"
	"elevbank/src/timer"
	"elevbank/src/types"
)

var ErrClosed = errors.New("controller closed")

// Listener receives a private copy of the building after every change. Listeners run on the
// controller goroutine and must not call back into the Controller.
type Listener func(dispatcher.BuildingReport)

// Cmd encapsulates an operation on the building.
type Cmd struct {
	Exec func(b *dispatcher.Building)
}

// Controller owns the building and serializes its access.
type Controller struct {
	cmds        chan Cmd
	timerAction chan timer.TimerAction
	ctxDone     <-chan struct{}
	done        chan struct{}

	// owned by the run goroutine
	listeners []Listener
	autoRun   bool
}

// Start launches the controller goroutine and the auto-run timer. Both stop when ctx is done.
func Start(ctx context.Context, b *dispatcher.Building, stepInterval time.Duration) *Controller {
	c := &Controller{
		cmds:        make(chan Cmd),
		timerAction: make(chan timer.TimerAction),
		ctxDone:     ctx.Done(),
		done:        make(chan struct{}),
	}
	timeout := make(chan bool, 1)
	go timer.Timer(ctx, stepInterval, timeout, c.timerAction)
	go c.run(ctx, b, timeout)
	return c
}

func (c *Controller) run(ctx context.Context, b *dispatcher.Building, timeout <-chan bool) {
	defer close(c.done)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("Controller exiting", "tick", b.Report().Ticks)
			return
		case cmd := <-c.cmds:
			cmd.Exec(b)
		case <-timeout:
			if c.autoRun {
				b.Tick()
				c.notify(b)
			}
		}
	}
}

func (c *Controller) notify(b *dispatcher.Building) {
	if len(c.listeners) == 0 {
		return
	}
	report := b.Report()
	for _, l := range c.listeners {
		l(report.Clone())
	}
}

// Execute runs cmd on the controller goroutine and waits for it to finish.
func (c *Controller) Execute(cmd Cmd) error {
	finished := make(chan struct{})
	wrapped := Cmd{Exec: func(b *dispatcher.Building) {
		defer close(finished)
		cmd.Exec(b)
	}}
	select {
	case c.cmds <- wrapped:
	case <-c.done:
		return ErrClosed
	}
	<-finished
	return nil
}

// Done is closed once the controller goroutine has exited.
func (c *Controller) Done() <-chan struct{} { return c.done }

func (c *Controller) Subscribe(l Listener) error {
	return c.Execute(Cmd{Exec: func(*dispatcher.Building) {
		c.listeners = append(c.listeners, l)
	}})
}

func (c *Controller) Admit(req types.Request) error {
	var err error
	if cerr := c.Execute(Cmd{Exec: func(b *dispatcher.Building) {
		if err = b.Admit(req); err == nil {
			c.notify(b)
		}
	}}); cerr != nil {
		return cerr
	}
	if err != nil {
		slog.Warn("Request rejected", "request", req, "err", err)
	}
	return err
}

func (c *Controller) StartSystem() error {
	var err error
	if cerr := c.Execute(Cmd{Exec: func(b *dispatcher.Building) {
		if err = b.StartSystem(); err == nil {
			c.notify(b)
		}
	}}); cerr != nil {
		return cerr
	}
	return err
}

func (c *Controller) StopSystem() error {
	return c.Execute(Cmd{Exec: func(b *dispatcher.Building) {
		b.StopSystem()
		c.notify(b)
	}})
}

// Step ticks the building n times and returns the resulting report.
func (c *Controller) Step(n int) (dispatcher.BuildingReport, error) {
	var report dispatcher.BuildingReport
	err := c.Execute(Cmd{Exec: func(b *dispatcher.Building) {
		for i := 0; i < n; i++ {
			b.Tick()
		}
		c.notify(b)
		report = b.Report()
	}})
	return report, err
}

func (c *Controller) Report() (dispatcher.BuildingReport, error) {
	var report dispatcher.BuildingReport
	err := c.Execute(Cmd{Exec: func(b *dispatcher.Building) {
		report = b.Report()
	}})
	return report, err
}

// SetAutoRun starts or pauses ticking on the step interval.
func (c *Controller) SetAutoRun(on bool) error {
	return c.Execute(Cmd{Exec: func(*dispatcher.Building) {
		if c.autoRun == on {
			return
		}
		action := timer.Stop
		if on {
			action = timer.Start
		}
		select {
		case c.timerAction <- action:
		case <-c.ctxDone:
			return
		}
		c.autoRun = on
		slog.Info("Auto-run changed", "on", on)
	}})
}

func (c *Controller) AutoRun() (bool, error) {
	var on bool
	err := c.Execute(Cmd{Exec: func(*dispatcher.Building) { on = c.autoRun }})
	return on, err
}
