package timer

import (
	"context"
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Timer fires on timeout every interval while started, until ctx is done.
// timeout should be buffered: a tick that is still pending is not sent twice.
func Timer(ctx context.Context, interval time.Duration, timeout chan<- bool, action <-chan TimerAction) {
	t := time.NewTimer(interval)
	t.Stop()
	running := false
	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case a := <-action:
			switch a {
			case Start:
				if !running {
					resetTimer(t, interval)
					running = true
				}
			case Stop:
				t.Stop()
				running = false
			}
		case <-t.C:
			if !running {
				continue
			}
			select {
			case timeout <- true:
			default:
				slog.Debug("Timer tick skipped, previous still pending")
			}
			t.Reset(interval)
		}
	}
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, interval time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(interval)
}
