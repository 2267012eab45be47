// Package clock owns the auto-drop timer the game core deliberately does
// not schedule itself. A Driver delivers one tick per drop interval and
// then parks; the session owner must call Reschedule with the session's
// current drop interval after every transition, which is what makes
// level-up speedups and the game-over stop take effect.
package clock

import (
	"context"
	"time"
)

// Driver is a single reschedulable timer. Ticks arrive on C. A Driver is
// owned by one goroutine running Run; Reschedule may be called from the
// session owner at any time and the latest interval wins.
type Driver struct {
	// C delivers a tick when the armed interval elapses. The driver
	// stays parked after a tick until the next Reschedule.
	C chan time.Time

	resched chan time.Duration
}

// New returns an unarmed driver. Arm it with Reschedule.
func New() *Driver {
	return &Driver{
		C:       make(chan time.Time),
		resched: make(chan time.Duration, 1),
	}
}

// Reschedule re-arms the driver with the given interval, replacing any
// pending arm request. An interval of zero or less parks the driver.
func (d *Driver) Reschedule(interval time.Duration) {
	for {
		select {
		case d.resched <- interval:
			return
		default:
			// Drop the stale request; only the latest interval matters.
			select {
			case <-d.resched:
			default:
			}
		}
	}
}

// Run drives the timer until the context is cancelled. It must be called
// from exactly one goroutine per driver.
func (d *Driver) Run(ctx context.Context) {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	armed := false

	arm := func(interval time.Duration) {
		if armed && !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		armed = false
		if interval > 0 {
			timer.Reset(interval)
			armed = true
		}
	}

	for {
		select {
		case <-ctx.Done():
			arm(0)
			return
		case interval := <-d.resched:
			arm(interval)
		case t := <-timer.C:
			armed = false
			select {
			case d.C <- t:
			case interval := <-d.resched:
				// Owner rescheduled instead of consuming the tick;
				// the tick is stale, start over.
				arm(interval)
			case <-ctx.Done():
				return
			}
		}
	}
}
