package scanner

import "time"

// Delayer blocks for a number of calibrated ticks.
type Delayer interface {
	Delay(ticks uint16)
}

// DelayFunc adapts a function to Delayer.
type DelayFunc func(ticks uint16)

func (f DelayFunc) Delay(ticks uint16) { f(ticks) }

// Sleep delays with time.Sleep, one Tick per tick.
type Sleep struct {
	Tick time.Duration
}

func (s Sleep) Delay(ticks uint16) {
	if ticks == 0 || s.Tick <= 0 {
		return
	}
	time.Sleep(time.Duration(ticks) * s.Tick)
}
