package stopwatch

import "time"

// Clock supplies the two time sources the stopwatch needs: a monotonic
// reading for elapsed-time math and a wall clock for lap timestamps.
type Clock interface {
	Monotonic() time.Duration
	Wall() time.Time
}

// SystemClock reads the process clocks. Monotonic readings are relative to
// process start.
var SystemClock Clock = systemClock{origin: time.Now()}

type systemClock struct {
	origin time.Time
}

func (c systemClock) Monotonic() time.Duration {
	return time.Since(c.origin)
}

func (systemClock) Wall() time.Time {
	return time.Now()
}
