package stopwatch

import "time"

// Engine tracks running state and elapsed time across start/pause cycles.
// It is not safe for concurrent use; Session serialises access.
type Engine struct {
	clock         Clock
	running       bool
	elapsedBefore time.Duration
	segmentStart  time.Duration
}

func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock
	}
	return &Engine{clock: clock}
}

// Start begins a run segment. It reports false if already running.
func (e *Engine) Start() bool {
	if e.running {
		return false
	}
	e.running = true
	e.segmentStart = e.clock.Monotonic()
	return true
}

// Pause folds the current segment into the accumulated time. It reports
// false if already stopped.
func (e *Engine) Pause() bool {
	if !e.running {
		return false
	}
	e.elapsedBefore += e.segmentElapsed()
	e.running = false
	return true
}

// Reset stops the engine and zeroes elapsed time.
func (e *Engine) Reset() {
	e.running = false
	e.elapsedBefore = 0
	e.segmentStart = 0
}

func (e *Engine) Running() bool {
	return e.running
}

// ElapsedBefore is the time accumulated by finished segments.
func (e *Engine) ElapsedBefore() time.Duration {
	return e.elapsedBefore
}

// CurrentElapsed returns the total elapsed time without changing state.
func (e *Engine) CurrentElapsed() time.Duration {
	if !e.running {
		return e.elapsedBefore
	}
	return e.elapsedBefore + e.segmentElapsed()
}

// restore rehydrates persisted state. A running engine resumes as if its
// current segment had already been running for segmentAge.
func (e *Engine) restore(running bool, elapsedBefore time.Duration, segmentAge time.Duration) {
	if elapsedBefore < 0 {
		elapsedBefore = 0
	}
	if segmentAge < 0 {
		segmentAge = 0
	}
	e.running = running
	e.elapsedBefore = elapsedBefore
	e.segmentStart = 0
	if running {
		e.segmentStart = e.clock.Monotonic() - segmentAge
	}
}

func (e *Engine) segmentElapsed() time.Duration {
	delta := e.clock.Monotonic() - e.segmentStart
	if delta < 0 {
		return 0
	}
	return delta
}
