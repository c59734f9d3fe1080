package stopwatch

import "time"

// EventType names a change observers may react to.
type EventType string

const (
	EventStarted       EventType = "started"
	EventPaused        EventType = "paused"
	EventReset         EventType = "reset"
	EventLapRecorded   EventType = "lap_recorded"
	EventLapsCleared   EventType = "laps_cleared"
	EventPersistFailed EventType = "persist_failed"
)

// Event is delivered to subscribers after a mutation completes.
type Event struct {
	Type    EventType
	Elapsed time.Duration
	Lap     Lap
	Err     error
	At      time.Time
}
