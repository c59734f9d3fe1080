package stopwatch

import "time"

// Lap is a snapshot of total elapsed time taken at RecordedAt.
type Lap struct {
	Elapsed    time.Duration
	Text       string
	RecordedAt time.Time
}

// LapStore holds laps newest-first.
type LapStore struct {
	laps []Lap
}

// NewLapStore takes ownership of laps, which must already be newest-first.
func NewLapStore(laps []Lap) *LapStore {
	if laps == nil {
		laps = []Lap{}
	}
	return &LapStore{laps: laps}
}

// Record inserts a lap at the front and returns it.
func (s *LapStore) Record(elapsed time.Duration, recordedAt time.Time) Lap {
	lap := Lap{
		Elapsed:    elapsed,
		Text:       FormatDuration(elapsed),
		RecordedAt: recordedAt,
	}
	s.laps = append([]Lap{lap}, s.laps...)
	return lap
}

func (s *LapStore) Clear() {
	s.laps = []Lap{}
}

func (s *LapStore) Count() int {
	return len(s.laps)
}

// Latest returns the most recent lap.
func (s *LapStore) Latest() (Lap, bool) {
	if len(s.laps) == 0 {
		return Lap{}, false
	}
	return s.laps[0], true
}

// ExportOrdered returns a copy of the laps, oldest-first when ascending.
func (s *LapStore) ExportOrdered(ascending bool) []Lap {
	out := make([]Lap, len(s.laps))
	if !ascending {
		copy(out, s.laps)
		return out
	}
	for i, lap := range s.laps {
		out[len(s.laps)-1-i] = lap
	}
	return out
}
