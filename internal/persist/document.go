package persist

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DefaultKey is the well-known key the stopwatch document lives under.
const DefaultKey = "vortex_stopwatch_v4"

// MaxMillis is the largest millisecond count that still fits a time.Duration.
const MaxMillis = math.MaxInt64 / int64(time.Millisecond)

// ErrMalformed marks stored content that parsed but does not describe a valid document.
var ErrMalformed = errors.New("malformed document")

// LapRecord is the stored form of a lap. Times are milliseconds.
type LapRecord struct {
	ElapsedMs           int64  `json:"elapsedMs"`
	FormattedText       string `json:"formattedText"`
	RecordedAtWallClock int64  `json:"recordedAtWallClock"`
}

// Document is the full persisted stopwatch state. Laps are newest-first.
// SegmentStartedAtWallClock is only set while running.
type Document struct {
	Running                   bool        `json:"running"`
	ElapsedBeforeMs           int64       `json:"elapsedBeforeMs"`
	SegmentStartedAtWallClock int64       `json:"segmentStartedAtWallClock,omitempty"`
	Laps                      []LapRecord `json:"laps"`
}

// DefaultDocument is a stopped stopwatch with no elapsed time and no laps.
func DefaultDocument() Document {
	return Document{Laps: []LapRecord{}}
}

// Validate rejects documents no sequence of operations could have produced.
func (d Document) Validate() error {
	if !inRange(d.ElapsedBeforeMs) {
		return fmt.Errorf("%w: elapsedBeforeMs %d out of range", ErrMalformed, d.ElapsedBeforeMs)
	}
	if !inRange(d.SegmentStartedAtWallClock) {
		return fmt.Errorf("%w: segmentStartedAtWallClock %d out of range", ErrMalformed, d.SegmentStartedAtWallClock)
	}
	for i, lap := range d.Laps {
		if !inRange(lap.ElapsedMs) {
			return fmt.Errorf("%w: lap %d elapsedMs %d out of range", ErrMalformed, i, lap.ElapsedMs)
		}
	}
	return nil
}

func inRange(ms int64) bool {
	return ms >= 0 && ms <= MaxMillis
}

func (d Document) normalized() Document {
	if d.Laps == nil {
		d.Laps = []LapRecord{}
	}
	if !d.Running {
		d.SegmentStartedAtWallClock = 0
	}
	return d
}
