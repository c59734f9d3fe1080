package stopwatch

import (
	"context"
	"sync"
	"time"

	"github.com/aschey/vortex/internal/persist"
	"go.uber.org/zap"
)

// Gateway loads and saves the persisted document.
type Gateway interface {
	Load(ctx context.Context) (persist.Document, persist.Result)
	Save(ctx context.Context, doc persist.Document) persist.Result
}

// Phase is the presentation view of the engine state. Paused is a stopped
// engine with time on it.
type Phase string

const (
	PhaseStopped Phase = "Stopped"
	PhasePaused  Phase = "Paused"
	PhaseRunning Phase = "Running"
)

// Session owns the timer, the laps and their durable copy. Every mutating
// method writes the full document once from memory.
type Session struct {
	mu          sync.Mutex
	engine      *Engine
	laps        *LapStore
	gateway     Gateway
	clock       Clock
	logger      *zap.Logger
	segmentWall time.Time
	loadResult  persist.Result
	events      []chan Event
	closed      bool
}

// NewSession rehydrates state from gateway. Load failures leave a fresh
// stopwatch and are available from LoadResult.
func NewSession(ctx context.Context, gateway Gateway, clock Clock, logger *zap.Logger) *Session {
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	session := &Session{
		engine:  NewEngine(clock),
		laps:    NewLapStore(nil),
		gateway: gateway,
		clock:   clock,
		logger:  logger,
	}

	doc, result := gateway.Load(ctx)
	session.loadResult = result
	if result.Status == persist.StatusDefaulted && result.Err != nil {
		logger.Info("starting from defaults", zap.String("status", result.Status.String()), zap.Error(result.Err))
	}
	session.restore(doc)
	return session
}

func (s *Session) restore(doc persist.Document) {
	laps := make([]Lap, 0, len(doc.Laps))
	for _, record := range doc.Laps {
		elapsed := time.Duration(record.ElapsedMs) * time.Millisecond
		text := record.FormattedText
		if text == "" {
			text = FormatDuration(elapsed)
		}
		laps = append(laps, Lap{
			Elapsed:    elapsed,
			Text:       text,
			RecordedAt: time.UnixMilli(record.RecordedAtWallClock),
		})
	}
	s.laps = NewLapStore(laps)

	elapsedBefore := time.Duration(doc.ElapsedBeforeMs) * time.Millisecond
	if !doc.Running {
		s.engine.restore(false, elapsedBefore, 0)
		return
	}

	now := s.clock.Wall()
	var segmentAge time.Duration
	if doc.SegmentStartedAtWallClock > 0 {
		segmentAge = now.Sub(time.UnixMilli(doc.SegmentStartedAtWallClock))
		if segmentAge < 0 {
			segmentAge = 0
		}
	}
	s.engine.restore(true, elapsedBefore, segmentAge)
	s.segmentWall = now.Add(-segmentAge)
}

// LoadResult reports how the initial load went.
func (s *Session) LoadResult() persist.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadResult
}

// Start begins timing. Calling it while running does nothing.
func (s *Session) Start(ctx context.Context) persist.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.engine.Start() {
		return persist.Skipped()
	}
	s.segmentWall = s.clock.Wall()
	result := s.persistLocked(ctx)
	s.emitLocked(Event{Type: EventStarted, Elapsed: s.engine.CurrentElapsed()})
	return result
}

// Pause stops timing and keeps the elapsed time. Calling it while stopped
// does nothing.
func (s *Session) Pause(ctx context.Context) persist.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.engine.Pause() {
		return persist.Skipped()
	}
	s.segmentWall = time.Time{}
	result := s.persistLocked(ctx)
	s.emitLocked(Event{Type: EventPaused, Elapsed: s.engine.CurrentElapsed()})
	return result
}

// Toggle pauses a running stopwatch and starts a stopped one.
func (s *Session) Toggle(ctx context.Context) persist.Result {
	if s.Running() {
		return s.Pause(ctx)
	}
	return s.Start(ctx)
}

// Reset stops the stopwatch, zeroes it and clears every lap.
func (s *Session) Reset(ctx context.Context) persist.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
	s.laps.Clear()
	s.segmentWall = time.Time{}
	result := s.persistLocked(ctx)
	s.emitLocked(Event{Type: EventReset})
	return result
}

// RecordLap stores the current elapsed time as the newest lap.
func (s *Session) RecordLap(ctx context.Context) (Lap, persist.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recordedAt := time.UnixMilli(s.clock.Wall().UnixMilli())
	lap := s.laps.Record(s.engine.CurrentElapsed(), recordedAt)
	result := s.persistLocked(ctx)
	s.emitLocked(Event{Type: EventLapRecorded, Elapsed: lap.Elapsed, Lap: lap})
	return lap, result
}

// ClearLaps removes every lap and keeps the timer as it is.
func (s *Session) ClearLaps(ctx context.Context) persist.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.laps.Clear()
	result := s.persistLocked(ctx)
	s.emitLocked(Event{Type: EventLapsCleared, Elapsed: s.engine.CurrentElapsed()})
	return result
}

func (s *Session) CurrentElapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CurrentElapsed()
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Running()
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.engine.Running():
		return PhaseRunning
	case s.engine.ElapsedBefore() > 0:
		return PhasePaused
	default:
		return PhaseStopped
	}
}

func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.laps.Count()
}

// Laps returns a copy of the laps, oldest-first when ascending.
func (s *Session) Laps(ascending bool) []Lap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.laps.ExportOrdered(ascending)
}

func (s *Session) LatestLap() (Lap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.laps.Latest()
}

// CanLap mirrors the lap control: available while running or once there is
// anything to lap against.
func (s *Session) CanLap() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Running() || s.engine.ElapsedBefore() > 0 || s.laps.Count() > 0
}

// HasProgress reports whether a reset would discard anything.
func (s *Session) HasProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Running() || s.engine.CurrentElapsed() > 0 || s.laps.Count() > 0
}

// Document builds the persisted form of the current state.
func (s *Session) Document() persist.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documentLocked()
}

// Subscribe registers an observer channel. Events are dropped when the
// channel is full.
func (s *Session) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.events = append(s.events, ch)
	return ch
}

// Close closes every subscriber channel.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, ch := range s.events {
		close(ch)
	}
	s.events = nil
}

func (s *Session) documentLocked() persist.Document {
	records := make([]persist.LapRecord, 0, s.laps.Count())
	for _, lap := range s.laps.ExportOrdered(false) {
		records = append(records, persist.LapRecord{
			ElapsedMs:           lap.Elapsed.Milliseconds(),
			FormattedText:       lap.Text,
			RecordedAtWallClock: lap.RecordedAt.UnixMilli(),
		})
	}
	doc := persist.Document{
		Running:         s.engine.Running(),
		ElapsedBeforeMs: s.engine.ElapsedBefore().Milliseconds(),
		Laps:            records,
	}
	if doc.Running && !s.segmentWall.IsZero() {
		doc.SegmentStartedAtWallClock = s.segmentWall.UnixMilli()
	}
	return doc
}

func (s *Session) persistLocked(ctx context.Context) persist.Result {
	result := s.gateway.Save(ctx, s.documentLocked())
	if !result.OK() {
		s.logger.Warn("state not persisted", zap.String("status", result.Status.String()), zap.Error(result.Err))
		s.emitLocked(Event{Type: EventPersistFailed, Err: result.Err})
	}
	return result
}

func (s *Session) emitLocked(event Event) {
	if event.At.IsZero() {
		event.At = s.clock.Wall()
	}
	for _, ch := range s.events {
		select {
		case ch <- event:
		default:
		}
	}
}
