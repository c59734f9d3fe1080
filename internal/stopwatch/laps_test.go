package stopwatch

import (
	"testing"
	"time"

	"github.com/MarvinJWendt/testza"
)

func elapsedOf(laps []Lap) []time.Duration {
	out := []time.Duration{}
	for _, lap := range laps {
		out = append(out, lap.Elapsed)
	}
	return out
}

func TestLapStoreNewestFirst(t *testing.T) {
	store := NewLapStore(nil)
	at := time.UnixMilli(1700000000000)

	store.Record(1*time.Second, at)
	store.Record(2*time.Second, at)
	third := store.Record(3*time.Second, at)

	testza.AssertEqual(t, "00:00:03.000", third.Text)
	testza.AssertEqual(t, 3, store.Count())
	testza.AssertEqual(t, []time.Duration{3 * time.Second, 2 * time.Second, time.Second}, elapsedOf(store.ExportOrdered(false)))
	testza.AssertEqual(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, elapsedOf(store.ExportOrdered(true)))

	latest, ok := store.Latest()
	testza.AssertTrue(t, ok)
	testza.AssertEqual(t, third, latest)
}

func TestLapStoreExportDoesNotAlias(t *testing.T) {
	store := NewLapStore(nil)
	store.Record(time.Second, time.Time{})
	store.Record(2*time.Second, time.Time{})

	exported := store.ExportOrdered(false)
	exported[0].Text = "changed"

	latest, _ := store.Latest()
	testza.AssertEqual(t, "00:00:02.000", latest.Text)
}

func TestLapStoreClear(t *testing.T) {
	store := NewLapStore(nil)
	store.Record(time.Second, time.Time{})

	store.Clear()

	testza.AssertEqual(t, 0, store.Count())
	testza.AssertEqual(t, 0, len(store.ExportOrdered(true)))
	_, ok := store.Latest()
	testza.AssertFalse(t, ok)
}
