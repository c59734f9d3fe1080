package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MarvinJWendt/testza"
	"github.com/aschey/vortex/internal/mode"
	"github.com/aschey/vortex/internal/persist"
	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/aschey/vortex/test"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type testModel struct {
	model   Model
	session *stopwatch.Session
	clock   *test.ManualClock
	copied  []string
}

func newTestModel(t *testing.T, exportPath string) *testModel {
	t.Helper()
	clock := test.NewManualClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	gateway := persist.NewGateway(persist.NewMemoryKV(), persist.DefaultKey, nil)
	session := stopwatch.NewSession(context.Background(), gateway, clock, nil)
	t.Cleanup(session.Close)

	tm := &testModel{session: session, clock: clock}
	tm.model = New(context.Background(), session, Options{
		ExportPath: exportPath,
		StoreName:  "memory",
		Copy: func(text string) error {
			tm.copied = append(tm.copied, text)
			return nil
		},
	})
	return tm
}

// send feeds msgs through Update and delivers any session events the way
// the running program would.
func (tm *testModel) send(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = tm.model.Update(msg)
		tm.model = next.(Model)
		tm.drainEvents()
	}
	return cmd
}

func (tm *testModel) drainEvents() {
	for {
		select {
		case event, ok := <-tm.model.events:
			if !ok {
				return
			}
			next, _ := tm.model.Update(eventMsg{event: event})
			tm.model = next.(Model)
		default:
			return
		}
	}
}

func TestSpaceTogglesTimer(t *testing.T) {
	tm := newTestModel(t, "")
	startTick := tm.model.tickID

	tm.send(spaceKey)
	testza.AssertTrue(t, tm.session.Running())
	testza.AssertEqual(t, startTick+1, tm.model.tickID)

	tm.clock.Advance(1500 * time.Millisecond)
	testza.AssertContains(t, tm.model.View(), "00:00:01.500")
	testza.AssertContains(t, tm.model.View(), "Running")

	tm.send(spaceKey)
	testza.AssertFalse(t, tm.session.Running())
	testza.AssertEqual(t, stopwatch.PhasePaused, tm.session.Phase())
	testza.AssertContains(t, tm.model.View(), "Paused")
}

func TestStaleTickIsDropped(t *testing.T) {
	tm := newTestModel(t, "")
	tm.send(spaceKey)

	testza.AssertTrue(t, tm.send(tickMsg{id: tm.model.tickID - 1}) == nil)
	testza.AssertTrue(t, tm.send(tickMsg{id: tm.model.tickID}) != nil)

	tm.send(spaceKey)
	testza.AssertTrue(t, tm.send(tickMsg{id: tm.model.tickID}) == nil)
}

func TestLapIgnoredBeforeAnyProgress(t *testing.T) {
	tm := newTestModel(t, "")

	tm.send(enterKey, runeKey('l'))

	testza.AssertEqual(t, 0, tm.session.Count())
	testza.AssertFalse(t, tm.model.drawerOpen)
}

func TestLapOpensDrawerAndFlashes(t *testing.T) {
	tm := newTestModel(t, "")
	tm.send(spaceKey)
	tm.clock.Advance(1500 * time.Millisecond)

	tm.send(enterKey)

	testza.AssertEqual(t, 1, tm.session.Count())
	testza.AssertTrue(t, tm.model.drawerOpen)
	testza.AssertTrue(t, tm.model.flashing)
	testza.AssertContains(t, tm.model.View(), "Lap 1")

	tm.send(flashEndMsg{id: tm.model.flashID - 1})
	testza.AssertTrue(t, tm.model.flashing)
	tm.send(flashEndMsg{id: tm.model.flashID})
	testza.AssertFalse(t, tm.model.flashing)
}

func TestNewestLapSelectedAtBottom(t *testing.T) {
	tm := newTestModel(t, "")
	tm.send(spaceKey)
	for i := 0; i < 3; i++ {
		tm.clock.Advance(time.Second)
		tm.send(runeKey('l'))
	}

	items := tm.model.list.Items()
	testza.AssertEqual(t, 3, len(items))
	testza.AssertEqual(t, 2, tm.model.list.Index())
	testza.AssertEqual(t, 3, items[2].(lapItem).number)
	testza.AssertEqual(t, "00:00:03.000", items[2].(lapItem).lap.Text)
}

func TestResetNeedsConfirmation(t *testing.T) {
	tm := newTestModel(t, "")
	tm.send(spaceKey)
	tm.clock.Advance(time.Second)
	tm.send(enterKey)

	tm.send(runeKey('r'))
	testza.AssertEqual(t, mode.ConfirmResetMode, tm.model.mode.Current())
	testza.AssertContains(t, tm.model.View(), "Reset the stopwatch")

	tm.send(runeKey('n'))
	testza.AssertEqual(t, mode.NormalMode, tm.model.mode.Current())
	testza.AssertEqual(t, 1, tm.session.Count())

	tm.send(runeKey('r'), enterKey)
	testza.AssertEqual(t, mode.NormalMode, tm.model.mode.Current())
	testza.AssertEqual(t, 0, tm.session.Count())
	testza.AssertEqual(t, time.Duration(0), tm.session.CurrentElapsed())
	testza.AssertEqual(t, stopwatch.PhaseStopped, tm.session.Phase())
	testza.AssertEqual(t, 0, len(tm.model.list.Items()))
}

func TestResetAvailableRightAfterStart(t *testing.T) {
	tm := newTestModel(t, "")
	tm.send(spaceKey)

	tm.send(runeKey('r'))
	testza.AssertEqual(t, mode.ConfirmResetMode, tm.model.mode.Current())

	tm.send(runeKey('y'))
	testza.AssertEqual(t, mode.NormalMode, tm.model.mode.Current())
	testza.AssertEqual(t, stopwatch.PhaseStopped, tm.session.Phase())
	testza.AssertFalse(t, tm.session.Running())
}

func TestResetIgnoredWithoutProgress(t *testing.T) {
	tm := newTestModel(t, "")

	tm.send(runeKey('r'))

	testza.AssertEqual(t, mode.NormalMode, tm.model.mode.Current())
}

func TestClearCancelKeepsLaps(t *testing.T) {
	tm := newTestModel(t, "")
	tm.send(spaceKey)
	tm.clock.Advance(time.Second)
	tm.send(enterKey)

	tm.send(runeKey('c'), tabKey, enterKey)
	testza.AssertEqual(t, 1, tm.session.Count())
	testza.AssertEqual(t, mode.NormalMode, tm.model.mode.Current())

	tm.send(runeKey('c'), runeKey('y'))
	testza.AssertEqual(t, 0, tm.session.Count())
	testza.AssertTrue(t, tm.session.Running())
}

func TestCopyLaps(t *testing.T) {
	tm := newTestModel(t, "")

	tm.send(runeKey('y'))
	testza.AssertEqual(t, "No laps to copy.", tm.model.status)
	testza.AssertEqual(t, 0, len(tm.copied))

	tm.send(spaceKey)
	tm.clock.Advance(1500 * time.Millisecond)
	tm.send(enterKey)
	tm.clock.Advance(time.Second)
	tm.send(enterKey, runeKey('y'))

	testza.AssertEqual(t, []string{"1. 00:00:01.500\n2. 00:00:02.500"}, tm.copied)
	testza.AssertEqual(t, "Copied to clipboard.", tm.model.status)
}

func TestCopyFailure(t *testing.T) {
	tm := newTestModel(t, "")
	tm.model.opts.Copy = func(string) error { return errors.New("no display") }
	tm.send(spaceKey)
	tm.clock.Advance(time.Second)

	tm.send(enterKey, runeKey('y'))

	testza.AssertEqual(t, "Copy failed.", tm.model.status)
}

func TestExportLaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), stopwatch.DefaultExportName)
	tm := newTestModel(t, path)

	tm.send(runeKey('e'))
	testza.AssertEqual(t, "No laps to export.", tm.model.status)
	_, err := os.Stat(path)
	testza.AssertTrue(t, os.IsNotExist(err))

	tm.send(spaceKey)
	tm.clock.Advance(time.Second)
	tm.send(enterKey, runeKey('e'))

	written, err := os.ReadFile(path)
	testza.AssertNoError(t, err)
	testza.AssertTrue(t, strings.HasPrefix(string(written), stopwatch.CSVHeader+"\n1,\"00:00:01.000\","))
	testza.AssertEqual(t, "Exported to "+path+".", tm.model.status)
}

func TestHintShownOnce(t *testing.T) {
	tm := newTestModel(t, "")
	testza.AssertFalse(t, strings.Contains(tm.model.View(), hintText))

	tm.send(hintMsg{show: true})
	testza.AssertContains(t, tm.model.View(), hintText)

	tm.send(hintMsg{show: false})
	testza.AssertFalse(t, strings.Contains(tm.model.View(), hintText))

	tm.send(hintMsg{show: true})
	testza.AssertFalse(t, strings.Contains(tm.model.View(), hintText))
}

func TestDrawerToggle(t *testing.T) {
	tm := newTestModel(t, "")

	tm.send(runeKey('d'))
	testza.AssertContains(t, tm.model.View(), "No laps yet.")
	tm.send(runeKey('d'))
	testza.AssertFalse(t, tm.model.drawerOpen)
}

func TestQuit(t *testing.T) {
	tm := newTestModel(t, "")

	cmd := tm.send(runeKey('q'))

	testza.AssertTrue(t, cmd != nil)
	testza.AssertTrue(t, tm.model.quitting)
}

func testRenderItem(t *testing.T, index int, selected int, expected string) {
	laps := []stopwatch.Lap{
		{Elapsed: time.Second, Text: "00:00:01.000"},
		{Elapsed: 2 * time.Second, Text: "00:00:02.000"},
	}
	items := lapItems(laps)

	d := lapDelegate{}
	l := list.New(items, d, 0, 0)
	l.Select(selected)

	var buf bytes.Buffer
	d.Render(&buf, l, index, items[index])

	testza.AssertEqual(t, expected, buf.String())
}

func TestRenderSelectedLap(t *testing.T) {
	expected := selectedItemStyle.Render("▶ " + lapLabelStyle.Render("Lap 2") + "  00:00:02.000")
	testRenderItem(t, 1, 1, expected)
}

func TestRenderUnselectedLap(t *testing.T) {
	expected := itemStyle.Render(lapLabelStyle.Render("Lap 1") + "  00:00:01.000")
	testRenderItem(t, 0, 1, expected)
}
