package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aschey/vortex/internal/mode"
	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	hintDelay     = 420 * time.Millisecond
	hintDuration  = 4200 * time.Millisecond
	flashDuration = 520 * time.Millisecond
	drawerHeight  = 8
	eventBuffer   = 16
)

type Options struct {
	RefreshInterval time.Duration
	ExportPath      string
	StoreName       string
	Copy            func(text string) error
	Logger          *zap.Logger
}

type (
	tickMsg       struct{ id int }
	flashEndMsg   struct{ id int }
	hintMsg       struct{ show bool }
	eventMsg      struct{ event stopwatch.Event }
	eventsDoneMsg struct{}
)

type Model struct {
	ctx     context.Context
	session *stopwatch.Session
	events  <-chan stopwatch.Event
	opts    Options
	logger  *zap.Logger

	mode *mode.Mode
	keys keyMap
	help help.Model
	list list.Model

	width        int
	tickID       int
	flashID      int
	flashing     bool
	drawerOpen   bool
	showHint     bool
	hintSeen     bool
	cancelChosen bool
	status       string
	quitting     bool
}

func New(ctx context.Context, session *stopwatch.Session, opts Options) Model {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = 33 * time.Millisecond
	}
	if opts.ExportPath == "" {
		opts.ExportPath = stopwatch.DefaultExportName
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	l := list.New(nil, lapDelegate{}, 40, drawerHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.SetShowPagination(true)
	l.SetShowTitle(true)
	l.Title = "Laps"
	l.Styles.PaginationStyle = paginationStyle

	m := Model{
		ctx:     ctx,
		session: session,
		events:  session.Subscribe(eventBuffer),
		opts:    opts,
		logger:  logger,
		mode:    mode.NewDefaultMode(),
		keys:    newKeyMap(),
		help:    help.New(),
		list:    l,
	}
	m.refreshLaps()
	m.syncKeys()
	return m
}

func Run(ctx context.Context, session *stopwatch.Session, opts Options) error {
	_, err := tea.NewProgram(New(ctx, session, opts), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.Tick(hintDelay, func(time.Time) tea.Msg { return hintMsg{show: true} }),
		tea.Tick(hintDuration, func(time.Time) tea.Msg { return hintMsg{show: false} }),
		waitForEvent(m.events),
	}
	if m.session.Running() {
		cmds = append(cmds, m.tick())
	}
	return tea.Batch(cmds...)
}

func waitForEvent(events <-chan stopwatch.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsDoneMsg{}
		}
		return eventMsg{event: event}
	}
}

func (m Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.opts.RefreshInterval, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if msg.id != m.tickID || !m.session.Running() {
			return m, nil
		}
		return m, m.tick()

	case flashEndMsg:
		if msg.id == m.flashID {
			m.flashing = false
		}
		return m, nil

	case hintMsg:
		if msg.show {
			m.showHint = !m.hintSeen
		} else {
			m.showHint = false
			m.hintSeen = true
		}
		return m, nil

	case eventMsg:
		cmd = m.handleEvent(msg.event)
		m.syncKeys()
		return m, tea.Batch(cmd, waitForEvent(m.events))

	case eventsDoneMsg:
		return m, nil

	case tea.KeyMsg:
		if m.mode.Current().Confirming() {
			cmd = m.updateConfirmDialog(msg)
		} else {
			cmd = m.updateNormal(msg)
		}
		m.syncKeys()
		return m, cmd

	default:
		return m, nil
	}
}

func (m *Model) handleEvent(event stopwatch.Event) tea.Cmd {
	switch event.Type {
	case stopwatch.EventStarted:
		m.tickID++
		return m.tick()
	case stopwatch.EventPaused:
		m.tickID++
	case stopwatch.EventReset:
		m.tickID++
		m.flashing = false
		m.refreshLaps()
	case stopwatch.EventLapRecorded:
		m.refreshLaps()
		m.drawerOpen = true
		m.flashing = true
		m.flashID++
		id := m.flashID
		return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashEndMsg{id: id} })
	case stopwatch.EventLapsCleared:
		m.refreshLaps()
	case stopwatch.EventPersistFailed:
		m.status = "State not saved."
		m.logger.Warn("tui state not persisted", zap.Error(event.Err))
	}
	return nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) tea.Cmd {
	if m.showHint {
		m.showHint = false
		m.hintSeen = true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.status = ""
		m.session.Toggle(m.ctx)

	case key.Matches(msg, m.keys.Lap):
		if !m.session.CanLap() {
			return nil
		}
		m.status = ""
		m.session.RecordLap(m.ctx)

	case key.Matches(msg, m.keys.Reset):
		if !m.session.HasProgress() {
			return nil
		}
		m.cancelChosen = false
		m.mode.Set(mode.ConfirmResetMode)

	case key.Matches(msg, m.keys.Clear):
		if m.session.Count() == 0 {
			return nil
		}
		m.cancelChosen = false
		m.mode.Set(mode.ConfirmClearMode)

	case key.Matches(msg, m.keys.Copy):
		m.status = m.copyLaps()

	case key.Matches(msg, m.keys.Export):
		m.status = m.exportLaps()

	case key.Matches(msg, m.keys.Drawer):
		m.drawerOpen = !m.drawerOpen

	default:
		if m.drawerOpen {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *Model) updateConfirmDialog(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, confirmKeys.Switch):
		m.cancelChosen = !m.cancelChosen
	case key.Matches(msg, confirmKeys.Decline):
		m.mode.Reset()
	case key.Matches(msg, confirmKeys.Accept):
		m.confirm()
	case key.Matches(msg, confirmKeys.Submit):
		if m.cancelChosen {
			m.mode.Reset()
		} else {
			m.confirm()
		}
	}
	return nil
}

func (m *Model) confirm() {
	confirming := m.mode.Current()
	m.mode.Reset()
	switch confirming {
	case mode.ConfirmResetMode:
		m.session.Reset(m.ctx)
		m.status = "Stopwatch reset."
	case mode.ConfirmClearMode:
		m.session.ClearLaps(m.ctx)
		m.status = "Laps cleared."
	}
}

func (m *Model) copyLaps() string {
	text, err := stopwatch.CopyText(m.session.Laps(true))
	if errors.Is(err, stopwatch.ErrNoLaps) {
		return "No laps to copy."
	}
	if err := m.opts.Copy(text); err != nil {
		m.logger.Warn("copy failed", zap.Error(err))
		return "Copy failed."
	}
	return "Copied to clipboard."
}

func (m *Model) exportLaps() string {
	err := stopwatch.ExportFile(m.opts.ExportPath, m.session.Laps(true))
	switch {
	case errors.Is(err, stopwatch.ErrNoLaps):
		return "No laps to export."
	case err != nil:
		m.logger.Warn("export failed", zap.String("path", m.opts.ExportPath), zap.Error(err))
		return "Export failed."
	default:
		return fmt.Sprintf("Exported to %s.", m.opts.ExportPath)
	}
}

func (m *Model) refreshLaps() {
	items := lapItems(m.session.Laps(true))
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(len(items) - 1)
	}
}

func (m *Model) syncKeys() {
	m.keys.Lap.SetEnabled(m.session.CanLap())
	m.keys.Reset.SetEnabled(m.session.HasProgress())
	m.keys.Clear.SetEnabled(m.session.Count() > 0)
}
