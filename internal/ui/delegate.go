package ui

import (
	"fmt"
	"io"

	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type lapItem struct {
	number int
	lap    stopwatch.Lap
}

func (i lapItem) FilterValue() string { return i.lap.Text }

type lapDelegate struct{}

func (d lapDelegate) Height() int                               { return 1 }
func (d lapDelegate) Spacing() int                              { return 0 }
func (d lapDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d lapDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(lapItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%s  %s", lapLabelStyle.Render(fmt.Sprintf("Lap %d", i.number)), i.lap.Text)
	fn := func(s string) string {
		return itemStyle.Render(s)
	}
	if index == m.Index() {
		fn = func(s string) string {
			return selectedItemStyle.Render("▶ " + s)
		}
	}

	fmt.Fprint(w, fn(str))
}

// lapItems numbers laps oldest-first so the newest is at the bottom.
func lapItems(ascending []stopwatch.Lap) []list.Item {
	items := make([]list.Item, 0, len(ascending))
	for i, lap := range ascending {
		items = append(items, lapItem{number: i + 1, lap: lap})
	}
	return items
}
