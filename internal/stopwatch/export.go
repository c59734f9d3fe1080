package stopwatch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoLaps signals that an export or copy had nothing to work with.
var ErrNoLaps = errors.New("no laps")

// CSVHeader is the first line of every export.
const CSVHeader = "Index,Time,ISO Timestamp"

// DefaultExportName is the file name exports are written to by default.
const DefaultExportName = "vortex_laps.csv"

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// WriteCSV writes laps in the order given with 1-based indexes.
func WriteCSV(w io.Writer, laps []Lap) error {
	if len(laps) == 0 {
		return ErrNoLaps
	}
	rows := make([]string, 0, len(laps)+1)
	rows = append(rows, CSVHeader)
	for i, lap := range laps {
		rows = append(rows, fmt.Sprintf("%d,%s,%s", i+1, quoteField(lap.Text), formatISO(lap.RecordedAt)))
	}
	if _, err := io.WriteString(w, strings.Join(rows, "\n")); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// ExportFile writes laps as CSV to path. Nothing is created when there are
// no laps.
func ExportFile(path string, laps []Lap) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, laps); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// CopyText renders laps as numbered lines, one per lap.
func CopyText(laps []Lap) (string, error) {
	if len(laps) == 0 {
		return "", ErrNoLaps
	}
	lines := make([]string, 0, len(laps))
	for i, lap := range laps {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, lap.Text))
	}
	return strings.Join(lines, "\n"), nil
}

// quoteField always quotes and doubles embedded quotes.
func quoteField(text string) string {
	return `"` + strings.ReplaceAll(text, `"`, `""`) + `"`
}

func formatISO(t time.Time) string {
	return t.UTC().Format(isoMillis)
}
