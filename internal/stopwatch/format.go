package stopwatch

import (
	"fmt"
	"strings"
	"time"
)

const badgeWidth = 10

// FormatDuration renders d as HH:MM:SS.mmm. Hours are not wrapped, so the
// field widens past two digits for sessions of 100 hours or more.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := d.Milliseconds()
	hours := total / 3600000
	minutes := (total % 3600000) / 60000
	seconds := (total % 60000) / 1000
	millis := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// BadgeText shortens a formatted lap time for compact display: a zero hour
// field is dropped and the result is capped at ten characters.
func BadgeText(formatted string) string {
	text := strings.TrimPrefix(formatted, "00:")
	if len(text) > badgeWidth {
		text = text[:badgeWidth]
	}
	return text
}
