package stopwatch

import (
	"testing"
	"time"

	"github.com/MarvinJWendt/testza"
)

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		input    time.Duration
		expected string
	}{
		{0, "00:00:00.000"},
		{61234 * time.Millisecond, "00:01:01.234"},
		{3661000 * time.Millisecond, "01:01:01.000"},
		{999 * time.Microsecond, "00:00:00.000"},
		{1999 * time.Microsecond, "00:00:00.001"},
		{99*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond, "99:59:59.999"},
		{100 * time.Hour, "100:00:00.000"},
		{1234*time.Hour + 5*time.Second, "1234:00:05.000"},
		{-5 * time.Second, "00:00:00.000"},
	}

	for _, tc := range testCases {
		testza.AssertEqual(t, tc.expected, FormatDuration(tc.input))
	}
}

func TestBadgeText(t *testing.T) {
	testza.AssertEqual(t, "01:01.234", BadgeText("00:01:01.234"))
	testza.AssertEqual(t, "01:01:01.0", BadgeText("01:01:01.000"))
	testza.AssertEqual(t, "100:00:00.", BadgeText("100:00:00.000"))
}
