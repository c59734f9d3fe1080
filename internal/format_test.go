package internal

import (
	"bytes"
	"testing"

	"github.com/MarvinJWendt/testza"
	"github.com/spf13/cobra"
)

func TestPrettyPrintList(t *testing.T) {
	out := PrettyPrintList([]string{"00:00:01.000", "00:00:02.000"}, 1, 1)
	testza.AssertContains(t, out, "1.")
	testza.AssertContains(t, out, "2. ")
	testza.AssertContains(t, out, "00:00:02.000")

	descending := PrettyPrintList([]string{"b", "a"}, 2, -1)
	testza.AssertContains(t, descending, "2.")
	testza.AssertContains(t, descending, "1.")
}

func TestFormatUsageWritesToCommandOutput(t *testing.T) {
	c := &cobra.Command{Use: "laps", Short: "Manage laps"}
	c.Flags().Bool("descending", false, "newest first")
	var out bytes.Buffer
	c.SetOut(&out)

	err := FormatUsage(c, func(c *cobra.Command) error {
		c.Println("Usage:\n  laps [flags]\n\nFlags:\n      --descending   newest first")
		return nil
	}, "")

	testza.AssertNoError(t, err)
	testza.AssertContains(t, out.String(), "Usage:")
	testza.AssertContains(t, out.String(), "newest first")
	testza.AssertEqual(t, &out, c.OutOrStdout())
}
