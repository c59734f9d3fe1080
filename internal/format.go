package internal

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	subtextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func addColor(replaceStr string, searchStr string, style lipgloss.Style) string {
	if searchStr == "" {
		return replaceStr
	}
	return strings.ReplaceAll(replaceStr, searchStr, style.Render(searchStr))
}

func FormatHelp(c *cobra.Command) {
	fmt.Fprintf(c.OutOrStdout(), "%s\n\n", c.Long)
	_ = c.Usage()
}

// FormatUsage renders usageFunc's output into a buffer and writes it back
// with headings and flag descriptions colored.
func FormatUsage(c *cobra.Command, usageFunc func(c *cobra.Command) error, exampleText string) error {
	out := c.OutOrStdout()
	var buf bytes.Buffer
	c.SetOut(&buf)
	err := usageFunc(c)
	c.SetOut(out)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, colorUsage(c, buf.String(), exampleText))
	return err
}

func colorUsage(c *cobra.Command, usage string, exampleText string) string {
	outStr := usage
	outStr = addColor(outStr, "Usage:", titleStyle)
	outStr = addColor(outStr, "Available Commands:", titleStyle)
	outStr = addColor(outStr, "Global Flags:", titleStyle)
	outStr = addColor(outStr, "Flags:", titleStyle)
	outStr = addColor(outStr, "[flags]", subtextStyle)
	outStr = addColor(outStr, "[command]", subtextStyle)
	if len(exampleText) > 0 {
		outStr = addColor(outStr, exampleText, defaultStyle)
	}

	c.Flags().VisitAll(func(flag *pflag.Flag) {
		outStr = addColor(outStr, flag.Usage, subtextStyle)
		outStr = addColor(outStr, flag.Value.Type(), defaultStyle)
	})

	for _, c := range c.Commands() {
		outStr = addColor(outStr, c.Short, subtextStyle)
	}

	return outStr
}

// PrettyPrintList numbers each entry from start.
func PrettyPrintList(list []string, start int, step int) string {
	formatted := []string{}
	for i := 0; i < len(list); i++ {
		formatted = append(
			formatted,
			fmt.Sprintf("%s %s", subtextStyle.Render(strconv.Itoa(start+i*step)+"."), list[i]),
		)
	}
	return strings.Join(formatted, "\n")
}

func FormatInfo(message string) string {
	return infoStyle.Render(message)
}

func FormatWarning(message string) string {
	return warnStyle.Render(message)
}
