package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// printJSON renders a structured value as indented JSON on stdout. Map keys
// come out sorted, which keeps the output stable for scripting.
func (c *CLI) printJSON(v any) error {
	payload, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	fmt.Fprintln(c.stdout, string(payload))
	return nil
}

func (c *CLI) printSuccess(msg string) {
	fmt.Fprintln(c.stdout, successStyle.Render(msg))
}

// fail prints err to stderr with a styled prefix and passes it through so
// the caller can exit non-zero.
func (c *CLI) fail(err error) error {
	fmt.Fprintf(c.stderr, "%s %v\n", errorPrefixStyle.Render("ERROR:"), err)
	return err
}
