package cli

import "github.com/charmbracelet/lipgloss"

// Verdict styling for human-facing command output. JSON output paths bypass
// these entirely.
var (
	styleDanger = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleSafe   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// verdict styles msg by outcome: red for dangerous, green for safe.
func verdict(dangerous bool, msg string) string {
	if dangerous {
		return styleDanger.Render(msg)
	}
	return styleSafe.Render(msg)
}
