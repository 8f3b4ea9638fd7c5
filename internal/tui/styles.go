package tui

import "github.com/charmbracelet/lipgloss"

// MinListWidth is the minimum character width for the list pane.
const MinListWidth = 36

//nolint:gochecknoglobals
var (
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	errorColor  = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	okColor     = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	dimStyle     = lipgloss.NewStyle().Foreground(dimColor)
	selectedRow  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	fieldErrText = lipgloss.NewStyle().Foreground(errorColor)
	errorNotice  = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	infoNotice   = lipgloss.NewStyle().Foreground(okColor)
)

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor)
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// PaneWidths splits the total width between list and form.
// The list gets half (minimum MinListWidth), the form gets the rest.
func PaneWidths(totalWidth int) (list, formWidth int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	list = totalWidth / 2
	if list < MinListWidth {
		list = MinListWidth
	}
	formWidth = totalWidth - list
	if formWidth < 0 {
		formWidth = 0
	}

	return list, formWidth
}
