package tui

import (
	"fmt"
	"strings"

	"contactlog/internal/client/form"
	"contactlog/internal/client/listview"

	"github.com/charmbracelet/lipgloss"
)

// CursorMarker is the prefix shown on the selected row.
const CursorMarker = "▸ "

// labelWidth is the column reserved for field labels in the form.
const labelWidth = 14

// linesPerRow is how many lines one contact takes in the list.
const linesPerRow = 2

func (m Model) viewList(height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Contacts (%d)", m.store.Len())))
	b.WriteString("\n")

	rows := listview.Rows(m.store)
	if len(rows) == 0 {
		if m.busy {
			b.WriteString(dimStyle.Render("loading..."))
		} else {
			b.WriteString(dimStyle.Render("no contacts yet, press n to add one"))
		}

		return b.String()
	}

	first, last := visibleRange(m.cursor, len(rows), (height-1)/linesPerRow)
	for i := first; i < last; i++ {
		row := rows[i]
		name := row.Name
		if name == "" {
			name = row.ID
		}
		line := "  " + name
		if i == m.cursor {
			line = selectedRow.Render(CursorMarker + name)
		}
		b.WriteString(line + "\n")
		b.WriteString(dimStyle.Render("  "+joinDetail(row)) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func joinDetail(row listview.Row) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{row.Email, row.Phone, row.Address} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, " · ")
}

// visibleRange keeps the cursor inside a window of size rows.
func visibleRange(cursor, n, size int) (first, last int) {
	if size < 1 {
		size = 1
	}
	if n <= size {
		return 0, n
	}
	first = cursor - size/2
	if first < 0 {
		first = 0
	}
	if first+size > n {
		first = n - size
	}

	return first, first + size
}

func (m Model) viewForm() string {
	var b strings.Builder

	title := "New contact"
	if m.controller.Mode() == form.ModeEdit {
		title = "Edit " + m.controller.Draft().ID
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	errs := m.controller.Errors()
	label := lipgloss.NewStyle().Width(labelWidth)
	for i, f := range m.fields {
		b.WriteString(label.Render(f.Label) + " " + m.inputs[i].View() + "\n")
		for _, e := range errs {
			if e.Field == f.Path {
				b.WriteString(strings.Repeat(" ", labelWidth+1) + fieldErrText.Render(e.Message) + "\n")

				break
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
