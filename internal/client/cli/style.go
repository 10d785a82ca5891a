package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(18)

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func title(w io.Writer, s string) {
	fmt.Fprintln(w, titleStyle.Render(s))
}

// field prints one aligned "label value" line.
func field(w io.Writer, label string, value any) {
	fmt.Fprintln(w, labelStyle.Render(label)+fmt.Sprint(value))
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, goodStyle.Render(fmt.Sprintf(format, args...)))
}

func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf(format, args...)))
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		warn(w, "Nothing here yet.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

// bar draws value as a fixed-width bar relative to max.
func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n == 0 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}
