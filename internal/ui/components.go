package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders a data table with headers and rows.
type Table struct {
	Headers []string
	Rows    [][]string
	Widths  []int // Column widths (0 = auto)
}

// Render renders the table. An empty Rows slice still renders the
// header and separator so callers can place a message underneath.
func (t Table) Render(s Styles) string {
	if len(t.Headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		if i < len(t.Widths) && t.Widths[i] > 0 {
			colWidths[i] = t.Widths[i]
		} else {
			colWidths[i] = lipgloss.Width(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				w := lipgloss.Width(cell)
				if w > colWidths[i] && (i >= len(t.Widths) || t.Widths[i] == 0) {
					colWidths[i] = w
				}
			}
		}
	}

	var b strings.Builder

	for i, h := range t.Headers {
		b.WriteString(s.SectionName.Render(padRight(h, colWidths[i])))
		if i < len(t.Headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	totalWidth := 0
	for i, w := range colWidths {
		totalWidth += w
		if i < len(colWidths)-1 {
			totalWidth += 2
		}
	}
	b.WriteString(s.Muted.Render(strings.Repeat("─", totalWidth)))

	for _, row := range t.Rows {
		b.WriteString("\n")
		for i := 0; i < len(t.Headers); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(padRight(cell, colWidths[i]))
			if i < len(t.Headers)-1 {
				b.WriteString("  ")
			}
		}
	}

	return b.String()
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
