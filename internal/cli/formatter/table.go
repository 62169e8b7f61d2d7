package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the spacing between table columns.
const colGap = 2

// Table is an aligned table with a header separator line. Widths are
// measured on visible text so styled cells line up.
type Table struct {
	Headers []string
	Rows    [][]string
	// RightAlign holds the indexes of numeric columns.
	RightAlign map[int]bool
}

// RenderTable renders a left-aligned table.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	headers := make([]string, cols)
	for i, h := range t.Headers {
		headers[i] = StyleHeader.Render(h)
	}
	t.writeRow(&b, headers, widths)

	seps := make([]string, cols)
	for i, w := range widths {
		seps[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	t.writeRow(&b, seps, widths)

	for _, row := range t.Rows {
		t.writeRow(&b, row, widths)
	}
	return b.String()
}

func (t Table) writeRow(b *strings.Builder, cells []string, widths []int) {
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := widths[i] - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		last := i == len(widths)-1
		switch {
		case t.RightAlign[i]:
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		case last:
			b.WriteString(cell)
		default:
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
		if !last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
