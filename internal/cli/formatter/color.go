package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	styleTabActive   = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorHeader).Bold(true).Padding(0, 1)
	styleTabInactive = lipgloss.NewStyle().Foreground(ColorDim).Padding(0, 1)
)

// PercentStyle colors a subject percentage: red for the error state, dim
// when unset, otherwise by band.
func PercentStyle(p domain.Percentage) lipgloss.Style {
	switch p.State {
	case domain.PercentError:
		return StyleRed
	case domain.PercentUnset:
		return StyleDim
	}
	switch {
	case p.Value >= 60:
		return StyleGreen
	case p.Value >= 35:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Percent renders p with its style.
func Percent(p domain.Percentage) string {
	return PercentStyle(p).Render(p.String())
}

// StepTabs renders the step headers with active highlighted. Steps listed
// in flagged get a red marker.
func StepTabs(active domain.Step, flagged map[domain.Step]bool) string {
	tabs := make([]string, 0, len(domain.Steps))
	for _, s := range domain.Steps {
		label := fmt.Sprintf("F%d %s", int(s)+1, s.Title())
		if flagged[s] {
			label += " " + StyleRed.Render("●")
		}
		if s == active {
			tabs = append(tabs, styleTabActive.Render(label))
		} else {
			tabs = append(tabs, styleTabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// ErrorText renders a field validation message.
func ErrorText(msg string) string {
	return StyleRed.Render("✖ " + msg)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
