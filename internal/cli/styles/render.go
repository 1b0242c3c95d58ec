package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconBullet  = "•"
)

// RenderError formats err for the terminal.
func (t *Theme) RenderError(err error) string {
	return t.ErrorStyle.Render(iconError+" ") + t.Normal.Render(err.Error())
}

// RenderSuccess formats a confirmation line.
func (t *Theme) RenderSuccess(format string, args ...any) string {
	return t.SuccessStyle.Render(iconSuccess+" ") + t.Normal.Render(fmt.Sprintf(format, args...))
}

// RenderWarnings lists warnings under a header. Nothing is rendered for none.
func (t *Theme) RenderWarnings(header string, warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := []string{t.WarningStyle.Render(iconWarning + " " + header)}
	for _, w := range warnings {
		lines = append(lines, "  "+t.Subtle.Render(iconBullet+" "+w))
	}
	return strings.Join(lines, "\n")
}

// RenderKeyValue aligns a label and a value.
func (t *Theme) RenderKeyValue(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		t.Subtle.Width(14).Render(label),
		t.Normal.Render(value),
	)
}

// RenderNameList renders names one per line, marking the default entry.
func (t *Theme) RenderNameList(title string, names []string, defaultName string) string {
	if len(names) == 0 {
		return t.Subtle.Render("no " + strings.ToLower(title))
	}
	lines := []string{t.BoxHeader.Render(title)}
	for _, n := range names {
		line := t.Normal.Render(iconBullet + " " + n)
		if n == defaultName {
			line += " " + t.AccentBadge("default")
		}
		lines = append(lines, line)
	}
	return t.Box.Render(strings.Join(lines, "\n"))
}
