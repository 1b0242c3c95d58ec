package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cursorSelected = "▸ "
	cursorEmpty    = "  "
)

// LayoutItem is one entry of the layout launcher.
type LayoutItem struct {
	Name      string
	IsDefault bool
}

// FilterValue implements list.Item.
func (i LayoutItem) FilterValue() string {
	return i.Name
}

// LayoutDelegate renders layout names, one line each.
type LayoutDelegate struct {
	Theme *Theme
}

func (d LayoutDelegate) Height() int                             { return 1 }
func (d LayoutDelegate) Spacing() int                            { return 0 }
func (d LayoutDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d LayoutDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(LayoutItem)
	if !ok {
		return
	}
	t := d.Theme

	cursor := cursorEmpty
	nameStyle := t.ListItemTitle
	if index == m.Index() {
		cursor = cursorSelected
		nameStyle = nameStyle.Foreground(t.Accent).Bold(true)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Left,
		t.Highlight.Render(cursor),
		nameStyle.Render(li.Name),
	)
	if li.IsDefault {
		line += " " + t.MutedBadge("default")
	}
	_, _ = fmt.Fprint(w, line)
}

// NewLayoutList creates a themed list of layout names in the given order.
func NewLayoutList(theme *Theme, names []string, defaultName string, width, height int) list.Model {
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = LayoutItem{Name: n, IsDefault: n == defaultName}
	}

	l := list.New(items, LayoutDelegate{Theme: theme}, width, height)
	l.Title = "Layouts"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.Title
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)
	return l
}
