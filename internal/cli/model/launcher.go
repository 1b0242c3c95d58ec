// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbterm/internal/cli/styles"
)

// PreviewFunc renders the named layout for the side panel.
type PreviewFunc func(name string) (string, error)

// LauncherModel lets the user pick a stored layout.
type LauncherModel struct {
	list    list.Model
	help    help.Model
	keys    launcherKeyMap
	theme   *styles.Theme
	preview PreviewFunc

	previews map[string]string
	chosen   string
	quitting bool
	width    int
	height   int
}

type launcherKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func (k launcherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k launcherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Choose, k.Quit}}
}

func defaultLauncherKeyMap() launcherKeyMap {
	return launcherKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type previewMsg struct {
	name string
	text string
}

// NewLauncherModel lists names in the order given; callers sort them.
// preview may be nil.
func NewLauncherModel(theme *styles.Theme, names []string, defaultName string, preview PreviewFunc) LauncherModel {
	const (
		initialWidth  = 80
		initialHeight = 20
	)
	return LauncherModel{
		list:     styles.NewLayoutList(theme, names, defaultName, initialWidth/2, initialHeight),
		help:     help.New(),
		keys:     defaultLauncherKeyMap(),
		theme:    theme,
		preview:  preview,
		previews: make(map[string]string),
		width:    initialWidth,
		height:   initialHeight,
	}
}

// Chosen returns the selected layout, or "" when the user quit.
func (m LauncherModel) Chosen() string {
	return m.chosen
}

// Init implements tea.Model.
func (m LauncherModel) Init() tea.Cmd {
	return m.loadPreview()
}

// Update implements tea.Model.
func (m LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width/2, msg.Height-2)
		return m, nil

	case previewMsg:
		m.previews[msg.name] = msg.text
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Choose):
			if item, ok := m.list.SelectedItem().(styles.LayoutItem); ok {
				m.chosen = item.Name
				return m, tea.Quit
			}
			return m, nil
		}
	}

	before := m.selected()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.selected() != before {
		return m, tea.Batch(cmd, m.loadPreview())
	}
	return m, cmd
}

func (m LauncherModel) selected() string {
	if item, ok := m.list.SelectedItem().(styles.LayoutItem); ok {
		return item.Name
	}
	return ""
}

func (m LauncherModel) loadPreview() tea.Cmd {
	name := m.selected()
	if m.preview == nil || name == "" {
		return nil
	}
	if _, ok := m.previews[name]; ok {
		return nil
	}
	preview := m.preview
	theme := m.theme
	return func() tea.Msg {
		text, err := preview(name)
		if err != nil {
			text = theme.RenderError(err)
		}
		return previewMsg{name: name, text: text}
	}
}

// View implements tea.Model.
func (m LauncherModel) View() string {
	if m.quitting || m.chosen != "" {
		return ""
	}
	if len(m.list.Items()) == 0 {
		return m.theme.Subtle.Render("no stored layouts") + "\n\n" + m.help.View(m.keys)
	}

	body := m.list.View()
	if text, ok := m.previews[m.selected()]; ok {
		panel := m.theme.Box.Width(m.width / 2).Render(text)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}
	return body + "\n" + m.help.View(m.keys)
}
