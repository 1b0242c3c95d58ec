package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

const shortIDLength = 8

// TreeOptions decorates a rendered arrangement tree.
type TreeOptions struct {
	Focused entity.LeafID
	Zoomed  entity.LeafID
	Groups  map[entity.LeafID]string
	States  map[entity.LeafID]entity.VisualState
}

// RenderTree draws root as an indented tree, one line per node.
func (t *Theme) RenderTree(root entity.Node, opts TreeOptions) string {
	if root == nil {
		return t.Subtle.Render("(empty window)")
	}
	return t.treeOf(root, opts).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(t.Subtle).
		String()
}

func (t *Theme) treeOf(n entity.Node, opts TreeOptions) *tree.Tree {
	switch n := n.(type) {
	case *entity.Leaf:
		return tree.Root(t.leafLabel(n, opts))
	case *entity.Split:
		label := fmt.Sprintf("%s split %s", n.Orientation, t.Subtle.Render(fmt.Sprintf("%.0f/%.0f", n.Ratio*100, (1-n.Ratio)*100)))
		return tree.Root(t.Subtitle.Render(label)).
			Child(t.treeOf(n.First, opts), t.treeOf(n.Second, opts))
	case *entity.TabGroup:
		root := tree.Root(t.Subtitle.Render(fmt.Sprintf("tabs (%d)", len(n.Children))))
		for i, page := range n.Children {
			title := fmt.Sprintf("tab %d", i+1)
			if label := n.Label(i); label != "" {
				title += ": " + label
			}
			style := t.Subtle
			if i == n.ActiveIndex {
				style = t.Highlight
				title += " *"
			}
			root.Child(tree.Root(style.Render(title)).Child(t.treeOf(page, opts)))
		}
		return root
	default:
		return tree.Root(t.ErrorStyle.Render("?"))
	}
}

func (t *Theme) leafLabel(l *entity.Leaf, opts TreeOptions) string {
	id := ShortID(string(l.ID))
	style := t.Normal
	marker := "○"
	if l.ID == opts.Focused {
		style = t.Highlight
		marker = "●"
	}
	switch opts.States[l.ID] {
	case entity.VisualTransmit:
		style = style.Foreground(t.Transmit)
	case entity.VisualReceive:
		style = style.Foreground(t.Receive)
	}

	parts := []string{style.Render(marker + " " + id)}
	if l.Title != "" {
		parts = append(parts, t.Normal.Render(l.Title))
	}
	if l.Profile != "" {
		parts = append(parts, t.MutedBadge(l.Profile))
	}
	if g := opts.Groups[l.ID]; g != "" {
		parts = append(parts, t.AccentBadge("group "+g))
	}
	if l.ID == opts.Zoomed {
		parts = append(parts, t.WarningStyle.Render("zoomed"))
	}
	if l.Directory != "" {
		parts = append(parts, t.Subtle.Render(l.Directory))
	}
	if l.Command != "" {
		parts = append(parts, t.Subtle.Render("$ "+l.Command))
	}
	return strings.Join(parts, " ")
}

// ShortID truncates an id for display.
func ShortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}
