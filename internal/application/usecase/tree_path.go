package usecase

import "github.com/bnema/dumbterm/internal/domain/entity"

// Mutators never modify a node that is reachable from the previous root.
// They copy every container on the path from the root down to the change
// and share everything else.

// withChild returns a shallow copy of parent where old is replaced by repl.
// For a TabGroup a nil repl removes the page.
func withChild(parent, old, repl entity.Node) entity.Node {
	switch p := parent.(type) {
	case *entity.Split:
		c := *p
		if c.First == old {
			c.First = repl
		} else if c.Second == old {
			c.Second = repl
		}
		return &c
	case *entity.TabGroup:
		c := copyTabGroup(p)
		for i, child := range c.Children {
			if child != old {
				continue
			}
			if repl == nil {
				removePage(c, i)
			} else {
				c.Children[i] = repl
			}
			break
		}
		return c
	default:
		return parent
	}
}

// rebuild replaces path[depth] with repl and returns the new root.
func rebuild(path []entity.Node, depth int, repl entity.Node) entity.Node {
	for i := depth - 1; i >= 0; i-- {
		repl = withChild(path[i], path[i+1], repl)
	}
	return repl
}

func copyTabGroup(g *entity.TabGroup) *entity.TabGroup {
	return &entity.TabGroup{
		Children:    append([]entity.Node(nil), g.Children...),
		Labels:      append([]string(nil), g.Labels...),
		ActiveIndex: g.ActiveIndex,
	}
}

// removePage drops page i. The visible page stays visible when another page
// is removed; removing the visible page selects min(active, len-1).
func removePage(g *entity.TabGroup, i int) {
	g.Children = append(g.Children[:i], g.Children[i+1:]...)
	if i < len(g.Labels) {
		g.Labels = append(g.Labels[:i], g.Labels[i+1:]...)
	}
	if i < g.ActiveIndex {
		g.ActiveIndex--
	}
	if g.ActiveIndex > len(g.Children)-1 {
		g.ActiveIndex = len(g.Children) - 1
	}
	if g.ActiveIndex < 0 {
		g.ActiveIndex = 0
	}
}

// nearestTabGroup returns the deepest TabGroup on the path and its depth.
func nearestTabGroup(path []entity.Node) (*entity.TabGroup, int) {
	for i := len(path) - 1; i >= 0; i-- {
		if g, ok := path[i].(*entity.TabGroup); ok {
			return g, i
		}
	}
	return nil, -1
}

// outermostTabGroup returns the TabGroup closest to the root on the path.
func outermostTabGroup(path []entity.Node) (*entity.TabGroup, int) {
	for i, n := range path {
		if g, ok := n.(*entity.TabGroup); ok {
			return g, i
		}
	}
	return nil, -1
}

// entryLeaf picks the leaf focus lands on when entering a subtree: the first
// leaf in tree order, following the visible page of every TabGroup.
func entryLeaf(n entity.Node) *entity.Leaf {
	switch v := n.(type) {
	case *entity.Leaf:
		return v
	case *entity.Split:
		return entryLeaf(v.First)
	case *entity.TabGroup:
		if page := v.ActivePage(); page != nil {
			return entryLeaf(page)
		}
		if len(v.Children) > 0 {
			return entryLeaf(v.Children[0])
		}
	}
	return nil
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
