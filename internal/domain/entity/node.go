// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "fmt"

// LeafID uniquely identifies a leaf within a window's tree.
type LeafID string

// Orientation indicates how a split arranges its two children.
type Orientation int

const (
	OrientationHorizontal Orientation = iota // Side by side (left/right)
	OrientationVertical                      // Stacked (top/bottom)
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// NodeKind discriminates the Node variants.
type NodeKind int

const (
	KindLeaf NodeKind = iota
	KindSplit
	KindTabGroup
)

func (k NodeKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindSplit:
		return "split"
	case KindTabGroup:
		return "tabgroup"
	default:
		return "unknown"
	}
}

// DefaultSplitRatio is the ratio of every freshly created split.
const DefaultSplitRatio = 0.5

// Node is a node of a window's arrangement tree.
// It is implemented by *Leaf, *Split and *TabGroup only.
// A nil Node is the empty tree.
type Node interface {
	Kind() NodeKind
	sealed()
}

// Leaf wraps exactly one terminal session.
// The session handle itself is owned by the window coordinator, keyed by ID.
type Leaf struct {
	ID        LeafID
	Title     string
	Profile   string
	Command   string
	Directory string
}

// Split arranges two children side by side or stacked.
// Ratio is the fractional size of First and stays within (0,1).
type Split struct {
	Orientation Orientation
	First       Node
	Second      Node
	Ratio       float64
}

// TabGroup is an ordered list of pages, one of them visible.
type TabGroup struct {
	Children    []Node
	Labels      []string
	ActiveIndex int
}

func (*Leaf) Kind() NodeKind     { return KindLeaf }
func (*Split) Kind() NodeKind    { return KindSplit }
func (*TabGroup) Kind() NodeKind { return KindTabGroup }

func (*Leaf) sealed()     {}
func (*Split) sealed()    {}
func (*TabGroup) sealed() {}

// NewLeaf creates a leaf with the given id.
func NewLeaf(id LeafID) *Leaf {
	return &Leaf{ID: id}
}

// Children returns the split's two children in tree order.
func (s *Split) Children() []Node {
	return []Node{s.First, s.Second}
}

// ActivePage returns the visible page, or nil for an empty group.
func (g *TabGroup) ActivePage() Node {
	if g.ActiveIndex >= 0 && g.ActiveIndex < len(g.Children) {
		return g.Children[g.ActiveIndex]
	}
	return nil
}

// Label returns the label of page i, or an empty string.
func (g *TabGroup) Label(i int) string {
	if i >= 0 && i < len(g.Labels) {
		return g.Labels[i]
	}
	return ""
}

// PageOf returns the index of the page whose subtree contains id, or -1.
func (g *TabGroup) PageOf(id LeafID) int {
	for i, child := range g.Children {
		if Contains(child, id) {
			return i
		}
	}
	return -1
}

// Walk traverses the tree in tree order (Split first then second, TabGroup
// pages in order) calling fn for each node. Returns early if fn returns false.
func Walk(n Node, fn func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	switch v := n.(type) {
	case *Split:
		if !Walk(v.First, fn) {
			return false
		}
		return Walk(v.Second, fn)
	case *TabGroup:
		for _, child := range v.Children {
			if !Walk(child, fn) {
				return false
			}
		}
	}
	return true
}

// Leaves returns every leaf of the tree in tree order.
func Leaves(n Node) []*Leaf {
	var leaves []*Leaf
	Walk(n, func(node Node) bool {
		if leaf, ok := node.(*Leaf); ok {
			leaves = append(leaves, leaf)
		}
		return true
	})
	return leaves
}

// LeafIDs returns the ids of every leaf in tree order.
func LeafIDs(n Node) []LeafID {
	leaves := Leaves(n)
	ids := make([]LeafID, 0, len(leaves))
	for _, leaf := range leaves {
		ids = append(ids, leaf.ID)
	}
	return ids
}

// LeafCount returns the number of leaves in the tree.
func LeafCount(n Node) int {
	count := 0
	Walk(n, func(node Node) bool {
		if _, ok := node.(*Leaf); ok {
			count++
		}
		return true
	})
	return count
}

// FindLeaf searches the tree for the leaf with the given id.
func FindLeaf(n Node, id LeafID) *Leaf {
	var found *Leaf
	Walk(n, func(node Node) bool {
		if leaf, ok := node.(*Leaf); ok && leaf.ID == id {
			found = leaf
			return false
		}
		return true
	})
	return found
}

// Contains reports whether the subtree holds the leaf.
func Contains(n Node, id LeafID) bool {
	return FindLeaf(n, id) != nil
}

// FirstLeaf returns the first leaf in tree order.
func FirstLeaf(n Node) *Leaf {
	var first *Leaf
	Walk(n, func(node Node) bool {
		if leaf, ok := node.(*Leaf); ok {
			first = leaf
			return false
		}
		return true
	})
	return first
}

// PathTo returns the chain of nodes from the root down to the leaf,
// both ends included. Returns nil if the leaf is absent.
func PathTo(root Node, id LeafID) []Node {
	switch v := root.(type) {
	case *Leaf:
		if v.ID == id {
			return []Node{v}
		}
	case *Split:
		for _, child := range v.Children() {
			if path := PathTo(child, id); path != nil {
				return append([]Node{v}, path...)
			}
		}
	case *TabGroup:
		for _, child := range v.Children {
			if path := PathTo(child, id); path != nil {
				return append([]Node{v}, path...)
			}
		}
	}
	return nil
}

// Clone returns a structural copy of the tree. Leaves are copied by value.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Leaf:
		c := *v
		return &c
	case *Split:
		return &Split{
			Orientation: v.Orientation,
			First:       Clone(v.First),
			Second:      Clone(v.Second),
			Ratio:       v.Ratio,
		}
	case *TabGroup:
		c := &TabGroup{
			Children:    make([]Node, len(v.Children)),
			Labels:      append([]string(nil), v.Labels...),
			ActiveIndex: v.ActiveIndex,
		}
		for i, child := range v.Children {
			c.Children[i] = Clone(child)
		}
		return c
	default:
		return nil
	}
}

// Validate checks the structural invariants of a tree.
// A nil tree is valid.
func Validate(root Node) error {
	seen := make(map[LeafID]struct{})
	return validateNode(root, seen, true)
}

func validateNode(n Node, seen map[LeafID]struct{}, isRoot bool) error {
	switch v := n.(type) {
	case nil:
		if isRoot {
			return nil
		}
		return fmt.Errorf("nil child node")
	case *Leaf:
		if v.ID == "" {
			return fmt.Errorf("leaf has empty id")
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("duplicate leaf id %s", v.ID)
		}
		seen[v.ID] = struct{}{}
		return nil
	case *Split:
		if v.First == nil || v.Second == nil {
			return fmt.Errorf("split must have exactly two children")
		}
		if v.Ratio <= 0 || v.Ratio >= 1 {
			return fmt.Errorf("split ratio %v out of (0,1)", v.Ratio)
		}
		if err := validateNode(v.First, seen, false); err != nil {
			return err
		}
		return validateNode(v.Second, seen, false)
	case *TabGroup:
		if len(v.Children) == 0 {
			return fmt.Errorf("tab group has no pages")
		}
		if len(v.Labels) != len(v.Children) {
			return fmt.Errorf("tab group has %d labels for %d pages", len(v.Labels), len(v.Children))
		}
		if v.ActiveIndex < 0 || v.ActiveIndex >= len(v.Children) {
			return fmt.Errorf("tab group active index %d out of range [0,%d)", v.ActiveIndex, len(v.Children))
		}
		for _, child := range v.Children {
			if err := validateNode(child, seen, false); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown node type %T", n)
	}
}
