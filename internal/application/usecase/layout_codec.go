package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

var ErrEmptyLayout = errors.New("layout has no root node")

// ProfileSet tells the codec which profiles exist.
// An empty Known list accepts every profile name. Names match without regard
// to case and resolve to the configured spelling.
type ProfileSet struct {
	Default string
	Known   []string
}

func (p ProfileSet) resolve(name string) (string, bool) {
	if name == "" {
		return p.Default, true
	}
	if len(p.Known) == 0 {
		return name, true
	}
	for _, known := range p.Known {
		if strings.EqualFold(known, name) {
			return known, true
		}
	}
	return p.Default, false
}

// Substitution records one repair made while decoding.
type Substitution struct {
	Path   string // Position of the node, e.g. root/1/0
	Reason string
}

// DecodeReport lists every repair of a single decode.
type DecodeReport struct {
	Substitutions []Substitution
}

// Empty reports whether the layout decoded without repairs.
func (r *DecodeReport) Empty() bool {
	return r == nil || len(r.Substitutions) == 0
}

func (r *DecodeReport) add(path, format string, args ...any) {
	r.Substitutions = append(r.Substitutions, Substitution{
		Path:   path,
		Reason: fmt.Sprintf(format, args...),
	})
}

// Strings renders the substitutions as "path: reason".
func (r *DecodeReport) Strings() []string {
	out := make([]string, 0, len(r.Substitutions))
	for _, s := range r.Substitutions {
		out = append(out, s.Path+": "+s.Reason)
	}
	return out
}

// DecodeResult is a window rebuilt from a layout description.
type DecodeResult struct {
	Window *entity.Window
	Groups map[entity.LeafID]string
	// IDs maps the uuids found in the description to the regenerated ids.
	IDs    map[string]entity.LeafID
	Report DecodeReport
}

// LayoutCodec converts arrangement trees to and from layout descriptions.
type LayoutCodec struct {
	idGenerator IDGenerator
	profiles    ProfileSet
}

// NewLayoutCodec creates a codec that regenerates leaf ids with idGenerator.
func NewLayoutCodec(idGenerator IDGenerator, profiles ProfileSet) *LayoutCodec {
	if idGenerator == nil {
		idGenerator = NewUUIDGenerator()
	}
	return &LayoutCodec{idGenerator: idGenerator, profiles: profiles}
}

// Encode describes a window and its group membership.
func (c *LayoutCodec) Encode(w *entity.Window, groups *entity.GroupRegistry) *entity.LayoutDescription {
	if w == nil {
		return nil
	}
	desc := &entity.LayoutDescription{
		Window: entity.WindowMeta{
			Title:          w.Title,
			Maximized:      w.Maximized,
			Fullscreen:     w.Fullscreen,
			LastActiveTerm: string(w.Focused),
		},
	}
	if w.Size != [2]int{} {
		desc.Window.Size = []int{w.Size[0], w.Size[1]}
	}
	if w.Position != [2]int{} {
		desc.Window.Position = []int{w.Position[0], w.Position[1]}
	}
	if w.Root != nil {
		desc.Root = c.encodeNode(w, groups, w.Root, 0)
	}
	return desc
}

func (c *LayoutCodec) encodeNode(w *entity.Window, groups *entity.GroupRegistry, n entity.Node, order int) *entity.LayoutNode {
	out := &entity.LayoutNode{Order: intPtr(order)}

	switch v := n.(type) {
	case *entity.Leaf:
		out.Type = entity.LayoutTypeTerminal
		out.Profile = v.Profile
		out.Command = v.Command
		out.Directory = v.Directory
		out.UUID = string(v.ID)
		out.Title = v.Title
		if groups != nil {
			if name := groups.GroupOf(v.ID); name != "" {
				out.Group = &name
			}
		}
	case *entity.Split:
		out.Type = entity.LayoutTypeHSplit
		if v.Orientation == entity.OrientationVertical {
			out.Type = entity.LayoutTypeVSplit
		}
		ratio := v.Ratio
		out.Ratio = &ratio
		out.Children = []*entity.LayoutNode{
			c.encodeNode(w, groups, v.First, 0),
			c.encodeNode(w, groups, v.Second, 1),
		}
	case *entity.TabGroup:
		out.Type = entity.LayoutTypeNotebook
		out.ActivePage = intPtr(v.ActiveIndex)
		out.Labels = append([]string(nil), v.Labels...)
		out.LastActiveTerm = make(entity.StringOrList, len(v.Children))
		for i, child := range v.Children {
			out.Children = append(out.Children, c.encodeNode(w, groups, child, i))
			if leaf := w.LastFocusedIn(child); leaf != nil {
				out.LastActiveTerm[i] = string(leaf.ID)
			}
		}
	}
	return out
}

type pendingPageFocus struct {
	page entity.Node
	uuid string
}

type decodeState struct {
	result  *DecodeResult
	pending []pendingPageFocus
}

// Decode rebuilds a window from a description. Malformed nodes are replaced
// by a default terminal and reported; only a missing root is an error.
// Leaf ids are regenerated and last_active_term references follow them.
func (c *LayoutCodec) Decode(ctx context.Context, desc *entity.LayoutDescription) (*DecodeResult, error) {
	log := logging.FromContext(ctx)

	if desc == nil || desc.Root == nil {
		return nil, ErrEmptyLayout
	}

	st := &decodeState{
		result: &DecodeResult{
			Groups: make(map[entity.LeafID]string),
			IDs:    make(map[string]entity.LeafID),
		},
	}
	root := c.decodeNode(st, desc.Root, "root")

	w := &entity.Window{
		ID:         entity.WindowID(c.idGenerator()),
		Title:      desc.Window.Title,
		Root:       root,
		Maximized:  desc.Window.Maximized,
		Fullscreen: desc.Window.Fullscreen,
	}
	for _, problem := range desc.Window.Malformed {
		st.result.Report.add("window", "%s, ignoring it", problem)
	}
	if len(desc.Window.Size) == 2 {
		w.Size = [2]int{desc.Window.Size[0], desc.Window.Size[1]}
	} else if len(desc.Window.Size) != 0 {
		st.result.Report.add("window", "size needs two values, got %d", len(desc.Window.Size))
	}
	if len(desc.Window.Position) == 2 {
		w.Position = [2]int{desc.Window.Position[0], desc.Window.Position[1]}
	} else if len(desc.Window.Position) != 0 {
		st.result.Report.add("window", "position needs two values, got %d", len(desc.Window.Position))
	}

	// Page focus first so the window level focus ends up most recent.
	for _, p := range st.pending {
		if id, ok := st.result.IDs[p.uuid]; ok && entity.Contains(p.page, id) {
			w.SetFocused(id)
		}
	}
	focused, ok := st.result.IDs[desc.Window.LastActiveTerm]
	if !ok {
		if desc.Window.LastActiveTerm != "" {
			st.result.Report.add("window", "last_active_term %q does not match any terminal", desc.Window.LastActiveTerm)
		}
		focused = entryLeaf(root).ID
	}
	w.SetFocused(focused)
	st.result.Window = w

	if !st.result.Report.Empty() {
		log.Warn().
			Str("layout", desc.Name).
			Int("count", len(st.result.Report.Substitutions)).
			Strs("substitutions", st.result.Report.Strings()).
			Msg("layout decoded with substitutions")
	}
	log.Debug().
		Str("layout", desc.Name).
		Int("leaves", entity.LeafCount(root)).
		Msg("layout decoded")

	return st.result, nil
}

func (c *LayoutCodec) decodeNode(st *decodeState, n *entity.LayoutNode, path string) entity.Node {
	if n == nil {
		st.result.Report.add(path, "missing node")
		return c.defaultLeaf()
	}
	if len(n.Malformed) > 0 {
		st.result.Report.add(path, "malformed node (%s), using a default terminal", strings.Join(n.Malformed, "; "))
		return c.defaultLeaf()
	}

	switch strings.ToLower(strings.TrimSpace(n.Type)) {
	case entity.LayoutTypeTerminal:
		return c.decodeTerminal(st, n, path)
	case entity.LayoutTypeHSplit:
		return c.decodeSplit(st, n, path, entity.OrientationHorizontal)
	case entity.LayoutTypeVSplit:
		return c.decodeSplit(st, n, path, entity.OrientationVertical)
	case entity.LayoutTypeNotebook:
		return c.decodeNotebook(st, n, path)
	default:
		st.result.Report.add(path, "unknown node type %q", n.Type)
		return c.defaultLeaf()
	}
}

func (c *LayoutCodec) decodeTerminal(st *decodeState, n *entity.LayoutNode, path string) entity.Node {
	profile, known := c.profiles.resolve(n.Profile)
	if !known {
		st.result.Report.add(path, "unknown profile %q, using %q", n.Profile, profile)
	}

	leaf := &entity.Leaf{
		ID:        entity.LeafID(c.idGenerator()),
		Title:     n.Title,
		Profile:   profile,
		Command:   n.Command,
		Directory: n.Directory,
	}
	if n.UUID != "" {
		if _, dup := st.result.IDs[n.UUID]; dup {
			st.result.Report.add(path, "duplicate uuid %q", n.UUID)
		} else {
			st.result.IDs[n.UUID] = leaf.ID
		}
	}
	if n.Group != nil && *n.Group != "" {
		st.result.Groups[leaf.ID] = *n.Group
	}
	return leaf
}

func (c *LayoutCodec) decodeSplit(st *decodeState, n *entity.LayoutNode, path string, o entity.Orientation) entity.Node {
	children := orderedChildren(n.Children)
	switch {
	case len(children) == 0:
		st.result.Report.add(path, "%s has no children", n.Type)
		return c.defaultLeaf()
	case len(children) == 1:
		st.result.Report.add(path, "%s has a single child, promoting it", n.Type)
		return c.decodeNode(st, children[0].node, childPath(path, children[0].index))
	case len(children) > 2:
		st.result.Report.add(path, "%s has %d children, keeping the first two", n.Type, len(children))
	}

	ratio := entity.DefaultSplitRatio
	if n.Ratio != nil {
		if r := *n.Ratio; r > 0 && r < 1 && !math.IsNaN(r) {
			ratio = r
		} else {
			st.result.Report.add(path, "ratio %v out of (0,1), using %v", r, entity.DefaultSplitRatio)
		}
	}

	return &entity.Split{
		Orientation: o,
		First:       c.decodeNode(st, children[0].node, childPath(path, children[0].index)),
		Second:      c.decodeNode(st, children[1].node, childPath(path, children[1].index)),
		Ratio:       ratio,
	}
}

func (c *LayoutCodec) decodeNotebook(st *decodeState, n *entity.LayoutNode, path string) entity.Node {
	children := orderedChildren(n.Children)
	if len(children) == 0 {
		st.result.Report.add(path, "notebook has no pages")
		return c.defaultLeaf()
	}

	g := &entity.TabGroup{
		Children: make([]entity.Node, 0, len(children)),
		Labels:   make([]string, 0, len(children)),
	}
	for _, child := range children {
		page := c.decodeNode(st, child.node, childPath(path, child.index))
		g.Children = append(g.Children, page)
		label := ""
		if child.index < len(n.Labels) {
			label = n.Labels[child.index]
		}
		g.Labels = append(g.Labels, label)
		if term := n.LastActiveTerm.At(child.index); term != "" {
			st.pending = append(st.pending, pendingPageFocus{page: page, uuid: term})
		}
	}

	if n.ActivePage != nil {
		active := *n.ActivePage
		if active < 0 || active >= len(g.Children) {
			st.result.Report.add(path, "active_page %d out of range, using 0", active)
		} else {
			g.ActiveIndex = active
		}
	}
	return g
}

func (c *LayoutCodec) defaultLeaf() *entity.Leaf {
	return &entity.Leaf{
		ID:      entity.LeafID(c.idGenerator()),
		Profile: c.profiles.Default,
	}
}

type indexedNode struct {
	node  *entity.LayoutNode
	index int // Document position
}

// orderedChildren sorts children by their order field, falling back to
// document position for children without one.
func orderedChildren(children []*entity.LayoutNode) []indexedNode {
	out := make([]indexedNode, len(children))
	for i, child := range children {
		out[i] = indexedNode{node: child, index: i}
	}
	key := func(n indexedNode) int {
		if n.node != nil && n.node.Order != nil {
			return *n.node.Order
		}
		return n.index
	}
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) < key(out[j])
	})
	return out
}

func childPath(parent string, index int) string {
	return fmt.Sprintf("%s/%d", parent, index)
}

func intPtr(v int) *int {
	return &v
}
