package usecase

import (
	"context"
	"testing"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sampleWindow() (*entity.Window, *entity.GroupRegistry) {
	a, b, c, d := leaf("a"), leaf("b"), leaf("c"), leaf("d")
	a.Profile, a.Directory, a.Title = "default", "/home/user", "zsh"
	b.Profile, b.Command = "ops", "htop"
	c.Profile = "default"
	d.Profile = "default"

	split := vsplit(b, c)
	split.Ratio = 0.3
	root := tabs(1, a, hsplit(split, d))
	root.Labels = []string{"shell", "monitor"}
	root.Children[1].(*entity.Split).Ratio = 0.7

	w := &entity.Window{
		ID:        "w1",
		Title:     "work",
		Root:      root,
		Size:      [2]int{1280, 720},
		Position:  [2]int{10, 20},
		Maximized: true,
	}
	w.SetFocused("a")
	w.SetFocused("d")
	w.SetFocused("c")

	groups := entity.NewGroupRegistry(entity.SendGroup)
	groups.SetGroup("b", "servers")
	groups.SetGroup("c", "servers")
	return w, groups
}

func TestLayoutCodec_Encode(t *testing.T) {
	w, groups := sampleWindow()
	codec := NewLayoutCodec(sequentialIDs("id"), ProfileSet{Default: "default"})

	desc := codec.Encode(w, groups)

	assert.Equal(t, "work", desc.Window.Title)
	assert.Equal(t, []int{1280, 720}, desc.Window.Size)
	assert.Equal(t, []int{10, 20}, desc.Window.Position)
	assert.True(t, desc.Window.Maximized)
	assert.Equal(t, "c", desc.Window.LastActiveTerm)

	root := desc.Root
	require.NotNil(t, root)
	assert.Equal(t, entity.LayoutTypeNotebook, root.Type)
	assert.Equal(t, 1, *root.ActivePage)
	assert.Equal(t, []string{"shell", "monitor"}, root.Labels)
	assert.Equal(t, entity.StringOrList{"a", "c"}, root.LastActiveTerm)

	page := root.Children[1]
	assert.Equal(t, entity.LayoutTypeHSplit, page.Type)
	assert.Equal(t, 0.7, *page.Ratio)
	assert.Equal(t, 1, *page.Order)

	inner := page.Children[0]
	assert.Equal(t, entity.LayoutTypeVSplit, inner.Type)
	term := inner.Children[0]
	assert.Equal(t, entity.LayoutTypeTerminal, term.Type)
	assert.Equal(t, "b", term.UUID)
	assert.Equal(t, "htop", term.Command)
	require.NotNil(t, term.Group)
	assert.Equal(t, "servers", *term.Group)

	assert.Nil(t, root.Children[0].Group)
}

func TestLayoutCodec_RoundTrip(t *testing.T) {
	w, groups := sampleWindow()
	codec := NewLayoutCodec(sequentialIDs("id"), ProfileSet{Default: "default", Known: []string{"default", "ops"}})

	desc := codec.Encode(w, groups)
	result, err := codec.Decode(context.Background(), desc)
	require.NoError(t, err)
	require.True(t, result.Report.Empty(), result.Report.Strings())

	got := result.Window
	assert.Equal(t, skeleton(w.Root), skeleton(got.Root))
	assertSameRatiosAndTabs(t, w.Root, got.Root)
	assert.Equal(t, w.Title, got.Title)
	assert.Equal(t, w.Size, got.Size)
	assert.Equal(t, w.Position, got.Position)
	assert.True(t, got.Maximized)

	// Ids are regenerated but the mapping keeps every reference resolvable.
	assert.NotContains(t, entity.LeafIDs(got.Root), entity.LeafID("c"))
	assert.Equal(t, result.IDs["c"], got.Focused)
	assert.Equal(t, "servers", result.Groups[result.IDs["b"]])
	assert.Equal(t, "servers", result.Groups[result.IDs["c"]])
	assert.Len(t, result.Groups, 2)

	firstPage := got.Root.(*entity.TabGroup).Children[0]
	assert.Equal(t, result.IDs["a"], got.LastFocusedIn(firstPage).ID)
	leafA := got.FindLeaf(result.IDs["a"])
	assert.Equal(t, "/home/user", leafA.Directory)
	assert.Equal(t, "zsh", leafA.Title)

	// Encoding the decoded window yields the same document up to ids.
	regroup := entity.NewGroupRegistry(entity.SendOff)
	for id, name := range result.Groups {
		regroup.SetGroup(id, name)
	}
	again := codec.Encode(got, regroup)
	assert.Equal(t, normalizedJSON(t, desc, nil), normalizedJSON(t, again, result.IDs))
}

func TestLayoutCodec_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		layout := NewManageLayoutUseCase()
		ctx := context.Background()
		gen := sequentialIDs("n")
		factory := leafFactory(gen)
		w := windowWith(leaf("root"), "root")
		groups := entity.NewGroupRegistry(entity.SendGroup)

		steps := rapid.IntRange(0, 25).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			target := rapid.SampledFrom(entity.LeafIDs(w.Root)).Draw(t, "target")
			var err error
			switch rapid.IntRange(0, 5).Draw(t, "op") {
			case 0, 1:
				o := rapid.SampledFrom([]entity.Orientation{entity.OrientationHorizontal, entity.OrientationVertical}).Draw(t, "orientation")
				_, err = layout.Split(ctx, SplitInput{Window: w, Target: target, Orientation: o, Factory: factory})
			case 2:
				_, err = layout.OpenTab(ctx, OpenTabInput{Window: w, At: target, InsertAfterCurrent: true, Factory: factory})
			case 3:
				dir := rapid.SampledFrom([]entity.Direction{entity.DirUp, entity.DirDown, entity.DirLeft, entity.DirRight}).Draw(t, "dir")
				_, err = layout.Resize(ctx, ResizeInput{Window: w, Target: target, Direction: dir, Step: 0.13, MinFraction: 0.05})
				if err == ErrNothingToResize {
					err = nil
				}
			case 4:
				groups.SetGroup(target, rapid.SampledFrom([]string{"", "g1", "g2"}).Draw(t, "group"))
			case 5:
				err = layout.Focus(ctx, w, target)
			}
			if err != nil {
				t.Fatalf("operation failed: %v", err)
			}
		}

		codec := NewLayoutCodec(sequentialIDs("r"), ProfileSet{})
		desc := codec.Encode(w, groups)

		// Going through the wire format must not lose anything either.
		data, err := json.Marshal(desc)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var wire entity.LayoutDescription
		if err := json.Unmarshal(data, &wire); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		result, err := codec.Decode(ctx, &wire)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !result.Report.Empty() {
			t.Fatalf("unexpected substitutions: %v", result.Report.Strings())
		}
		if skeleton(result.Window.Root) != skeleton(w.Root) {
			t.Fatalf("shape %s, want %s", skeleton(result.Window.Root), skeleton(w.Root))
		}
		if err := entity.Validate(result.Window.Root); err != nil {
			t.Fatalf("invalid decoded tree: %v", err)
		}
		if result.Window.Focused != result.IDs[string(w.Focused)] {
			t.Fatalf("focused %s, want mapping of %s", result.Window.Focused, w.Focused)
		}
		for _, id := range entity.LeafIDs(w.Root) {
			if got, want := result.Groups[result.IDs[string(id)]], groups.GroupOf(id); got != want {
				t.Fatalf("group of %s = %q, want %q", id, got, want)
			}
		}
		again := codec.Encode(result.Window, registryFrom(result.Groups))
		if a, b := normalizedJSON(t, desc, nil), normalizedJSON(t, again, result.IDs); a != b {
			t.Fatalf("re-encoded layout differs:\n%s\n%s", a, b)
		}
	})
}

func TestLayoutCodec_Decode_Tolerance(t *testing.T) {
	one := 1
	zero := 0
	seven := 7
	bad := 1.5
	group := "g"

	desc := &entity.LayoutDescription{
		Name: "broken",
		Window: entity.WindowMeta{
			LastActiveTerm: "nope",
			Size:           []int{800},
		},
		Root: &entity.LayoutNode{
			Type:  "hsplit",
			Ratio: &bad,
			Children: []*entity.LayoutNode{
				{Type: "terminal", Order: &one, UUID: "second", Profile: "ghost"},
				{Type: "notebook", Order: &zero, ActivePage: &seven, Children: []*entity.LayoutNode{
					{Type: "terminal", UUID: "t1", Group: &group},
					{Type: "wormhole"},
					{Type: "vsplit", Children: []*entity.LayoutNode{{Type: "terminal", UUID: "only"}}},
					{Type: "notebook"},
				}},
			},
		},
	}

	codec := NewLayoutCodec(sequentialIDs("id"), ProfileSet{Default: "default", Known: []string{"default"}})
	result, err := codec.Decode(context.Background(), desc)
	require.NoError(t, err)

	root, ok := result.Window.Root.(*entity.Split)
	require.True(t, ok)
	assert.Equal(t, entity.DefaultSplitRatio, root.Ratio)
	assert.Equal(t, "h(tabs0[*|*|*|*],*)", skeleton(root), "children follow the order field")

	second := root.Second.(*entity.Leaf)
	assert.Equal(t, "default", second.Profile)
	assert.Equal(t, result.IDs["second"], second.ID)

	nb := root.First.(*entity.TabGroup)
	assert.Equal(t, result.IDs["only"], nb.Children[2].(*entity.Leaf).ID, "single child split promotes the child")
	assert.Equal(t, "g", result.Groups[result.IDs["t1"]])
	assert.Equal(t, []string{"", "", "", ""}, nb.Labels)

	assert.Equal(t, [2]int{}, result.Window.Size)
	assert.Equal(t, nb.Children[0].(*entity.Leaf).ID, result.Window.Focused)

	reasons := result.Report.Strings()
	assert.Len(t, reasons, 8)
	assert.Contains(t, reasons, `root/0: unknown profile "ghost", using "default"`)
	assert.Contains(t, reasons, `root/1/1: unknown node type "wormhole"`)
	assert.Contains(t, reasons, `root/1/3: notebook has no pages`)
	require.NoError(t, entity.Validate(result.Window.Root))
}

func TestLayoutCodec_Decode_LastActiveTermAcceptsString(t *testing.T) {
	raw := `{
		"name": "tabs",
		"window": {"last_active_term": "y"},
		"root": {
			"type": "notebook",
			"active_page": 0,
			"last_active_term": "x2",
			"children": [
				{"type": "hsplit", "children": [{"type": "terminal", "uuid": "x1"}, {"type": "terminal", "uuid": "x2"}]},
				{"type": "terminal", "uuid": "y"}
			]
		}
	}`
	var desc entity.LayoutDescription
	require.NoError(t, json.Unmarshal([]byte(raw), &desc))
	assert.Equal(t, entity.StringOrList{"x2"}, desc.Root.LastActiveTerm)

	codec := NewLayoutCodec(sequentialIDs("id"), ProfileSet{Default: "default"})
	result, err := codec.Decode(context.Background(), &desc)
	require.NoError(t, err)

	w := result.Window
	assert.Equal(t, result.IDs["y"], w.Focused)
	firstPage := w.Root.(*entity.TabGroup).Children[0]
	assert.Equal(t, result.IDs["x2"], w.LastFocusedIn(firstPage).ID)
	assert.Equal(t, "default", w.FindLeaf(result.IDs["x1"]).Profile)
}

func TestLayoutCodec_Decode_EmptyLayout(t *testing.T) {
	codec := NewLayoutCodec(nil, ProfileSet{})

	_, err := codec.Decode(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = codec.Decode(context.Background(), &entity.LayoutDescription{Name: "x"})
	assert.ErrorIs(t, err, ErrEmptyLayout)
}

func assertSameRatiosAndTabs(t *testing.T, want, got entity.Node) {
	t.Helper()
	switch w := want.(type) {
	case *entity.Split:
		g := got.(*entity.Split)
		assert.Equal(t, w.Ratio, g.Ratio)
		assert.Equal(t, w.Orientation, g.Orientation)
		assertSameRatiosAndTabs(t, w.First, g.First)
		assertSameRatiosAndTabs(t, w.Second, g.Second)
	case *entity.TabGroup:
		g := got.(*entity.TabGroup)
		assert.Equal(t, w.ActiveIndex, g.ActiveIndex)
		assert.Equal(t, w.Labels, g.Labels)
		for i := range w.Children {
			assertSameRatiosAndTabs(t, w.Children[i], g.Children[i])
		}
	}
}

func registryFrom(groups map[entity.LeafID]string) *entity.GroupRegistry {
	r := entity.NewGroupRegistry(entity.SendOff)
	for id, name := range groups {
		r.SetGroup(id, name)
	}
	return r
}

// normalizedJSON marshals a description after mapping regenerated ids back
// to the ids of the original document.
func normalizedJSON(t interface{ Fatalf(string, ...any) }, desc *entity.LayoutDescription, ids map[string]entity.LeafID) string {
	reverse := make(map[string]string, len(ids))
	for old, id := range ids {
		reverse[string(id)] = old
	}
	unmap := func(s string) string {
		if old, ok := reverse[s]; ok {
			return old
		}
		return s
	}

	var walk func(n *entity.LayoutNode)
	walk = func(n *entity.LayoutNode) {
		if n == nil {
			return
		}
		n.UUID = unmap(n.UUID)
		for i := range n.LastActiveTerm {
			n.LastActiveTerm[i] = unmap(n.LastActiveTerm[i])
		}
		for _, child := range n.Children {
			walk(child)
		}
	}

	data, err := json.Marshal(desc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var clone entity.LayoutDescription
	if err := json.Unmarshal(data, &clone); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	clone.Window.LastActiveTerm = unmap(clone.Window.LastActiveTerm)
	walk(clone.Root)

	out, err := json.Marshal(&clone)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(out)
}

func TestLayoutCodec_Decode_BadlyTypedFieldsReplaceOnlyTheirNode(t *testing.T) {
	raw := `{
		"name": "typos",
		"window": {"title": "typos", "size": "big"},
		"root": {
			"type": "hsplit",
			"children": [
				{"type": "terminal", "uuid": "keep", "profile": "ops"},
				{"type": "terminal", "uuid": "lost", "order": "second", "ratio": "wide"}
			]
		}
	}`
	var desc entity.LayoutDescription
	require.NoError(t, json.Unmarshal([]byte(raw), &desc))

	codec := NewLayoutCodec(sequentialIDs("id"), ProfileSet{Default: "default", Known: []string{"default", "ops"}})
	result, err := codec.Decode(context.Background(), &desc)
	require.NoError(t, err)

	assert.Equal(t, "h(*,*)", skeleton(result.Window.Root))
	root := result.Window.Root.(*entity.Split)
	assert.Equal(t, result.IDs["keep"], root.First.(*entity.Leaf).ID)
	assert.Equal(t, "ops", root.First.(*entity.Leaf).Profile)
	assert.Equal(t, "default", root.Second.(*entity.Leaf).Profile)
	assert.NotContains(t, result.IDs, "lost")
	assert.Equal(t, "typos", result.Window.Title)

	reasons := result.Report.Strings()
	require.Len(t, reasons, 2)
	assert.Contains(t, reasons[0], "root/1: malformed node")
	assert.Contains(t, reasons[0], `invalid order "second"`)
	assert.Contains(t, reasons[0], `invalid ratio "wide"`)
	assert.Equal(t, `window: invalid size "big", ignoring it`, reasons[1])
}

func TestLayoutCodec_Decode_ProfilesIgnoreCase(t *testing.T) {
	desc := &entity.LayoutDescription{
		Root: &entity.LayoutNode{Type: "terminal", Profile: "Ops"},
	}
	codec := NewLayoutCodec(sequentialIDs("id"), ProfileSet{Default: "default", Known: []string{"default", "ops"}})

	result, err := codec.Decode(context.Background(), desc)
	require.NoError(t, err)
	assert.Equal(t, "ops", result.Window.Root.(*entity.Leaf).Profile)
	assert.True(t, result.Report.Empty())
}
