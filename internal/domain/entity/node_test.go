package entity

import (
	"strings"
	"testing"
)

func tleaf(id string) *Leaf { return NewLeaf(LeafID(id)) }

func thsplit(a, b Node) *Split {
	return &Split{Orientation: OrientationHorizontal, First: a, Second: b, Ratio: DefaultSplitRatio}
}

func TestWalk_TreeOrder(t *testing.T) {
	root := &TabGroup{
		Children: []Node{
			thsplit(tleaf("a"), &Split{Orientation: OrientationVertical, First: tleaf("b"), Second: tleaf("c"), Ratio: 0.3}),
			tleaf("d"),
		},
		Labels: []string{"", ""},
	}

	ids := LeafIDs(root)
	got := make([]string, len(ids))
	for i, id := range ids {
		got[i] = string(id)
	}
	if strings.Join(got, ",") != "a,b,c,d" {
		t.Fatalf("leaf order = %v, want a,b,c,d", got)
	}
	if LeafCount(root) != 4 {
		t.Fatalf("LeafCount = %d, want 4", LeafCount(root))
	}
	if FirstLeaf(root).ID != "a" {
		t.Fatalf("FirstLeaf = %s, want a", FirstLeaf(root).ID)
	}
	if FindLeaf(root, "c") == nil || FindLeaf(root, "zz") != nil {
		t.Fatalf("FindLeaf mismatch")
	}
	if root.PageOf("c") != 0 || root.PageOf("d") != 1 || root.PageOf("zz") != -1 {
		t.Fatalf("PageOf mismatch")
	}
}

func TestWalk_StopsEarly(t *testing.T) {
	root := thsplit(tleaf("a"), thsplit(tleaf("b"), tleaf("c")))
	visited := 0
	completed := Walk(root, func(n Node) bool {
		visited++
		_, isLeaf := n.(*Leaf)
		return !isLeaf
	})
	if completed {
		t.Fatalf("Walk should report early stop")
	}
	if visited != 2 {
		t.Fatalf("visited %d nodes, want 2", visited)
	}
}

func TestPathTo(t *testing.T) {
	inner := thsplit(tleaf("b"), tleaf("c"))
	root := thsplit(tleaf("a"), inner)

	path := PathTo(root, "c")
	if len(path) != 3 || path[0] != Node(root) || path[1] != Node(inner) {
		t.Fatalf("unexpected path %v", path)
	}
	if leaf, ok := path[2].(*Leaf); !ok || leaf.ID != "c" {
		t.Fatalf("path must end at the leaf")
	}
	if PathTo(root, "zz") != nil {
		t.Fatalf("expected nil path for missing leaf")
	}
	if PathTo(nil, "a") != nil {
		t.Fatalf("expected nil path in empty tree")
	}
}

func TestClone_IsDeep(t *testing.T) {
	root := &TabGroup{Children: []Node{thsplit(tleaf("a"), tleaf("b"))}, Labels: []string{"x"}}
	c := Clone(root).(*TabGroup)

	c.Labels[0] = "changed"
	c.Children[0].(*Split).Ratio = 0.9
	c.Children[0].(*Split).First.(*Leaf).Title = "t"

	if root.Labels[0] != "x" || root.Children[0].(*Split).Ratio != 0.5 || FindLeaf(root, "a").Title != "" {
		t.Fatalf("clone shares state with original")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		root    Node
		wantErr string
	}{
		{name: "empty tree", root: nil},
		{name: "single leaf", root: tleaf("a")},
		{name: "valid split", root: thsplit(tleaf("a"), tleaf("b"))},
		{
			name:    "split missing child",
			root:    &Split{First: tleaf("a"), Ratio: 0.5},
			wantErr: "exactly two children",
		},
		{
			name:    "ratio out of range",
			root:    &Split{First: tleaf("a"), Second: tleaf("b"), Ratio: 1},
			wantErr: "out of (0,1)",
		},
		{
			name:    "duplicate ids",
			root:    thsplit(tleaf("a"), tleaf("a")),
			wantErr: "duplicate leaf id",
		},
		{
			name:    "empty leaf id",
			root:    tleaf(""),
			wantErr: "empty id",
		},
		{
			name:    "empty tab group",
			root:    &TabGroup{},
			wantErr: "no pages",
		},
		{
			name:    "label count mismatch",
			root:    &TabGroup{Children: []Node{tleaf("a")}},
			wantErr: "labels",
		},
		{
			name:    "active index out of range",
			root:    &TabGroup{Children: []Node{tleaf("a")}, Labels: []string{""}, ActiveIndex: 1},
			wantErr: "active index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.root)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	var err error = &NotFoundError{ID: "x"}
	if !IsNotFound(err) {
		t.Fatalf("NotFoundError must match ErrNotFound")
	}
	if err.Error() != "leaf not found: x" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
