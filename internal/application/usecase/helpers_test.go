package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

// sequentialIDs returns a generator producing prefix0, prefix1, ...
func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		id := fmt.Sprintf("%s%d", prefix, n)
		n++
		return id
	}
}

// leafFactory creates leaves named by gen and inherits the source directory.
func leafFactory(gen IDGenerator) LeafFactory {
	return func(_ context.Context, source *entity.Leaf) (*entity.Leaf, error) {
		leaf := entity.NewLeaf(entity.LeafID(gen()))
		if source != nil {
			leaf.Directory = source.Directory
			leaf.Profile = source.Profile
		}
		return leaf, nil
	}
}

// fixedFactory creates leaves with the given ids in order.
func fixedFactory(ids ...string) LeafFactory {
	i := 0
	return func(_ context.Context, _ *entity.Leaf) (*entity.Leaf, error) {
		id := ids[i]
		i++
		return entity.NewLeaf(entity.LeafID(id)), nil
	}
}

func hsplit(first, second entity.Node) *entity.Split {
	return &entity.Split{Orientation: entity.OrientationHorizontal, First: first, Second: second, Ratio: 0.5}
}

func vsplit(first, second entity.Node) *entity.Split {
	return &entity.Split{Orientation: entity.OrientationVertical, First: first, Second: second, Ratio: 0.5}
}

func tabs(active int, pages ...entity.Node) *entity.TabGroup {
	return &entity.TabGroup{
		Children:    pages,
		Labels:      make([]string, len(pages)),
		ActiveIndex: active,
	}
}

func leaf(id string) *entity.Leaf {
	return entity.NewLeaf(entity.LeafID(id))
}

func windowWith(root entity.Node, focused string) *entity.Window {
	w := &entity.Window{ID: "w", Root: root}
	w.SetFocused(entity.LeafID(focused))
	return w
}

// shape renders a tree as h(a,v(b,c)) or tabs1[a|b] with leaf ids.
func shape(n entity.Node) string {
	return render(n, true)
}

// skeleton renders a tree like shape but without leaf ids.
func skeleton(n entity.Node) string {
	return render(n, false)
}

func render(n entity.Node, ids bool) string {
	switch v := n.(type) {
	case nil:
		return "<empty>"
	case *entity.Leaf:
		if ids {
			return string(v.ID)
		}
		return "*"
	case *entity.Split:
		prefix := "h"
		if v.Orientation == entity.OrientationVertical {
			prefix = "v"
		}
		return fmt.Sprintf("%s(%s,%s)", prefix, render(v.First, ids), render(v.Second, ids))
	case *entity.TabGroup:
		pages := make([]string, len(v.Children))
		for i, child := range v.Children {
			pages[i] = render(child, ids)
		}
		return fmt.Sprintf("tabs%d[%s]", v.ActiveIndex, strings.Join(pages, "|"))
	default:
		return "?"
	}
}
