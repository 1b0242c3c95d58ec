package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/logging"
)

// CycleScope selects the leaves cyclic focus moves through.
type CycleScope int

const (
	CycleWindow CycleScope = iota // Every leaf of the window
	CycleTab                      // Leaves of the current top level tab page
)

// NavigateFocusUseCase resolves focus movement over the arrangement tree.
// It never mutates the tree.
type NavigateFocusUseCase struct{}

// NewNavigateFocusUseCase creates a new focus navigation use case.
func NewNavigateFocusUseCase() *NavigateFocusUseCase {
	return &NavigateFocusUseCase{}
}

// Directional returns the leaf next to from in the given direction.
//
// It walks up to the nearest split of the direction's axis from which the
// move is possible and enters the other child on its first leaf in tree
// order, following visible tab pages. There is no wraparound: ok is false at
// the edge of the layout.
//
// Moving back does not necessarily return to from: Directional(B, Left)
// lands somewhere inside the subtree containing from when that subtree has
// more than one leaf.
func (uc *NavigateFocusUseCase) Directional(
	ctx context.Context,
	root entity.Node,
	from entity.LeafID,
	dir entity.Direction,
) (entity.LeafID, bool, error) {
	log := logging.FromContext(ctx)

	axis, ok := dir.Axis()
	if !ok {
		return "", false, fmt.Errorf("unknown direction %q", dir)
	}

	path := entity.PathTo(root, from)
	if path == nil {
		return "", false, &entity.NotFoundError{ID: from}
	}

	forward := dir.Forward()
	for i := len(path) - 2; i >= 0; i-- {
		split, isSplit := path[i].(*entity.Split)
		if !isSplit || split.Orientation != axis {
			continue
		}

		var other entity.Node
		switch {
		case forward && split.First == path[i+1]:
			other = split.Second
		case !forward && split.Second == path[i+1]:
			other = split.First
		default:
			continue
		}

		target := entryLeaf(other)
		if target == nil {
			return "", false, nil
		}
		log.Debug().
			Str("from", string(from)).
			Str("to", string(target.ID)).
			Str("direction", string(dir)).
			Msg("directional focus resolved")
		return target.ID, true, nil
	}

	log.Debug().Str("from", string(from)).Str("direction", string(dir)).Msg("no leaf in direction")
	return "", false, nil
}

// Cyclic returns the leaf step positions away from from in tree order within
// the scope, wrapping around.
func (uc *NavigateFocusUseCase) Cyclic(
	ctx context.Context,
	root entity.Node,
	from entity.LeafID,
	step int,
	scope CycleScope,
) (entity.LeafID, error) {
	path := entity.PathTo(root, from)
	if path == nil {
		return "", &entity.NotFoundError{ID: from}
	}

	scopeRoot := root
	if scope == CycleTab {
		if g, depth := outermostTabGroup(path); g != nil {
			scopeRoot = path[depth+1]
		}
	}

	ids := entity.LeafIDs(scopeRoot)
	index := 0
	for i, id := range ids {
		if id == from {
			index = i
			break
		}
	}

	next := ids[wrapIndex(index+step, len(ids))]
	logging.FromContext(ctx).Debug().
		Str("from", string(from)).
		Str("to", string(next)).
		Int("step", step).
		Msg("cyclic focus resolved")
	return next, nil
}
