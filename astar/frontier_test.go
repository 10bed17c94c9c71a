package astar

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFrontier_TieBreak verifies F ordering with newest-first ties:
// pushes (f7,a) (f6,b) (f7,c) must pop as b, c, a.
func TestFrontier_TieBreak(t *testing.T) {
	f := newFrontier(4)
	f.push(Node{ID: 1, F: 7})
	f.push(Node{ID: 2, F: 6})
	f.push(Node{ID: 3, F: 7})

	var order []int
	for f.Len() > 0 {
		order = append(order, f.pop().ID)
	}
	assert.Equal(t, []int{2, 3, 1}, order)
	assert.Empty(t, f.byID, "index must shrink with the heap")
}

// TestFrontier_Fix re-orders an entry after its F drops.
func TestFrontier_Fix(t *testing.T) {
	f := newFrontier(4)
	f.push(Node{ID: 1, F: 3})
	f.push(Node{ID: 2, F: 9})
	f.push(Node{ID: 3, F: 5})

	item, ok := f.get(2)
	require.True(t, ok)
	item.node.F = 1
	f.fix(item)

	assert.Equal(t, 2, f.pop().ID)
	_, ok = f.get(2)
	assert.False(t, ok)
	assert.Equal(t, 1, f.pop().ID)
	assert.Equal(t, 3, f.pop().ID)
}

// TestSettledSet_FirstOccurrence keeps the first entry for duplicate ids.
func TestSettledSet_FirstOccurrence(t *testing.T) {
	s := newSettledSet(2)
	s.add(Node{ID: 4, G: 1})
	s.add(Node{ID: 4, G: 9})

	n, ok := s.get(4)
	require.True(t, ok)
	assert.Equal(t, 1, n.G)
	assert.Equal(t, 9, s.last().G)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.has(5))
}

func testRunner(t *testing.T, opts ...Option) *runner {
	t.Helper()
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	p, err := New(opts...)
	require.NoError(t, err)

	return p.newRunner()
}

// TestAdmit_GoalCommit: a row-0 candidate ends the search and never enters the frontier.
func TestAdmit_GoalCommit(t *testing.T) {
	r := testRunner(t)
	r.admit(Node{ID: 2, ParentID: 7, X: 2, Y: 0, G: 6, F: 6})

	assert.True(t, r.found)
	assert.Equal(t, 1, r.closed.Len())
	assert.Equal(t, 0, r.open.Len())
}

// TestAdmit_SettledDiscard ignores candidates whose cell is settled.
func TestAdmit_SettledDiscard(t *testing.T) {
	r := testRunner(t)
	r.closed.add(Node{ID: 12, X: 2, Y: 2})
	r.admit(Node{ID: 12, X: 2, Y: 2, G: 1})

	assert.Equal(t, 0, r.open.Len())
}

// frontierWithImprovable seeds a frontier holding cell (2,1) reached at G=5
// and cell (3,1) at F=5; the candidate reaches (2,1) at G=2 from cell 6.
func frontierWithImprovable(r *runner) Node {
	r.open.push(Node{ID: 7, ParentID: 12, X: 2, Y: 1, G: 5, H: 1, F: 6})
	r.open.push(Node{ID: 8, ParentID: 13, X: 3, Y: 1, G: 4, H: 1, F: 5})

	return Node{ID: 7, ParentID: 6, X: 2, Y: 1, G: 2, H: 1, F: 3}
}

// TestAdmit_ImproveFromExpanding rewires to the expanding node and re-sorts.
func TestAdmit_ImproveFromExpanding(t *testing.T) {
	r := testRunner(t)
	r.admit(frontierWithImprovable(r))

	item, ok := r.open.get(7)
	require.True(t, ok)
	assert.Equal(t, 6, item.node.ParentID)
	assert.Equal(t, 2, item.node.G)
	assert.Equal(t, 3, item.node.F)
	assert.Equal(t, 2, r.open.Len(), "update must not duplicate the entry")
	assert.Equal(t, 7, r.open.pop().ID, "improved entry moves to the front")
}

// TestAdmit_ImproveSelfQuirk reproduces the self-parent rewiring with stale F.
func TestAdmit_ImproveSelfQuirk(t *testing.T) {
	r := testRunner(t, WithParentUpdate(ParentSelfQuirk))
	r.admit(frontierWithImprovable(r))

	item, ok := r.open.get(7)
	require.True(t, ok)
	assert.Equal(t, 7, item.node.ParentID)
	assert.Equal(t, 2, item.node.G)
	assert.Equal(t, 6, item.node.F, "F is left stale")
	assert.Equal(t, 8, r.open.pop().ID)
}

// TestAdmit_NotCheaper leaves an equal-cost entry untouched.
func TestAdmit_NotCheaper(t *testing.T) {
	r := testRunner(t)
	r.open.push(Node{ID: 7, ParentID: 12, X: 2, Y: 1, G: 2, H: 1, F: 3})
	r.admit(Node{ID: 7, ParentID: 6, X: 2, Y: 1, G: 2, H: 1, F: 3})

	item, _ := r.open.get(7)
	assert.Equal(t, 12, item.node.ParentID)
}

// TestReconstruct_SelfParent detects the loop a self-parented node creates.
func TestReconstruct_SelfParent(t *testing.T) {
	r := testRunner(t)
	r.closed.add(Node{ID: 12, ParentID: NoParent, X: 2, Y: 2})
	r.closed.add(Node{ID: 7, ParentID: 7, X: 2, Y: 1, G: 1})
	r.closed.add(Node{ID: 2, ParentID: 7, X: 2, Y: 0, G: 2})

	_, err := r.reconstruct()
	assert.ErrorIs(t, err, ErrBrokenParentChain)
}

// TestReconstruct_MissingParent reports a parent that was never settled.
func TestReconstruct_MissingParent(t *testing.T) {
	r := testRunner(t)
	r.closed.add(Node{ID: 2, ParentID: 7, X: 2, Y: 0, G: 1})

	_, err := r.reconstruct()
	assert.ErrorIs(t, err, ErrBrokenParentChain)
}

// TestReconstruct_Order returns start → goal.
func TestReconstruct_Order(t *testing.T) {
	r := testRunner(t)
	r.closed.add(Node{ID: 12, ParentID: NoParent, X: 2, Y: 2})
	r.closed.add(Node{ID: 7, ParentID: 12, X: 2, Y: 1, G: 1})
	r.closed.add(Node{ID: 2, ParentID: 7, X: 2, Y: 0, G: 2})

	path, err := r.reconstruct()
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, 12, path[0].ID)
	assert.Equal(t, 2, path[2].ID)
}
