package astar

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrPathNotFound indicates that the frontier emptied before any row-0 cell was admitted.
	ErrPathNotFound = errors.New("astar: no path to goal row")

	// ErrInvalidCoordinate indicates a start cell outside the grid.
	ErrInvalidCoordinate = errors.New("astar: start coordinate out of bounds")

	// ErrGridDimensions indicates an occupancy grid whose size differs from the pathfinder's.
	ErrGridDimensions = errors.New("astar: occupancy grid dimensions mismatch")

	// ErrBrokenParentChain indicates that path reconstruction met a missing or cyclic parent link.
	ErrBrokenParentChain = errors.New("astar: parent chain does not reach the start")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// NoParent is the ParentID of the start node.
const NoParent = -1

// Node is one visited or frontier cell.
type Node struct {
	ID       int // row-major cell id, Y*Width + X
	ParentID int // predecessor on the best known path, or NoParent
	X, Y     int // cell coordinates
	G        int // accumulated cost from the start
	H        int // remaining-cost estimate (row distance to row 0)
	F        int // G + H
}

// Result holds the outcome of FindPath.
type Result struct {
	Path    []Node // start → goal inclusive; nil when not found
	Cost    int    // G of the goal node
	Settled int    // number of entries in the settled set when the search stopped
	Found   bool
}

// IDs returns the cell ids along the path.
func (r Result) IDs() []int {
	ids := make([]int, len(r.Path))
	for i, n := range r.Path {
		ids[i] = n.ID
	}

	return ids
}

// ParentUpdateMode selects how an improved frontier entry is rewired.
type ParentUpdateMode int

const (
	// ParentFromExpanding sets the improved entry's parent to the node being
	// expanded, recomputes F and restores heap order.
	ParentFromExpanding ParentUpdateMode = iota

	// ParentSelfQuirk sets the improved entry's parent to its own id and
	// leaves F untouched. Paths through such an entry cannot be rebuilt and
	// FindPath reports ErrBrokenParentChain for them.
	ParentSelfQuirk
)

// String implements fmt.Stringer.
func (m ParentUpdateMode) String() string {
	switch m {
	case ParentFromExpanding:
		return "expanding"
	case ParentSelfQuirk:
		return "self"
	default:
		return fmt.Sprintf("ParentUpdateMode(%d)", int(m))
	}
}

// ParseParentUpdateMode maps "expanding" or "self" to a mode.
// The empty string selects ParentFromExpanding.
func ParseParentUpdateMode(s string) (ParentUpdateMode, error) {
	switch s {
	case "", "expanding":
		return ParentFromExpanding, nil
	case "self":
		return ParentSelfQuirk, nil
	default:
		return 0, fmt.Errorf("%w: unknown parent update mode %q", ErrOptionViolation, s)
	}
}

// Options configures a Pathfinder.
//
// Width, Height      – grid dimensions; default grid.DefaultWidth × grid.DefaultHeight.
// ParentUpdate       – rewiring of improved frontier entries; default ParentFromExpanding.
// BoundaryExemption  – skip the obstacle test on rows 0 and Height-1; default true.
// Logger             – destination for diagnostics; default slog.Default().
// OnEnqueue/OnSettle – tracing hooks; default no-ops.
type Options struct {
	Width, Height     int
	ParentUpdate      ParentUpdateMode
	BoundaryExemption bool
	Logger            *slog.Logger

	// OnEnqueue is called when a node enters the frontier.
	OnEnqueue func(n Node)

	// OnSettle is called when a node is appended to the settled set,
	// including the goal commit.
	OnSettle func(n Node)

	// internal error recorded during option parsing
	err error
}

// Option configures a Pathfinder via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// DefaultOptions returns the 5×7 configuration that reproduces the
// classic row-goal search, with the parent-update defect corrected.
func DefaultOptions() Options {
	return Options{
		Width:             grid.DefaultWidth,
		Height:            grid.DefaultHeight,
		ParentUpdate:      ParentFromExpanding,
		BoundaryExemption: true,
		Logger:            slog.Default(),
		OnEnqueue:         func(Node) {},
		OnSettle:          func(Node) {},
	}
}

// WithDimensions sets the grid size. Both values must be positive.
func WithDimensions(width, height int) Option {
	return func(o *Options) {
		if width <= 0 || height <= 0 {
			o.err = fmt.Errorf("%w: dimensions must be positive (%dx%d)", ErrOptionViolation, width, height)
			return
		}
		o.Width, o.Height = width, height
	}
}

// WithParentUpdate selects how improved frontier entries are rewired.
func WithParentUpdate(mode ParentUpdateMode) Option {
	return func(o *Options) {
		switch mode {
		case ParentFromExpanding, ParentSelfQuirk:
			o.ParentUpdate = mode
		default:
			o.err = fmt.Errorf("%w: unknown parent update mode %d", ErrOptionViolation, int(mode))
		}
	}
}

// WithStrictObstacles applies the obstacle test to every row, including
// row 0 and the last row, and runs it before the goal check.
func WithStrictObstacles() Option {
	return func(o *Options) {
		o.BoundaryExemption = false
	}
}

// WithLogger sets the diagnostics logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback run when a node enters the frontier.
func WithOnEnqueue(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnSettle registers a callback run when a node is settled.
func WithOnSettle(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
