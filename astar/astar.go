package astar

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/grid"
)

// Pathfinder runs row-goal searches over a fixed-size grid.
// A Pathfinder holds no per-search state; the occupancy grid is the only
// thing shared between FindPath calls.
type Pathfinder struct {
	options   Options
	occupancy *grid.Occupancy // nil means no obstacles
}

// New builds a Pathfinder from DefaultOptions overridden by opts.
// Returns ErrOptionViolation (wrapped) if any option was invalid.
func New(opts ...Option) (*Pathfinder, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Pathfinder{options: cfg}, nil
}

// Width returns the configured grid width.
func (p *Pathfinder) Width() int { return p.options.Width }

// Height returns the configured grid height.
func (p *Pathfinder) Height() int { return p.options.Height }

// Occupancy returns the grid used by subsequent searches, or nil.
func (p *Pathfinder) Occupancy() *grid.Occupancy { return p.occupancy }

// SetOccupancyGrid replaces the obstacle grid used by subsequent searches.
// The grid is kept by reference, not copied. A nil grid clears all
// obstacles. Returns ErrGridDimensions if the size does not match.
func (p *Pathfinder) SetOccupancyGrid(o *grid.Occupancy) error {
	if o != nil && (o.Width != p.options.Width || o.Height != p.options.Height) {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrGridDimensions, o.Width, o.Height, p.options.Width, p.options.Height)
	}
	p.occupancy = o

	return nil
}

// FindPath searches from (x,y) to the nearest reachable cell of row 0.
//
// Returns:
//
//   - Result with Found=true and the path start → goal on success.
//   - ErrInvalidCoordinate if (x,y) is outside the grid.
//   - ErrPathNotFound if no row-0 cell can be reached; Result.Settled still
//     reports how much of the grid was explored.
//   - ErrBrokenParentChain if the parent links cannot be followed back to
//     the start (only possible with ParentSelfQuirk).
func (p *Pathfinder) FindPath(x, y int) (Result, error) {
	if x < 0 || x >= p.options.Width || y < 0 || y >= p.options.Height {
		return Result{}, fmt.Errorf("%w: (%d,%d) in %dx%d",
			ErrInvalidCoordinate, x, y, p.options.Width, p.options.Height)
	}
	log := p.options.Logger
	log.Debug("search started", slog.Int("x", x), slog.Int("y", y))

	r := p.newRunner()
	r.admit(Node{
		ID:       r.id(x, y),
		ParentID: NoParent,
		X:        x,
		Y:        y,
		G:        0,
		H:        y,
		F:        y,
	})
	r.process()

	res := Result{Settled: r.closed.Len()}
	if !r.found {
		log.Info("path not found", slog.Int("x", x), slog.Int("y", y), slog.Int("settled", res.Settled))
		return res, fmt.Errorf("%w: from (%d,%d)", ErrPathNotFound, x, y)
	}

	path, err := r.reconstruct()
	if err != nil {
		log.Warn("path reconstruction failed", slog.Int("x", x), slog.Int("y", y), slog.Any("err", err))
		return res, err
	}
	res.Path = path
	res.Cost = path[len(path)-1].G
	res.Found = true
	log.Debug("search finished",
		slog.Int("cost", res.Cost), slog.Int("length", len(path)), slog.Int("settled", res.Settled))

	return res, nil
}

// runner holds the mutable state of a single FindPath call.
type runner struct {
	options   Options
	occupancy *grid.Occupancy
	open      *frontier
	closed    *settledSet
	found     bool
}

func (p *Pathfinder) newRunner() *runner {
	cells := p.options.Width * p.options.Height

	return &runner{
		options:   p.options,
		occupancy: p.occupancy,
		open:      newFrontier(cells),
		closed:    newSettledSet(cells),
	}
}

func (r *runner) id(x, y int) int { return y*r.options.Width + x }

// process pops and settles frontier entries until the goal is admitted or
// the frontier is empty.
func (r *runner) process() {
	for !r.found && r.open.Len() > 0 {
		r.settle(r.open.pop())
	}
}

// step is one cardinal move with its effect on H.
type step struct {
	dx, dy, dh int
}

// moves lists expansion order: left, up (toward row 0), right, down.
// Order matters: later insertions win F ties.
var moves = [...]step{
	{dx: -1, dy: 0, dh: 0},
	{dx: 0, dy: -1, dh: -1},
	{dx: 1, dy: 0, dh: 0},
	{dx: 0, dy: 1, dh: 1},
}

// settle appends cur to the settled set and admits each in-bounds neighbour.
func (r *runner) settle(cur Node) {
	r.commit(cur)
	for _, m := range moves {
		nx, ny := cur.X+m.dx, cur.Y+m.dy
		if nx < 0 || nx >= r.options.Width || ny < 0 || ny >= r.options.Height {
			continue
		}
		g, h := cur.G+1, cur.H+m.dh
		r.admit(Node{
			ID:       r.id(nx, ny),
			ParentID: cur.ID,
			X:        nx,
			Y:        ny,
			G:        g,
			H:        h,
			F:        g + h,
		})
	}
}

func (r *runner) commit(n Node) {
	r.closed.add(n)
	r.options.OnSettle(n)
}

// admit applies the admission rule to a candidate; see the package doc.
func (r *runner) admit(c Node) {
	if !r.options.BoundaryExemption && r.blocked(c) {
		return
	}
	if c.Y == 0 {
		r.found = true
		r.commit(c)
	}
	if r.closed.has(c.ID) {
		return
	}
	if r.options.BoundaryExemption && c.Y > 0 && c.Y < r.options.Height-1 && r.blocked(c) {
		return
	}

	if item, ok := r.open.get(c.ID); ok {
		if item.node.G > c.G {
			r.improve(item, c)
		}
		return
	}
	r.open.push(c)
	r.options.OnEnqueue(c)
}

// improve rewires an existing frontier entry reached more cheaply by c.
func (r *runner) improve(item *frontierItem, c Node) {
	switch r.options.ParentUpdate {
	case ParentSelfQuirk:
		item.node.ParentID = c.ID
		item.node.G = c.G
	default:
		item.node.ParentID = c.ParentID
		item.node.G = c.G
		item.node.F = c.G + item.node.H
		r.open.fix(item)
	}
}

func (r *runner) blocked(n Node) bool {
	return r.occupancy != nil && r.occupancy.Blocked(n.X, n.Y)
}

// reconstruct walks parent links from the last settled node (the goal)
// back to the start and returns the path in walk order.
func (r *runner) reconstruct() ([]Node, error) {
	cur := r.closed.last()
	path := []Node{cur}
	for hops := 0; cur.ParentID != NoParent; hops++ {
		if hops >= r.closed.Len() {
			return nil, fmt.Errorf("%w: cycle at cell %d", ErrBrokenParentChain, cur.ID)
		}
		parent, ok := r.closed.get(cur.ParentID)
		if !ok {
			return nil, fmt.Errorf("%w: parent %d of cell %d never settled", ErrBrokenParentChain, cur.ParentID, cur.ID)
		}
		cur = parent
		path = append(path, cur)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
