package astar

import "container/heap"

// frontierItem is one open-set entry. seq is the insertion sequence used to
// break F ties in favour of newer entries; index is the heap position.
type frontierItem struct {
	node  Node
	seq   uint64
	index int
}

// frontierHeap is a min-heap of *frontierItem ordered by F ascending, then
// by seq descending.
type frontierHeap []*frontierItem

// Len returns the number of items in the heap.
func (h frontierHeap) Len() int { return len(h) }

// Less orders by F; among equal F the most recently inserted wins.
func (h frontierHeap) Less(i, j int) bool {
	if h[i].node.F != h[j].node.F {
		return h[i].node.F < h[j].node.F
	}

	return h[i].seq > h[j].seq
}

// Swap swaps two elements and keeps their indices current.
func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push is called by heap.Push; x must be *frontierItem.
func (h *frontierHeap) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

// Pop is called by heap.Pop.
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}

// frontier is the open set: a priority heap plus an id index, kept in sync
// so membership and in-place updates are O(1) lookups.
type frontier struct {
	heap frontierHeap
	byID map[int]*frontierItem
	seq  uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		heap: make(frontierHeap, 0, capacity),
		byID: make(map[int]*frontierItem, capacity),
	}
}

func (f *frontier) Len() int { return f.heap.Len() }

// push inserts n. The caller guarantees n.ID is not already present.
func (f *frontier) push(n Node) {
	f.seq++
	item := &frontierItem{node: n, seq: f.seq}
	heap.Push(&f.heap, item)
	f.byID[n.ID] = item
}

// pop removes and returns the lowest-F, newest entry.
func (f *frontier) pop() Node {
	item := heap.Pop(&f.heap).(*frontierItem)
	delete(f.byID, item.node.ID)

	return item.node
}

func (f *frontier) get(id int) (*frontierItem, bool) {
	item, ok := f.byID[id]

	return item, ok
}

// fix restores heap order after item.node.F changed.
func (f *frontier) fix(item *frontierItem) {
	heap.Fix(&f.heap, item.index)
}

// settledSet is the closed set in settle order. byID keeps the first
// occurrence of each id, matching a front-to-back scan of order.
type settledSet struct {
	order []Node
	byID  map[int]int
}

func newSettledSet(capacity int) *settledSet {
	return &settledSet{
		order: make([]Node, 0, capacity),
		byID:  make(map[int]int, capacity),
	}
}

func (s *settledSet) add(n Node) {
	if _, ok := s.byID[n.ID]; !ok {
		s.byID[n.ID] = len(s.order)
	}
	s.order = append(s.order, n)
}

func (s *settledSet) has(id int) bool {
	_, ok := s.byID[id]

	return ok
}

func (s *settledSet) get(id int) (Node, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Node{}, false
	}

	return s.order[i], true
}

func (s *settledSet) Len() int { return len(s.order) }

// last returns the most recently settled node.
func (s *settledSet) last() Node { return s.order[len(s.order)-1] }
