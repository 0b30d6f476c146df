package dstar

import "container/heap"

// openEntry is one queued cell with its key and current heap slot.
// The slot is maintained by openHeap.Swap, which is what turns a plain
// binary heap into an indexed one: arbitrary entries can be removed or
// re-keyed through heap.Remove / heap.Fix in O(log n).
type openEntry struct {
	cell int
	key  Key
	slot int
}

// openHeap implements heap.Interface over *openEntry, ordered by Key.
type openHeap []*openEntry

// Len returns the number of queued entries.
func (h openHeap) Len() int { return len(h) }

// Less orders entries by Key, smallest first.
func (h openHeap) Less(i, j int) bool { return h[i].key.Less(h[j].key) }

// Swap swaps two entries and keeps their slot fields current.
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].slot = i
	h[j].slot = j
}

// Push appends x; called by heap.Push, x must be *openEntry.
func (h *openHeap) Push(x interface{}) {
	e := x.(*openEntry)
	e.slot = len(*h)
	*h = append(*h, e)
}

// Pop removes and returns the last entry; called by heap.Pop.
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // release reference
	e.slot = -1
	*h = old[:n-1]

	return e
}

// openList is the planner's open list: the set of currently inconsistent
// cells ordered ascending by Key, paired with a cell → entry index so that
// membership tests, arbitrary removal, and in-place re-keying run in
// sub-linear time. A cell never appears twice.
type openList struct {
	h      openHeap
	byCell map[int]*openEntry
}

func newOpenList() *openList {
	return &openList{byCell: make(map[int]*openEntry)}
}

// insert queues cell at key k. If the cell is already queued, its key is
// updated in place instead, preserving the no-duplicates invariant.
func (l *openList) insert(cell int, k Key) {
	if e, ok := l.byCell[cell]; ok {
		e.key = k
		heap.Fix(&l.h, e.slot)

		return
	}
	e := &openEntry{cell: cell, key: k}
	heap.Push(&l.h, e)
	l.byCell[cell] = e
}

// remove unqueues an arbitrary cell. Reports whether it was queued.
func (l *openList) remove(cell int) bool {
	e, ok := l.byCell[cell]
	if !ok {
		return false
	}
	heap.Remove(&l.h, e.slot)
	delete(l.byCell, cell)

	return true
}

// update re-keys a queued cell in place. Sift-down only moves an entry past
// strictly smaller keys, so an entry re-keyed to an equal key keeps its
// position and already-queued ties are not starved. Reports whether the
// cell was queued.
func (l *openList) update(cell int, k Key) bool {
	e, ok := l.byCell[cell]
	if !ok {
		return false
	}
	e.key = k
	heap.Fix(&l.h, e.slot)

	return true
}

// peek returns the minimum key without removing it; ok is false when empty.
func (l *openList) peek() (Key, bool) {
	if len(l.h) == 0 {
		return Key{}, false
	}

	return l.h[0].key, true
}

// pop removes and returns the minimum-key entry; ok is false when empty.
func (l *openList) pop() (cell int, k Key, ok bool) {
	if len(l.h) == 0 {
		return 0, Key{}, false
	}
	e := heap.Pop(&l.h).(*openEntry)
	delete(l.byCell, e.cell)

	return e.cell, e.key, true
}

// contains reports whether cell is currently queued.
func (l *openList) contains(cell int) bool {
	_, ok := l.byCell[cell]

	return ok
}

// empty reports whether the list has no entries.
func (l *openList) empty() bool { return len(l.h) == 0 }

// size returns the number of queued cells.
func (l *openList) size() int { return len(l.h) }
