package astar

import (
	"github.com/zyedidia/generic/heap"
)

// openItem is one frontier entry: a cell and its priority f = g + h.
// seq records push order and breaks ties between equal priorities.
type openItem[C comparable] struct {
	cell C
	f    int64
	seq  uint64
}

// openSet is a min-heap of openItem ordered by (f, seq) ascending.
// The same cell may be present several times with different priorities;
// stale entries are not removed.
type openSet[C comparable] struct {
	h    *heap.Heap[openItem[C]]
	next uint64
}

func newOpenSet[C comparable]() *openSet[C] {
	return &openSet[C]{
		h: heap.New(func(a, b openItem[C]) bool {
			if a.f != b.f {
				return a.f < b.f
			}
			return a.seq < b.seq
		}),
	}
}

// push adds cell with priority f.
func (q *openSet[C]) push(cell C, f int64) {
	q.h.Push(openItem[C]{cell: cell, f: f, seq: q.next})
	q.next++
}

// pop removes and returns the lowest-priority entry.
func (q *openSet[C]) pop() (openItem[C], bool) {
	return q.h.Pop()
}

// Len returns the number of entries, stale ones included.
func (q *openSet[C]) Len() int { return q.h.Size() }
