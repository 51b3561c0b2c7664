package runner

import (
	"container/heap"

	"github.com/elgo/easylocal/model"
)

// tabuHeap is a min-heap of model.TabuEntry ordered by Tenure (the iteration
// at which an entry expires), mirroring TabuListItem::Comparator in
// original_source/include/easylocal/runners/tabusearch.hh. Grounded on
// vxm-ppz/go-solution/priority_queue.go's heap.Interface shape, stripped of
// its goroutine-synchronization wrapper since the tabu list is only ever
// touched from the Runner's own goroutine.
type tabuHeap[M any] []model.TabuEntry[M]

func (h tabuHeap[M]) Len() int            { return len(h) }
func (h tabuHeap[M]) Less(i, j int) bool  { return h[i].Tenure < h[j].Tenure }
func (h tabuHeap[M]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *tabuHeap[M]) Push(x interface{}) { *h = append(*h, x.(model.TabuEntry[M])) }
func (h *tabuHeap[M]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// tabuList wraps tabuHeap with the two operations TabuSearch needs: evicting
// expired entries and testing every live entry against a prohibition
// predicate.
type tabuList[M any] struct {
	h tabuHeap[M]
}

func (l *tabuList[M]) expire(iteration uint64) {
	for len(l.h) > 0 && l.h[0].Tenure < iteration {
		heap.Pop(&l.h)
	}
}

func (l *tabuList[M]) insert(mv M, expiresAt uint64) {
	heap.Push(&l.h, model.TabuEntry[M]{Move: mv, Tenure: expiresAt})
}

// entries returns the live tabu entries, for a caller to test prohibition
// against a move whose delta-cost type (CF) this package (generic over M
// alone) does not know about.
func (l *tabuList[M]) entries() []model.TabuEntry[M] { return l.h }

func (l *tabuList[M]) clear() { l.h = nil }
