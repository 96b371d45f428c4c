package solver

import "container/heap"

type frontierEntry struct {
	node     int32
	priority Priority
	seq      uint64
}

// Min-heap on (priority, insertion order)
type frontierHeap []frontierEntry

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority == h[j].priority {
		return h[i].seq < h[j].seq
	}
	return h[i].priority < h[j].priority
}
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x any)   { *h = append(*h, x.(frontierEntry)) }
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// Priority queue of arena indices, ties are popped in insertion order
type frontier struct {
	entries frontierHeap
	seq     uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{entries: make(frontierHeap, 0, capacity)}
}

func (f *frontier) push(node int32, priority Priority) {
	heap.Push(&f.entries, frontierEntry{node: node, priority: priority, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() (int32, Priority) {
	entry := heap.Pop(&f.entries).(frontierEntry)
	return entry.node, entry.priority
}

func (f *frontier) Len() int {
	return f.entries.Len()
}
