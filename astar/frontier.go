package astar

// record is the best path found so far to node at the time it was created.
// Records are stored in an arena and refer to their predecessor by index,
// so path reconstruction is a walk over integers.
type record[N comparable] struct {
	node N
	prev int          // arena index of the predecessor record; -1 for start
	via  Successor[N] // edge used to reach node; zero value for start
	g    float64      // cumulative cost from start
	h    float64      // cached heuristic estimate for node
}

// noPrev marks the start record.
const noPrev = -1

// frontier is a min-heap of arena indexes ordered by f = g + h.
// On equal f, lower h wins; on equal h, the older record wins.
// It implements heap.Interface; superseded records are left in place
// and discarded on pop (lazy decrease-key).
type frontier[N comparable] struct {
	arena *[]record[N]
	items []int
}

// Len returns the number of queued indexes, stale ones included.
func (f *frontier[N]) Len() int { return len(f.items) }

// Less orders by f, then h, then arena index.
func (f *frontier[N]) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	ra, rb := &(*f.arena)[a], &(*f.arena)[b]
	fa, fb := ra.g+ra.h, rb.g+rb.h
	if fa != fb {
		return fa < fb
	}
	if ra.h != rb.h {
		return ra.h < rb.h
	}

	return a < b
}

// Swap swaps two queued indexes.
func (f *frontier[N]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push appends x, which must be an int arena index. Called by heap.Push.
func (f *frontier[N]) Push(x any) { f.items = append(f.items, x.(int)) }

// Pop removes and returns the last index. Called by heap.Pop.
func (f *frontier[N]) Pop() any {
	old := f.items
	n := len(old)
	idx := old[n-1]
	f.items = old[:n-1]

	return idx
}

// pathTo walks predecessor links from the record at idx back to the start
// and returns the traversed edges in start-to-end order.
func pathTo[N comparable](arena []record[N], idx int) []Successor[N] {
	depth := 0
	for i := idx; arena[i].prev != noPrev; i = arena[i].prev {
		depth++
	}
	path := make([]Successor[N], depth)
	for i := idx; arena[i].prev != noPrev; i = arena[i].prev {
		depth--
		path[depth] = arena[i].via
	}

	return path
}
