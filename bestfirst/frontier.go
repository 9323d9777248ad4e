package bestfirst

// entry is one frontier record. A node may have several entries at once;
// outdated ones are skipped when popped (lazy decrease-key).
type entry struct {
	priority float64 // ordering key: h (Greedy) or g + w·h (A*)
	cost     float64 // accumulated road distance from the start
	node     string  // node ID
	seq      uint64  // push counter, unique per run
	parent   string  // predecessor on the route that produced this entry
	root     bool    // true only for the start entry
}

// frontier is a min-heap of *entry.
//
// Ties are broken explicitly so a run is reproducible for a fixed graph:
// priority, then cost, then node ID, then push order, all ascending.
type frontier []*entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by (priority, cost, node, seq).
func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	switch {
	case a.priority != b.priority:
		return a.priority < b.priority
	case a.cost != b.cost:
		return a.cost < b.cost
	case a.node != b.node:
		return a.node < b.node
	default:
		return a.seq < b.seq
	}
}

// Swap swaps two entries in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push, x must be *entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop removes the last element; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
