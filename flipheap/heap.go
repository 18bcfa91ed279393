package flipheap

import "container/heap"

// entry is one element of the underlying container/heap slice: an
// argument id and its current priority (flip gain).
type entry struct {
	arg      int
	priority int
}

// Heap is an indexed min-heap over argument ids, implementing
// heap.Interface directly so that Swap can keep `handle` in sync. The
// zero value is not usable; construct with New.
type Heap struct {
	entries []entry
	handle  []int // handle[arg] = position in entries, or notPresent
}

const notPresent = -1

// New returns an empty Heap over the universe [0, n).
func New(n int) *Heap {
	handle := make([]int, n)
	for i := range handle {
		handle[i] = notPresent
	}

	return &Heap{
		entries: make([]entry, 0, n),
		handle:  handle,
	}
}

// Len returns the number of elements currently in the heap.
// Satisfies sort.Interface (embedded in heap.Interface).
func (hp *Heap) Len() int {
	return len(hp.entries)
}

// Less breaks ties by ascending argument id for determinism.
// Satisfies sort.Interface.
func (hp *Heap) Less(i, j int) bool {
	if hp.entries[i].priority != hp.entries[j].priority {
		return hp.entries[i].priority < hp.entries[j].priority
	}

	return hp.entries[i].arg < hp.entries[j].arg
}

// Swap exchanges two entries and keeps the handle table consistent.
// Satisfies sort.Interface.
func (hp *Heap) Swap(i, j int) {
	hp.entries[i], hp.entries[j] = hp.entries[j], hp.entries[i]
	hp.handle[hp.entries[i].arg] = i
	hp.handle[hp.entries[j].arg] = j
}

// Push appends x (a heap-internal detail of container/heap; callers use
// Insert/Update instead). Satisfies heap.Interface.
func (hp *Heap) Push(x interface{}) {
	e := x.(entry)
	hp.handle[e.arg] = len(hp.entries)
	hp.entries = append(hp.entries, e)
}

// Pop removes and returns the last entry (a heap-internal detail of
// container/heap; callers use ExtractMin instead). Satisfies
// heap.Interface.
func (hp *Heap) Pop() interface{} {
	n := len(hp.entries)
	e := hp.entries[n-1]
	hp.entries = hp.entries[:n-1]
	hp.handle[e.arg] = notPresent

	return e
}

// Contains reports whether arg is currently tracked by the heap.
func (hp *Heap) Contains(arg int) bool {
	return hp.handle[arg] != notPresent
}

// Insert adds arg with the given priority. If arg is already present, its
// priority is updated instead (matching Update's semantics), so callers
// may use Insert as an unconditional "make present with this priority".
func (hp *Heap) Insert(arg int, priority int) {
	if hp.Contains(arg) {
		hp.Update(arg, priority)
		return
	}

	heap.Push(hp, entry{arg: arg, priority: priority})
}

// ExtractMin removes and returns the argument with the lowest priority.
// Panics if the heap is empty; callers must check Len() first.
func (hp *Heap) ExtractMin() int {
	if hp.Len() == 0 {
		panic("flipheap: extract from empty heap")
	}

	e := heap.Pop(hp).(entry)

	return e.arg
}

// Update sets arg's priority, inserting it if absent ("insert if absent
// else reseat").
func (hp *Heap) Update(arg int, newPriority int) {
	pos := hp.handle[arg]
	if pos == notPresent {
		heap.Push(hp, entry{arg: arg, priority: newPriority})
		return
	}

	hp.entries[pos].priority = newPriority
	heap.Fix(hp, pos)
}

// Remove deletes arg from the heap if present; a no-op otherwise.
func (hp *Heap) Remove(arg int) {
	pos := hp.handle[arg]
	if pos == notPresent {
		return
	}

	heap.Remove(hp, pos)
}
