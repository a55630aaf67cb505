package treearray

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// nilHandle marks the absence of a child.
const nilHandle = ^uint32(0)

// node is one arena slot. Children are referenced by handle, never by
// pointer; size and height are the order-statistics caches.
type node[T any] struct {
	value  T
	left   uint32
	right  uint32
	size   uint32
	height int32
}

// TreeArray is a positionally addressed, self-balancing container.
//
// It is functionally equivalent to a slice with O(log n) random insertion
// and removal. The zero value is not usable; call New.
//
// TreeArray is not safe for concurrent use.
type TreeArray[T any] struct {
	nodes []node[T]
	free  []uint32
	live  *bitset.BitSet
	root  uint32
}

// New creates an empty TreeArray.
func New[T any]() *TreeArray[T] {
	return &TreeArray[T]{
		live: bitset.New(0),
		root: nilHandle,
	}
}

// Len returns the number of elements. O(1).
func (t *TreeArray[T]) Len() int {
	if t.root == nilHandle {
		return 0
	}
	return int(t.nodes[t.root].size)
}

// Clear removes all elements and recycles the arena.
func (t *TreeArray[T]) Clear() {
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.live.ClearAll()
	t.root = nilHandle
}

// Get returns the value at position i.
func (t *TreeArray[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= t.Len() {
		return zero, &OutOfBoundsError{Index: i, Len: t.Len()}
	}
	h := t.root
	for {
		n, err := t.ref(h)
		if err != nil {
			return zero, err
		}
		l := t.sizeOf(n.left)
		switch {
		case i < l:
			h = n.left
		case i == l:
			return n.value, nil
		default:
			i -= l + 1
			h = n.right
		}
	}
}

// Set overwrites the value at position i.
func (t *TreeArray[T]) Set(i int, v T) error {
	if i < 0 || i >= t.Len() {
		return &OutOfBoundsError{Index: i, Len: t.Len()}
	}
	h := t.root
	for {
		n, err := t.ref(h)
		if err != nil {
			return err
		}
		l := t.sizeOf(n.left)
		switch {
		case i < l:
			h = n.left
		case i == l:
			n.value = v
			return nil
		default:
			i -= l + 1
			h = n.right
		}
	}
}

// InsertAt inserts v so it becomes position i, shifting positions >= i up
// by one. i may equal Len(), which appends.
func (t *TreeArray[T]) InsertAt(i int, v T) error {
	if i < 0 || i > t.Len() {
		return &OutOfBoundsError{Index: i, Len: t.Len()}
	}
	h := t.alloc(v)
	root, err := t.insertNode(t.root, i, h)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

// Push appends v and returns its position.
func (t *TreeArray[T]) Push(v T) (int, error) {
	i := t.Len()
	if err := t.InsertAt(i, v); err != nil {
		return 0, err
	}
	return i, nil
}

// RemoveAt removes and returns the value at position i, shifting positions
// > i down by one.
func (t *TreeArray[T]) RemoveAt(i int) (T, error) {
	var removed T
	if i < 0 || i >= t.Len() {
		return removed, &OutOfBoundsError{Index: i, Len: t.Len()}
	}
	root, freed, err := t.removeNode(t.root, i, &removed)
	if err != nil {
		return removed, err
	}
	t.root = root
	t.release(freed)
	return removed, nil
}

// Pop removes and returns the last element. It reports false when empty.
func (t *TreeArray[T]) Pop() (T, bool) {
	n := t.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	v, err := t.RemoveAt(n - 1)
	return v, err == nil
}

// All returns an in-order iterator over the elements.
// The tree must not be mutated during iteration.
func (t *TreeArray[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		// Explicit stack; depth is bounded by tree height.
		stack := make([]uint32, 0, 16)
		h := t.root
		for h != nilHandle || len(stack) > 0 {
			for h != nilHandle {
				stack = append(stack, h)
				h = t.nodes[h].left
			}
			h = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.nodes[h].value) {
				return
			}
			h = t.nodes[h].right
		}
	}
}

// Values returns the elements in positional order.
func (t *TreeArray[T]) Values() []T {
	out := make([]T, 0, t.Len())
	for v := range t.All() {
		out = append(out, v)
	}
	return out
}

// ref resolves a handle to its arena slot, rejecting dead or out-of-range
// handles.
func (t *TreeArray[T]) ref(h uint32) (*node[T], error) {
	if h == nilHandle || int(h) >= len(t.nodes) || !t.live.Test(uint(h)) {
		return nil, &CorruptHandleError{Handle: h}
	}
	return &t.nodes[h], nil
}

func (t *TreeArray[T]) sizeOf(h uint32) int {
	if h == nilHandle {
		return 0
	}
	return int(t.nodes[h].size)
}

func (t *TreeArray[T]) heightOf(h uint32) int {
	if h == nilHandle {
		return 0
	}
	return int(t.nodes[h].height)
}

// alloc takes a slot from the free list or grows the arena.
func (t *TreeArray[T]) alloc(v T) uint32 {
	var h uint32
	if n := len(t.free); n > 0 {
		h = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		h = uint32(len(t.nodes))
		t.nodes = append(t.nodes, node[T]{})
	}
	t.nodes[h] = node[T]{value: v, left: nilHandle, right: nilHandle, size: 1, height: 1}
	t.live.Set(uint(h))
	return h
}

// release returns a slot to the free list and drops its payload.
func (t *TreeArray[T]) release(h uint32) {
	t.nodes[h] = node[T]{left: nilHandle, right: nilHandle}
	t.live.Clear(uint(h))
	t.free = append(t.free, h)
}

// update recomputes the size and height caches of h from its children.
func (t *TreeArray[T]) update(h uint32) {
	n := &t.nodes[h]
	n.size = uint32(1 + t.sizeOf(n.left) + t.sizeOf(n.right))
	lh, rh := t.heightOf(n.left), t.heightOf(n.right)
	n.height = int32(1 + max(lh, rh))
}

func (t *TreeArray[T]) rotateLeft(h uint32) (uint32, error) {
	n, err := t.ref(h)
	if err != nil {
		return h, err
	}
	r := n.right
	rn, err := t.ref(r)
	if err != nil {
		return h, err
	}
	n.right = rn.left
	t.update(h)
	rn.left = h
	t.update(r)
	return r, nil
}

func (t *TreeArray[T]) rotateRight(h uint32) (uint32, error) {
	n, err := t.ref(h)
	if err != nil {
		return h, err
	}
	l := n.left
	ln, err := t.ref(l)
	if err != nil {
		return h, err
	}
	n.left = ln.right
	t.update(h)
	ln.right = h
	t.update(l)
	return l, nil
}

// rebalance restores the AVL invariant at h after a structural change
// below it, performing a single or double rotation as needed.
func (t *TreeArray[T]) rebalance(h uint32) (uint32, error) {
	n, err := t.ref(h)
	if err != nil {
		return h, err
	}
	t.update(h)
	bf := t.heightOf(n.left) - t.heightOf(n.right)
	switch {
	case bf > 1:
		ln, err := t.ref(n.left)
		if err != nil {
			return h, err
		}
		if t.heightOf(ln.left) < t.heightOf(ln.right) {
			nl, err := t.rotateLeft(n.left)
			if err != nil {
				return h, err
			}
			n.left = nl
		}
		return t.rotateRight(h)
	case bf < -1:
		rn, err := t.ref(n.right)
		if err != nil {
			return h, err
		}
		if t.heightOf(rn.right) < t.heightOf(rn.left) {
			nr, err := t.rotateRight(n.right)
			if err != nil {
				return h, err
			}
			n.right = nr
		}
		return t.rotateLeft(h)
	}
	return h, nil
}

// insertNode descends to position i splitting the search space by left
// subtree size, attaches newH, and rebalances on the way back up.
func (t *TreeArray[T]) insertNode(h uint32, i int, newH uint32) (uint32, error) {
	if h == nilHandle {
		return newH, nil
	}
	n, err := t.ref(h)
	if err != nil {
		return h, err
	}
	l := t.sizeOf(n.left)
	if i <= l {
		child, err := t.insertNode(n.left, i, newH)
		if err != nil {
			return h, err
		}
		n.left = child
	} else {
		child, err := t.insertNode(n.right, i-l-1, newH)
		if err != nil {
			return h, err
		}
		n.right = child
	}
	return t.rebalance(h)
}

// removeNode locates position i, writes its value to removed, and returns
// the new subtree root plus the handle of the slot that left the tree.
// A two-child target keeps its node and takes over the in-order
// successor's value; the successor's slot is the one freed.
func (t *TreeArray[T]) removeNode(h uint32, i int, removed *T) (uint32, uint32, error) {
	n, err := t.ref(h)
	if err != nil {
		return h, nilHandle, err
	}
	l := t.sizeOf(n.left)
	switch {
	case i < l:
		child, freed, err := t.removeNode(n.left, i, removed)
		if err != nil {
			return h, nilHandle, err
		}
		n.left = child
		nh, err := t.rebalance(h)
		return nh, freed, err
	case i > l:
		child, freed, err := t.removeNode(n.right, i-l-1, removed)
		if err != nil {
			return h, nilHandle, err
		}
		n.right = child
		nh, err := t.rebalance(h)
		return nh, freed, err
	default:
		*removed = n.value
		if n.left == nilHandle {
			return n.right, h, nil
		}
		if n.right == nilHandle {
			return n.left, h, nil
		}
		minH, newRight, err := t.takeMin(n.right)
		if err != nil {
			return h, nilHandle, err
		}
		n.value = t.nodes[minH].value
		n.right = newRight
		nh, err := t.rebalance(h)
		return nh, minH, err
	}
}

// takeMin detaches the left-most node of the subtree rooted at h and
// returns its handle along with the rebalanced remainder.
func (t *TreeArray[T]) takeMin(h uint32) (uint32, uint32, error) {
	n, err := t.ref(h)
	if err != nil {
		return nilHandle, h, err
	}
	if n.left == nilHandle {
		return h, n.right, nil
	}
	minH, newLeft, err := t.takeMin(n.left)
	if err != nil {
		return nilHandle, h, err
	}
	n.left = newLeft
	nh, err := t.rebalance(h)
	return minH, nh, err
}
