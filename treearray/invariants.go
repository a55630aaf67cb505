package treearray

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// CheckInvariants verifies the structural invariants of the tree and its
// arena: size and height caches, the AVL balance bound, handle liveness,
// acyclicity, and free-list consistency. It returns nil when the tree is
// healthy. A non-nil result indicates a defect in the implementation, not
// a usage error.
func (t *TreeArray[T]) CheckInvariants() error {
	seen := bitset.New(uint(len(t.nodes)))
	count, _, err := t.checkNode(t.root, seen)
	if err != nil {
		return err
	}
	if count != t.Len() {
		return fmt.Errorf("reachable node count %d does not match length %d", count, t.Len())
	}
	if live := int(t.live.Count()); live != count {
		return fmt.Errorf("live slot count %d does not match reachable node count %d", live, count)
	}
	for _, h := range t.free {
		if int(h) >= len(t.nodes) {
			return fmt.Errorf("free list entry %d outside arena of %d slots", h, len(t.nodes))
		}
		if t.live.Test(uint(h)) {
			return fmt.Errorf("free list entry %d is marked live", h)
		}
	}
	return nil
}

func (t *TreeArray[T]) checkNode(h uint32, seen *bitset.BitSet) (count, height int, err error) {
	if h == nilHandle {
		return 0, 0, nil
	}
	n, err := t.ref(h)
	if err != nil {
		return 0, 0, err
	}
	if seen.Test(uint(h)) {
		return 0, 0, fmt.Errorf("node %d reachable twice: %w", h, &CorruptHandleError{Handle: h})
	}
	seen.Set(uint(h))

	lc, lh, err := t.checkNode(n.left, seen)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right, seen)
	if err != nil {
		return 0, 0, err
	}
	if got, want := int(n.size), 1+lc+rc; got != want {
		return 0, 0, fmt.Errorf("node %d caches size %d, subtree has %d", h, got, want)
	}
	if got, want := int(n.height), 1+max(lh, rh); got != want {
		return 0, 0, fmt.Errorf("node %d caches height %d, subtree has %d", h, got, want)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("node %d violates balance bound: factor %d", h, bf)
	}
	return 1 + lc + rc, 1 + max(lh, rh), nil
}
