package treearray

import "fmt"

// OutOfBoundsError indicates a position outside the current bounds.
type OutOfBoundsError struct {
	Index int // Offending position
	Len   int // Length at the time of the call
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %d out of bounds for length %d", e.Index, e.Len)
}

// CorruptHandleError indicates a node handle that does not resolve to a
// live arena slot. It signals a defect in the tree itself, not a usage
// error, and should be treated as fatal by callers.
type CorruptHandleError struct {
	Handle uint32
}

func (e *CorruptHandleError) Error() string {
	return fmt.Sprintf("corrupt node handle %d", e.Handle)
}
