// Package column provides a homogeneous, positionally addressed sequence
// over one declared value kind, backed by a treearray.TreeArray.
//
// Columns are normally mutated only through table-level row operations so
// that all columns of a table keep identical length.
package column

import (
	"fmt"

	"github.com/hupe1980/rowstore/treearray"
	"github.com/hupe1980/rowstore/value"
)

// TypeMismatchError indicates a value whose kind does not match the
// column's declared kind.
type TypeMismatchError struct {
	Column   string
	Expected value.Kind
	Actual   value.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("column %q expects %s, got %s", e.Column, e.Expected, e.Actual)
}

// Column is a typed, growable cell sequence.
//
// Every cell is either of the declared kind or Absent. The kind check runs
// before any mutation, so a failed call never changes the column.
type Column struct {
	name  string
	kind  value.Kind
	cells *treearray.TreeArray[value.Value]
}

// New creates an empty column with the given name and declared kind.
func New(name string, kind value.Kind) *Column {
	return &Column{
		name:  name,
		kind:  kind,
		cells: treearray.New[value.Value](),
	}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the declared cell kind.
func (c *Column) Kind() value.Kind { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int { return c.cells.Len() }

// Get returns the cell at position i.
func (c *Column) Get(i int) (value.Value, error) {
	return c.cells.Get(i)
}

// Set overwrites the cell at position i.
func (c *Column) Set(i int, v value.Value) error {
	if err := c.checkKind(v); err != nil {
		return err
	}
	return c.cells.Set(i, v)
}

// Push appends v and returns its position.
func (c *Column) Push(v value.Value) (int, error) {
	if err := c.checkKind(v); err != nil {
		return 0, err
	}
	return c.cells.Push(v)
}

// InsertAt inserts v so it becomes position i, shifting positions >= i up
// by one. i may equal Len(), which appends.
func (c *Column) InsertAt(i int, v value.Value) error {
	if err := c.checkKind(v); err != nil {
		return err
	}
	return c.cells.InsertAt(i, v)
}

// RemoveAt removes and returns the cell at position i.
func (c *Column) RemoveAt(i int) (value.Value, error) {
	return c.cells.RemoveAt(i)
}

// Values returns the cells in positional order.
func (c *Column) Values() []value.Value {
	return c.cells.Values()
}

// checkKind accepts the declared kind plus Absent (nullable cells).
func (c *Column) checkKind(v value.Value) error {
	if v.Kind == c.kind || v.Kind == value.KindAbsent {
		return nil
	}
	return &TypeMismatchError{Column: c.name, Expected: c.kind, Actual: v.Kind}
}
