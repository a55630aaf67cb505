package table

import (
	"slices"

	"github.com/hupe1980/rowstore/column"
	"github.com/hupe1980/rowstore/treearray"
	"github.com/hupe1980/rowstore/value"
)

// PositionalTable is a set of named, equal-length columns whose rows are
// addressed by their current zero-based position.
//
// PositionalTable is not safe for concurrent use.
type PositionalTable struct {
	schema Schema
	cols   []*column.Column
}

// NewPositionalTable creates an empty table from the given schema.
func NewPositionalTable(schema Schema) (*PositionalTable, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return &PositionalTable{
		schema: slices.Clone(schema),
		cols:   schema.newColumns(),
	}, nil
}

// Schema returns a copy of the table's schema.
func (t *PositionalTable) Schema() Schema { return slices.Clone(t.schema) }

// RowCount returns the number of rows.
func (t *PositionalTable) RowCount() int { return t.cols[0].Len() }

// ColumnCount returns the number of columns.
func (t *PositionalTable) ColumnCount() int { return len(t.cols) }

// ColumnNames returns the column names in declared order.
func (t *PositionalTable) ColumnNames() []string { return t.schema.names() }

// InsertRow inserts row so it becomes position i, shifting positions >= i
// up by one. i may equal RowCount(), which appends. The row is validated
// fully before any column is mutated.
func (t *PositionalTable) InsertRow(i int, row []value.Value) error {
	rc := t.RowCount()
	if i < 0 || i > rc {
		return &treearray.OutOfBoundsError{Index: i, Len: rc}
	}
	if err := t.schema.validateRow(row); err != nil {
		return err
	}
	for j, c := range t.cols {
		if err := c.InsertAt(i, row[j]); err != nil {
			return err
		}
	}
	return nil
}

// AppendRow appends row and returns its position.
func (t *PositionalTable) AppendRow(row []value.Value) (int, error) {
	i := t.RowCount()
	if err := t.InsertRow(i, row); err != nil {
		return 0, err
	}
	return i, nil
}

// RemoveRow removes and returns the row at position i, shifting later rows
// down by one.
func (t *PositionalTable) RemoveRow(i int) ([]value.Value, error) {
	if rc := t.RowCount(); i < 0 || i >= rc {
		return nil, &treearray.OutOfBoundsError{Index: i, Len: rc}
	}
	removed := make([]value.Value, len(t.cols))
	for j, c := range t.cols {
		v, err := c.RemoveAt(i)
		if err != nil {
			return nil, err
		}
		removed[j] = v
	}
	return removed, nil
}

// GetRow returns one value per column at position i, in declared order.
func (t *PositionalTable) GetRow(i int) ([]value.Value, error) {
	if rc := t.RowCount(); i < 0 || i >= rc {
		return nil, &treearray.OutOfBoundsError{Index: i, Len: rc}
	}
	return t.readRow(i)
}

// UpdateRow overwrites the row at position i. The row is validated fully
// before any column is mutated.
func (t *PositionalTable) UpdateRow(i int, row []value.Value) error {
	if rc := t.RowCount(); i < 0 || i >= rc {
		return &treearray.OutOfBoundsError{Index: i, Len: rc}
	}
	if err := t.schema.validateRow(row); err != nil {
		return err
	}
	for j, c := range t.cols {
		if err := c.Set(i, row[j]); err != nil {
			return err
		}
	}
	return nil
}

// SwapRows exchanges the rows at positions a and b.
func (t *PositionalTable) SwapRows(a, b int) error {
	rc := t.RowCount()
	if a < 0 || a >= rc {
		return &treearray.OutOfBoundsError{Index: a, Len: rc}
	}
	if b < 0 || b >= rc {
		return &treearray.OutOfBoundsError{Index: b, Len: rc}
	}
	if a == b {
		return nil
	}
	for _, c := range t.cols {
		va, err := c.Get(a)
		if err != nil {
			return err
		}
		vb, err := c.Get(b)
		if err != nil {
			return err
		}
		if err := c.Set(a, vb); err != nil {
			return err
		}
		if err := c.Set(b, va); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the cross-column length invariant. A non-nil result
// indicates a defect in the implementation, not a usage error.
func (t *PositionalTable) Validate() error {
	rc := t.RowCount()
	for _, c := range t.cols {
		if c.Len() != rc {
			return &LengthInvariantError{Column: c.Name(), Len: c.Len(), RowCount: rc}
		}
	}
	return nil
}

func (t *PositionalTable) readRow(i int) ([]value.Value, error) {
	row := make([]value.Value, len(t.cols))
	for j, c := range t.cols {
		v, err := c.Get(i)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}
	return row, nil
}
