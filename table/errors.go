package table

import "fmt"

// RowArityError indicates a row that does not supply exactly one value per
// column.
type RowArityError struct {
	Expected int // Column count
	Actual   int // Values supplied
}

func (e *RowArityError) Error() string {
	return fmt.Sprintf("row arity mismatch: table has %d columns, row has %d values", e.Expected, e.Actual)
}

// UnknownRowIDError indicates a logical row id that is not currently live,
// either because it was never issued by this table or because the row was
// removed.
type UnknownRowIDError struct {
	ID RowID
}

func (e *UnknownRowIDError) Error() string {
	return fmt.Sprintf("unknown row id %d", e.ID)
}

// SchemaError indicates an invalid table schema.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return "invalid schema: " + e.Reason
	}
	return fmt.Sprintf("invalid schema: column %q %s", e.Column, e.Reason)
}

// LengthInvariantError indicates a cross-column length mismatch. It signals
// a defect in the table implementation, never a usage error, and should be
// treated as fatal.
type LengthInvariantError struct {
	Column   string
	Len      int
	RowCount int
}

func (e *LengthInvariantError) Error() string {
	return fmt.Sprintf("column %q has length %d, table has %d rows", e.Column, e.Len, e.RowCount)
}
