package rowstore

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rowstore/column"
	"github.com/hupe1980/rowstore/table"
	"github.com/hupe1980/rowstore/treearray"
)

var (
	// ErrOutOfBounds is returned when a position is outside the current bounds.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrTypeMismatch is returned when a value's kind does not match the
	// column's declared kind.
	ErrTypeMismatch = errors.New("value kind mismatch")
	// ErrRowArity is returned when a row does not supply exactly one value
	// per column.
	ErrRowArity = errors.New("row arity mismatch")
	// ErrUnknownRowID is returned when a logical row id is not currently live.
	ErrUnknownRowID = errors.New("unknown row id")
	// ErrInvalidSchema is returned when a table schema is rejected.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrInvariant is returned when an internal invariant is violated.
	// It indicates a defect in the store itself, not a usage error.
	ErrInvariant = errors.New("internal invariant violated")

	// ErrTableExists is returned when creating a table under a taken name.
	ErrTableExists = errors.New("table already exists")
	// ErrTableNotFound is returned when looking up an unregistered table.
	ErrTableNotFound = errors.New("table not found")
	// ErrTableKind is returned when a table is looked up as the wrong variant.
	ErrTableKind = errors.New("table kind mismatch")
)

// translateError maps package-level typed errors onto the store's sentinel
// vocabulary so callers can use errors.Is at the facade.
//
// The original typed error stays reachable via errors.As / errors.Unwrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var oob *treearray.OutOfBoundsError
	if errors.As(err, &oob) {
		return fmt.Errorf("%w: %w", ErrOutOfBounds, err)
	}
	var tm *column.TypeMismatchError
	if errors.As(err, &tm) {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	var arity *table.RowArityError
	if errors.As(err, &arity) {
		return fmt.Errorf("%w: %w", ErrRowArity, err)
	}
	var unknown *table.UnknownRowIDError
	if errors.As(err, &unknown) {
		return fmt.Errorf("%w: %w", ErrUnknownRowID, err)
	}
	var schema *table.SchemaError
	if errors.As(err, &schema) {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	// Defect signals.
	var corrupt *treearray.CorruptHandleError
	if errors.As(err, &corrupt) {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	var length *table.LengthInvariantError
	if errors.As(err, &length) {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	return err
}
