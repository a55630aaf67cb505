package table

import (
	"github.com/hupe1980/rowstore/column"
	"github.com/hupe1980/rowstore/value"
)

// ColumnSpec declares one column: its name and its cell kind.
type ColumnSpec struct {
	Name string
	Kind value.Kind
}

// Schema declares the columns of a table, in order.
type Schema []ColumnSpec

// Validate checks that the schema has at least one column, that names are
// non-empty and unique, and that every kind is a declarable cell kind.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return &SchemaError{Reason: "no columns declared"}
	}
	seen := make(map[string]struct{}, len(s))
	for _, spec := range s {
		if spec.Name == "" {
			return &SchemaError{Reason: "has an unnamed column"}
		}
		if _, dup := seen[spec.Name]; dup {
			return &SchemaError{Column: spec.Name, Reason: "declared twice"}
		}
		seen[spec.Name] = struct{}{}
		if !spec.Kind.Cell() {
			return &SchemaError{Column: spec.Name, Reason: "has non-cell kind " + spec.Kind.String()}
		}
	}
	return nil
}

// validateRow checks arity and per-column kinds without touching storage.
// Absent is accepted by every column.
func (s Schema) validateRow(row []value.Value) error {
	if len(row) != len(s) {
		return &RowArityError{Expected: len(s), Actual: len(row)}
	}
	for j, spec := range s {
		if k := row[j].Kind; k != spec.Kind && k != value.KindAbsent {
			return &column.TypeMismatchError{Column: spec.Name, Expected: spec.Kind, Actual: k}
		}
	}
	return nil
}

// newColumns materializes one empty column per spec.
func (s Schema) newColumns() []*column.Column {
	cols := make([]*column.Column, len(s))
	for j, spec := range s {
		cols[j] = column.New(spec.Name, spec.Kind)
	}
	return cols
}

// names returns the declared column names in order.
func (s Schema) names() []string {
	out := make([]string, len(s))
	for j, spec := range s {
		out[j] = spec.Name
	}
	return out
}
