package rowstore

import (
	"iter"
	"time"

	"github.com/hupe1980/rowstore/table"
	"github.com/hupe1980/rowstore/value"
)

// Compile-time checks to ensure both wrappers satisfy Table.
var _ Table = (*PositionalTable)(nil)
var _ Table = (*IdentityTable)(nil)

// PositionalTable wraps a table.PositionalTable with the store's logging,
// metrics, and error translation. Rows are addressed by their current
// position.
type PositionalTable struct {
	name    string
	inner   *table.PositionalTable
	logger  *Logger
	metrics MetricsCollector
}

// Name returns the name the table is registered under.
func (t *PositionalTable) Name() string { return t.name }

// Schema returns a copy of the table's schema.
func (t *PositionalTable) Schema() table.Schema { return t.inner.Schema() }

// RowCount returns the number of rows.
func (t *PositionalTable) RowCount() int { return t.inner.RowCount() }

// ColumnCount returns the number of columns.
func (t *PositionalTable) ColumnCount() int { return t.inner.ColumnCount() }

// ColumnNames returns the column names in declared order.
func (t *PositionalTable) ColumnNames() []string { return t.inner.ColumnNames() }

// InsertRow inserts row so it becomes position i.
func (t *PositionalTable) InsertRow(i int, row []value.Value) error {
	start := time.Now()
	err := translateError(t.inner.InsertRow(i, row))
	t.metrics.RecordInsert(time.Since(start), err)
	if err != nil {
		t.logger.Debug("insert row failed", "position", i, "error", err)
	}
	return err
}

// AppendRow appends row and returns its position.
func (t *PositionalTable) AppendRow(row []value.Value) (int, error) {
	start := time.Now()
	i, err := t.inner.AppendRow(row)
	err = translateError(err)
	t.metrics.RecordInsert(time.Since(start), err)
	if err != nil {
		t.logger.Debug("append row failed", "error", err)
	}
	return i, err
}

// RemoveRow removes and returns the row at position i.
func (t *PositionalTable) RemoveRow(i int) ([]value.Value, error) {
	start := time.Now()
	row, err := t.inner.RemoveRow(i)
	err = translateError(err)
	t.metrics.RecordRemove(time.Since(start), err)
	if err != nil {
		t.logger.Debug("remove row failed", "position", i, "error", err)
	}
	return row, err
}

// GetRow returns one value per column at position i.
func (t *PositionalTable) GetRow(i int) ([]value.Value, error) {
	start := time.Now()
	row, err := t.inner.GetRow(i)
	err = translateError(err)
	t.metrics.RecordGet(time.Since(start), err)
	return row, err
}

// UpdateRow overwrites the row at position i.
func (t *PositionalTable) UpdateRow(i int, row []value.Value) error {
	start := time.Now()
	err := translateError(t.inner.UpdateRow(i, row))
	t.metrics.RecordUpdate(time.Since(start), err)
	return err
}

// SwapRows exchanges the rows at positions a and b.
func (t *PositionalTable) SwapRows(a, b int) error {
	return translateError(t.inner.SwapRows(a, b))
}

// Validate checks the cross-column length invariant.
func (t *PositionalTable) Validate() error {
	return translateError(t.inner.Validate())
}

// IdentityTable wraps a table.IdentityTable with the store's logging,
// metrics, and error translation. Rows are addressed by a permanent
// logical id.
type IdentityTable struct {
	name    string
	inner   *table.IdentityTable
	logger  *Logger
	metrics MetricsCollector
}

// Name returns the name the table is registered under.
func (t *IdentityTable) Name() string { return t.name }

// Schema returns a copy of the table's schema.
func (t *IdentityTable) Schema() table.Schema { return t.inner.Schema() }

// RowCount returns the number of live rows.
func (t *IdentityTable) RowCount() int { return t.inner.RowCount() }

// ColumnCount returns the number of columns.
func (t *IdentityTable) ColumnCount() int { return t.inner.ColumnCount() }

// ColumnNames returns the column names in declared order.
func (t *IdentityTable) ColumnNames() []string { return t.inner.ColumnNames() }

// InsertRow appends row and returns its freshly issued id.
func (t *IdentityTable) InsertRow(row []value.Value) (table.RowID, error) {
	start := time.Now()
	id, err := t.inner.InsertRow(row)
	err = translateError(err)
	t.metrics.RecordInsert(time.Since(start), err)
	if err != nil {
		t.logger.Debug("insert row failed", "error", err)
	}
	return id, err
}

// GetByID returns the row for id.
func (t *IdentityTable) GetByID(id table.RowID) ([]value.Value, error) {
	start := time.Now()
	row, err := t.inner.GetByID(id)
	err = translateError(err)
	t.metrics.RecordGet(time.Since(start), err)
	return row, err
}

// RemoveByID removes and returns the row for id.
func (t *IdentityTable) RemoveByID(id table.RowID) ([]value.Value, error) {
	start := time.Now()
	row, err := t.inner.RemoveByID(id)
	err = translateError(err)
	t.metrics.RecordRemove(time.Since(start), err)
	if err != nil {
		t.logger.Debug("remove row failed", "row_id", uint64(id), "error", err)
	}
	return row, err
}

// UpdateByID overwrites the row for id.
func (t *IdentityTable) UpdateByID(id table.RowID, row []value.Value) error {
	start := time.Now()
	err := translateError(t.inner.UpdateByID(id, row))
	t.metrics.RecordUpdate(time.Since(start), err)
	return err
}

// LiveIDs iterates the live row ids in ascending order.
func (t *IdentityTable) LiveIDs() iter.Seq[table.RowID] {
	return t.inner.LiveIDs()
}

// Validate checks the cross-column length invariant and the id mapping.
func (t *IdentityTable) Validate() error {
	return translateError(t.inner.Validate())
}
