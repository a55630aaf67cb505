package table

import (
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/rowstore/column"
	"github.com/hupe1980/rowstore/value"
)

// RowID is the permanent logical identifier of an IdentityTable row.
//
// IDs are issued monotonically per table instance and are never reused,
// even after the issuing row is removed. Callers must treat them as opaque
// handles: no density or ordering guarantee exists beyond uniqueness while
// live and monotonic issuance.
type RowID uint64

// IdentityTable stores rows in physical column slots and addresses them
// through logical RowIDs that survive unrelated insertions and removals.
//
// Removal is O(columns): the last physical row is relocated into the freed
// slot and the slot->id reverse map is updated, so the relocated row keeps
// its id while its physical slot changes.
//
// IdentityTable is not safe for concurrent use.
type IdentityTable struct {
	schema Schema
	cols   []*column.Column

	slots   map[RowID]int // id -> physical slot
	slotIDs []RowID       // physical slot -> id (reverse map)
	live    *roaring64.Bitmap
	nextID  RowID
}

// NewIdentityTable creates an empty table from the given schema.
func NewIdentityTable(schema Schema) (*IdentityTable, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return &IdentityTable{
		schema: slices.Clone(schema),
		cols:   schema.newColumns(),
		slots:  make(map[RowID]int),
		live:   roaring64.New(),
	}, nil
}

// Schema returns a copy of the table's schema.
func (t *IdentityTable) Schema() Schema { return slices.Clone(t.schema) }

// RowCount returns the number of live rows.
func (t *IdentityTable) RowCount() int { return len(t.slotIDs) }

// ColumnCount returns the number of columns.
func (t *IdentityTable) ColumnCount() int { return len(t.cols) }

// ColumnNames returns the column names in declared order.
func (t *IdentityTable) ColumnNames() []string { return t.schema.names() }

// InsertRow appends row to physical storage and returns a freshly issued
// RowID. The row is validated fully before any column is mutated.
func (t *IdentityTable) InsertRow(row []value.Value) (RowID, error) {
	if err := t.schema.validateRow(row); err != nil {
		return 0, err
	}
	for j, c := range t.cols {
		if _, err := c.Push(row[j]); err != nil {
			return 0, err
		}
	}
	id := t.nextID
	t.nextID++
	t.slots[id] = len(t.slotIDs)
	t.slotIDs = append(t.slotIDs, id)
	t.live.Add(uint64(id))
	return id, nil
}

// GetByID resolves id to its current physical slot and returns the row.
func (t *IdentityTable) GetByID(id RowID) ([]value.Value, error) {
	slot, ok := t.slots[id]
	if !ok {
		return nil, &UnknownRowIDError{ID: id}
	}
	return t.readRow(slot)
}

// RemoveByID removes the row for id and returns its values. The removed
// id is terminal: it never resolves again and is never reissued.
func (t *IdentityTable) RemoveByID(id RowID) ([]value.Value, error) {
	slot, ok := t.slots[id]
	if !ok {
		return nil, &UnknownRowIDError{ID: id}
	}
	removed, err := t.readRow(slot)
	if err != nil {
		return nil, err
	}

	last := len(t.slotIDs) - 1
	if slot != last {
		// Swap-removal: relocate the last physical row into the freed
		// slot and point its id at the new slot.
		for _, c := range t.cols {
			v, err := c.Get(last)
			if err != nil {
				return nil, err
			}
			if err := c.Set(slot, v); err != nil {
				return nil, err
			}
		}
		movedID := t.slotIDs[last]
		t.slotIDs[slot] = movedID
		t.slots[movedID] = slot
	}
	for _, c := range t.cols {
		if _, err := c.RemoveAt(last); err != nil {
			return nil, err
		}
	}
	t.slotIDs = t.slotIDs[:last]
	delete(t.slots, id)
	t.live.Remove(uint64(id))
	return removed, nil
}

// UpdateByID overwrites the row for id. The row is validated fully before
// any column is mutated.
func (t *IdentityTable) UpdateByID(id RowID, row []value.Value) error {
	slot, ok := t.slots[id]
	if !ok {
		return &UnknownRowIDError{ID: id}
	}
	if err := t.schema.validateRow(row); err != nil {
		return err
	}
	for j, c := range t.cols {
		if err := c.Set(slot, row[j]); err != nil {
			return err
		}
	}
	return nil
}

// LiveIDs iterates the live RowIDs in ascending order. This is the
// iteration surface for collaborators that serialize identity tables.
func (t *IdentityTable) LiveIDs() iter.Seq[RowID] {
	return func(yield func(RowID) bool) {
		it := t.live.Iterator()
		for it.HasNext() {
			if !yield(RowID(it.Next())) {
				return
			}
		}
	}
}

// Validate checks the cross-column length invariant and the id<->slot
// mapping consistency. A non-nil result indicates a defect in the
// implementation, not a usage error.
func (t *IdentityTable) Validate() error {
	rc := t.RowCount()
	for _, c := range t.cols {
		if c.Len() != rc {
			return &LengthInvariantError{Column: c.Name(), Len: c.Len(), RowCount: rc}
		}
	}
	if len(t.slots) != rc || t.live.GetCardinality() != uint64(rc) {
		return &LengthInvariantError{Column: "", Len: len(t.slots), RowCount: rc}
	}
	for slot, id := range t.slotIDs {
		if got, ok := t.slots[id]; !ok || got != slot {
			return &UnknownRowIDError{ID: id}
		}
	}
	return nil
}

func (t *IdentityTable) readRow(slot int) ([]value.Value, error) {
	row := make([]value.Value, len(t.cols))
	for j, c := range t.cols {
		v, err := c.Get(slot)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}
	return row, nil
}
