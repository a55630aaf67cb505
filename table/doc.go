// Package table provides two row-table variants over typed columns.
//
// PositionalTable addresses rows by their current position: removing a row
// shifts every later row down by one, and all columns always move together.
//
// IdentityTable addresses rows by a logical RowID that stays valid for the
// row's lifetime regardless of where the row is physically stored. Removal
// relocates the last physical row into the freed slot (swap-removal), so
// physical iteration order is not stable; callers needing fixed order
// should use a PositionalTable.
//
// Both variants validate a row fully (arity, then per-column kind) before
// mutating any column, so a failed call never leaves columns with unequal
// lengths.
package table
