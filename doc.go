// Package rowstore provides an embeddable, in-memory row store for typed
// records, built on an order-statistics balanced tree that gives
// logarithmic-time random access, insertion, and removal at arbitrary
// positions.
//
// Two table variants cover the two notions of row identity:
//
//   - PositionalTable: rows are addressed by their current position;
//     removing a row shifts every later row down by one.
//   - IdentityTable: rows own a permanent logical id that survives
//     unrelated insertions and removals, at the cost of stable physical
//     iteration order.
//
// The Store type registers tables under names and wraps their operations
// with structured logging, metrics collection, and unified error
// translation:
//
//	store := rowstore.NewStore()
//	tbl, err := store.CreatePositionalTable("ledger", table.Schema{
//	    {Name: "amount", Kind: value.KindInteger},
//	    {Name: "note", Kind: value.KindText},
//	})
//	if err != nil { ... }
//	if err := tbl.InsertRow(0, []value.Value{value.Int(5), value.Text("hi")}); err != nil { ... }
//
// The underlying table, column, and tree types in their own packages carry
// no synchronization and may be used directly when the facade is not
// wanted.
package rowstore
