package rowstore_test

import (
	"fmt"

	"github.com/hupe1980/rowstore"
	"github.com/hupe1980/rowstore/table"
	"github.com/hupe1980/rowstore/value"
)

func ExampleStore() {
	store := rowstore.NewStore()

	ledger, err := store.CreatePositionalTable("ledger", table.Schema{
		{Name: "amount", Kind: value.KindInteger},
		{Name: "note", Kind: value.KindText},
	})
	if err != nil {
		panic(err)
	}

	if _, err := ledger.AppendRow([]value.Value{value.Int(5), value.Text("coffee")}); err != nil {
		panic(err)
	}
	if err := ledger.InsertRow(0, []value.Value{value.Int(12), value.Text("lunch")}); err != nil {
		panic(err)
	}

	row, err := ledger.GetRow(0)
	if err != nil {
		panic(err)
	}
	amount, _ := row[0].AsInt()
	note, _ := row[1].AsText()
	fmt.Println(ledger.RowCount(), amount, note)
	// Output: 2 12 lunch
}

func ExampleStore_identity() {
	store := rowstore.NewStore()

	accounts, err := store.CreateIdentityTable("accounts", table.Schema{
		{Name: "name", Kind: value.KindText},
	})
	if err != nil {
		panic(err)
	}

	alice, _ := accounts.InsertRow([]value.Value{value.Text("alice")})
	bob, _ := accounts.InsertRow([]value.Value{value.Text("bob")})

	// Removing alice relocates storage, but bob's id stays valid.
	if _, err := accounts.RemoveByID(alice); err != nil {
		panic(err)
	}
	row, err := accounts.GetByID(bob)
	if err != nil {
		panic(err)
	}
	name, _ := row[0].AsText()
	fmt.Println(name)
	// Output: bob
}
