package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rowstore/column"
	"github.com/hupe1980/rowstore/treearray"
	"github.com/hupe1980/rowstore/value"
)

func ledgerSchema() Schema {
	return Schema{
		{Name: "amount", Kind: value.KindInteger},
		{Name: "note", Kind: value.KindText},
	}
}

func TestSchemaValidate(t *testing.T) {
	var se *SchemaError

	_, err := NewPositionalTable(Schema{})
	assert.ErrorAs(t, err, &se)

	_, err = NewPositionalTable(Schema{{Name: "", Kind: value.KindInteger}})
	assert.ErrorAs(t, err, &se)

	_, err = NewPositionalTable(Schema{
		{Name: "a", Kind: value.KindInteger},
		{Name: "a", Kind: value.KindText},
	})
	assert.ErrorAs(t, err, &se)

	_, err = NewPositionalTable(Schema{{Name: "a", Kind: value.KindAbsent}})
	assert.ErrorAs(t, err, &se)
}

func TestPositionalTable(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		tbl, err := NewPositionalTable(ledgerSchema())
		require.NoError(t, err)
		assert.Equal(t, 2, tbl.ColumnCount())
		assert.Equal(t, []string{"amount", "note"}, tbl.ColumnNames())

		require.NoError(t, tbl.InsertRow(0, []value.Value{value.Int(5), value.Text("hi")}))
		assert.Equal(t, 1, tbl.RowCount())

		row, err := tbl.GetRow(0)
		require.NoError(t, err)
		assert.True(t, row[0].Equal(value.Int(5)))
		assert.True(t, row[1].Equal(value.Text("hi")))
	})

	// Wrong arity must fail before any column is touched.
	t.Run("ArityRejected", func(t *testing.T) {
		tbl, err := NewPositionalTable(ledgerSchema())
		require.NoError(t, err)
		require.NoError(t, tbl.InsertRow(0, []value.Value{value.Int(5), value.Text("hi")}))

		err = tbl.InsertRow(0, []value.Value{value.Int(5)})
		var arity *RowArityError
		require.ErrorAs(t, err, &arity)
		assert.Equal(t, 2, arity.Expected)
		assert.Equal(t, 1, arity.Actual)

		assert.Equal(t, 1, tbl.RowCount())
		require.NoError(t, tbl.Validate())
	})

	t.Run("TypeMismatchRejected", func(t *testing.T) {
		tbl, err := NewPositionalTable(ledgerSchema())
		require.NoError(t, err)

		err = tbl.InsertRow(0, []value.Value{value.Text("oops"), value.Text("hi")})
		var tm *column.TypeMismatchError
		require.ErrorAs(t, err, &tm)
		assert.Equal(t, "amount", tm.Column)

		assert.Equal(t, 0, tbl.RowCount())
		require.NoError(t, tbl.Validate())
	})

	t.Run("RemoveShiftsRows", func(t *testing.T) {
		tbl, err := NewPositionalTable(ledgerSchema())
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			_, err := tbl.AppendRow([]value.Value{value.Int(int64(i)), value.Text("r")})
			require.NoError(t, err)
		}

		removed, err := tbl.RemoveRow(1)
		require.NoError(t, err)
		assert.True(t, removed[0].Equal(value.Int(1)))
		assert.Equal(t, 2, tbl.RowCount())

		row, err := tbl.GetRow(1)
		require.NoError(t, err)
		assert.True(t, row[0].Equal(value.Int(2)))
		require.NoError(t, tbl.Validate())
	})

	t.Run("Bounds", func(t *testing.T) {
		tbl, err := NewPositionalTable(ledgerSchema())
		require.NoError(t, err)

		var oob *treearray.OutOfBoundsError
		assert.ErrorAs(t, tbl.InsertRow(1, []value.Value{value.Int(1), value.Text("x")}), &oob)
		_, err = tbl.GetRow(0)
		assert.ErrorAs(t, err, &oob)
		_, err = tbl.RemoveRow(0)
		assert.ErrorAs(t, err, &oob)
		assert.ErrorAs(t, tbl.UpdateRow(0, []value.Value{value.Int(1), value.Text("x")}), &oob)
	})

	t.Run("UpdateRow", func(t *testing.T) {
		tbl, err := NewPositionalTable(ledgerSchema())
		require.NoError(t, err)
		_, err = tbl.AppendRow([]value.Value{value.Int(1), value.Text("a")})
		require.NoError(t, err)

		require.NoError(t, tbl.UpdateRow(0, []value.Value{value.Int(2), value.Absent()}))
		row, err := tbl.GetRow(0)
		require.NoError(t, err)
		assert.True(t, row[0].Equal(value.Int(2)))
		assert.True(t, row[1].IsAbsent())
	})

	t.Run("SwapRows", func(t *testing.T) {
		tbl, err := NewPositionalTable(ledgerSchema())
		require.NoError(t, err)
		_, err = tbl.AppendRow([]value.Value{value.Int(1), value.Text("a")})
		require.NoError(t, err)
		_, err = tbl.AppendRow([]value.Value{value.Int(2), value.Text("b")})
		require.NoError(t, err)

		require.NoError(t, tbl.SwapRows(0, 1))
		row, err := tbl.GetRow(0)
		require.NoError(t, err)
		assert.True(t, row[0].Equal(value.Int(2)))

		var oob *treearray.OutOfBoundsError
		assert.ErrorAs(t, tbl.SwapRows(0, 2), &oob)
		require.NoError(t, tbl.Validate())
	})
}

// TestPositionalTableLengthInvariant drives a mixed sequence of successful
// and failing calls and requires equal column lengths throughout.
func TestPositionalTableLengthInvariant(t *testing.T) {
	tbl, err := NewPositionalTable(ledgerSchema())
	require.NoError(t, err)

	steps := []func() error{
		func() error { return tbl.InsertRow(0, []value.Value{value.Int(1), value.Text("a")}) },
		func() error { return tbl.InsertRow(0, []value.Value{value.Int(2)}) },                      // arity
		func() error { return tbl.InsertRow(9, []value.Value{value.Int(2), value.Text("b")}) },     // bounds
		func() error { return tbl.InsertRow(1, []value.Value{value.Bool(true), value.Text("b")}) }, // type
		func() error { return tbl.InsertRow(1, []value.Value{value.Int(2), value.Text("b")}) },
		func() error { _, err := tbl.RemoveRow(0); return err },
	}
	for i, step := range steps {
		_ = step()
		require.NoError(t, tbl.Validate(), "after step %d", i)
	}
	assert.Equal(t, 1, tbl.RowCount())
}
