package rowstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rowstore/table"
	"github.com/hupe1980/rowstore/value"
)

func ledgerSchema() table.Schema {
	return table.Schema{
		{Name: "amount", Kind: value.KindInteger},
		{Name: "note", Kind: value.KindText},
	}
}

func TestStore(t *testing.T) {
	t.Run("Registry", func(t *testing.T) {
		store := NewStore()

		pt, err := store.CreatePositionalTable("ledger", ledgerSchema())
		require.NoError(t, err)
		assert.Equal(t, "ledger", pt.Name())

		_, err = store.CreateIdentityTable("ledger", ledgerSchema())
		assert.ErrorIs(t, err, ErrTableExists)

		it, err := store.CreateIdentityTable("accounts", ledgerSchema())
		require.NoError(t, err)
		assert.Equal(t, "accounts", it.Name())

		assert.Equal(t, 2, store.Len())
		assert.Equal(t, []string{"accounts", "ledger"}, store.Names())

		got, err := store.PositionalTable("ledger")
		require.NoError(t, err)
		assert.Same(t, pt, got)

		_, err = store.PositionalTable("accounts")
		assert.ErrorIs(t, err, ErrTableKind)
		_, err = store.IdentityTable("missing")
		assert.ErrorIs(t, err, ErrTableNotFound)

		require.NoError(t, store.Drop("ledger"))
		assert.ErrorIs(t, store.Drop("ledger"), ErrTableNotFound)
	})

	t.Run("InvalidSchema", func(t *testing.T) {
		store := NewStore()
		_, err := store.CreatePositionalTable("bad", table.Schema{})
		assert.ErrorIs(t, err, ErrInvalidSchema)
	})

	t.Run("ErrorTranslation", func(t *testing.T) {
		store := NewStore()
		pt, err := store.CreatePositionalTable("ledger", ledgerSchema())
		require.NoError(t, err)

		assert.ErrorIs(t, pt.InsertRow(5, []value.Value{value.Int(1), value.Text("x")}), ErrOutOfBounds)
		assert.ErrorIs(t, pt.InsertRow(0, []value.Value{value.Int(1)}), ErrRowArity)
		assert.ErrorIs(t, pt.InsertRow(0, []value.Value{value.Text("x"), value.Text("y")}), ErrTypeMismatch)

		it, err := store.CreateIdentityTable("accounts", ledgerSchema())
		require.NoError(t, err)
		_, err = it.GetByID(7)
		assert.ErrorIs(t, err, ErrUnknownRowID)
	})

	t.Run("MetricsCollected", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		store := NewStore(WithMetrics(metrics))

		it, err := store.CreateIdentityTable("accounts", ledgerSchema())
		require.NoError(t, err)

		id, err := it.InsertRow([]value.Value{value.Int(1), value.Text("a")})
		require.NoError(t, err)
		_, err = it.GetByID(id)
		require.NoError(t, err)
		_, err = it.GetByID(999)
		require.Error(t, err)
		_, err = it.RemoveByID(id)
		require.NoError(t, err)

		stats := metrics.GetStats()
		assert.Equal(t, int64(1), stats.InsertCount)
		assert.Equal(t, int64(2), stats.GetCount)
		assert.Equal(t, int64(1), stats.GetErrors)
		assert.Equal(t, int64(1), stats.RemoveCount)
	})

	t.Run("FacadeRoundTrip", func(t *testing.T) {
		store := NewStore()
		pt, err := store.CreatePositionalTable("ledger", ledgerSchema())
		require.NoError(t, err)

		i, err := pt.AppendRow([]value.Value{value.Int(5), value.Text("hi")})
		require.NoError(t, err)
		assert.Equal(t, 0, i)

		require.NoError(t, pt.UpdateRow(0, []value.Value{value.Int(6), value.Absent()}))

		row, err := pt.GetRow(0)
		require.NoError(t, err)
		assert.True(t, row[0].Equal(value.Int(6)))

		removed, err := pt.RemoveRow(0)
		require.NoError(t, err)
		assert.True(t, removed[0].Equal(value.Int(6)))
		assert.Equal(t, 0, pt.RowCount())
		require.NoError(t, pt.Validate())
	})
}
