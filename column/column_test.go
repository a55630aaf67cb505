package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rowstore/treearray"
	"github.com/hupe1980/rowstore/value"
)

func TestColumn(t *testing.T) {
	t.Run("PushAndGet", func(t *testing.T) {
		c := New("amount", value.KindInteger)
		assert.Equal(t, "amount", c.Name())
		assert.Equal(t, value.KindInteger, c.Kind())

		i, err := c.Push(value.Int(5))
		require.NoError(t, err)
		assert.Equal(t, 0, i)

		got, err := c.Get(0)
		require.NoError(t, err)
		assert.True(t, got.Equal(value.Int(5)))
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		c := New("amount", value.KindInteger)

		_, err := c.Push(value.Text("nope"))
		var tm *TypeMismatchError
		require.ErrorAs(t, err, &tm)
		assert.Equal(t, "amount", tm.Column)
		assert.Equal(t, value.KindInteger, tm.Expected)
		assert.Equal(t, value.KindText, tm.Actual)

		// The failed call must not mutate.
		assert.Equal(t, 0, c.Len())

		assert.Error(t, c.InsertAt(0, value.Bool(true)))
		_, err = c.Push(value.Int(1))
		require.NoError(t, err)
		assert.Error(t, c.Set(0, value.Float(1.5)))
	})

	t.Run("AbsentIsAlwaysAccepted", func(t *testing.T) {
		c := New("note", value.KindText)
		_, err := c.Push(value.Absent())
		require.NoError(t, err)

		got, err := c.Get(0)
		require.NoError(t, err)
		assert.True(t, got.IsAbsent())
	})

	t.Run("InsertRemoveShift", func(t *testing.T) {
		c := New("name", value.KindText)
		for _, s := range []string{"a", "c"} {
			_, err := c.Push(value.Text(s))
			require.NoError(t, err)
		}
		require.NoError(t, c.InsertAt(1, value.Text("b")))

		removed, err := c.RemoveAt(0)
		require.NoError(t, err)
		assert.True(t, removed.Equal(value.Text("a")))
		assert.Equal(t, []value.Value{value.Text("b"), value.Text("c")}, c.Values())
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		c := New("x", value.KindFloat)
		var oob *treearray.OutOfBoundsError

		_, err := c.Get(0)
		assert.ErrorAs(t, err, &oob)
		_, err = c.RemoveAt(0)
		assert.ErrorAs(t, err, &oob)
		assert.ErrorAs(t, c.InsertAt(1, value.Float(1)), &oob)
	})
}
