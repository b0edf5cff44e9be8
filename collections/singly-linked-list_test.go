package collections

import (
	"errors"
	"testing"

	"github.com/Invicton-Labs/go-stackerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainLength counts nodes by following next links.
func chainLength[T comparable](l *SinglyLinkedList[T]) int {
	n := 0
	for curr := l.head; curr != nil; curr = curr.next {
		n++
		if n > l.length+1 {
			break
		}
	}
	return n
}

func requireConsistent[T comparable](t *testing.T, l *SinglyLinkedList[T]) {
	t.Helper()
	require.Equal(t, l.Len(), chainLength(l), "cached length must match the chain")
	require.Equal(t, l.Len() == 0, l.IsEmpty())
}

func TestNewSinglyLinkedList(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		l := NewSinglyLinkedList[int](nil)
		assert.True(t, l.IsEmpty())
		assert.Equal(t, 0, l.Len())
		assert.Equal(t, "[]", l.String())
	})

	t.Run("Empty", func(t *testing.T) {
		l := NewSinglyLinkedList([]string{})
		assert.True(t, l.IsEmpty())
		assert.Equal(t, "[]", l.String())
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2, 3})
		assert.False(t, l.IsEmpty())
		assert.Equal(t, 3, l.Len())
		assert.Equal(t, []int{1, 2, 3}, l.Values())
		assert.Equal(t, "[1 -> 2 -> 3]", l.String())
		requireConsistent(t, l)
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var l SinglyLinkedList[int]
		assert.True(t, l.IsEmpty())
		l.Append(4)
		assert.Equal(t, "[4]", l.String())
	})
}

func TestInsert(t *testing.T) {
	t.Run("Scenario", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2, 10, 200})

		require.NoError(t, l.Insert(2, 300))
		assert.Equal(t, "[1 -> 2 -> 300 -> 10 -> 200]", l.String())

		require.NoError(t, l.Insert(5, -1))
		assert.Equal(t, "[1 -> 2 -> 300 -> 10 -> 200 -> -1]", l.String())

		err := l.Insert(100, 2)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, 6, l.Len())

		require.NoError(t, l.Insert(0, 10))
		assert.Equal(t, "[10 -> 1 -> 2 -> 300 -> 10 -> 200 -> -1]", l.String())
		requireConsistent(t, l)
	})

	t.Run("HeadIncrementsOnce", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1})
		require.NoError(t, l.Insert(0, 0))
		assert.Equal(t, 2, l.Len())
		requireConsistent(t, l)
	})

	t.Run("IntoEmpty", func(t *testing.T) {
		l := NewSinglyLinkedList[int](nil)
		require.NoError(t, l.Insert(0, 7))
		assert.Equal(t, "[7]", l.String())
		require.ErrorIs(t, l.Insert(2, 8), ErrIndexOutOfRange)
		requireConsistent(t, l)
	})

	t.Run("Negative", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2})
		err := l.Insert(-1, 5)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, "[1 -> 2]", l.String())
	})

	t.Run("Boundaries", func(t *testing.T) {
		l := NewSinglyLinkedList([]string{"a", "b"})
		require.NoError(t, l.Insert(l.Len(), "c"))
		assert.Equal(t, "[a -> b -> c]", l.String())
		require.ErrorIs(t, l.Insert(l.Len()+1, "d"), ErrIndexOutOfRange)
		requireConsistent(t, l)
	})

	t.Run("ThenIndex", func(t *testing.T) {
		for i := 0; i <= 4; i++ {
			l := NewSinglyLinkedList([]int{1, 2, 3, 4})
			require.NoError(t, l.Insert(i, 99))
			idx, err := l.Index(99)
			require.NoError(t, err)
			assert.Equal(t, i, idx)
		}

		l := NewSinglyLinkedList([]int{5, 6, 7})
		require.NoError(t, l.Insert(2, 5))
		idx, err := l.Index(5)
		require.NoError(t, err)
		assert.LessOrEqual(t, idx, 2)
	})
}

func TestPop(t *testing.T) {
	t.Run("Scenario", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2, 10, 200})

		v, err := l.Pop(1)
		require.NoError(t, err)
		assert.Equal(t, 2, v)

		v, err = l.Pop(2)
		require.NoError(t, err)
		assert.Equal(t, 200, v)

		_, err = l.Pop(148)
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		v, err = l.Pop(0)
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		assert.Equal(t, "[10]", l.String())
		requireConsistent(t, l)
	})

	t.Run("Empty", func(t *testing.T) {
		l := NewSinglyLinkedList[int](nil)
		for _, i := range []int{0, 1, -1} {
			_, err := l.Pop(i)
			require.ErrorIs(t, err, ErrIndexOutOfRange)
		}
		assert.Equal(t, 0, l.Len())
	})

	t.Run("AtLength", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2, 3})
		_, err := l.Pop(l.Len())
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		var serr stackerr.Error
		require.True(t, errors.As(err, &serr))
		fields := serr.Fields()
		assert.Equal(t, "pop", fields["op"])
		assert.Equal(t, 3, fields["index"])
		assert.Equal(t, 3, fields["length"])
	})

	t.Run("Last", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2, 3})
		v, err := l.Pop(2)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		l.Append(4)
		assert.Equal(t, "[1 -> 2 -> 4]", l.String())
		requireConsistent(t, l)
	})

	t.Run("UntilEmpty", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2})
		_, err := l.Pop(0)
		require.NoError(t, err)
		_, err = l.Pop(0)
		require.NoError(t, err)
		assert.True(t, l.IsEmpty())
		assert.Equal(t, "[]", l.String())
	})

	t.Run("InverseOfInsert", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{4, 5, 6})
		v, err := l.Pop(0)
		require.NoError(t, err)
		require.NoError(t, l.Insert(0, v))
		assert.Equal(t, []int{4, 5, 6}, l.Values())
		requireConsistent(t, l)
	})
}

func TestIndex(t *testing.T) {
	l := NewSinglyLinkedList([]int{1, 2, 1, 3, 2, 1})

	idx, err := l.Index(1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = l.Index(3)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	idx, err = l.Index(2)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = l.Index(148)
	require.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrIndexOutOfRange)
	var serr stackerr.Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 148, serr.Fields()["item"])

	_, err = NewSinglyLinkedList[int](nil).Index(0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSet(t *testing.T) {
	t.Run("EveryPosition", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2, 3})
		require.NoError(t, l.Set(0, 100))
		require.NoError(t, l.Set(1, 200))
		require.NoError(t, l.Set(2, 300))
		assert.Equal(t, "[100 -> 200 -> 300]", l.String())
		assert.Equal(t, 3, l.Len())
		requireConsistent(t, l)
	})

	t.Run("Interior", func(t *testing.T) {
		l := NewSinglyLinkedList([]string{"a", "b", "c", "d", "e"})
		require.NoError(t, l.Set(3, "x"))
		assert.Equal(t, []string{"a", "b", "c", "x", "e"}, l.Values())
		requireConsistent(t, l)
	})

	t.Run("ReplacesNode", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2, 3})
		old := l.head.next
		require.NoError(t, l.Set(1, 5))
		assert.NotSame(t, old, l.head.next)
		assert.Nil(t, old.next)
		assert.Same(t, l.head.next.next, l.nodeAt(2))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		l := NewSinglyLinkedList([]int{1, 2, 3})
		require.ErrorIs(t, l.Set(3, 9), ErrIndexOutOfRange)
		require.ErrorIs(t, l.Set(-1, 9), ErrIndexOutOfRange)
		require.ErrorIs(t, NewSinglyLinkedList[int](nil).Set(0, 9), ErrIndexOutOfRange)
		assert.Equal(t, "[1 -> 2 -> 3]", l.String())
	})
}

func TestGet(t *testing.T) {
	l := NewSinglyLinkedList([]string{"x", "y", "z"})
	for i, want := range []string{"x", "y", "z"} {
		got, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := l.Get(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.Get(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRangeAndClear(t *testing.T) {
	l := NewSinglyLinkedList([]int{3, 4, 5, 6})

	var seen []int
	l.Range(func(index int, item int) bool {
		seen = append(seen, index*10+item)
		return index < 2
	})
	assert.Equal(t, []int{3, 14, 25}, seen)

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "[]", l.String())
	requireConsistent(t, l)
}

func TestLengthInvariant(t *testing.T) {
	l := NewSinglyLinkedList([]int{1, 2, 3})
	expected := 3
	ops := []struct {
		insert bool
		index  int
	}{
		{true, 0}, {true, 4}, {false, 10}, {false, 2}, {true, 9},
		{false, 0}, {true, 3}, {false, -1}, {false, 3}, {true, 1},
	}
	for i, op := range ops {
		var err error
		if op.insert {
			err = l.Insert(op.index, i)
			if err == nil {
				expected++
			}
		} else {
			_, err = l.Pop(op.index)
			if err == nil {
				expected--
			}
		}
		if err != nil {
			require.ErrorIs(t, err, ErrIndexOutOfRange)
		}
		require.Equal(t, expected, l.Len())
		requireConsistent(t, l)
	}
}
