package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueueFIFOOrder(t *testing.T) {
	require := require.New(t)

	q := New[int](4, 0)
	require.True(q.IsEmpty())
	require.Equal(0, q.Length())

	for i := 1; i <= 3; i++ {
		require.True(q.Enqueue(i))
	}
	require.Equal(3, q.Length())

	head, ok := q.Peek()
	require.True(ok)
	require.Equal(1, head)
	require.Equal(3, q.Length())

	for i := 1; i <= 3; i++ {
		item, ok := q.Dequeue()
		require.True(ok)
		require.Equal(i, item)
	}

	_, ok = q.Dequeue()
	require.False(ok)
	_, ok = q.Peek()
	require.False(ok)
	require.True(q.IsEmpty())
}

func TestQueueBound(t *testing.T) {
	require := require.New(t)

	q := New[string](2, 2)
	require.True(q.Enqueue("a"))
	require.True(q.Enqueue("b"))
	require.False(q.Enqueue("c"))
	require.Equal(2, q.Length())

	item, ok := q.Dequeue()
	require.True(ok)
	require.Equal("a", item)
	require.True(q.Enqueue("c"))
}

func TestQueueReset(t *testing.T) {
	require := require.New(t)

	q := New[int](0, 0)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Reset()
	require.True(q.IsEmpty())

	q.Enqueue(7)
	item, ok := q.Dequeue()
	require.True(ok)
	require.Equal(7, item)
}
