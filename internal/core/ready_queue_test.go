package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadyQueue_FIFO(t *testing.T) {
	var q ReadyQueue
	q.Enqueue(2)
	q.Enqueue(0)
	q.Enqueue(1)

	got := make([]int, 0, 3)
	for q.Len() > 0 {
		i, ok := q.Dequeue()
		assert.True(t, ok)
		got = append(got, i)
	}
	assert.Equal(t, []int{2, 0, 1}, got)
}

func TestReadyQueue_Empty_DequeueFails(t *testing.T) {
	var q ReadyQueue
	_, ok := q.Dequeue()
	assert.False(t, ok)
}
