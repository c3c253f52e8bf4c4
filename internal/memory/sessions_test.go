package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_Lifecycle(t *testing.T) {
	counter := 0
	previous := NewSessionID
	NewSessionID = func() string {
		counter++
		return fmt.Sprintf("session-%d", counter)
	}
	t.Cleanup(func() { NewSessionID = previous })

	sessions := NewSessions()

	id, allocator, err := sessions.Create(32)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
	assert.Equal(t, 32, allocator.Capacity())

	got, ok := sessions.Get(id)
	require.True(t, ok)
	assert.Same(t, allocator, got)

	other, _, err := sessions.Create(8)
	require.NoError(t, err)
	assert.Equal(t, "session-2", other)
	assert.Equal(t, 2, sessions.Len())

	assert.True(t, sessions.Delete(id))
	assert.False(t, sessions.Delete(id))
	_, ok = sessions.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 1, sessions.Len())
}

func TestSessions_CreateRejectsBadCapacity(t *testing.T) {
	sessions := NewSessions()

	_, _, err := sessions.Create(0)

	assert.ErrorIs(t, err, ErrInvalidCapacity)
	assert.Zero(t, sessions.Len())
}

func TestSessions_SpacesAreIndependent(t *testing.T) {
	sessions := NewSessions()
	idA, a, err := sessions.Create(10)
	require.NoError(t, err)
	idB, b, err := sessions.Create(10)
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)

	_, err = a.Allocate("P1", 10, FirstFit)
	require.NoError(t, err)
	_, err = b.Allocate("P1", 10, FirstFit)
	require.NoError(t, err)
}
