package workload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-simulator/internal/memory"
)

const capacityScenario = `
capacity: 100
strategy: first-fit
operations:
  - op: allocate
    pid: P1
    size: 30
  - op: allocate
    pid: P2
    size: 20
  - op: deallocate
    pid: P1
  - op: allocate
    pid: P3
    size: 25
    strategy: best
  - op: allocate
    pid: P2
    size: 5
  - op: reinitialize
    capacity: 10
`

func TestMemoryScript_Replay(t *testing.T) {
	script, err := DecodeMemoryScript(strings.NewReader(capacityScenario))
	require.NoError(t, err)
	require.Equal(t, 100, script.Capacity)

	allocator, err := memory.New(script.Capacity)
	require.NoError(t, err)

	outcomes := script.Replay(allocator, memory.WorstFit)
	require.Len(t, outcomes, 6)

	// THEN the script strategy beats the default and the operation strategy beats both
	assert.Equal(t, memory.FirstFit, outcomes[0].Strategy)
	assert.Equal(t, memory.BestFit, outcomes[3].Strategy)

	assert.Equal(t, memory.Allocation{PID: "P1", Start: 0, Size: 30}, outcomes[0].Allocation)
	assert.Equal(t, memory.Allocation{PID: "P2", Start: 30, Size: 20}, outcomes[1].Allocation)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, memory.Allocation{PID: "P3", Start: 0, Size: 25}, outcomes[3].Allocation)
	assert.ErrorIs(t, outcomes[4].Err, memory.ErrDuplicateProcess)
	assert.ErrorIs(t, outcomes[5].Err, memory.ErrCannotShrinkBelowUsedMemory)

	// failures do not change the space
	assert.Equal(t, 45, allocator.Usage().Used)
	assert.Equal(t, 100, allocator.Capacity())
}

func TestMemoryScript_DefaultStrategyApplies(t *testing.T) {
	script, err := DecodeMemoryScript(strings.NewReader(`
operations:
  - op: allocate
    pid: A
    size: 2
`))
	require.NoError(t, err)
	allocator, err := memory.New(4)
	require.NoError(t, err)

	outcomes := script.Replay(allocator, memory.WorstFit)

	assert.Equal(t, memory.WorstFit, outcomes[0].Strategy)
}

func TestDecodeMemoryScript_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown op", "operations:\n  - op: compact\n", "unknown op"},
		{"unknown field", "operations:\n  - op: allocate\n    bytes: 4\n", "bytes"},
		{"unknown operation strategy", "operations:\n  - op: allocate\n    pid: A\n    size: 1\n    strategy: next-fit\n", "unknown placement strategy"},
		{"unknown script strategy", "strategy: buddy\noperations:\n  - op: deallocate\n    pid: A\n", "unknown placement strategy"},
		{"no operations", "capacity: 8\n", "no operations"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeMemoryScript(strings.NewReader(tc.yaml))
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestMemoryOperation_String(t *testing.T) {
	assert.Equal(t, "allocate A size=3", MemoryOperation{Op: OpAllocate, PID: "A", Size: 3}.String())
	assert.Equal(t, "deallocate A", MemoryOperation{Op: OpDeallocate, PID: "A"}.String())
	assert.Equal(t, "reinitialize capacity=9", MemoryOperation{Op: OpReinitialize, Capacity: 9}.String())
}
