package trail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaTrailBasicValueRestoration(t *testing.T) {
	values := []int64{0, 0, 0}
	d := NewDeltaTrail[int64](0, 0, 0)

	d.PushCheckpoint()
	d.SaveValue(0, values[0])
	values[0] = 42

	assert.Equal(t, int64(42), values[0])

	d.Backtrack(values, func(int) {})

	assert.Equal(t, int64(0), values[0])
	assert.True(t, d.Empty())
}

func TestDeltaTrailDirtyIndexCleanup(t *testing.T) {
	flags := []int{-1, -1, -1, -1, -1, -1}
	d := NewDeltaTrail[int64](0, 0, 0)

	d.PushCheckpoint()
	d.MarkTouched(5)
	flags[5] = 1
	d.MarkTouched(2)
	flags[2] = 1

	d.Backtrack(nil, func(index int) {
		flags[index] = -1
	})

	assert.Equal(t, -1, flags[5])
	assert.Equal(t, -1, flags[2])
	assert.Equal(t, -1, flags[0])
}

// TestDeltaTrailNestedCheckpoints mirrors scenario S3.
func TestDeltaTrailNestedCheckpoints(t *testing.T) {
	values := []int64{0, 10, 20, 30, 40}
	d := NewDeltaTrail[int64](0, 0, 0)

	d.PushCheckpoint() // CP1
	d.SaveValue(0, values[0])
	values[0] = 10

	d.PushCheckpoint() // CP2
	d.SaveValue(0, values[0])
	values[0] = 20

	require.Equal(t, 2, d.Depth())

	d.Backtrack(values, func(int) {})
	assert.Equal(t, int64(10), values[0])
	assert.Equal(t, 1, d.Depth())

	d.Backtrack(values, func(int) {})
	assert.Equal(t, int64(0), values[0])
	assert.Equal(t, 0, d.Depth())
}

// TestDeltaTrailCommitCheckpoint mirrors scenario S4.
func TestDeltaTrailCommitCheckpoint(t *testing.T) {
	values := []int64{0, 10, 20, 30, 40}
	d := NewDeltaTrail[int64](0, 0, 0)

	d.PushCheckpoint() // CP1
	d.SaveValue(0, values[0])
	values[0] = 10

	d.PushCheckpoint() // CP2
	d.SaveValue(0, values[0])
	values[0] = 20

	d.CommitCheckpoint()

	require.Equal(t, 1, d.Depth())
	assert.Equal(t, int64(20), values[0])

	d.Backtrack(values, func(int) {})
	assert.Equal(t, int64(0), values[0])
	assert.Equal(t, 0, d.Depth())
}

func TestDeltaTrailBacktrackReset(t *testing.T) {
	flags := []int{-1, -1, -1}
	d := NewDeltaTrail[int](0, 0, 0)

	d.PushCheckpoint()
	d.MarkTouched(1)
	flags[1] = 7

	d.BacktrackReset(nil, flags, -1)
	assert.Equal(t, -1, flags[1])
}

func TestDeltaTrailBacktrackNoCheckpointIsNoop(t *testing.T) {
	d := NewDeltaTrail[int64](0, 0, 0)
	assert.NotPanics(t, func() {
		d.Backtrack(nil, func(int) {})
	})
}

func TestDeltaTrailCommitNoCheckpointIsNoop(t *testing.T) {
	d := NewDeltaTrail[int64](0, 0, 0)
	assert.NotPanics(t, d.CommitCheckpoint)
}

func TestDeltaTrailMemoryTracking(t *testing.T) {
	d := NewDeltaTrail[int64](100, 100, 100)
	assert.Equal(t, 0, d.UsedMemoryBytes())
	assert.Greater(t, d.ReservedMemoryBytes(), 0)

	reserved := d.ReservedMemoryBytes()

	d.PushCheckpoint()
	d.SaveValue(0, int64(50))
	d.MarkTouched(1)

	assert.Greater(t, d.UsedMemoryBytes(), 0)
	assert.Equal(t, reserved, d.ReservedMemoryBytes())

	d.Backtrack([]int64{0, 0}, func(int) {})
	assert.Equal(t, 0, d.UsedMemoryBytes())
}

func TestDeltaTrailHandlesCustomStructs(t *testing.T) {
	type domain struct{ min, max int }
	domains := []domain{{0, 10}}

	d := NewDeltaTrail[domain](10, 0, 10)

	d.PushCheckpoint()
	d.SaveValue(0, domains[0])
	domains[0] = domain{min: 5, max: 10}

	assert.Equal(t, 5, domains[0].min)

	d.Backtrack(domains, func(int) {})
	assert.Equal(t, domain{0, 10}, domains[0])
}

func TestDeltaTrailClear(t *testing.T) {
	d := NewDeltaTrail[int64](0, 0, 0)
	d.PushCheckpoint()
	d.SaveValue(0, int64(1))
	d.MarkTouched(2)

	d.Clear()
	assert.True(t, d.Empty())
	assert.Equal(t, 0, d.UsedMemoryBytes())
}
