package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"serpent/game/types"
)

func TestAdvanceHonorsMovementAllowed(t *testing.T) {
	mm := NewMovementManager(0.375, 0)
	mm.Steer(types.Right)

	for i := 0; i < 10; i++ {
		assert.False(t, mm.Advance(1.0, false))
	}
	assert.Equal(t, 0.0, mm.Timer())

	assert.True(t, mm.Advance(0.016, true))
}

func TestAdvanceNeedsPendingDirection(t *testing.T) {
	mm := NewMovementManager(0.375, 0)

	assert.False(t, mm.Advance(0.5, true))
	assert.True(t, mm.Timer() < 0)

	mm.Steer(types.Up)
	assert.True(t, mm.Advance(0, true))
}

func TestCommitRestartsTimer(t *testing.T) {
	mm := NewMovementManager(0.375, 0)
	mm.Steer(types.Down)
	assert.True(t, mm.Advance(0.1, true))

	assert.Equal(t, types.Down, mm.Commit())
	assert.Equal(t, types.Down, mm.Committed())
	assert.Equal(t, 0.375, mm.Timer())

	assert.False(t, mm.Advance(0.25, true))
	assert.True(t, mm.Advance(0.125, true))

	mm.Halt()
	assert.Equal(t, 0.375, mm.Timer())
	assert.Equal(t, types.Down, mm.Committed())
}

func TestSteerRejectsReversal(t *testing.T) {
	cases := []types.Direction{types.Up, types.Down, types.Left, types.Right}

	for _, committed := range cases {
		t.Run(committed.String(), func(t *testing.T) {
			mm := NewMovementManager(0.375, 0)
			mm.Steer(committed)
			mm.Commit()

			assert.False(t, mm.Steer(committed.Opposite()))
			assert.Equal(t, committed, mm.Pending())
			assert.False(t, mm.Steer(types.None))
			assert.Equal(t, committed, mm.Pending())

			for _, d := range cases {
				if d == committed.Opposite() {
					continue
				}
				assert.True(t, mm.Steer(d))
				assert.Equal(t, d, mm.Pending())
			}
		})
	}
}

func TestMovementReset(t *testing.T) {
	mm := NewMovementManager(0.375, 0.2)
	assert.Equal(t, 0.2, mm.Timer())

	mm.Steer(types.Left)
	mm.Advance(0.3, true)
	mm.Commit()
	mm.Reset()

	assert.Equal(t, 0.2, mm.Timer())
	assert.Equal(t, types.None, mm.Pending())
	assert.Equal(t, types.None, mm.Committed())
	assert.Equal(t, 0.375, mm.Interval())
}
