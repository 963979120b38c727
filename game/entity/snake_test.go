package entity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serpent/game/types"
)

var spawn = types.Point{X: 3, Y: 3}

// assertActivePrefix checks that active segments form a run starting at the head
func assertActivePrefix(t *testing.T, p *SegmentPool) {
	t.Helper()
	for i := 0; i < p.Capacity(); i++ {
		assert.Equal(t, i < p.ActiveCount(), p.Segment(i).Active, "segment %d", i)
	}
}

func TestNewSegmentPool(t *testing.T) {
	p := NewSegmentPool(108, spawn)

	assert.Equal(t, 108, p.Capacity())
	assert.Equal(t, 1, p.ActiveCount())
	assert.Equal(t, spawn, p.Head())
	assert.Equal(t, spawn, p.Segment(0).Previous)
	assert.False(t, p.IsFull())
	assertActivePrefix(t, p)
}

func TestShiftForwardKeepsBodyLength(t *testing.T) {
	p := NewSegmentPool(20, spawn)

	// lay out a horizontal body 3 long trailing to the left
	p.ShiftForward(types.Point{X: 4, Y: 3})
	_, err := p.ActivateNext()
	require.NoError(t, err)
	p.ShiftForward(types.Point{X: 5, Y: 3})
	_, err = p.ActivateNext()
	require.NoError(t, err)

	assert.Equal(t, []types.Point{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}}, p.Locations(nil))

	p.ShiftForward(types.Point{X: 5, Y: 4})

	assert.Equal(t, []types.Point{{X: 5, Y: 4}, {X: 5, Y: 3}, {X: 4, Y: 3}}, p.Locations(nil))
	assert.Equal(t, types.Point{X: 5, Y: 3}, p.Segment(0).Previous)
	assert.Equal(t, types.Point{X: 4, Y: 3}, p.Segment(1).Previous)
	assert.Equal(t, types.Point{X: 3, Y: 3}, p.Segment(2).Previous)
}

func TestActivateNextPlacesOnVacatedCell(t *testing.T) {
	p := NewSegmentPool(10, spawn)
	p.ShiftForward(types.Point{X: 4, Y: 3})

	idx, err := p.ActivateNext()
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, spawn, p.Segment(1).Current)
	assert.True(t, p.Occupies(spawn))
	assert.False(t, p.Occupies(types.Point{X: 9, Y: 9}))
	assertActivePrefix(t, p)
}

func TestActivateNextExhausts(t *testing.T) {
	p := NewSegmentPool(4, spawn)

	for i := 1; i < 4; i++ {
		idx, err := p.ActivateNext()
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		assertActivePrefix(t, p)
	}
	assert.True(t, p.IsFull())

	_, err := p.ActivateNext()
	assert.True(t, errors.Is(err, ErrPoolExhausted))
	assert.Equal(t, 4, p.ActiveCount())
}

func TestResetRestoresConstructionShape(t *testing.T) {
	fresh := NewSegmentPool(12, spawn)
	p := NewSegmentPool(12, spawn)

	p.ShiftForward(types.Point{X: 4, Y: 3})
	p.ActivateNext()
	p.ActivateNext()
	p.ShiftForward(types.Point{X: 5, Y: 3})
	p.Reset()

	assert.Equal(t, fresh, p)
	assertActivePrefix(t, p)
}

func TestNewSegmentPoolRejectsEmpty(t *testing.T) {
	assert.Panics(t, func() { NewSegmentPool(0, spawn) })
}
