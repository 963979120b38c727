package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serpent/game/entity"
	"serpent/game/types"
)

func TestSpawnAvoidsBody(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, NewCollisionManager(grid), 7)
	pool := entity.NewSegmentPool(9, pt(1, 1))

	for i := 0; i < 200; i++ {
		p, ok := fm.Spawn(pool)
		require.True(t, ok)
		assert.True(t, grid.Contains(p))
		assert.NotEqual(t, pt(1, 1), p)
		assert.True(t, fm.IsFoodCollision(p))
	}
}

func TestSpawnCoversEveryFreeCell(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 2}
	fm := NewFoodManager(grid, NewCollisionManager(grid), 3)
	pool := entity.NewSegmentPool(8, pt(0, 0))

	seen := map[types.Point]bool{}
	for i := 0; i < 500; i++ {
		p, _ := fm.Spawn(pool)
		seen[p] = true
	}
	assert.Len(t, seen, 7)
	assert.False(t, seen[pt(0, 0)])
}

func TestSpawnOnFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	fm := NewFoodManager(grid, NewCollisionManager(grid), 1)
	pool := entity.NewSegmentPool(2, pt(0, 0))
	pool.ShiftForward(pt(1, 0))
	pool.ActivateNext()

	_, ok := fm.Spawn(pool)
	assert.False(t, ok)
	_, placed := fm.Pellet()
	assert.False(t, placed)
	assert.False(t, fm.IsFoodCollision(pt(0, 0)))
}

func TestSpawnIsSeeded(t *testing.T) {
	grid := types.Grid{Width: 12, Height: 9}
	pool := entity.NewSegmentPool(grid.Cells(), pt(3, 3))
	a := NewFoodManager(grid, NewCollisionManager(grid), 99)
	b := NewFoodManager(grid, NewCollisionManager(grid), 99)

	for i := 0; i < 20; i++ {
		pa, _ := a.Spawn(pool)
		pb, _ := b.Spawn(pool)
		assert.Equal(t, pa, pb)
	}

	a.Clear()
	_, placed := a.Pellet()
	assert.False(t, placed)
}
