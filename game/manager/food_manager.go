package manager

import (
	"golang.org/x/exp/rand"

	"serpent/game/types"
)

// FoodManager places the pellet on a uniformly random free cell
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager

	free   []types.Point
	pellet types.Point
	placed bool
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
		free:         make([]types.Point, 0, grid.Cells()),
	}
}

// Spawn picks a new pellet location among the cells not covered by the body.
// It returns false when the body covers the whole board.
func (fm *FoodManager) Spawn(body Occupancy) (types.Point, bool) {
	fm.free = fm.free[:0]
	for i := 0; i < fm.grid.Cells(); i++ {
		p := fm.grid.PointAt(i)
		if fm.collisionMgr.ValidateSpawnPosition(p, body) {
			fm.free = append(fm.free, p)
		}
	}

	if len(fm.free) == 0 {
		fm.placed = false
		return types.Point{}, false
	}
	fm.pellet = fm.free[fm.rng.Intn(len(fm.free))]
	fm.placed = true
	return fm.pellet, true
}

// Pellet returns the current pellet location, if one is on the board
func (fm *FoodManager) Pellet() (types.Point, bool) {
	return fm.pellet, fm.placed
}

// IsFoodCollision checks if a position is on the pellet
func (fm *FoodManager) IsFoodCollision(pos types.Point) bool {
	return fm.placed && pos == fm.pellet
}

func (fm *FoodManager) Clear() {
	fm.placed = false
}
