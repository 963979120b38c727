package manager

import (
	"serpent/game/entity"
	"serpent/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// WillCrashEdge predicts whether moving from head in dir leaves the board.
// It does not touch any state, so it is safe to call every frame.
func (cm *CollisionManager) WillCrashEdge(head types.Point, dir types.Direction) bool {
	switch dir {
	case types.Left:
		return head.X == 0
	case types.Right:
		return head.X == cm.grid.Width-1
	case types.Up:
		return head.Y == 0
	case types.Down:
		return head.Y == cm.grid.Height-1
	default:
		return false
	}
}

// HasSelfCollision compares the committed head against every other active
// segment and stops at the first overlap.
func (cm *CollisionManager) HasSelfCollision(pool *entity.SegmentPool) bool {
	head := pool.Head()
	for i := 1; i < pool.ActiveCount(); i++ {
		if pool.Segment(i).Current == head {
			return true
		}
	}
	return false
}

// Predict classifies a pending move before it is committed
func (cm *CollisionManager) Predict(head types.Point, dir types.Direction) CollisionType {
	if cm.WillCrashEdge(head, dir) {
		return WallCollision
	}
	return NoCollision
}

// Occupancy reports which cells the body covers
type Occupancy interface {
	Occupies(pos types.Point) bool
}

// ValidateSpawnPosition checks if a position is free for a pellet
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, body Occupancy) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !body.Occupies(pos)
}
