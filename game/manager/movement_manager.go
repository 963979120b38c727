package manager

import "serpent/game/types"

// Default timing, in seconds
const (
	DefaultMoveInterval   = 0.375
	DefaultFirstMoveDelay = 0.0
)

// MovementManager runs the fixed-interval move timer and buffers the next
// direction. It is driven once per frame and never blocks.
type MovementManager struct {
	interval   float64
	firstDelay float64
	timer      float64

	pending   types.Direction
	committed types.Direction
}

func NewMovementManager(interval, firstDelay float64) *MovementManager {
	mm := &MovementManager{
		interval:   interval,
		firstDelay: firstDelay,
	}
	mm.Reset()
	return mm
}

// Steer buffers d for the next commit. Reversing straight into the neck is
// ignored, as is None.
func (mm *MovementManager) Steer(d types.Direction) bool {
	if d == types.None || d == mm.committed.Opposite() {
		return false
	}
	mm.pending = d
	return true
}

// Advance runs the timer when movement is allowed and reports whether a
// commit is due this frame.
func (mm *MovementManager) Advance(delta float64, allowed bool) bool {
	if !allowed {
		return false
	}
	mm.timer -= delta
	return mm.timer <= 0 && mm.pending != types.None
}

// Commit locks in the pending direction and restarts the timer
func (mm *MovementManager) Commit() types.Direction {
	mm.committed = mm.pending
	mm.timer = mm.interval
	return mm.committed
}

// Halt restarts the timer without moving. Used when a commit is aborted.
func (mm *MovementManager) Halt() {
	mm.timer = mm.interval
}

func (mm *MovementManager) Reset() {
	mm.pending = types.None
	mm.committed = types.None
	mm.timer = mm.firstDelay
}

func (mm *MovementManager) Pending() types.Direction {
	return mm.pending
}

func (mm *MovementManager) Committed() types.Direction {
	return mm.committed
}

func (mm *MovementManager) Timer() float64 {
	return mm.timer
}

func (mm *MovementManager) Interval() float64 {
	return mm.interval
}
