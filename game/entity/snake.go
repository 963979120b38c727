package entity

import (
	"fmt"

	"github.com/pkg/errors"

	"serpent/game/types"
)

// ErrPoolExhausted is returned by ActivateNext once every segment is in use.
// It marks a full board, not a fault.
var ErrPoolExhausted = errors.New("segment pool exhausted")

// Segment is one unit of the serpent body. Segment 0 is the head.
type Segment struct {
	Current  types.Point
	Previous types.Point
	Active   bool
}

// SegmentPool is a fixed arena of segments. Segments [0, active) are in use;
// the rest are dormant and get activated as the body grows.
type SegmentPool struct {
	segments []Segment
	active   int
	spawn    types.Point

	// pre-move locations captured by ShiftForward
	scratch []types.Point
}

// NewSegmentPool allocates capacity segments with only the head active at spawn.
func NewSegmentPool(capacity int, spawn types.Point) *SegmentPool {
	if capacity < 1 {
		panic(fmt.Sprintf("entity: pool capacity %d", capacity))
	}
	p := &SegmentPool{
		segments: make([]Segment, capacity),
		scratch:  make([]types.Point, capacity),
		spawn:    spawn,
	}
	p.Reset()
	return p
}

// Reset deactivates everything but the head and puts it back on the spawn point.
func (p *SegmentPool) Reset() {
	for i := range p.segments {
		p.segments[i] = Segment{}
		p.scratch[i] = types.Point{}
	}
	p.segments[0] = Segment{Current: p.spawn, Previous: p.spawn, Active: true}
	p.active = 1
}

// ActivateNext wakes the first dormant segment at the location the current
// tail occupied before its last move.
func (p *SegmentPool) ActivateNext() (int, error) {
	if p.IsFull() {
		return 0, ErrPoolExhausted
	}
	tail := p.segments[p.active-1]
	idx := p.active
	p.segments[idx] = Segment{Current: tail.Previous, Previous: tail.Previous, Active: true}
	p.active++
	return idx, nil
}

// ShiftForward advances the body one step: every segment takes the pre-move
// location of the segment ahead of it and the head moves to newHead.
func (p *SegmentPool) ShiftForward(newHead types.Point) {
	for i := 0; i < p.active; i++ {
		p.scratch[i] = p.segments[i].Current
	}
	for i := 0; i < p.active; i++ {
		p.segments[i].Previous = p.scratch[i]
		if i == 0 {
			p.segments[i].Current = newHead
		} else {
			p.segments[i].Current = p.scratch[i-1]
		}
	}
}

func (p *SegmentPool) ActiveCount() int {
	return p.active
}

func (p *SegmentPool) Capacity() int {
	return len(p.segments)
}

func (p *SegmentPool) IsFull() bool {
	return p.active == len(p.segments)
}

func (p *SegmentPool) Spawn() types.Point {
	return p.spawn
}

// Head returns the head's current location
func (p *SegmentPool) Head() types.Point {
	return p.segments[0].Current
}

// Segment returns a copy of segment i. Indexes outside the pool panic.
func (p *SegmentPool) Segment(i int) Segment {
	return p.segments[i]
}

// Locations appends the current location of every active segment to dst,
// head first.
func (p *SegmentPool) Locations(dst []types.Point) []types.Point {
	for i := 0; i < p.active; i++ {
		dst = append(dst, p.segments[i].Current)
	}
	return dst
}

// Occupies reports whether an active segment sits on pos
func (p *SegmentPool) Occupies(pos types.Point) bool {
	for i := 0; i < p.active; i++ {
		if p.segments[i].Current == pos {
			return true
		}
	}
	return false
}
