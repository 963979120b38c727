package manager

import (
	"serpent/game/entity"
	"serpent/game/types"
)

// Frame selects which piece of artwork draws a segment
type Frame int

const (
	FrameHead Frame = iota
	FrameTail
	FrameStraight
	FrameTurn
)

func (f Frame) String() string {
	switch f {
	case FrameHead:
		return "head"
	case FrameTail:
		return "tail"
	case FrameStraight:
		return "straight"
	case FrameTurn:
		return "turn"
	default:
		return "unknown"
	}
}

// Orientation describes how a segment is drawn. Rotation is in degrees
// clockwise from the artwork's rest pose: the head faces up, the tail and
// straight pieces connect downward and sideways respectively, and a turn
// opens to the right and downward.
type Orientation struct {
	Frame    Frame
	Variant  int
	Rotation int
}

// Alternation picks the cosmetic frame set of an interior segment
type Alternation interface {
	Variant(index int) int
}

// ParityAlternation alternates between two frame sets on even and odd indexes
type ParityAlternation struct{}

func (ParityAlternation) Variant(index int) int { return index % 2 }

// UniformAlternation draws every interior segment with the same frame set
type UniformAlternation struct{}

func (UniformAlternation) Variant(int) int { return 0 }

var (
	offRight = types.Point{X: 1, Y: 0}
	offLeft  = types.Point{X: -1, Y: 0}
	offDown  = types.Point{X: 0, Y: 1}
	offUp    = types.Point{X: 0, Y: -1}
)

type pieceShape struct {
	a, b     types.Point
	frame    Frame
	rotation int
}

var interiorShapes = [...]pieceShape{
	{offLeft, offRight, FrameStraight, 0},
	{offUp, offDown, FrameStraight, 90},
	{offRight, offDown, FrameTurn, 0},
	{offDown, offLeft, FrameTurn, 90},
	{offLeft, offUp, FrameTurn, 180},
	{offUp, offRight, FrameTurn, 270},
}

// ResolveOrientation classifies the segment at cur from the locations of the
// segment ahead of it (prev) and behind it (next). Without a next neighbor the
// segment is the tail. ok is false for geometry no artwork covers, such as a
// freshly grown segment still stacked on its neighbor.
func ResolveOrientation(prev, cur, next types.Point, hasNext bool, index int, alt Alternation) (Orientation, bool) {
	toPrev := prev.Sub(cur)

	if !hasNext {
		switch toPrev {
		case offRight:
			return Orientation{Frame: FrameTail, Rotation: 270}, true
		case offLeft:
			return Orientation{Frame: FrameTail, Rotation: 90}, true
		case offDown:
			return Orientation{Frame: FrameTail, Rotation: 0}, true
		case offUp:
			return Orientation{Frame: FrameTail, Rotation: 180}, true
		}
		return Orientation{}, false
	}

	toNext := next.Sub(cur)
	for _, s := range interiorShapes {
		if (toPrev == s.a && toNext == s.b) || (toPrev == s.b && toNext == s.a) {
			variant := 0
			if alt != nil {
				variant = alt.Variant(index)
			}
			return Orientation{Frame: s.frame, Variant: variant, Rotation: s.rotation}, true
		}
	}
	return Orientation{}, false
}

// HeadOrientation maps the committed direction to the head's rotation
func HeadOrientation(d types.Direction) Orientation {
	switch d {
	case types.Right:
		return Orientation{Frame: FrameHead, Rotation: 90}
	case types.Down:
		return Orientation{Frame: FrameHead, Rotation: 180}
	case types.Left:
		return Orientation{Frame: FrameHead, Rotation: 270}
	default:
		return Orientation{Frame: FrameHead, Rotation: 0}
	}
}

// Openings lists the sides of the cell the piece connects to, in screen
// coordinates. A head opens toward its neck.
func (o Orientation) Openings() []types.Direction {
	var rest []types.Direction
	switch o.Frame {
	case FrameHead:
		rest = []types.Direction{types.Down}
	case FrameTail:
		rest = []types.Direction{types.Down}
	case FrameStraight:
		rest = []types.Direction{types.Left, types.Right}
	case FrameTurn:
		rest = []types.Direction{types.Right, types.Down}
	}
	out := make([]types.Direction, len(rest))
	for i, d := range rest {
		out[i] = rotateClockwise(d, o.Rotation)
	}
	return out
}

func rotateClockwise(d types.Direction, degrees int) types.Direction {
	for r := ((degrees % 360) + 360) % 360; r > 0; r -= 90 {
		switch d {
		case types.Up:
			d = types.Right
		case types.Right:
			d = types.Down
		case types.Down:
			d = types.Left
		case types.Left:
			d = types.Up
		}
	}
	return d
}

// OrientationManager keeps the orientation of every segment in the pool
type OrientationManager struct {
	alt          Alternation
	orientations []Orientation
}

func NewOrientationManager(capacity int, alt Alternation) *OrientationManager {
	if alt == nil {
		alt = ParityAlternation{}
	}
	om := &OrientationManager{
		alt:          alt,
		orientations: make([]Orientation, capacity),
	}
	om.Reset()
	return om
}

// Reset puts the head back to its resting pose and clears the body
func (om *OrientationManager) Reset() {
	for i := range om.orientations {
		om.orientations[i] = Orientation{Frame: FrameTail}
	}
	om.orientations[0] = HeadOrientation(types.None)
}

// FaceHead sets the head from the committed direction
func (om *OrientationManager) FaceHead(d types.Direction) {
	om.orientations[0] = HeadOrientation(d)
}

// Resolve recomputes every active body segment. A single head move changes the
// neighbors of the whole body, so nothing is cached between calls.
func (om *OrientationManager) Resolve(pool *entity.SegmentPool) {
	n := pool.ActiveCount()
	for i := 1; i < n; i++ {
		prev := pool.Segment(i - 1).Current
		cur := pool.Segment(i).Current
		hasNext := i+1 < n
		next := cur
		if hasNext {
			next = pool.Segment(i + 1).Current
		}
		if o, ok := ResolveOrientation(prev, cur, next, hasNext, i, om.alt); ok {
			om.orientations[i] = o
		}
	}
}

// Orientations appends the orientation of every active segment to dst
func (om *OrientationManager) Orientations(pool *entity.SegmentPool, dst []Orientation) []Orientation {
	return append(dst, om.orientations[:pool.ActiveCount()]...)
}
