package types

import "fmt"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Default board and spawn
const (
	DefaultWidth  = 12
	DefaultHeight = 9
	DefaultSpawnX = 3
	DefaultSpawnY = 3
)

// Point is a cell on the grid. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset that leads from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Equal(o Point) bool {
	return p == o
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the board
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index flattens p into a row-major index. Points off the board are a caller bug.
func (g Grid) Index(p Point) int {
	if !g.Contains(p) {
		panic(fmt.Sprintf("types: point %s outside %dx%d grid", p, g.Width, g.Height))
	}
	return p.Y*g.Width + p.X
}

// PointAt is the inverse of Index.
func (g Grid) PointAt(i int) Point {
	if i < 0 || i >= g.Cells() {
		panic(fmt.Sprintf("types: index %d outside %dx%d grid", i, g.Width, g.Height))
	}
	return Point{X: i % g.Width, Y: i / g.Width}
}

// WorldPosition converts a grid point to the top-left pixel of its cell
func (g Grid) WorldPosition(p Point, cellSize int) (x, y int) {
	return p.X * cellSize, p.Y * cellSize
}

// Direction is a cardinal movement direction. None is the resting value.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta converts a Direction into a one-cell displacement
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "None"
	}
}
