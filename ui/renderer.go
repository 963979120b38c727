package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"serpent/game"
	"serpent/game/manager"
	"serpent/game/types"
)

const (
	hudHeight     = 48 // Band above the board for title, status and score
	borderPadding = 10
)

var (
	cellLight   = rl.NewColor(55, 148, 110, 255)
	cellDark    = rl.NewColor(48, 96, 130, 255)
	bodyColors  = [2]rl.Color{rl.NewColor(106, 190, 48, 255), rl.NewColor(75, 150, 40, 255)}
	headColor   = rl.NewColor(153, 229, 80, 255)
	pelletColor = rl.NewColor(217, 87, 99, 255)
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
	title        string
}

func NewRenderer(title string) *Renderer {
	r := &Renderer{title: title}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// layout fits the board under the HUD band and centers it horizontally
func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - hudHeight - borderPadding*2

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = min(cellW, cellH)

	r.offsetX = (r.screenWidth - r.cellSize*int32(grid.Width)) / 2
	r.offsetY = hudHeight + borderPadding
}

func (r *Renderer) Draw(s *game.Session, f game.Frame) {
	r.UpdateDimensions()
	grid := s.Grid()
	r.layout(grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawBoard(grid)
	if f.PelletPlaced {
		r.drawPellet(grid, f.Pellet)
	}
	for i := len(f.Segments) - 1; i >= 0; i-- {
		r.drawSegment(grid, f.Segments[i], f.Orientations[i])
	}
	r.drawHUD(s)

	rl.EndDrawing()
}

func (r *Renderer) drawBoard(grid types.Grid) {
	for i := 0; i < grid.Cells(); i++ {
		p := grid.PointAt(i)
		color := cellDark
		if (p.X+p.Y)%2 == 0 {
			color = cellLight
		}
		x, y := r.cellOrigin(grid, p)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	}
}

func (r *Renderer) drawPellet(grid types.Grid, p types.Point) {
	x, y := r.cellOrigin(grid, p)
	half := r.cellSize / 2
	rl.DrawCircle(x+half, y+half, float32(r.cellSize)/3, pelletColor)
}

// drawSegment draws a core square plus one connector per opening, so turns,
// straights and tails line up with their neighbors.
func (r *Renderer) drawSegment(grid types.Grid, p types.Point, o manager.Orientation) {
	x, y := r.cellOrigin(grid, p)
	inset := r.cellSize / 5
	core := r.cellSize - inset*2

	color := bodyColors[o.Variant%2]
	if o.Frame == manager.FrameHead {
		color = headColor
	}
	rl.DrawRectangle(x+inset, y+inset, core, core, color)

	for _, d := range o.Openings() {
		switch d {
		case types.Up:
			rl.DrawRectangle(x+inset, y, core, inset, color)
		case types.Down:
			rl.DrawRectangle(x+inset, y+r.cellSize-inset, core, inset, color)
		case types.Left:
			rl.DrawRectangle(x, y+inset, inset, core, color)
		case types.Right:
			rl.DrawRectangle(x+r.cellSize-inset, y+inset, inset, core, color)
		}
	}

	if o.Frame == manager.FrameHead {
		r.drawEyes(x, y, o)
	}
}

// drawEyes marks the side the head is travelling toward
func (r *Renderer) drawEyes(x, y int32, o manager.Orientation) {
	openings := o.Openings()
	if len(openings) == 0 {
		return
	}
	facing := openings[0].Opposite()
	half := r.cellSize / 2
	quarter := r.cellSize / 4
	radius := float32(r.cellSize) / 12

	var ax, ay, bx, by int32
	switch facing {
	case types.Up:
		ax, ay, bx, by = x+quarter, y+quarter, x+r.cellSize-quarter, y+quarter
	case types.Down:
		ax, ay, bx, by = x+quarter, y+r.cellSize-quarter, x+r.cellSize-quarter, y+r.cellSize-quarter
	case types.Left:
		ax, ay, bx, by = x+quarter, y+quarter, x+quarter, y+r.cellSize-quarter
	case types.Right:
		ax, ay, bx, by = x+r.cellSize-quarter, y+quarter, x+r.cellSize-quarter, y+r.cellSize-quarter
	default:
		ax, ay, bx, by = x+half, y+half, x+half, y+half
	}
	rl.DrawCircle(ax, ay, radius, rl.Black)
	rl.DrawCircle(bx, by, radius, rl.Black)
}

func (r *Renderer) drawHUD(s *game.Session) {
	fontSize := int32(20)

	rl.DrawText("Serpent", borderPadding*3, borderPadding, fontSize, rl.Green)

	score := s.Score()
	scoreWidth := rl.MeasureText(score, fontSize)
	rl.DrawText(score, r.screenWidth-scoreWidth-borderPadding*3, borderPadding, fontSize, rl.White)

	// status lines are centered over the board
	lines := strings.Split(s.Status(), "\n")
	for i, line := range lines {
		size := fontSize
		if i > 0 {
			size = fontSize * 3 / 4
		}
		w := rl.MeasureText(line, size)
		rl.DrawText(line, (r.screenWidth-w)/2, borderPadding/2+int32(i)*fontSize, size, rl.White)
	}

	if h := s.History(); h != nil {
		if sum := h.Summary(); sum.GamesPlayed > 0 {
			best := fmt.Sprintf("best %d", sum.BestLength)
			bestWidth := rl.MeasureText(best, fontSize/2)
			rl.DrawText(best, r.screenWidth-bestWidth-borderPadding*3, borderPadding+fontSize, fontSize/2, rl.LightGray)
		}
	}

	if r.title != "" {
		rl.DrawText(r.title, borderPadding, r.screenHeight-fontSize/2-borderPadding/2, fontSize/2, rl.Gray)
	}
}

func (r *Renderer) cellOrigin(grid types.Grid, p types.Point) (int32, int32) {
	x, y := grid.WorldPosition(p, int(r.cellSize))
	return r.offsetX + int32(x), r.offsetY + int32(y)
}
