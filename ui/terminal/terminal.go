package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"serpent/game"
	"serpent/game/manager"
	"serpent/game/types"
)

const (
	// CellWidth is how many columns one board cell takes. Terminal cells are
	// about twice as tall as they are wide.
	CellWidth = 2
	hudRows   = 3
)

var (
	cellLight   = tcell.NewRGBColor(55, 148, 110)
	cellDark    = tcell.NewRGBColor(48, 96, 130)
	bodyColors  = [2]tcell.Color{tcell.NewRGBColor(106, 190, 48), tcell.NewRGBColor(75, 150, 40)}
	headColor   = tcell.NewRGBColor(153, 229, 80)
	pelletColor = tcell.NewRGBColor(217, 87, 99)
)

const (
	openUp = 1 << iota
	openDown
	openLeft
	openRight
)

var bodyGlyphs = map[int]rune{
	openUp | openDown:    '┃',
	openLeft | openRight: '━',
	openRight | openDown: '┏',
	openDown | openLeft:  '┓',
	openLeft | openUp:    '┛',
	openUp | openRight:   '┗',
	openUp:               '╹',
	openDown:             '╻',
	openLeft:             '╸',
	openRight:            '╺',
}

var headGlyphs = map[types.Direction]rune{
	types.Up:    '▲',
	types.Down:  '▼',
	types.Left:  '◀',
	types.Right: '▶',
}

func openingMask(o manager.Orientation) int {
	mask := 0
	for _, d := range o.Openings() {
		switch d {
		case types.Up:
			mask |= openUp
		case types.Down:
			mask |= openDown
		case types.Left:
			mask |= openLeft
		case types.Right:
			mask |= openRight
		}
	}
	return mask
}

// Glyph picks the box-drawing rune for a segment. Heads are drawn as an arrow
// pointing the way they face.
func Glyph(o manager.Orientation) rune {
	if o.Frame == manager.FrameHead {
		openings := o.Openings()
		if len(openings) == 0 {
			return '●'
		}
		return headGlyphs[openings[0].Opposite()]
	}
	if r, ok := bodyGlyphs[openingMask(o)]; ok {
		return r
	}
	return '■'
}

// Renderer draws a session onto a tcell screen
type Renderer struct {
	screen  tcell.Screen
	offsetX int
	offsetY int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// layout centers the board horizontally below the HUD rows
func (r *Renderer) layout(grid types.Grid) {
	width, _ := r.screen.Size()
	boardWidth := grid.Width*CellWidth + 2
	r.offsetX = max((width-boardWidth)/2, 0)
	r.offsetY = hudRows
}

// CellColumn returns the screen position of a board cell's first column
func (r *Renderer) CellColumn(grid types.Grid, p types.Point) (int, int) {
	r.layout(grid)
	return r.cellOrigin(p)
}

func (r *Renderer) cellOrigin(p types.Point) (int, int) {
	return r.offsetX + 1 + p.X*CellWidth, r.offsetY + 1 + p.Y
}

func (r *Renderer) Draw(s *game.Session, f game.Frame) {
	grid := s.Grid()
	r.layout(grid)

	r.screen.Clear()
	r.drawHUD(s)
	r.drawBorder(grid)
	r.drawBoard(grid)
	if f.PelletPlaced {
		r.drawPellet(f.Pellet)
	}
	for i := len(f.Segments) - 1; i >= 0; i-- {
		r.drawSegment(f.Segments[i], f.Orientations[i])
	}
	r.screen.Show()
}

func cellBackground(p types.Point) tcell.Color {
	if (p.X+p.Y)%2 == 0 {
		return cellLight
	}
	return cellDark
}

func (r *Renderer) drawBoard(grid types.Grid) {
	for i := 0; i < grid.Cells(); i++ {
		p := grid.PointAt(i)
		style := tcell.StyleDefault.Background(cellBackground(p))
		x, y := r.cellOrigin(p)
		for c := 0; c < CellWidth; c++ {
			r.screen.SetContent(x+c, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawBorder(grid types.Grid) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	left, top := r.offsetX, r.offsetY
	right := left + grid.Width*CellWidth + 1
	bottom := top + grid.Height + 1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *Renderer) drawPellet(p types.Point) {
	x, y := r.cellOrigin(p)
	style := tcell.StyleDefault.Foreground(pelletColor).Background(cellBackground(p))
	r.screen.SetContent(x, y, '●', nil, style)
}

// drawSegment puts the glyph in the first column and, when the segment opens
// to the right, a joining stroke in the second.
func (r *Renderer) drawSegment(p types.Point, o manager.Orientation) {
	x, y := r.cellOrigin(p)
	fg := bodyColors[o.Variant%2]
	if o.Frame == manager.FrameHead {
		fg = headColor
	}
	style := tcell.StyleDefault.Foreground(fg).Background(cellBackground(p))

	r.screen.SetContent(x, y, Glyph(o), nil, style)
	if openingMask(o)&openRight != 0 {
		r.screen.SetContent(x+1, y, '━', nil, style)
	}
}

func (r *Renderer) drawHUD(s *game.Session) {
	width, _ := r.screen.Size()
	r.drawText(1, 0, "Serpent", tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))

	score := s.Score()
	r.drawText(width-len(score)-1, 0, score, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if h := s.History(); h != nil {
		if sum := h.Summary(); sum.GamesPlayed > 0 {
			best := fmt.Sprintf("best %d", sum.BestLength)
			r.drawText(width-len(best)-1, 1, best, tcell.StyleDefault.Foreground(tcell.ColorSilver))
		}
	}

	lines := strings.Split(s.Status(), "\n")
	for i, line := range lines {
		if i+1 >= hudRows {
			break
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if i > 0 {
			style = style.Foreground(tcell.ColorSilver)
		}
		r.drawText((width-len(line))/2, i+1, line, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
