package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serpent/game"
	"serpent/game/manager"
	"serpent/game/types"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name string
		o    manager.Orientation
		want rune
	}{
		{"head up", manager.HeadOrientation(types.Up), '▲'},
		{"head right", manager.HeadOrientation(types.Right), '▶'},
		{"head down", manager.HeadOrientation(types.Down), '▼'},
		{"head left", manager.HeadOrientation(types.Left), '◀'},
		{"horizontal", manager.Orientation{Frame: manager.FrameStraight}, '━'},
		{"vertical", manager.Orientation{Frame: manager.FrameStraight, Rotation: 90}, '┃'},
		{"turn right down", manager.Orientation{Frame: manager.FrameTurn}, '┏'},
		{"turn down left", manager.Orientation{Frame: manager.FrameTurn, Rotation: 90}, '┓'},
		{"turn left up", manager.Orientation{Frame: manager.FrameTurn, Rotation: 180}, '┛'},
		{"turn up right", manager.Orientation{Frame: manager.FrameTurn, Rotation: 270}, '┗'},
		{"tail down", manager.Orientation{Frame: manager.FrameTail}, '╻'},
		{"tail left", manager.Orientation{Frame: manager.FrameTail, Rotation: 90}, '╸'},
		{"tail up", manager.Orientation{Frame: manager.FrameTail, Rotation: 180}, '╹'},
		{"tail right", manager.Orientation{Frame: manager.FrameTail, Rotation: 270}, '╺'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(Glyph(tt.o)))
		})
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		ch     rune
		action Action
		dir    types.Direction
	}{
		{tcell.KeyUp, 0, ActionSteer, types.Up},
		{tcell.KeyLeft, 0, ActionSteer, types.Left},
		{tcell.KeyRune, 'd', ActionSteer, types.Right},
		{tcell.KeyRune, 'S', ActionSteer, types.Down},
		{tcell.KeyRune, ' ', ActionReset, types.None},
		{tcell.KeyRune, 'q', ActionQuit, types.None},
		{tcell.KeyEscape, 0, ActionQuit, types.None},
		{tcell.KeyCtrlC, 0, ActionQuit, types.None},
		{tcell.KeyRune, 'x', ActionNone, types.None},
		{tcell.KeyTab, 0, ActionNone, types.None},
	}

	for _, tt := range tests {
		action, dir := TranslateKey(tt.key, tt.ch)
		assert.Equal(t, tt.action, action, "key %v rune %q", tt.key, tt.ch)
		assert.Equal(t, tt.dir, dir, "key %v rune %q", tt.key, tt.ch)
	}
}

func TestDrawReadySession(t *testing.T) {
	screen := newScreen(t)
	logger, _ := test.NewNullLogger()
	s, err := game.NewSession(game.DefaultConfig(), logger)
	require.NoError(t, err)

	f := s.Update(0, types.None)
	r := NewRenderer(screen)
	r.Draw(s, f)

	grid := s.Grid()
	x, y := r.CellColumn(grid, types.Point{X: 3, Y: 3})
	assert.Equal(t, "▲", string(runeAt(screen, x, y)))

	require.True(t, f.PelletPlaced)
	px, py := r.CellColumn(grid, f.Pellet)
	assert.Equal(t, "●", string(runeAt(screen, px, py)))

	assert.Contains(t, rowText(screen, 0), "Serpent")
	assert.Contains(t, rowText(screen, 0), "1 / 108")
	assert.Contains(t, rowText(screen, 1), "Ready?")
	assert.Contains(t, rowText(screen, 2), "move with directional keys")
}

func TestDrawBorder(t *testing.T) {
	screen := newScreen(t)
	logger, _ := test.NewNullLogger()
	s, err := game.NewSession(game.DefaultConfig(), logger)
	require.NoError(t, err)

	r := NewRenderer(screen)
	r.Draw(s, s.Update(0, types.None))

	grid := s.Grid()
	x, y := r.CellColumn(grid, types.Point{X: 0, Y: 0})
	assert.Equal(t, "┌", string(runeAt(screen, x-1, y-1)))

	x, y = r.CellColumn(grid, types.Point{X: grid.Width - 1, Y: grid.Height - 1})
	assert.Equal(t, "┘", string(runeAt(screen, x+CellWidth, y+1)))
}

func TestDrawJoinsHorizontalBody(t *testing.T) {
	screen := newScreen(t)
	logger, _ := test.NewNullLogger()
	cfg := game.DefaultConfig()
	cfg.Grid = types.Grid{Width: 3, Height: 1}
	cfg.Spawn = types.Point{X: 0, Y: 0}
	s, err := game.NewSession(cfg, logger)
	require.NoError(t, err)

	// start moving right; the pellet is the only free cell left on the next
	// move, so the serpent eats and grows behind the head
	s.Update(0, types.Right)
	f := s.Update(1, types.None)
	require.True(t, f.Moved)

	r := NewRenderer(screen)
	r.Draw(s, f)

	grid := s.Grid()
	hx, hy := r.CellColumn(grid, f.Head)
	assert.Equal(t, "▶", string(runeAt(screen, hx, hy)))

	if f.Ate {
		tx, ty := r.CellColumn(grid, types.Point{X: 0, Y: 0})
		assert.Equal(t, "╺", string(runeAt(screen, tx, ty)))
		assert.Equal(t, "━", string(runeAt(screen, tx+1, ty)))
	}
}
