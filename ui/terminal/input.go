package terminal

import (
	"github.com/gdamore/tcell/v2"

	"serpent/game/types"
)

// Action is what a key press asks the host to do
type Action int

const (
	ActionNone Action = iota
	ActionSteer
	ActionReset
	ActionQuit
)

var runeDirections = map[rune]types.Direction{
	'w': types.Up,
	'W': types.Up,
	's': types.Down,
	'S': types.Down,
	'a': types.Left,
	'A': types.Left,
	'd': types.Right,
	'D': types.Right,
}

var keyDirections = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

// Translate maps a key event to an action. Steering actions also carry the
// requested direction.
func Translate(ev *tcell.EventKey) (Action, types.Direction) {
	return TranslateKey(ev.Key(), ev.Rune())
}

// TranslateKey is Translate for a key code and the rune typed with it
func TranslateKey(key tcell.Key, ch rune) (Action, types.Direction) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, types.None
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return ActionQuit, types.None
		case ' ':
			return ActionReset, types.None
		}
		if d, ok := runeDirections[ch]; ok {
			return ActionSteer, d
		}
		return ActionNone, types.None
	}
	if d, ok := keyDirections[key]; ok {
		return ActionSteer, d
	}
	return ActionNone, types.None
}
