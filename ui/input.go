package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"serpent/game/types"
)

// Input is one frame of player intent
type Input struct {
	Direction types.Direction
	Reset     bool
	Quit      bool
}

var directionKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
}

// ReadInput polls the keys pressed since the last frame. The first direction
// key in table order wins when several are pressed together.
func ReadInput() Input {
	in := Input{
		Reset: rl.IsKeyPressed(rl.KeySpace),
		Quit:  rl.IsKeyPressed(rl.KeyQ),
	}
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			in.Direction = k.dir
			break
		}
	}
	return in
}
