package game

import (
	"github.com/pkg/errors"

	"serpent/game/manager"
	"serpent/game/types"
)

// Config holds everything fixed at construction time
type Config struct {
	Grid  types.Grid
	Spawn types.Point

	// MoveInterval is the period between commits, in seconds
	MoveInterval float64
	// FirstMoveDelay is the timer value after construction and reset
	FirstMoveDelay float64

	Alternation manager.Alternation

	// Seed feeds pellet placement
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Grid:           types.Grid{Width: types.DefaultWidth, Height: types.DefaultHeight},
		Spawn:          types.Point{X: types.DefaultSpawnX, Y: types.DefaultSpawnY},
		MoveInterval:   manager.DefaultMoveInterval,
		FirstMoveDelay: manager.DefaultFirstMoveDelay,
		Alternation:    manager.ParityAlternation{},
		Seed:           1,
	}
}

// FitSpawn moves the spawn point onto the board when a smaller grid leaves it
// outside. A spawn already on the board is kept.
func (c *Config) FitSpawn() {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return
	}
	c.Spawn.X = min(max(c.Spawn.X, 0), c.Grid.Width-1)
	c.Spawn.Y = min(max(c.Spawn.Y, 0), c.Grid.Height-1)
}

func (c Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return errors.Errorf("invalid grid %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if !c.Grid.Contains(c.Spawn) {
		return errors.Errorf("spawn %s outside %dx%d grid", c.Spawn, c.Grid.Width, c.Grid.Height)
	}
	if c.MoveInterval <= 0 {
		return errors.Errorf("move interval must be positive, got %v", c.MoveInterval)
	}
	if c.FirstMoveDelay < 0 {
		return errors.Errorf("first move delay must not be negative, got %v", c.FirstMoveDelay)
	}
	return nil
}
