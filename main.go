package main

import (
	"flag"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"serpent/game"
	"serpent/game/manager"
	"serpent/game/stats"
	"serpent/ui"
)

func main() {
	cfg := game.DefaultConfig()
	width := flag.Int("width", cfg.Grid.Width, "Board width in cells")
	height := flag.Int("height", cfg.Grid.Height, "Board height in cells")
	spawnX := flag.Int("spawnx", -1, "Head start column, default fitted to the board")
	spawnY := flag.Int("spawny", -1, "Head start row, default fitted to the board")
	interval := flag.Duration("interval", 375*time.Millisecond, "Time between moves")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Pellet placement seed")
	uniform := flag.Bool("uniform", false, "Draw every body segment with the same frame set")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg.Grid.Width = *width
	cfg.Grid.Height = *height
	cfg.FitSpawn()
	if *spawnX >= 0 {
		cfg.Spawn.X = *spawnX
	}
	if *spawnY >= 0 {
		cfg.Spawn.Y = *spawnY
	}
	cfg.MoveInterval = interval.Seconds()
	cfg.Seed = *seed
	if *uniform {
		cfg.Alternation = manager.UniformAlternation{}
	}

	session, err := game.NewSession(cfg, log.StandardLogger())
	if err != nil {
		log.WithError(err).Fatal("cannot start session")
	}

	history := stats.NewHistory()
	session.RecordTo(history)

	rl.InitWindow(576, 480, "Serpent")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(session.ID)
	for !rl.WindowShouldClose() {
		in := ui.ReadInput()
		if in.Quit {
			break
		}
		if in.Reset {
			session.Restart()
		}

		frame := session.Update(float64(rl.GetFrameTime()), in.Direction)
		renderer.Draw(session, frame)
	}

	sum := history.Summary()
	log.WithFields(log.Fields{
		"score":  session.Score(),
		"games":  sum.GamesPlayed,
		"wins":   sum.Wins,
		"best":   sum.BestLength,
		"median": sum.MedianLength,
	}).Info("window closed")
}
