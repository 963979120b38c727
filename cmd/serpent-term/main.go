package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"serpent/game"
	"serpent/game/manager"
	"serpent/game/stats"
	"serpent/game/types"
	"serpent/ui/audio"
	"serpent/ui/terminal"
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
	logFile := flag.String("log", "", "Write logs to this file instead of discarding them")
	mute := flag.Bool("mute", false, "Disable sound")
	volume := flag.Float64("volume", -1, "Jingle volume, as a power of two")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// the terminal belongs to the board, so logs go elsewhere
	logger := log.New()
	logger.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	}
	if *debug {
		logger.SetLevel(log.DebugLevel)
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

	session, err := game.NewSession(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start session: %v\n", err)
		os.Exit(1)
	}

	history := stats.NewHistory()
	session.RecordTo(history)

	var player *audio.Player
	if !*mute {
		player, err = audio.NewPlayer(*volume)
		if err != nil {
			// no sound, keep playing
			logger.WithError(err).Warn("audio unavailable")
			player = nil
		} else {
			defer player.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "cannot open terminal: %v\n", err)
		os.Exit(1)
	}

	run(screen, session, player, logger)
	screen.Fini()

	sum := history.Summary()
	logger.WithFields(log.Fields{
		"score": session.Score(),
		"games": sum.GamesPlayed,
		"wins":  sum.Wins,
		"best":  sum.BestLength,
	}).Info("terminal closed")
	if sum.GamesPlayed > 0 {
		fmt.Printf("games %d, wins %d, best length %d\n", sum.GamesPlayed, sum.Wins, sum.BestLength)
	}
}

func run(screen tcell.Screen, session *game.Session, player *audio.Player, logger *log.Logger) {
	renderer := terminal.NewRenderer(screen)

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go terminal.PollEvents(screen, eventChan)

	last := time.Now()
	pending := types.None
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				// screen finalized
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, dir := terminal.Translate(ev)
				switch action {
				case terminal.ActionQuit:
					return
				case terminal.ActionReset:
					session.Restart()
				case terminal.ActionSteer:
					pending = dir
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now

			frame := session.Update(delta, pending)
			pending = types.None

			if player != nil {
				if cue, ok := audio.CueFor(frame); ok {
					if err := player.Play(cue); err != nil {
						logger.WithError(err).Warn("play jingle")
					}
				}
			}
			renderer.Draw(session, frame)
		}
	}
}
