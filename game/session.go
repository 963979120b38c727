package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"serpent/game/entity"
	"serpent/game/manager"
	"serpent/game/stats"
	"serpent/game/types"
)

// Session is the play scene around an Engine: it owns the pellet, grows the
// serpent when the pellet is eaten and relays state changes to the host.
type Session struct {
	ID string

	engine  *Engine
	foodMgr *manager.FoodManager
	logger  *log.Entry

	status string

	history *stats.History
	started time.Time
}

// Frame is what a host needs to draw and sound one frame
type Frame struct {
	TickResult

	Pellet       types.Point
	PelletPlaced bool
	Ate          bool
}

func NewSession(cfg Config, logger *log.Logger) (*Session, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create engine")
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	id := uuid.New().String()
	s := &Session{
		ID:      id,
		engine:  engine,
		foodMgr: manager.NewFoodManager(cfg.Grid, manager.NewCollisionManager(cfg.Grid), cfg.Seed),
		logger:  logger.WithField("session", id),
		status:  manager.StatusMessage(manager.Ready),
	}
	s.foodMgr.Spawn(engine)
	s.logger.WithFields(log.Fields{
		"width":  cfg.Grid.Width,
		"height": cfg.Grid.Height,
		"spawn":  cfg.Spawn.String(),
	}).Info("session created")
	return s, nil
}

// Update runs one frame with the given directional input
func (s *Session) Update(delta float64, input types.Direction) Frame {
	res := s.engine.Tick(delta, input, s.engine.State() == manager.Playing)
	f := Frame{TickResult: res}

	if res.Moved && s.foodMgr.IsFoodCollision(res.Head) {
		f.Ate = true
		s.grow()
		// pick up the new tail so it is drawn this frame
		f.TickResult = s.engine.fill(res)
	}

	if res.Event != nil {
		s.onStateChange(*res.Event, res.Collision)
	}

	f.Pellet, f.PelletPlaced = s.foodMgr.Pellet()
	return f
}

func (s *Session) grow() {
	err := s.engine.ActivateNextSegment()
	switch {
	case errors.Is(err, entity.ErrPoolExhausted):
		s.logger.Debug("pool exhausted, board covered")
	case err != nil:
		s.logger.WithError(err).Error("grow serpent")
	default:
		s.logger.WithField("length", s.engine.ActiveSegmentCount()).Debug("pellet eaten")
	}

	if _, ok := s.foodMgr.Spawn(s.engine); !ok {
		s.logger.Debug("no free cell for pellet")
	}
}

// Restart handles the player's reset request. It only acts once the game has
// ended.
func (s *Session) Restart() *manager.StateChange {
	change := s.engine.Reset()
	if change == nil {
		return nil
	}
	s.foodMgr.Spawn(s.engine)
	s.onStateChange(*change, manager.NoCollision)
	return change
}

// RecordTo makes the session add every finished run to h
func (s *Session) RecordTo(h *stats.History) {
	s.history = h
}

// History is the run history set by RecordTo, or nil
func (s *Session) History() *stats.History {
	return s.history
}

func (s *Session) onStateChange(change manager.StateChange, collision manager.CollisionType) {
	s.status = change.Status
	switch change.To {
	case manager.Playing:
		s.started = time.Now()
	case manager.GameOver, manager.Win:
		s.record(change.To)
	}
	entry := s.logger.WithFields(log.Fields{
		"from":  change.From.String(),
		"to":    change.To.String(),
		"score": s.Score(),
	})
	if collision != manager.NoCollision {
		entry = entry.WithField("collision", collision.String())
	}
	entry.Info("state changed")
}

func (s *Session) record(end manager.GameState) {
	if s.history == nil {
		return
	}
	outcome := stats.OutcomeLoss
	if end == manager.Win {
		outcome = stats.OutcomeWin
	}
	s.history.Add(stats.Record{
		SessionID: s.ID,
		StartTime: s.started,
		EndTime:   time.Now(),
		Length:    s.engine.ActiveSegmentCount(),
		Capacity:  s.engine.Capacity(),
		Outcome:   outcome,
	})
}

func (s *Session) State() manager.GameState {
	return s.engine.State()
}

// Status is the player-facing message for the current state
func (s *Session) Status() string {
	return s.status
}

// Score reads as active segments over board cells
func (s *Session) Score() string {
	return fmt.Sprintf("%d / %d", s.engine.ActiveSegmentCount(), s.engine.Capacity())
}

func (s *Session) Grid() types.Grid {
	return s.engine.Grid()
}

func (s *Session) Engine() *Engine {
	return s.engine
}
