package game

import (
	"serpent/game/entity"
	"serpent/game/manager"
	"serpent/game/types"
)

// TickResult is what one frame of the engine produced. The slices are owned
// by the engine and are only valid until the next call that mutates it.
type TickResult struct {
	Moved        bool
	AboutToCrash bool
	Collision    manager.CollisionType

	Head         types.Point
	Segments     []types.Point
	Orientations []manager.Orientation

	// Event is non-nil when the game state changed during the tick
	Event *manager.StateChange
}

// Engine advances the serpent on a fixed tick. It is single-threaded: the host
// calls Tick once per frame and nothing inside blocks or spawns goroutines.
type Engine struct {
	cfg Config

	pool           *entity.SegmentPool
	movementMgr    *manager.MovementManager
	collisionMgr   *manager.CollisionManager
	orientationMgr *manager.OrientationManager
	stateMgr       *manager.StateManager

	aboutToCrash bool

	locations    []types.Point
	orientations []manager.Orientation
}

func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	capacity := cfg.Grid.Cells()
	return &Engine{
		cfg:            cfg,
		pool:           entity.NewSegmentPool(capacity, cfg.Spawn),
		movementMgr:    manager.NewMovementManager(cfg.MoveInterval, cfg.FirstMoveDelay),
		collisionMgr:   manager.NewCollisionManager(cfg.Grid),
		orientationMgr: manager.NewOrientationManager(capacity, cfg.Alternation),
		stateMgr:       manager.NewStateManager(),
		locations:      make([]types.Point, 0, capacity),
		orientations:   make([]manager.Orientation, 0, capacity),
	}, nil
}

// Tick runs one frame. pending is this frame's directional input (None when
// there is none). The serpent only moves when movementAllowed is set and the
// game is being played.
func (e *Engine) Tick(delta float64, pending types.Direction, movementAllowed bool) TickResult {
	res := TickResult{}
	allowed := movementAllowed && e.stateMgr.MovementAllowed()

	state := e.stateMgr.State()
	if state == manager.Ready || state == manager.Playing {
		e.movementMgr.Steer(pending)
	}
	if state == manager.Ready && pending != types.None {
		res.Event = e.transition(manager.Playing)
	}

	if allowed && e.pool.IsFull() {
		res.Event = e.transition(manager.Win)
		return e.fill(res)
	}

	dir := e.movementMgr.Pending()
	head := e.pool.Head()
	e.aboutToCrash = dir != types.None && e.collisionMgr.WillCrashEdge(head, dir)

	if e.movementMgr.Advance(delta, allowed) {
		if e.collisionMgr.Predict(head, dir) == manager.WallCollision {
			e.movementMgr.Halt()
			res.Collision = manager.WallCollision
			res.Event = e.transition(manager.GameOver)
			return e.fill(res)
		}

		committed := e.movementMgr.Commit()
		e.orientationMgr.FaceHead(committed)
		e.pool.ShiftForward(head.Add(committed.Delta()))
		e.orientationMgr.Resolve(e.pool)
		e.aboutToCrash = false
		res.Moved = true

		if e.collisionMgr.HasSelfCollision(e.pool) {
			res.Collision = manager.SelfCollision
			res.Event = e.transition(manager.GameOver)
		}
	}

	return e.fill(res)
}

// ActivateNextSegment grows the body by one. entity.ErrPoolExhausted means
// the board is covered; the win is raised on the next allowed tick.
func (e *Engine) ActivateNextSegment() error {
	if _, err := e.pool.ActivateNext(); err != nil {
		return err
	}
	e.orientationMgr.Resolve(e.pool)
	return nil
}

// Reset restores the post-construction state once the game has ended. From
// Ready or Playing it returns nil and leaves the engine untouched.
func (e *Engine) Reset() *manager.StateChange {
	change, ok := e.stateMgr.Reset()
	if !ok {
		return nil
	}

	e.pool.Reset()
	e.movementMgr.Reset()
	e.orientationMgr.Reset()
	e.aboutToCrash = false
	return &change
}

func (e *Engine) transition(to manager.GameState) *manager.StateChange {
	change, ok := e.stateMgr.Transition(to)
	if !ok {
		return nil
	}
	return &change
}

func (e *Engine) fill(res TickResult) TickResult {
	res.AboutToCrash = e.aboutToCrash
	res.Head = e.pool.Head()
	res.Segments = e.AllSegmentLocations()
	res.Orientations = e.Orientations()
	return res
}

func (e *Engine) ActiveSegmentCount() int {
	return e.pool.ActiveCount()
}

func (e *Engine) Capacity() int {
	return e.pool.Capacity()
}

func (e *Engine) HeadLocation() types.Point {
	return e.pool.Head()
}

// AllSegmentLocations returns the active segments head first
func (e *Engine) AllSegmentLocations() []types.Point {
	e.locations = e.pool.Locations(e.locations[:0])
	return e.locations
}

// Orientations returns the drawing descriptor of every active segment
func (e *Engine) Orientations() []manager.Orientation {
	e.orientations = e.orientationMgr.Orientations(e.pool, e.orientations[:0])
	return e.orientations
}

// Occupies reports whether an active segment covers pos
func (e *Engine) Occupies(pos types.Point) bool {
	return e.pool.Occupies(pos)
}

func (e *Engine) State() manager.GameState {
	return e.stateMgr.State()
}

func (e *Engine) Grid() types.Grid {
	return e.cfg.Grid
}

func (e *Engine) Committed() types.Direction {
	return e.movementMgr.Committed()
}

// Timer returns the seconds left before the next commit is due
func (e *Engine) Timer() float64 {
	return e.movementMgr.Timer()
}
