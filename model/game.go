package model

import (
	"iter"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultHistoryCapacity is how many past generations a game keeps for
// repeat detection unless WithHistoryCapacity says otherwise.
const DefaultHistoryCapacity = 10

// State is the game's lifecycle stage
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// Snapshot is a consistent read of the game's counters
type Snapshot struct {
	Generation      int
	FinalGeneration int
	LivingCells     int
	State           State
}

type gameOptions struct {
	historyCapacity int
	seed            uint64
	seeded          bool
	workers         int
	freezeOnOver    bool
	pool            *GridPool
}

// Option configures a Game at construction
type Option func(*gameOptions)

// WithHistoryCapacity sets how many past generations are compared against
// the live grid. Cycles longer than this are never detected.
func WithHistoryCapacity(capacity int) Option {
	return func(o *gameOptions) { o.historyCapacity = capacity }
}

// WithSeed makes Randomize deterministic
func WithSeed(seed uint64) Option {
	return func(o *gameOptions) { o.seed, o.seeded = seed, true }
}

// WithWorkers sets the fan-out of each generation's computation
func WithWorkers(n int) Option {
	return func(o *gameOptions) { o.workers = n }
}

// WithFreezeOnOver controls what Tick does once a repeat has been found.
// When true (the default) Tick refuses with ErrGameOver; when false the
// simulation keeps advancing and analysis stays off.
func WithFreezeOnOver(freeze bool) Option {
	return func(o *gameOptions) { o.freezeOnOver = freeze }
}

// WithGridPool recycles evicted history snapshots through pool
func WithGridPool(pool *GridPool) Option {
	return func(o *gameOptions) { o.pool = pool }
}

// Game runs one simulation: it owns the live grid and the history of past
// generations, and stops once the live grid repeats one of them.
//
// All methods are safe for concurrent use. Mutators take the write lock for
// their whole duration, so readers only ever see complete generations.
type Game struct {
	mu sync.RWMutex

	grid    *Grid
	history *Tunnel[*Grid]
	pool    *GridPool
	rng     *rand.Rand

	currentGeneration int
	finalGeneration   int
	gameOver          bool
	freezeOnOver      bool
}

// NewGame creates a game with an all-dead width x height grid
func NewGame(width, height int, opts ...Option) (*Game, error) {
	o := gameOptions{
		historyCapacity: DefaultHistoryCapacity,
		freezeOnOver:    true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = uint64(time.Now().UnixNano())
	}

	grid, err := NewGrid(width, height, WithWorkerCount(o.workers))
	if err != nil {
		return nil, errors.Wrap(err, "[NewGame] failed to build grid")
	}
	history, err := NewTunnel[*Grid](o.historyCapacity)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGame] failed to build history")
	}

	return &Game{
		grid:         grid,
		history:      history,
		pool:         o.pool,
		rng:          rand.New(rand.NewPCG(o.seed, o.seed>>1|1)),
		freezeOnOver: o.freezeOnOver,
	}, nil
}

// Width returns the grid width
func (gm *Game) Width() int { return gm.grid.Width() }

// Height returns the grid height
func (gm *Game) Height() int { return gm.grid.Height() }

// HistoryCapacity returns how many past generations are retained
func (gm *Game) HistoryCapacity() int { return gm.history.Cap() }

// Randomize brings each cell to life independently with the given
// percentage chance. Generation counters are left alone.
func (gm *Game) Randomize(percentage int) error {
	if percentage < 1 || percentage > 100 {
		return errors.Wrapf(ErrOutOfRange, "[Randomize] percentage %d not in [1, 100]", percentage)
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	for y := range gm.grid.rows {
		row := gm.grid.rows[y]
		for x := range row {
			row[x].alive = gm.rng.IntN(100) < percentage
		}
	}
	gm.grid.hashValid = false
	return nil
}

// SeedShape clears the grid and stamps the preset centred on the midpoint.
// The grid is untouched when the shape does not fit.
func (gm *Game) SeedShape(kind Shape) error {
	points, err := kind.place(gm.grid.Width(), gm.grid.Height())
	if err != nil {
		return err
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	gm.grid.Reset()
	for _, p := range points {
		gm.grid.rows[p.Y][p.X].alive = true
	}
	return nil
}

// Set changes a single cell of the live grid
func (gm *Game) Set(x, y int, alive bool) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.grid.Set(x, y, alive)
}

// Get reads a single cell of the live grid
func (gm *Game) Get(x, y int) (bool, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.grid.Get(x, y)
}

// Tick advances the simulation one generation: the current grid is saved to
// history, the next generation is computed, and the result is checked
// against history for a repeat.
func (gm *Game) Tick() error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.gameOver && gm.freezeOnOver {
		return errors.Wrapf(ErrGameOver, "[Tick] repeat found at generation %d", gm.finalGeneration)
	}

	if evicted, ok := gm.history.Push(gm.snapshotGrid()); ok {
		GridToPool(evicted, gm.pool)
	}
	gm.grid.Advance()
	gm.currentGeneration++
	gm.analyze()
	return nil
}

// snapshotGrid copies the live grid, drawing storage from the pool when there is one
func (gm *Game) snapshotGrid() *Grid {
	if gm.pool == nil {
		return gm.grid.Clone()
	}
	return gm.grid.CloneInto(gm.pool.Get(gm.grid.Width(), gm.grid.Height()))
}

// Analyze compares the live grid with every retained generation and ends
// the game on the first match. Tick already calls it; it is exported for
// callers that edit the grid between ticks.
func (gm *Game) Analyze() {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.analyze()
}

func (gm *Game) analyze() {
	if gm.gameOver {
		return
	}
	gm.grid.Hash()
	for past := range gm.history.All() {
		past.Hash()
		if gm.grid.Equal(past) {
			gm.gameOver = true
			gm.finalGeneration = gm.currentGeneration
			return
		}
	}
}

// CurrentGeneration returns how many ticks have run
func (gm *Game) CurrentGeneration() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.currentGeneration
}

// FinalGeneration returns the generation at which a repeat was found, or 0
// while the game is running.
func (gm *Game) FinalGeneration() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.finalGeneration
}

// GameOver reports whether a repeat has been found
func (gm *Game) GameOver() bool {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.gameOver
}

// State returns Running or Over
func (gm *Game) State() State {
	if gm.GameOver() {
		return Over
	}
	return Running
}

// Snapshot reads every counter under one lock
func (gm *Game) Snapshot() Snapshot {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	s := Snapshot{
		Generation:      gm.currentGeneration,
		FinalGeneration: gm.finalGeneration,
		LivingCells:     gm.grid.CountLivingCells(),
	}
	if gm.gameOver {
		s.State = Over
	}
	return s
}

// Grid returns a copy of the live grid
func (gm *Game) Grid() *Grid {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.grid.Clone()
}

// Previous returns a copy of the generation before the current one.
// ok is false before the first tick.
func (gm *Game) Previous() (*Grid, bool) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	prev, ok := gm.history.Peek()
	if !ok {
		return nil, false
	}
	return prev.Clone(), true
}

// History yields copies of the retained generations, most recent first
func (gm *Game) History() iter.Seq[*Grid] {
	gm.mu.RLock()
	past := make([]*Grid, 0, gm.history.Len())
	for g := range gm.history.All() {
		past = append(past, g.Clone())
	}
	gm.mu.RUnlock()
	return slices.Values(past)
}

// Changes lists the cells that differ between the previous generation and
// the live grid. full is true when there is no previous generation, in which
// case every live cell is listed and callers should redraw everything.
func (gm *Game) Changes() (changed []Point, full bool) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	prev, ok := gm.history.Peek()
	if !ok {
		return gm.grid.LiveCells(), true
	}
	return gm.grid.Diff(prev), false
}
