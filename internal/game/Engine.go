package game

import (
	"math/rand"
	"time"
)

// State is the lifecycle of a single run. GameOver is terminal until an
// explicit Restart.
type State int

const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "game over"
	}
}

// Engine owns every piece of mutable game state: the snake, the food, the
// scores and the direction queue. All mutation happens synchronously
// inside its methods; the UI drives it from a single goroutine, so no
// locking is needed.
type Engine struct {
	snake  []Point // head first, cells distinct while alive
	food   Point
	active Direction
	queue  DirectionQueue
	score  int
	best   int
	state  State
	rng    *rand.Rand
	scores *ScoreService
}

// Snapshot is a read-only copy of the state the renderer needs. The
// renderer never touches the engine directly.
type Snapshot struct {
	Snake           []Point
	Food            Point
	Score           int
	Best            int
	State           State
	ActiveDirection Direction
}

// NewEngine builds an engine with a freshly placed snake and food. The
// best score is loaded from the scores service once; a nil rng gets a
// time-based seed.
func NewEngine(scores *ScoreService, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	engine := &Engine{
		rng:    rng,
		scores: scores,
		best:   scores.LoadBest(),
	}
	engine.Restart()
	return engine
}

// Restart reinitializes a run from any state: three-segment snake in the
// grid centre heading right, empty direction queue, zero score, fresh
// food. The best score survives restarts.
func (e *Engine) Restart() {
	startX := GridColCount / 2
	startY := GridRowCount / 2
	e.snake = make([]Point, 0, InitialSnakeLength)
	for i := 0; i < InitialSnakeLength; i++ {
		e.snake = append(e.snake, Wrap(Point{X: startX - i, Y: startY}))
	}
	e.active = Right
	e.queue.Clear()
	e.score = 0
	e.state = Running
	e.food = PlaceFood(e.occupied(), e.rng)
}

// Enqueue buffers a direction command for the coming ticks, subject to
// the queue's rejection rules.
func (e *Engine) Enqueue(d Direction) {
	e.queue.Push(d, e.active)
}

// TogglePause flips Running and Paused. A finished game stays finished.
func (e *Engine) TogglePause() {
	switch e.state {
	case Running:
		e.state = Paused
	case Paused:
		e.state = Running
	}
}

// Step advances the simulation by one tick. It is a no-op unless Running.
func (e *Engine) Step() {
	if e.state != Running {
		return
	}

	if next, ok := e.queue.Pop(); ok {
		e.active = next
	}

	newHead := e.snake[0].Translate(e.active)
	willEat := newHead == e.food

	// Candidate body: prepend the head, and unless eating drop the tail
	// so it vacates its cell this same step.
	candidate := make([]Point, 0, len(e.snake)+1)
	candidate = append(candidate, newHead)
	candidate = append(candidate, e.snake...)
	if !willEat {
		candidate = candidate[:len(candidate)-1]
	}

	for _, segment := range candidate[1:] {
		if segment == newHead {
			// Freeze on death: the failed move is never committed.
			e.state = GameOver
			return
		}
	}

	e.snake = candidate
	if willEat {
		e.score++
		if e.score > e.best {
			e.best = e.score
			e.scores.SaveBest(e.best)
		}
		e.food = PlaceFood(e.occupied(), e.rng)
	}
}

// Snapshot copies the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	snake := make([]Point, len(e.snake))
	copy(snake, e.snake)
	return Snapshot{
		Snake:           snake,
		Food:            e.food,
		Score:           e.score,
		Best:            e.best,
		State:           e.state,
		ActiveDirection: e.active,
	}
}

func (e *Engine) occupied() map[Point]bool {
	cells := make(map[Point]bool, len(e.snake))
	for _, segment := range e.snake {
		cells[segment] = true
	}
	return cells
}
