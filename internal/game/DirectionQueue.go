package game

// maxPendingTurns bounds how many turns can be buffered ahead of
// consumption. Two is enough for a quick corner; anything deeper would let
// a burst of keypresses fold the snake back through itself before a single
// step is consumed.
const maxPendingTurns = 2

// DirectionQueue buffers direction commands that arrive between ticks.
type DirectionQueue struct {
	pending []Direction
}

// Push appends candidate unless it repeats or reverses the effective
// direction (the last queued turn, or active when nothing is queued), or
// the queue is full. It reports whether the turn was buffered.
func (q *DirectionQueue) Push(candidate, active Direction) bool {
	effective := active
	if n := len(q.pending); n > 0 {
		effective = q.pending[n-1]
	}
	if candidate == effective || candidate == effective.Opposite() {
		return false
	}
	if len(q.pending) >= maxPendingTurns {
		return false
	}
	q.pending = append(q.pending, candidate)
	return true
}

// Pop removes and returns the oldest buffered turn.
func (q *DirectionQueue) Pop() (Direction, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	head := q.pending[0]
	q.pending = q.pending[1:]
	return head, true
}

func (q *DirectionQueue) Clear() {
	q.pending = q.pending[:0]
}

func (q *DirectionQueue) Len() int {
	return len(q.pending)
}
