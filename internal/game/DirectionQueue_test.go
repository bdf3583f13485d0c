package game

import "testing"

func TestPushRejectsSameDirection(t *testing.T) {
	var q DirectionQueue
	if q.Push(Right, Right) {
		t.Error("pushing the active direction should be rejected")
	}
	if q.Len() != 0 {
		t.Errorf("queue length = %d, want 0", q.Len())
	}
}

func TestPushRejectsOpposite(t *testing.T) {
	var q DirectionQueue
	if q.Push(Left, Right) {
		t.Error("pushing the reverse of the active direction should be rejected")
	}
	if q.Len() != 0 {
		t.Errorf("queue length = %d, want 0", q.Len())
	}
}

func TestPushChecksAgainstLastQueued(t *testing.T) {
	var q DirectionQueue
	if !q.Push(Up, Right) {
		t.Fatal("first valid turn should be buffered")
	}
	// Effective direction is now Up, not the active Right.
	if q.Push(Up, Right) {
		t.Error("repeating the last queued turn should be rejected")
	}
	if q.Push(Down, Right) {
		t.Error("reversing the last queued turn should be rejected")
	}
	if !q.Push(Left, Right) {
		t.Error("turn orthogonal to the last queued one should be buffered")
	}
}

func TestPushBound(t *testing.T) {
	var q DirectionQueue
	if !q.Push(Up, Right) || !q.Push(Left, Right) {
		t.Fatal("two valid turns should be buffered")
	}
	if q.Push(Down, Right) {
		t.Error("third turn should be dropped by backpressure")
	}
	if q.Len() != maxPendingTurns {
		t.Errorf("queue length = %d, want %d", q.Len(), maxPendingTurns)
	}
}

func TestPopIsFIFO(t *testing.T) {
	var q DirectionQueue
	q.Push(Up, Right)
	q.Push(Left, Right)

	first, ok := q.Pop()
	if !ok || first != Up {
		t.Errorf("first Pop = %v, %v, want Up, true", first, ok)
	}
	second, ok := q.Pop()
	if !ok || second != Left {
		t.Errorf("second Pop = %v, %v, want Left, true", second, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue should report false")
	}
}

func TestClear(t *testing.T) {
	var q DirectionQueue
	q.Push(Up, Right)
	q.Push(Left, Right)
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("queue length after Clear = %d, want 0", q.Len())
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop after Clear should report false")
	}
}
