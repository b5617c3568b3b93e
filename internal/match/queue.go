package match

import "sync"

const defaultQueueSize = 64

// InputQueue buffers jump requests from goroutines other than the one
// driving the simulation. Push never blocks; Drain empties the queue
// atomically once per frame.
type InputQueue struct {
	mu sync.Mutex
	ch chan int
}

// NewInputQueue creates a queue holding up to size pending jumps.
func NewInputQueue(size int) *InputQueue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &InputQueue{ch: make(chan int, size)}
}

// Push queues a jump for a world. It returns false when the queue is full
// and the jump was dropped.
func (q *InputQueue) Push(world int) bool {
	select {
	case q.ch <- world:
		return true
	default:
		// Queue full, drop input (rare under normal conditions)
		return false
	}
}

// Drain returns every queued jump in arrival order.
func (q *InputQueue) Drain() []int {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []int
	for {
		select {
		case w := <-q.ch:
			out = append(out, w)
		default:
			return out
		}
	}
}

// Len returns the number of pending jumps.
func (q *InputQueue) Len() int {
	return len(q.ch)
}
