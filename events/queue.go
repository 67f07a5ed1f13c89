package events

// Queue is a FIFO buffer of game events
// Thread-Safety: none, producer and consumer both run on the game loop
type Queue struct {
	events []GameEvent
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event
func (q *Queue) Push(event GameEvent) {
	q.events = append(q.events, event)
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
