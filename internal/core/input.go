package core

// Event is a discrete input event, abstracted from physical key presses.
// Frontends translate keys, window signals and bots into events; the game
// only ever sees events.
type Event int

const (
	EventNone    Event = iota
	EventQuit          // Window closed, Q, Esc, Ctrl+C
	EventJump          // Space, Up, W
	EventRestart       // Space, R, Enter after game over
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventJump:
		return "Jump"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// EventQueue collects events between ticks. Events keep arrival order.
// It is not safe for concurrent use: push and drain from the same goroutine.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event. EventNone is dropped.
func (q *EventQueue) Push(events ...Event) {
	for _, e := range events {
		if e != EventNone {
			q.events = append(q.events, e)
		}
	}
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
