package events

// Queue is a strict insertion-order buffer of pending events. It is
// owned by the loop thread; cross-thread producers go through a Proxy
// instead.
type Queue struct {
	items []Event
}

// Push appends an event.
func (q *Queue) Push(ev Event) {
	q.items = append(q.items, ev)
}

// Take removes and returns all buffered events in insertion order.
func (q *Queue) Take() []Event {
	items := q.items
	q.items = nil
	return items
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.items)
}

// Clear discards all buffered events.
func (q *Queue) Clear() {
	q.items = nil
}
