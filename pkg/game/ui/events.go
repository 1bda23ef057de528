package ui

import (
	"github.com/zyedidia/generic/queue"
)

// ToggleEvent records one button flip.
type ToggleEvent struct {
	Button ButtonKind
	On     bool
}

// Events buffers toggle notifications until the scene drains them once per
// tick, so widgets never call into scene state directly.
type Events struct {
	q *queue.Queue[ToggleEvent]
}

// NewEvents creates an empty event queue
func NewEvents() *Events {
	return &Events{q: queue.New[ToggleEvent]()}
}

// Watch subscribes the queue to a button's notifications.
func (e *Events) Watch(b *ToggleButton) {
	kind := b.Kind
	b.OnToggle(func(on bool) {
		e.q.Enqueue(ToggleEvent{Button: kind, On: on})
	})
}

// Empty reports whether no events are pending.
func (e *Events) Empty() bool {
	return e.q.Empty()
}

// Drain delivers pending events in arrival order and empties the queue.
func (e *Events) Drain(fn func(ToggleEvent)) int {
	n := 0
	for !e.q.Empty() {
		fn(e.q.Dequeue())
		n++
	}
	return n
}
