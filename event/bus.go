// Package event carries gameplay notifications from the session to the
// collaborators that render feedback for them.
package event

// Handler reacts to a dispatched event.
type Handler func(evt Event)

// Bus queues emitted events and delivers them to subscribers when the
// driver calls Dispatch, once per tick.
type Bus struct {
	// pending collects emits; Dispatch swaps it with spare so handlers
	// that emit append to a fresh buffer while the old one is walked.
	pending  []Event
	spare    []Event
	handlers map[Kind][]Handler
	all      []Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]Handler)}
}

// Subscribe registers h for events of kind k.
func (b *Bus) Subscribe(k Kind, h Handler) {
	if b == nil || h == nil {
		return
	}
	b.handlers[k] = append(b.handlers[k], h)
}

// SubscribeAll registers h for every event kind.
func (b *Bus) SubscribeAll(h Handler) {
	if b == nil || h == nil {
		return
	}
	b.all = append(b.all, h)
}

// Emit enqueues evt for the next Dispatch.
func (b *Bus) Emit(evt Event) {
	if b == nil {
		return
	}
	b.pending = append(b.pending, evt)
}

// Dispatch delivers queued events in emission order. Events emitted by
// handlers during dispatch are delivered in the same call.
func (b *Bus) Dispatch() int {
	if b == nil {
		return 0
	}
	delivered := 0
	for len(b.pending) > 0 {
		batch := b.pending
		b.pending = b.spare[:0]
		for i, evt := range batch {
			for _, h := range b.handlers[evt.Kind] {
				h(evt)
			}
			for _, h := range b.all {
				h(evt)
			}
			batch[i] = Event{}
			delivered++
		}
		b.spare = batch[:0]
	}
	return delivered
}

func (b *Bus) Pending() int {
	if b == nil {
		return 0
	}
	return len(b.pending)
}
