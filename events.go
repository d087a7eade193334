package cardboard

// Event is a board lifecycle notification. Events produced during a frame are
// queued and delivered after the frame's last phase, in production order.
type Event struct {
	Type EventType
	// Entity is the hovered, dragged or placed object.
	Entity EntityID
	// Slot is the slot entity for EventSlottedInto, 0 otherwise.
	Slot EntityID
	// PointerX and PointerY hold the world pointer position for
	// EventDragStarted and EventDragEnded.
	PointerX float64
	PointerY float64
}

// EventStore is the interface for optional ECS integration.
// When set on a Board, every delivered event is forwarded to it.
type EventStore interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered board-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. It is safe to call
// from inside any callback; handlers already scheduled for the event being
// delivered still run.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	h.reg.byType[h.event] = removeEventHandler(h.reg.byType[h.event], h.id)
}

func removeEventHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(t EventType, fn func(Event)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.byType[t] = append(r.byType[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: t}
}

// --- Board-level event registration ---

// OnHoverStart registers a callback for EventHoverStarted.
func (b *Board) OnHoverStart(fn func(Event)) CallbackHandle {
	return b.handlers.add(EventHoverStarted, fn)
}

// OnHoverEnd registers a callback for EventHoverEnded.
func (b *Board) OnHoverEnd(fn func(Event)) CallbackHandle {
	return b.handlers.add(EventHoverEnded, fn)
}

// OnDragStart registers a callback for EventDragStarted.
func (b *Board) OnDragStart(fn func(Event)) CallbackHandle {
	return b.handlers.add(EventDragStarted, fn)
}

// OnDragEnd registers a callback for EventDragEnded.
func (b *Board) OnDragEnd(fn func(Event)) CallbackHandle {
	return b.handlers.add(EventDragEnded, fn)
}

// OnSlotted registers a callback for EventSlottedInto.
func (b *Board) OnSlotted(fn func(Event)) CallbackHandle {
	return b.handlers.add(EventSlottedInto, fn)
}

// OnUnknownSlotTarget registers a callback for EventUnknownSlotTarget.
func (b *Board) OnUnknownSlotTarget(fn func(Event)) CallbackHandle {
	return b.handlers.add(EventUnknownSlotTarget, fn)
}

// emit queues an event for delivery at the end of the frame.
func (b *Board) emit(e Event) {
	b.pending = append(b.pending, e)
}

// dispatchEvents delivers the frame's pending events. Board handlers run
// first, then the per-object callback, then the ECS bridge. The delivered
// events stay readable through Events until the next frame.
func (b *Board) dispatchEvents() {
	b.delivered, b.pending = b.pending, b.delivered[:0]

	for _, e := range b.delivered {
		// Handlers may remove themselves or others while running.
		b.handlerBuf = append(b.handlerBuf[:0], b.handlers.byType[e.Type]...)
		for _, h := range b.handlerBuf {
			h.fn(e)
		}
		if o := b.objects[e.Entity]; o != nil {
			if fn := o.callbackFor(e.Type); fn != nil {
				fn(e)
			}
		}
		if b.store != nil {
			b.store.EmitEvent(e)
		}
	}
}

// Events returns the events delivered by the most recent Update.
// The returned slice MUST NOT be retained past the next Update.
func (b *Board) Events() []Event {
	return b.delivered
}

func (o *Object) callbackFor(t EventType) func(Event) {
	switch t {
	case EventHoverStarted:
		return o.OnHoverStart
	case EventHoverEnded:
		return o.OnHoverEnd
	case EventDragStarted:
		return o.OnDragStart
	case EventDragEnded:
		return o.OnDragEnd
	case EventSlottedInto:
		return o.OnSlotted
	case EventUnknownSlotTarget:
		return o.OnSlotMiss
	}
	return nil
}
