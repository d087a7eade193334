package ecs

import (
	"github.com/phanxgames/cardboard"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CardEventType is the Donburi event type for board events. Every delivered
// board event is published to it in frame order: Entity is the hovered,
// dragged or placed object and, for EventSlottedInto, Slot is the slot that
// received it.
var CardEventType = events.NewEventType[cardboard.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Attach it
// with Board.SetEventStore, then drain the queue from a system with
// CardEventType.ProcessEvents.
func NewDonburiStore(world donburi.World) cardboard.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event cardboard.Event) {
	CardEventType.Publish(s.world, event)
}

// SubscribeType subscribes fn to board events of a single type, for systems
// that only care about, say, slot placements.
func SubscribeType(world donburi.World, t cardboard.EventType, fn func(donburi.World, cardboard.Event)) {
	CardEventType.Subscribe(world, func(w donburi.World, e cardboard.Event) {
		if e.Type == t {
			fn(w, e)
		}
	})
}

// Placement is a slot assignment read from a board event.
type Placement struct {
	Card cardboard.EntityID
	Slot cardboard.EntityID
}

// SubscribePlacements calls fn for every card placed into a slot, and with a
// zero Slot for every slottable card that found no slot.
func SubscribePlacements(world donburi.World, fn func(donburi.World, Placement)) {
	CardEventType.Subscribe(world, func(w donburi.World, e cardboard.Event) {
		switch e.Type {
		case cardboard.EventSlottedInto, cardboard.EventUnknownSlotTarget:
			fn(w, Placement{Card: e.Entity, Slot: e.Slot})
		}
	})
}
