// Package ecs provides ECS adapters for cardboard's board events.
//
// The primary adapter is [NewDonburiStore], which bridges board events
// (hover, drag, slot placement) into a [Donburi] world as typed events.
// Subscribe to [CardEventType] in your ECS systems to receive them, or use
// [SubscribeType] and [SubscribePlacements] to receive only part of the stream.
//
// Usage:
//
//	board.SetEventStore(ecs.NewDonburiStore(world))
//	ecs.SubscribePlacements(world, func(w donburi.World, p ecs.Placement) {
//		// p.Slot is zero when the card found no slot.
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
