// Package ecs connects canopy widgets to a [Donburi] world.
//
// [NewDonburiStore] returns an [canopy.EntityStore] that publishes widget
// interaction events (pointer down/up, click, enter, leave) as typed Donburi
// events, and can bind widgets to entities so systems can find the widget
// an event came from.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	view.SetEntityStore(store)
//	if err := store.Bind(entity, button); err != nil { ... }
//
//	ecs.InteractionEventType.Subscribe(world, func(w donburi.World, e canopy.InteractionEvent) {
//		if entity, ok := store.Entity(e.EntityID); ok { ... }
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
