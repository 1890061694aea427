package ecs

import (
	"fmt"

	"github.com/phanxgames/canopy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for canopy interaction
// events. Subscribe to this in your ECS systems.
var InteractionEventType = events.NewEventType[canopy.InteractionEvent]()

// WidgetData is the component attached to entities bound with Bind.
type WidgetData struct {
	Widget *canopy.Widget
}

// Widget is the component type holding an entity's bound widget.
var Widget = donburi.NewComponentType[WidgetData]()

// DonburiStore is a canopy.EntityStore backed by a Donburi world.
type DonburiStore struct {
	world    donburi.World
	nextID   uint32
	entities map[uint32]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{
		world:    world,
		entities: make(map[uint32]donburi.Entity),
	}
}

// EmitEvent publishes event to InteractionEventType.
func (s *DonburiStore) EmitEvent(event canopy.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Bind associates w with entity: the entity gets a Widget component and the
// widget's EntityID is set so its events can be traced back. The binding is
// dropped when the widget is destroyed; the entity itself is left alone.
// Binding an already-bound widget replaces its previous binding. A destroyed
// widget cannot be bound.
func (s *DonburiStore) Bind(entity donburi.Entity, w *canopy.Widget) error {
	if w.IsDestroyed() {
		return fmt.Errorf("canopy/ecs: bind %q: %w", w.Name(), canopy.ErrDestroyed)
	}
	if w.EntityID != 0 {
		s.unbind(w.EntityID, w)
	}

	s.nextID++
	id := s.nextID
	s.entities[id] = entity
	w.EntityID = id

	entry := s.world.Entry(entity)
	if !entry.HasComponent(Widget) {
		entry.AddComponent(Widget)
	}
	Widget.SetValue(entry, WidgetData{Widget: w})

	prev := w.OnDestroy
	w.OnDestroy = func(dw *canopy.Widget) {
		if prev != nil {
			prev(dw)
		}
		s.unbind(id, dw)
	}
	return nil
}

// Entity returns the entity bound under the given widget EntityID.
func (s *DonburiStore) Entity(id uint32) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// unbind drops binding id. The entity's Widget component is removed only if
// it still refers to w.
func (s *DonburiStore) unbind(id uint32, w *canopy.Widget) {
	e, ok := s.entities[id]
	if !ok {
		return
	}
	delete(s.entities, id)
	if !s.world.Valid(e) {
		return
	}
	entry := s.world.Entry(e)
	if entry.HasComponent(Widget) && Widget.Get(entry).Widget == w {
		entry.RemoveComponent(Widget)
	}
}
