package ecs

import (
	"github.com/phanxgames/sacred"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RegenerationEventType is the Donburi event type for sketch regenerations.
// Subscribe to it in your ECS systems to react to new snapshots.
var RegenerationEventType = events.NewEventType[sacred.RegenerationEvent]()

// LatestGeneration holds the most recent regeneration on a single entity,
// for systems that poll instead of subscribing.
var LatestGeneration = donburi.NewComponentType[sacred.RegenerationEvent]()

type donburiSink struct {
	world donburi.World
	entry *donburi.Entry
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to RegenerationEventType, to be consumed with Subscribe and
// ProcessEvents, and stored on the LatestGeneration entity immediately.
func NewDonburiSink(world donburi.World) sacred.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitRegeneration(event sacred.RegenerationEvent) {
	RegenerationEventType.Publish(s.world, event)
	if s.entry == nil || !s.entry.Valid() {
		s.entry = s.world.Entry(s.world.Create(LatestGeneration))
	}
	LatestGeneration.SetValue(s.entry, event)
}

// Latest returns the most recent regeneration recorded in world.
func Latest(world donburi.World) (sacred.RegenerationEvent, bool) {
	entry, ok := LatestGeneration.First(world)
	if !ok {
		return sacred.RegenerationEvent{}, false
	}
	return *LatestGeneration.Get(entry), true
}
