// Package ecs provides ECS adapters for twig.
package ecs

import (
	"github.com/phanxgames/twig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEventType is the Donburi event type for twig contact events.
// Subscribe to this in your ECS systems to receive touch, collide and
// resolve notifications.
var ContactEventType = events.NewEventType[twig.ContactEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a ContactSink backed by a Donburi world. Contact
// events are published to ContactEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) twig.ContactSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitContact(event twig.ContactEvent) {
	ContactEventType.Publish(s.world, event)
}
