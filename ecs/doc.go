// Package ecs provides ECS adapters for twig's contact notifications.
//
// The primary adapter is [NewDonburiSink], which bridges twig contact events
// (touch, collide, resolve) into a [Donburi] world as typed events.
// Subscribe to [ContactEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	physics.SetContactSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
