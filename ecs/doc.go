// Package ecs provides ECS adapters for sacred's regeneration events.
//
// The primary adapter is [NewDonburiSink], which bridges sketch
// regenerations (start, click, auto, manual) into a [Donburi] world as
// typed events. Subscribe to [RegenerationEventType] in your ECS systems to
// receive them, or read [Latest] each frame.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sk, err := sacred.NewSketch(sacred.Config{Events: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
