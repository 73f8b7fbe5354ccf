// Package ecs connects quicktween to a [Donburi] world.
//
// [NewDonburiSink] forwards the lifecycle events of every object registered
// with a [quicktween.Manager] into the world as typed events. Subscribe to
// [TweenEventType] in your ECS systems to receive them.
//
// The [Tweens] component ties tweens to an entity so they can be killed
// together with it.
//
// Usage:
//
//	mgr.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.Attach(entry, tw)
//	...
//	ecs.KillAttached(entry)
//	entry.Remove()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
