package ecs

import (
	"slices"

	"github.com/phanxgames/quicktween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for quicktween lifecycle events.
// Subscribe to this in your ECS systems to receive start, loop, complete and
// killed notifications.
var TweenEventType = events.NewEventType[quicktween.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to TweenEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) quicktween.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event quicktween.Event) {
	TweenEventType.Publish(s.world, event)
}

// TweensData lists the tweens and sequences animating an entity.
type TweensData struct {
	Active []quicktween.Tweenable
}

// Tweens is the component holding an entity's tweens.
var Tweens = donburi.NewComponentType[TweensData]()

// Attach records t on entry, adding the Tweens component if needed.
func Attach(entry *donburi.Entry, t quicktween.Tweenable) {
	if t == nil {
		return
	}
	if !entry.HasComponent(Tweens) {
		entry.AddComponent(Tweens)
	}
	d := Tweens.Get(entry)
	if !slices.Contains(d.Active, t) {
		d.Active = append(d.Active, t)
	}
}

// KillAttached kills every tween recorded on entry and clears the list.
func KillAttached(entry *donburi.Entry) {
	if !entry.HasComponent(Tweens) {
		return
	}
	d := Tweens.Get(entry)
	for _, t := range d.Active {
		t.Kill()
	}
	clear(d.Active)
	d.Active = d.Active[:0]
}

// Prune drops killed and disposed tweens from every entity. Call it once per
// frame after Manager.Update.
func Prune(world donburi.World) {
	Tweens.Each(world, func(entry *donburi.Entry) {
		d := Tweens.Get(entry)
		d.Active = slices.DeleteFunc(d.Active, func(t quicktween.Tweenable) bool {
			return t.IsPendingKill() || t.IsDisposed()
		})
	})
}
