package quicktween

// Event describes a lifecycle notification forwarded by a Manager to its
// EventSink.
type Event struct {
	Kind     EventKind
	Tag      string
	Source   Tweenable
	Loop     int
	Progress float64
}

// EventSink receives lifecycle events from every object registered with a
// Manager. Update events are not forwarded; subscribe with OnUpdate instead.
type EventSink interface {
	EmitEvent(event Event)
}

// listeners holds the one-to-many callbacks of a Tween or Sequence.
type listeners[T any] struct {
	byKind [eventKindCount][]func(T)
}

const eventKindCount = int(EventKilled) + 1

func (l *listeners[T]) add(kind EventKind, fn func(T)) {
	if fn == nil {
		return
	}
	l.byKind[kind] = append(l.byKind[kind], fn)
}

func (l *listeners[T]) fire(kind EventKind, v T) {
	for _, fn := range l.byKind[kind] {
		fn(v)
	}
}

func (l *listeners[T]) clear() {
	for i := range l.byKind {
		l.byKind[i] = nil
	}
}

// publish forwards an event to the manager's sink when there is one.
func publish(m *Manager, e Event) {
	if m == nil || m.sink == nil || e.Kind == EventUpdate {
		return
	}
	m.sink.EmitEvent(e)
}
