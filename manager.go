package quicktween

import "slices"

// Manager ticks a set of top-level tweens and sequences. It replaces a global
// registry: create one per world or scene and call Update once per frame.
//
// Objects marked pending-kill or disposed are dropped on the next Update.
// Adds and removes made from callbacks during Update take effect after the
// current pass.
type Manager struct {
	entries []Tweenable
	added   []Tweenable
	paused  bool
	ticking bool
	sink    EventSink
	script  *ScriptRunner
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers t. Objects owned by a sequence are driven by their owner and
// are rejected. Adding an object registered with another manager moves it.
func (m *Manager) Add(t Tweenable) {
	switch {
	case t == nil || t.IsDisposed():
		warnf("manager: add of a nil or disposed tween ignored")
		return
	case t.Owner() != nil:
		warnf("manager: %s is owned by %s and cannot be added", describe(t), describe(t.Owner()))
		return
	case t.managerOf() == m:
		return
	}
	if other := t.managerOf(); other != nil {
		other.Remove(t)
	}
	t.setManager(m)
	if m.ticking {
		m.added = append(m.added, t)
		return
	}
	m.entries = append(m.entries, t)
}

// Remove unregisters t without killing it.
func (m *Manager) Remove(t Tweenable) {
	if t == nil || t.managerOf() != m {
		return
	}
	t.setManager(nil)
	if m.ticking {
		// Swept at the end of the pass.
		return
	}
	m.entries = slices.DeleteFunc(m.entries, func(e Tweenable) bool { return e == t })
	m.added = slices.DeleteFunc(m.added, func(e Tweenable) bool { return e == t })
}

// Update ticks every registered object by dt seconds. Entries are visited
// newest first. While the manager is paused only objects that play while
// paused are ticked.
func (m *Manager) Update(dt float64) {
	if m.script != nil {
		m.script.step(m)
	}
	m.ticking = true
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if e.managerOf() != m || e.IsPendingKill() || e.IsDisposed() {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			if e.managerOf() == m {
				e.setManager(nil)
			}
			continue
		}
		if m.paused && !e.PlayWhilePaused() {
			continue
		}
		if e.IsPlaying() {
			e.Update(dt)
		}
	}
	m.ticking = false
	m.flush()
}

// flush merges objects added during a pass and drops entries removed during
// it.
func (m *Manager) flush() {
	m.entries = slices.DeleteFunc(m.entries, func(e Tweenable) bool { return e.managerOf() != m })
	for _, t := range m.added {
		if t.managerOf() == m && !slices.Contains(m.entries, t) {
			m.entries = append(m.entries, t)
		}
	}
	clear(m.added)
	m.added = m.added[:0]
}

// SetPaused pauses or resumes the whole manager. Individual objects keep
// their own playing state.
func (m *Manager) SetPaused(paused bool) { m.paused = paused }

// Paused reports whether the manager is paused.
func (m *Manager) Paused() bool { return m.paused }

// SetEventSink routes start, loop, complete and killed events of registered
// objects to sink. Pass nil to stop forwarding.
func (m *Manager) SetEventSink(sink EventSink) { m.sink = sink }

// SetScript attaches a frame script. Its steps run at the start of each
// Update.
func (m *Manager) SetScript(r *ScriptRunner) { m.script = r }

// Len returns the number of registered objects.
func (m *Manager) Len() int {
	return len(m.entries) + len(m.added)
}

// Contains reports whether t is registered.
func (m *Manager) Contains(t Tweenable) bool {
	return t != nil && t.managerOf() == m
}

// Each calls fn for every registered object, oldest first. fn may add,
// remove or kill objects.
func (m *Manager) Each(fn func(t Tweenable)) {
	snapshot := make([]Tweenable, 0, m.Len())
	snapshot = append(snapshot, m.entries...)
	snapshot = append(snapshot, m.added...)
	for _, t := range snapshot {
		if t.managerOf() == m {
			fn(t)
		}
	}
}

// Find returns the oldest registered object with the given tag, or nil.
func (m *Manager) Find(tag string) Tweenable {
	for _, list := range [][]Tweenable{m.entries, m.added} {
		for _, t := range list {
			if t.managerOf() == m && t.Tag() == tag {
				return t
			}
		}
	}
	return nil
}

// FindAll returns every registered object with the given tag.
func (m *Manager) FindAll(tag string) []Tweenable {
	var found []Tweenable
	m.Each(func(t Tweenable) {
		if t.Tag() == tag {
			found = append(found, t)
		}
	})
	return found
}

// EachTagged calls fn for every registered object with the given tag. An
// empty tag matches every object.
func (m *Manager) EachTagged(tag string, fn func(t Tweenable)) {
	m.Each(func(t Tweenable) {
		if tag == "" || t.Tag() == tag {
			fn(t)
		}
	})
}

// KillAll kills every registered object.
func (m *Manager) KillAll() {
	m.Each(Tweenable.Kill)
}

// CompleteAll completes every registered object.
func (m *Manager) CompleteAll() {
	m.Each(Tweenable.Complete)
}
