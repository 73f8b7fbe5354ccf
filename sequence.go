package quicktween

import (
	"fmt"
	"math"
)

// member is one entry of a group. The sequence observes its members but does
// not keep them alive: a disposed member counts as completed.
type member struct {
	t    Tweenable
	lost bool
}

// Sequence plays groups of tweens one after another. The members of a group
// run in parallel and the group ends when its slowest member completes.
//
//	seq := quicktween.NewSequence(cfg)
//	seq.Join(moveRight).Append(fadeIn) // group 0: both in parallel
//	seq.Join(moveDown)                 // group 1: after group 0
//	seq.Play()
//
// A sequence owns its members: their exported lifecycle methods are ignored
// until the sequence is disposed. Sequences are Tweenable and can be nested.
type Sequence struct {
	groups          [][]member
	loops           int
	loopType        LoopType
	tag             string
	autoKill        bool
	playWhilePaused bool

	elapsed     float64
	currentLoop int
	cursor      int
	backwards   bool // timeline direction, toggled by Reverse
	walkBack    bool // cursor direction in the current loop
	playing     bool
	completed   bool
	started     bool
	pendingKill bool
	disposed    bool
	spill       float64

	owner   Tweenable
	manager *Manager
	events  listeners[*Sequence]
}

// NewSequence creates an empty sequence. Only the loop, tag and playback
// flags of cfg apply; members keep their own durations and eases.
func NewSequence(cfg Config) *Sequence {
	cfg = cfg.sanitized()
	return &Sequence{
		loops:           cfg.Loops,
		loopType:        cfg.LoopType,
		tag:             cfg.Tag,
		autoKill:        cfg.AutoKill,
		playWhilePaused: cfg.PlayWhilePaused,
		currentLoop:     1,
		playing:         cfg.AutoPlay,
	}
}

// Join starts a new group containing t.
func (s *Sequence) Join(t Tweenable) *Sequence {
	if s.accept(t, "Join") {
		s.groups = append(s.groups, []member{{t: t}})
		s.adopt(t)
	}
	return s
}

// Append adds t to the last group so it runs in parallel with that group's
// members. On an empty sequence it behaves like Join.
func (s *Sequence) Append(t Tweenable) *Sequence {
	if len(s.groups) == 0 {
		return s.Join(t)
	}
	if s.accept(t, "Append") {
		last := len(s.groups) - 1
		s.groups[last] = append(s.groups[last], member{t: t})
		s.adopt(t)
	}
	return s
}

func (s *Sequence) accept(t Tweenable, op string) bool {
	switch {
	case s.disposed || s.pendingKill:
		warnf("%s: %s on a killed sequence ignored", describe(s), op)
	case t == nil || t.IsDisposed():
		warnf("%s: %s of a nil or disposed tween ignored", describe(s), op)
	case t.Loops() == InfiniteLoops:
		warnf("%s: %s rejected %s: infinite loops have no finite duration", describe(s), op, describe(t))
	case t.IsPendingKill():
		warnf("%s: %s rejected %s: it was killed", describe(s), op, describe(t))
	case t.Owner() != nil:
		warnf("%s: %s rejected %s: already owned by %s", describe(s), op, describe(t), describe(t.Owner()))
	case s.within(t):
		warnf("%s: %s rejected %s: it contains this sequence", describe(s), op, describe(t))
	default:
		return true
	}
	return false
}

// within reports whether t is s or one of the sequences that own s.
func (s *Sequence) within(t Tweenable) bool {
	for o := Tweenable(s); o != nil; o = o.Owner() {
		if o == t {
			return true
		}
	}
	return false
}

func (s *Sequence) adopt(t Tweenable) {
	if m := t.managerOf(); m != nil {
		m.Remove(t)
	}
	t.setOwner(s)
	s.align(t)
	if s.playing {
		t.play(s)
	}
}

// --- Lifecycle (external callers) ---

// Update advances the sequence by dt seconds.
func (s *Sequence) Update(dt float64) { s.update(dt, nil) }

// Play starts or resumes the sequence and its members.
func (s *Sequence) Play() { s.play(nil) }

// Pause halts the sequence and its members.
func (s *Sequence) Pause() { s.pause(nil) }

// TogglePause pauses a playing sequence and plays a paused one.
func (s *Sequence) TogglePause() {
	if s.playing {
		s.pause(nil)
	} else {
		s.play(nil)
	}
}

// Stop halts the sequence, stops every member and rewinds the cursor.
func (s *Sequence) Stop() { s.stop(nil) }

// Reverse flips the direction of the whole sequence mid-flight. The current
// group plays back from where it is, then earlier groups replay backwards.
func (s *Sequence) Reverse() { s.reverse(nil) }

// Restart rewinds every member and plays from the start of the current
// direction.
func (s *Sequence) Restart() { s.restart(nil) }

// Complete snaps every member of every group to its terminal pose.
func (s *Sequence) Complete() { s.complete(nil, true) }

// CompleteAt completes the sequence; with snapToEnd false every member snaps
// back to the pose the run started from.
func (s *Sequence) CompleteAt(snapToEnd bool) { s.complete(nil, snapToEnd) }

// KillSequence stops the current group, marks the sequence for removal and
// fires the killed notification once.
func (s *Sequence) KillSequence() { s.kill(nil) }

// Kill is KillSequence.
func (s *Sequence) Kill() { s.kill(nil) }

// Dispose destroys the sequence and releases its members, which become
// free-standing tweens again.
func (s *Sequence) Dispose() {
	if s.disposed {
		return
	}
	if s.manager != nil {
		s.manager.Remove(s)
	}
	for _, g := range s.groups {
		for _, m := range g {
			if !m.t.IsDisposed() && m.t.Owner() == Tweenable(s) {
				m.t.setOwner(nil)
			}
		}
	}
	s.groups = nil
	s.playing = false
	s.pendingKill = true
	s.disposed = true
	s.owner = nil
	s.events.clear()
}

// --- Queries ---

// Duration returns the length of one loop: the sum over groups of the
// longest member run in each group.
func (s *Sequence) Duration() float64 {
	var total float64
	for _, g := range s.groups {
		total += groupSpan(g)
	}
	return total
}

func groupSpan(g []member) float64 {
	var longest float64
	for _, m := range g {
		if m.t.IsDisposed() {
			continue
		}
		longest = math.Max(longest, m.t.TotalDuration())
	}
	return longest
}

// TotalDuration implements Tweenable.
func (s *Sequence) TotalDuration() float64 {
	if s.loops == InfiniteLoops {
		return math.Inf(1)
	}
	return s.Duration() * float64(s.loops)
}

// NumTweens returns the number of members across all groups.
func (s *Sequence) NumTweens() int {
	n := 0
	for _, g := range s.groups {
		n += len(g)
	}
	return n
}

// Tween returns the member at a flat index counted across groups in
// insertion order, or nil when out of range.
func (s *Sequence) Tween(index int) Tweenable {
	if index < 0 {
		return nil
	}
	for _, g := range s.groups {
		if index < len(g) {
			return g[index].t
		}
		index -= len(g)
	}
	return nil
}

// NumGroups returns the number of groups.
func (s *Sequence) NumGroups() int { return len(s.groups) }

// CurrentGroup returns the index of the group being played.
func (s *Sequence) CurrentGroup() int { return s.cursor }

// CurrentLoop returns the 1-based index of the loop in progress.
func (s *Sequence) CurrentLoop() int { return s.currentLoop }

// Elapsed returns the time on the sequence timeline, every loop included.
func (s *Sequence) Elapsed() float64 { return s.elapsed }

// Progress returns the normalized position inside the current loop.
func (s *Sequence) Progress() float64 {
	d := s.Duration()
	if math.IsInf(d, 1) {
		return 0
	}
	if d <= epsilon {
		if s.completed {
			return 1
		}
		return 0
	}
	local := s.elapsed - d*float64(s.currentLoop-1)
	return math.Max(0, math.Min(1, local/d))
}

func (s *Sequence) Loops() int            { return s.loops }
func (s *Sequence) LoopType() LoopType    { return s.loopType }
func (s *Sequence) Tag() string           { return s.tag }
func (s *Sequence) Owner() Tweenable      { return s.owner }
func (s *Sequence) IsPlaying() bool       { return s.playing }
func (s *Sequence) IsCompleted() bool     { return s.completed }
func (s *Sequence) IsPendingKill() bool   { return s.pendingKill }
func (s *Sequence) IsBackwards() bool     { return s.backwards }
func (s *Sequence) PlayWhilePaused() bool { return s.playWhilePaused }

// IsDisposed reports whether the sequence has been destroyed. A nil
// sequence counts as disposed.
func (s *Sequence) IsDisposed() bool { return s == nil || s.disposed }

// --- Notifications ---

func (s *Sequence) OnStart(fn func(*Sequence))    { s.events.add(EventStart, fn) }
func (s *Sequence) OnUpdate(fn func(*Sequence))   { s.events.add(EventUpdate, fn) }
func (s *Sequence) OnLoop(fn func(*Sequence))     { s.events.add(EventLoop, fn) }
func (s *Sequence) OnComplete(fn func(*Sequence)) { s.events.add(EventComplete, fn) }
func (s *Sequence) OnKilled(fn func(*Sequence))   { s.events.add(EventKilled, fn) }
func (s *Sequence) ClearListeners()               { s.events.clear() }

func (s *Sequence) emit(kind EventKind) {
	s.events.fire(kind, s)
	publish(s.manager, Event{Kind: kind, Tag: s.tag, Source: s, Loop: s.currentLoop, Progress: s.Progress()})
}

// --- Instigator forms ---

func (s *Sequence) allowed(by Tweenable, op string) bool {
	if s.disposed {
		if debug {
			debugCheckDisposed(s.tag, op)
		}
		return false
	}
	return s.owner == by
}

func (s *Sequence) update(dt float64, by Tweenable) {
	if !s.allowed(by, "Update") || s.completed || !s.playing || s.pendingKill {
		return
	}
	s.spill = 0
	if !s.started {
		s.started = true
		s.emit(EventStart)
	}

	if s.backwards {
		s.elapsed -= dt
	} else {
		s.elapsed += dt
	}
	if s.Duration() <= epsilon {
		s.spill = dt
		s.complete(by, true)
		return
	}

	// The cursor alone decides completion. Time a finished group did not
	// use flows into the next group within the same update, across loop
	// boundaries too. A full pass over the groups that consumes nothing
	// ends the update.
	remaining := dt
	idle := 0
	for {
		done, over := s.tickGroup(remaining)
		if !done {
			break
		}
		if over >= remaining-epsilon {
			idle++
		} else {
			idle = 0
		}
		s.spill = over
		if s.advance(by) {
			return
		}
		s.spill = 0
		if over <= epsilon || idle > len(s.groups) {
			break
		}
		remaining = over
	}
	s.emit(EventUpdate)
}

// tickGroup forwards dt to the current group. It reports whether every
// member is done and, if so, how much of dt the last finisher left unused.
func (s *Sequence) tickGroup(dt float64) (bool, float64) {
	if s.cursor < 0 || s.cursor >= len(s.groups) {
		return true, dt
	}
	g := s.groups[s.cursor]
	done := true
	over := math.Inf(1)
	for i := range g {
		m := &g[i]
		if m.t.IsDisposed() {
			if !m.lost {
				m.lost = true
				warnf("%s: member %d of group %d was disposed, counting it as completed", describe(s), i, s.cursor)
			}
			continue
		}
		if m.t.IsCompleted() {
			continue
		}
		m.t.update(dt, s)
		if m.t.IsCompleted() {
			over = math.Min(over, m.t.overflow())
		} else {
			done = false
		}
	}
	if !done {
		return false, 0
	}
	if math.IsInf(over, 1) {
		over = dt
	}
	return true, over
}

// advance moves the cursor past a finished group. Walking off either end
// crosses a loop boundary or, on the last loop, completes the sequence, in
// which case it returns true.
func (s *Sequence) advance(by Tweenable) bool {
	if s.walkBack {
		s.cursor--
	} else {
		s.cursor++
	}
	if s.cursor >= 0 && s.cursor < len(s.groups) {
		return false
	}

	if s.backwards {
		if s.currentLoop <= 1 {
			s.complete(by, true)
			return true
		}
		s.currentLoop--
	} else {
		if s.loops != InfiniteLoops && s.currentLoop >= s.loops {
			s.complete(by, true)
			return true
		}
		s.currentLoop++
	}
	switch s.loopType {
	case LoopRestart:
	case LoopPingPong:
		s.walkBack = !s.walkBack
	default:
		panic(fmt.Sprintf("quicktween: loop type %v is not implemented", s.loopType))
	}
	s.cursor = s.walkStart()
	s.rewind()
	s.emit(EventLoop)
	return false
}

func (s *Sequence) play(by Tweenable) {
	if !s.allowed(by, "Play") || s.pendingKill || s.completed {
		return
	}
	s.playing = true
	s.visit(false, func(_ int, t Tweenable) { t.play(s) })
}

func (s *Sequence) pause(by Tweenable) {
	if !s.allowed(by, "Pause") || s.pendingKill {
		return
	}
	s.playing = false
	s.visit(false, func(_ int, t Tweenable) { t.pause(s) })
}

func (s *Sequence) stop(by Tweenable) {
	if !s.allowed(by, "Stop") {
		return
	}
	s.visit(false, func(_ int, t Tweenable) { t.stop(s) })
	s.anchor()
	s.playing = false
	s.completed = true
}

func (s *Sequence) reverse(by Tweenable) {
	if !s.allowed(by, "Reverse") || s.pendingKill {
		return
	}
	s.backwards = !s.backwards
	s.walkBack = !s.walkBack
	if s.completed {
		s.visit(false, func(_ int, t Tweenable) { s.align(t) })
		return
	}
	// Groups ahead of the cursor in the new direction were already played
	// this loop: replay them from their far end. Visiting against the new
	// walk leaves the group nearest the cursor pushed last.
	s.visit(true, func(gi int, t Tweenable) {
		s.align(t)
		ahead := (s.walkBack && gi < s.cursor) || (!s.walkBack && gi > s.cursor)
		if ahead || (gi == s.cursor && t.IsCompleted()) {
			t.restart(s)
		}
	})
}

func (s *Sequence) restart(by Tweenable) {
	if !s.allowed(by, "Restart") {
		return
	}
	if s.pendingKill {
		warnf("%s: restart after kill ignored", describe(s))
		return
	}
	s.anchor()
	s.completed = false
	s.playing = true
	s.started = false
	s.spill = 0
	s.rewind()
}

func (s *Sequence) complete(by Tweenable, snapToEnd bool) {
	if !s.allowed(by, "Complete") || s.completed || s.pendingKill {
		return
	}
	toStart := s.backwards
	if !snapToEnd {
		toStart = !toStart
	}
	if toStart {
		// The start of the run is reached walking back through loop 1.
		s.currentLoop = 1
		s.elapsed = 0
		s.walkBack = true
	} else {
		if s.loops != InfiniteLoops {
			s.currentLoop = s.loops
			s.elapsed = s.Duration() * float64(s.loops)
		}
		s.walkBack = s.loopType == LoopPingPong && s.currentLoop%2 == 0
	}
	s.cursor = s.walkEnd()
	// Walk order: the group the walk ends on is completed last, so its pose
	// wins on shared targets.
	s.visit(false, func(_ int, t Tweenable) {
		if t.IsBackwards() != s.walkBack {
			if t.IsCompleted() {
				t.restart(s)
			}
			t.reverse(s)
		}
		t.complete(s, true)
	})
	s.playing = false
	s.completed = true
	s.emit(EventComplete)
	if s.autoKill {
		s.kill(nil)
	}
}

func (s *Sequence) kill(by Tweenable) {
	if !s.allowed(by, "Kill") || s.pendingKill {
		return
	}
	if s.cursor >= 0 && s.cursor < len(s.groups) {
		for _, m := range s.groups[s.cursor] {
			if !m.t.IsDisposed() {
				m.t.stop(s)
			}
		}
	}
	s.cursor = 0
	s.playing = false
	s.pendingKill = true
	s.emit(EventKilled)
}

func (s *Sequence) setOwner(owner Tweenable) { s.owner = owner }
func (s *Sequence) setManager(m *Manager)    { s.manager = m }
func (s *Sequence) managerOf() *Manager      { return s.manager }
func (s *Sequence) overflow() float64        { return s.spill }

// --- Walk helpers ---

// anchor moves loop, position and cursor to the start of the current
// direction.
func (s *Sequence) anchor() {
	if s.backwards {
		s.currentLoop = 1
		if s.loops != InfiniteLoops {
			s.currentLoop = s.loops
		}
		s.elapsed = s.Duration() * float64(s.currentLoop)
	} else {
		s.currentLoop = 1
		s.elapsed = 0
	}
	s.walkBack = s.backwards != (s.loopType == LoopPingPong && s.currentLoop%2 == 0)
	s.cursor = s.walkStart()
}

func (s *Sequence) walkStart() int {
	if s.walkBack && len(s.groups) > 0 {
		return len(s.groups) - 1
	}
	return 0
}

func (s *Sequence) walkEnd() int {
	if s.walkBack || len(s.groups) == 0 {
		return 0
	}
	return len(s.groups) - 1
}

// align points t in the current walk direction.
func (s *Sequence) align(t Tweenable) {
	if t.IsBackwards() != s.walkBack {
		t.reverse(s)
	}
}

// rewind aligns and restarts every member, later groups first, so the group
// the walk starts on holds the visible pose.
func (s *Sequence) rewind() {
	s.visit(true, func(_ int, t Tweenable) {
		s.align(t)
		t.restart(s)
	})
}

// visit calls fn for every live member, in walk order or against it.
func (s *Sequence) visit(against bool, fn func(group int, t Tweenable)) {
	n := len(s.groups)
	for k := range n {
		gi := k
		if s.walkBack != against {
			gi = n - 1 - k
		}
		for _, m := range s.groups[gi] {
			if !m.t.IsDisposed() {
				fn(gi, m.t)
			}
		}
	}
}
