package quicktween

import (
	"fmt"
	"math"
)

// epsilon absorbs float drift at loop and run boundaries.
const epsilon = 1e-6

// Tween animates one value between two endpoints. Create one with a typed
// constructor (NewFloatTween, NewVec2Tween, ...) and either call Update each
// frame or register it with a Manager.
//
// Timing runs on a single timeline covering every loop. Forward play moves
// the position from 0 toward duration*loops; after Reverse it moves back
// toward 0, and reaching 0 completes the run. The loop index and the
// progress inside the loop are derived from the position, so an arbitrarily
// large delta lands on the right pose in one call.
type Tween struct {
	duration        float64
	timeScale       float64
	loops           int
	loopType        LoopType
	tag             string
	autoKill        bool
	playWhilePaused bool

	kernel kernel
	value  binding

	elapsed     float64
	progress    float64
	currentLoop int
	backwards   bool
	playing     bool
	completed   bool
	started     bool
	pendingKill bool
	disposed    bool
	spill       float64

	owner   Tweenable
	manager *Manager
	events  listeners[*Tween]
}

func newTween(b binding, cfg Config) *Tween {
	cfg = cfg.sanitized()
	return &Tween{
		duration:        cfg.Duration,
		timeScale:       cfg.TimeScale,
		loops:           cfg.Loops,
		loopType:        cfg.LoopType,
		tag:             cfg.Tag,
		autoKill:        cfg.AutoKill,
		playWhilePaused: cfg.PlayWhilePaused,
		kernel:          newKernel(cfg.Ease, cfg.curve()),
		value:           b,
		currentLoop:     1,
		playing:         cfg.AutoPlay,
	}
}

// --- Lifecycle (external callers) ---

// Update advances the tween by dt seconds of wall-clock time.
func (t *Tween) Update(dt float64) { t.update(dt, nil) }

// Play resumes or starts playback.
func (t *Tween) Play() { t.play(nil) }

// Pause halts playback and keeps the position.
func (t *Tween) Pause() { t.pause(nil) }

// TogglePause pauses a playing tween and plays a paused one.
func (t *Tween) TogglePause() {
	if t.playing {
		t.pause(nil)
	} else {
		t.play(nil)
	}
}

// Stop halts playback, marks the tween completed and moves the position back
// to the start of the current direction. The value is left where it is.
func (t *Tween) Stop() { t.stop(nil) }

// Reverse flips the direction of play. A reversed tween runs its timeline
// back to zero and completes there.
func (t *Tween) Reverse() { t.reverse(nil) }

// Restart rewinds to the start of the current direction, pushes that pose
// and plays.
func (t *Tween) Restart() { t.restart(nil) }

// Complete jumps to the terminal pose and fires the completion
// notification.
func (t *Tween) Complete() { t.complete(nil, true) }

// CompleteAt completes the tween. With snapToEnd false the value snaps to the
// pose the run started from instead of the terminal one.
func (t *Tween) CompleteAt(snapToEnd bool) { t.complete(nil, snapToEnd) }

// Kill stops the tween and marks it for removal from its manager.
func (t *Tween) Kill() { t.kill(nil) }

// Dispose destroys the tween. Sequences holding it treat it as completed,
// and managers drop it. Disposing is not gated by ownership.
func (t *Tween) Dispose() {
	if t.disposed {
		return
	}
	if t.manager != nil {
		t.manager.Remove(t)
	}
	t.playing = false
	t.pendingKill = true
	t.disposed = true
	t.owner = nil
	t.events.clear()
	t.value = emptyBinding{}
}

// --- Queries ---

// Progress returns the normalized position inside the current loop, before
// easing. PingPong loops running back report decreasing progress.
func (t *Tween) Progress() float64 { return t.progress }

// Elapsed returns the scaled time on the run timeline.
func (t *Tween) Elapsed() float64 { return t.elapsed }

// Duration returns the length of one loop in scaled time.
func (t *Tween) Duration() float64 { return t.duration }

// TotalDuration implements Tweenable.
func (t *Tween) TotalDuration() float64 {
	switch {
	case t.loops == InfiniteLoops:
		return math.Inf(1)
	case t.duration <= 0:
		return 0
	case t.timeScale <= 0:
		return math.Inf(1)
	}
	return t.span() / t.timeScale
}

// CurrentLoop returns the 1-based index of the loop in progress.
func (t *Tween) CurrentLoop() int { return t.currentLoop }

func (t *Tween) Loops() int            { return t.loops }
func (t *Tween) LoopType() LoopType    { return t.loopType }
func (t *Tween) TimeScale() float64    { return t.timeScale }
func (t *Tween) Tag() string           { return t.tag }
func (t *Tween) Owner() Tweenable      { return t.owner }
func (t *Tween) IsPlaying() bool       { return t.playing }
func (t *Tween) IsCompleted() bool     { return t.completed }
func (t *Tween) IsPendingKill() bool   { return t.pendingKill }
func (t *Tween) IsBackwards() bool     { return t.backwards }
func (t *Tween) PlayWhilePaused() bool { return t.playWhilePaused }

// IsDisposed reports whether the tween has been destroyed. A nil tween
// counts as disposed.
func (t *Tween) IsDisposed() bool { return t == nil || t.disposed }

// IsReversed reports whether the value is currently heading toward From.
func (t *Tween) IsReversed() bool {
	return t.backwards != (t.loopType == LoopPingPong && t.currentLoop%2 == 0)
}

// Kind returns the value kind the tween drives.
func (t *Tween) Kind() ValueKind { return t.value.kind() }

// Value returns the last value pushed through the setter, or nil for empty
// tweens.
func (t *Tween) Value() any { return t.value.value() }

// SetTimeScale changes the multiplier applied to incoming deltas. Negative
// values are treated as 0. Like the other lifecycle methods it is ignored
// while a sequence owns the tween.
func (t *Tween) SetTimeScale(scale float64) {
	if !t.allowed(nil, "SetTimeScale") {
		return
	}
	t.timeScale = math.Max(0, scale)
}

// --- Notifications ---

// OnStart registers fn to run on the first update after play or restart.
func (t *Tween) OnStart(fn func(*Tween)) { t.events.add(EventStart, fn) }

// OnUpdate registers fn to run after every update that pushed a value.
func (t *Tween) OnUpdate(fn func(*Tween)) { t.events.add(EventUpdate, fn) }

// OnLoop registers fn to run when a loop boundary is crossed.
func (t *Tween) OnLoop(fn func(*Tween)) { t.events.add(EventLoop, fn) }

// OnComplete registers fn to run once per completed run.
func (t *Tween) OnComplete(fn func(*Tween)) { t.events.add(EventComplete, fn) }

// OnKilled registers fn to run when the tween is killed.
func (t *Tween) OnKilled(fn func(*Tween)) { t.events.add(EventKilled, fn) }

// ClearListeners removes every registered callback.
func (t *Tween) ClearListeners() { t.events.clear() }

func (t *Tween) emit(kind EventKind) {
	t.events.fire(kind, t)
	publish(t.manager, Event{Kind: kind, Tag: t.tag, Source: t, Loop: t.currentLoop, Progress: t.progress})
}

// --- Instigator forms ---

// allowed is the ownership gate: only the owner, or an external caller when
// there is no owner, may drive the tween.
func (t *Tween) allowed(by Tweenable, op string) bool {
	if t.disposed {
		if debug {
			debugCheckDisposed(t.tag, op)
		}
		return false
	}
	return t.owner == by
}

func (t *Tween) update(dt float64, by Tweenable) {
	if !t.allowed(by, "Update") || t.completed || !t.playing || t.pendingKill {
		return
	}
	t.spill = 0
	if !t.started {
		t.started = true
		t.emit(EventStart)
	}
	if t.duration <= epsilon {
		t.spill = dt
		t.complete(by, true)
		return
	}

	step := dt * t.timeScale
	prevLoop := t.currentLoop
	if t.backwards {
		t.elapsed -= step
		if t.elapsed <= epsilon {
			t.spill = t.unscale(-t.elapsed)
			t.complete(by, true)
			return
		}
	} else {
		t.elapsed += step
		if span := t.span(); t.elapsed >= span-epsilon {
			t.spill = t.unscale(t.elapsed - span)
			t.complete(by, true)
			return
		}
	}

	t.sample()
	t.emit(EventUpdate)
	if t.currentLoop != prevLoop {
		t.emit(EventLoop)
	}
}

func (t *Tween) play(by Tweenable) {
	if !t.allowed(by, "Play") || t.pendingKill || t.completed {
		return
	}
	t.playing = true
}

func (t *Tween) pause(by Tweenable) {
	if !t.allowed(by, "Pause") || t.pendingKill {
		return
	}
	t.playing = false
}

func (t *Tween) stop(by Tweenable) {
	if !t.allowed(by, "Stop") {
		return
	}
	t.rewind()
	t.playing = false
	t.completed = true
}

func (t *Tween) reverse(by Tweenable) {
	if !t.allowed(by, "Reverse") || t.pendingKill {
		return
	}
	t.backwards = !t.backwards
}

func (t *Tween) restart(by Tweenable) {
	if !t.allowed(by, "Restart") {
		return
	}
	if t.pendingKill {
		warnf("%s: restart after kill ignored", describe(t))
		return
	}
	t.rewind()
	t.completed = false
	t.playing = true
	t.started = false
	t.spill = 0
	t.value.apply(t.kernel.alpha(t.progress))
}

func (t *Tween) complete(by Tweenable, snapToEnd bool) {
	if !t.allowed(by, "Complete") || t.completed || t.pendingKill {
		return
	}
	atStart := t.backwards
	if !snapToEnd {
		atStart = !atStart
	}
	if atStart {
		t.elapsed = 0
		t.currentLoop = 1
		t.progress = 0
	} else {
		if t.loops != InfiniteLoops {
			t.currentLoop = t.loops
			t.elapsed = t.span()
		}
		t.progress = t.loopProgress(t.currentLoop, t.duration)
	}
	t.value.snap(t.progress == 1)
	t.playing = false
	t.completed = true
	t.emit(EventComplete)
	if t.autoKill {
		t.kill(nil)
	}
}

func (t *Tween) kill(by Tweenable) {
	if !t.allowed(by, "Kill") || t.pendingKill {
		return
	}
	if !t.completed {
		t.rewind()
		t.completed = true
	}
	t.playing = false
	t.pendingKill = true
	t.emit(EventKilled)
}

func (t *Tween) setOwner(owner Tweenable) { t.owner = owner }
func (t *Tween) setManager(m *Manager)    { t.manager = m }
func (t *Tween) managerOf() *Manager      { return t.manager }
func (t *Tween) overflow() float64        { return t.spill }

// --- Timeline ---

// span is the scaled length of the whole run.
func (t *Tween) span() float64 {
	if t.loops == InfiniteLoops {
		return math.Inf(1)
	}
	return t.duration * float64(t.loops)
}

func (t *Tween) unscale(d float64) float64 {
	if t.timeScale <= 0 {
		return 0
	}
	return d / t.timeScale
}

// rewind moves the position to the anchor of the current direction: the
// start of the run, or its end when playing backwards. Infinite runs anchor
// backwards play on the end of the first loop.
func (t *Tween) rewind() {
	if !t.backwards {
		t.elapsed = 0
		t.currentLoop = 1
		t.progress = 0
		return
	}
	t.currentLoop = 1
	if t.loops != InfiniteLoops {
		t.currentLoop = t.loops
	}
	t.elapsed = t.duration * float64(t.currentLoop)
	t.progress = t.loopProgress(t.currentLoop, t.duration)
}

// sample derives loop and progress from the position and pushes the eased
// value.
func (t *Tween) sample() {
	loop, local := t.position(t.elapsed)
	t.currentLoop = loop
	t.progress = t.loopProgress(loop, local)
	t.value.apply(t.kernel.alpha(t.progress))
}

// position splits a timeline position into a 1-based loop index and the time
// inside that loop. An exact multiple of the duration belongs to the end of
// the loop that just finished, except at zero.
func (t *Tween) position(e float64) (loop int, local float64) {
	d := t.duration
	if e <= epsilon {
		return 1, 0
	}
	n := math.Floor(e / d)
	local = e - n*d
	switch {
	case local <= epsilon:
		loop, local = int(n), d
	case d-local <= epsilon:
		loop, local = int(n)+1, d
	default:
		loop = int(n) + 1
	}
	if t.loops != InfiniteLoops && loop > t.loops {
		loop, local = t.loops, d
	}
	return loop, local
}

// loopProgress maps time inside a loop to normalized progress, mirroring
// the even loops of a PingPong run.
func (t *Tween) loopProgress(loop int, local float64) float64 {
	p := 1.0
	if t.duration > epsilon {
		p = math.Max(0, math.Min(1, local/t.duration))
	}
	if loop <= 1 {
		return p
	}
	switch t.loopType {
	case LoopRestart:
		return p
	case LoopPingPong:
		if loop%2 == 0 {
			return 1 - p
		}
		return p
	default:
		panic(fmt.Sprintf("quicktween: loop type %v is not implemented", t.loopType))
	}
}
