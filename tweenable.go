package quicktween

// Tweenable is implemented by *Tween and *Sequence. The interface is sealed:
// the unexported methods carry the instigator of a lifecycle call so the
// ownership gate can be enforced.
//
// Once a Tweenable is placed in a Sequence, the sequence owns it. The
// exported lifecycle methods act as an external caller and are ignored on an
// owned object; only the owner drives it.
type Tweenable interface {
	Update(dt float64)
	Play()
	Pause()
	TogglePause()
	Stop()
	Reverse()
	Restart()
	Complete()
	Kill()
	Dispose()

	IsPlaying() bool
	IsCompleted() bool
	IsBackwards() bool
	IsPendingKill() bool
	IsDisposed() bool
	PlayWhilePaused() bool

	// Loops returns the loop count, or InfiniteLoops.
	Loops() int
	// TotalDuration returns the wall-clock time of the whole run, every loop
	// included. It is +Inf for infinite loops or a zero time scale.
	TotalDuration() float64
	Tag() string
	Owner() Tweenable

	update(dt float64, by Tweenable)
	play(by Tweenable)
	pause(by Tweenable)
	stop(by Tweenable)
	reverse(by Tweenable)
	restart(by Tweenable)
	complete(by Tweenable, snapToEnd bool)
	kill(by Tweenable)

	setOwner(owner Tweenable)
	setManager(m *Manager)
	managerOf() *Manager
	// overflow returns the part of the last update's delta left unused when
	// the run completed in that update.
	overflow() float64
}

var (
	_ Tweenable = (*Tween)(nil)
	_ Tweenable = (*Sequence)(nil)
)
