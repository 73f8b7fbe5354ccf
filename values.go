package quicktween

// binding is the value side of a Tween: it resolves the endpoints, turns an
// eased alpha into a value and pushes it through the setter.
type binding interface {
	kind() ValueKind
	apply(alpha float64)
	snap(toEnd bool)
	value() any
}

// valueBinding binds one value kind. The endpoints are read lazily on the
// first push; with live set, To is re-read on every push so a moving target
// can be chased.
type valueBinding[T any] struct {
	k        ValueKind
	name     string
	from, to func() T
	set      func(T)
	lerp     func(a, b T, alpha float64) T
	live     bool
	start    T
	end      T
	current  T
	resolved bool
	failed   bool
}

func (b *valueBinding[T]) kind() ValueKind { return b.k }

func (b *valueBinding[T]) value() any { return b.current }

func (b *valueBinding[T]) resolve() bool {
	if b.resolved {
		if b.live {
			b.end = b.to()
		}
		return true
	}
	if b.from == nil || b.to == nil || b.set == nil {
		if !b.failed {
			b.failed = true
			errorf("%s tween %q: missing from, to or setter binding", b.k, b.name)
		}
		return false
	}
	b.start = b.from()
	b.end = b.to()
	b.resolved = true
	return true
}

func (b *valueBinding[T]) apply(alpha float64) {
	if !b.resolve() {
		return
	}
	switch alpha {
	case 0:
		b.current = b.start
	case 1:
		b.current = b.end
	default:
		b.current = b.lerp(b.start, b.end, alpha)
	}
	b.set(b.current)
}

func (b *valueBinding[T]) snap(toEnd bool) {
	if toEnd {
		b.apply(1)
	} else {
		b.apply(0)
	}
}

// emptyBinding drives nothing. Empty tweens exist for their timing and
// notifications, and disposed tweens fall back to it.
type emptyBinding struct{}

func (emptyBinding) kind() ValueKind { return KindEmpty }
func (emptyBinding) apply(float64)   {}
func (emptyBinding) snap(bool)       {}
func (emptyBinding) value() any      { return nil }

// Fixed returns an accessor that always yields v. Use it for constant
// endpoints.
func Fixed[T any](v T) func() T {
	return func() T { return v }
}

// NewFloatTween creates a tween driving a float64.
func NewFloatTween(from, to func() float64, set func(float64), cfg Config) *Tween {
	return newTween(&valueBinding[float64]{
		k: KindFloat, name: cfg.Tag, from: from, to: to, set: set,
		lerp: LerpFloat, live: cfg.LiveTarget,
	}, cfg)
}

// NewVec2Tween creates a tween driving a Vec2.
func NewVec2Tween(from, to func() Vec2, set func(Vec2), cfg Config) *Tween {
	return newTween(&valueBinding[Vec2]{
		k: KindVec2, name: cfg.Tag, from: from, to: to, set: set,
		lerp: Vec2.Lerp, live: cfg.LiveTarget,
	}, cfg)
}

// NewVec3Tween creates a tween driving a Vec3.
func NewVec3Tween(from, to func() Vec3, set func(Vec3), cfg Config) *Tween {
	return newTween(&valueBinding[Vec3]{
		k: KindVec3, name: cfg.Tag, from: from, to: to, set: set,
		lerp: Vec3.Lerp, live: cfg.LiveTarget,
	}, cfg)
}

// NewRotatorTween creates a tween driving a Rotator. cfg.Path selects the
// shortest or longest arc between the two orientations.
func NewRotatorTween(from, to func() Rotator, set func(Rotator), cfg Config) *Tween {
	path := cfg.Path
	return newTween(&valueBinding[Rotator]{
		k: KindRotator, name: cfg.Tag, from: from, to: to, set: set,
		lerp: func(a, b Rotator, alpha float64) Rotator {
			return SlerpRotator(a, b, alpha, path)
		},
		live: cfg.LiveTarget,
	}, cfg)
}

// NewColorTween creates a tween driving a Color.
func NewColorTween(from, to func() Color, set func(Color), cfg Config) *Tween {
	return newTween(&valueBinding[Color]{
		k: KindColor, name: cfg.Tag, from: from, to: to, set: set,
		lerp: Color.Lerp, live: cfg.LiveTarget,
	}, cfg)
}

// NewIntTween creates a tween driving an int. Intermediate values are
// rounded to the nearest integer.
func NewIntTween(from, to func() int, set func(int), cfg Config) *Tween {
	return newTween(&valueBinding[int]{
		k: KindInt, name: cfg.Tag, from: from, to: to, set: set,
		lerp: LerpInt, live: cfg.LiveTarget,
	}, cfg)
}

// NewEmptyTween creates a tween that only keeps time. It is useful as a delay
// inside a Sequence or as a timer with notifications.
func NewEmptyTween(cfg Config) *Tween {
	return newTween(emptyBinding{}, cfg)
}
