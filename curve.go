package quicktween

import "sort"

// Curve remaps a tween's normalized progress before easing. Evaluate receives
// a value in [0, 1] and should return one in the same range.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts an ordinary function to Curve.
type CurveFunc func(t float64) float64

// Evaluate calls f(t).
func (f CurveFunc) Evaluate(t float64) float64 { return f(t) }

// Keyframe is one control point of a KeyframeCurve.
type Keyframe struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// KeyframeCurve is a piecewise-linear curve through a set of keyframes.
// Outside the first and last keys the curve holds the end values.
type KeyframeCurve struct {
	keys []Keyframe
}

// NewKeyframeCurve returns a curve through keys, sorted by time. A curve with
// no keys is the identity.
func NewKeyframeCurve(keys ...Keyframe) *KeyframeCurve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return &KeyframeCurve{keys: sorted}
}

// Keys returns the curve's keyframes in time order.
func (c *KeyframeCurve) Keys() []Keyframe { return c.keys }

// Evaluate samples the curve at t.
func (c *KeyframeCurve) Evaluate(t float64) float64 {
	n := len(c.keys)
	if n == 0 {
		return t
	}
	if t <= c.keys[0].Time {
		return c.keys[0].Value
	}
	if t >= c.keys[n-1].Time {
		return c.keys[n-1].Value
	}
	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > t })
	a, b := c.keys[i-1], c.keys[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	return a.Value + (b.Value-a.Value)*(t-a.Time)/span
}
