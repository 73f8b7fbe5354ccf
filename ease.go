package quicktween

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EaseType selects a named easing curve.
type EaseType uint8

const (
	EaseLinear EaseType = iota
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseOutInSine
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseOutInQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseOutInCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseOutInQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseOutInQuint
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseOutInExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseOutInCirc
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseOutInElastic
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseOutInBack
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
	EaseOutInBounce

	easeCount
)

var easeFuncs = [easeCount]ease.TweenFunc{
	EaseLinear:       ease.Linear,
	EaseInSine:       ease.InSine,
	EaseOutSine:      ease.OutSine,
	EaseInOutSine:    ease.InOutSine,
	EaseOutInSine:    ease.OutInSine,
	EaseInQuad:       ease.InQuad,
	EaseOutQuad:      ease.OutQuad,
	EaseInOutQuad:    ease.InOutQuad,
	EaseOutInQuad:    ease.OutInQuad,
	EaseInCubic:      ease.InCubic,
	EaseOutCubic:     ease.OutCubic,
	EaseInOutCubic:   ease.InOutCubic,
	EaseOutInCubic:   ease.OutInCubic,
	EaseInQuart:      ease.InQuart,
	EaseOutQuart:     ease.OutQuart,
	EaseInOutQuart:   ease.InOutQuart,
	EaseOutInQuart:   ease.OutInQuart,
	EaseInQuint:      ease.InQuint,
	EaseOutQuint:     ease.OutQuint,
	EaseInOutQuint:   ease.InOutQuint,
	EaseOutInQuint:   ease.OutInQuint,
	EaseInExpo:       ease.InExpo,
	EaseOutExpo:      ease.OutExpo,
	EaseInOutExpo:    ease.InOutExpo,
	EaseOutInExpo:    ease.OutInExpo,
	EaseInCirc:       ease.InCirc,
	EaseOutCirc:      ease.OutCirc,
	EaseInOutCirc:    ease.InOutCirc,
	EaseOutInCirc:    ease.OutInCirc,
	EaseInElastic:    ease.InElastic,
	EaseOutElastic:   ease.OutElastic,
	EaseInOutElastic: ease.InOutElastic,
	EaseOutInElastic: ease.OutInElastic,
	EaseInBack:       ease.InBack,
	EaseOutBack:      ease.OutBack,
	EaseInOutBack:    ease.InOutBack,
	EaseOutInBack:    ease.OutInBack,
	EaseInBounce:     ease.InBounce,
	EaseOutBounce:    ease.OutBounce,
	EaseInOutBounce:  ease.InOutBounce,
	EaseOutInBounce:  ease.OutInBounce,
}

var easeNames = [easeCount]string{
	EaseLinear:       "linear",
	EaseInSine:       "in_sine",
	EaseOutSine:      "out_sine",
	EaseInOutSine:    "in_out_sine",
	EaseOutInSine:    "out_in_sine",
	EaseInQuad:       "in_quad",
	EaseOutQuad:      "out_quad",
	EaseInOutQuad:    "in_out_quad",
	EaseOutInQuad:    "out_in_quad",
	EaseInCubic:      "in_cubic",
	EaseOutCubic:     "out_cubic",
	EaseInOutCubic:   "in_out_cubic",
	EaseOutInCubic:   "out_in_cubic",
	EaseInQuart:      "in_quart",
	EaseOutQuart:     "out_quart",
	EaseInOutQuart:   "in_out_quart",
	EaseOutInQuart:   "out_in_quart",
	EaseInQuint:      "in_quint",
	EaseOutQuint:     "out_quint",
	EaseInOutQuint:   "in_out_quint",
	EaseOutInQuint:   "out_in_quint",
	EaseInExpo:       "in_expo",
	EaseOutExpo:      "out_expo",
	EaseInOutExpo:    "in_out_expo",
	EaseOutInExpo:    "out_in_expo",
	EaseInCirc:       "in_circ",
	EaseOutCirc:      "out_circ",
	EaseInOutCirc:    "in_out_circ",
	EaseOutInCirc:    "out_in_circ",
	EaseInElastic:    "in_elastic",
	EaseOutElastic:   "out_elastic",
	EaseInOutElastic: "in_out_elastic",
	EaseOutInElastic: "out_in_elastic",
	EaseInBack:       "in_back",
	EaseOutBack:      "out_back",
	EaseInOutBack:    "in_out_back",
	EaseOutInBack:    "out_in_back",
	EaseInBounce:     "in_bounce",
	EaseOutBounce:    "out_bounce",
	EaseInOutBounce:  "in_out_bounce",
	EaseOutInBounce:  "out_in_bounce",
}

func (e EaseType) String() string {
	if e < easeCount {
		return easeNames[e]
	}
	return fmt.Sprintf("EaseType(%d)", uint8(e))
}

// Func returns the gween easing function for e. Unknown values fall back to
// linear.
func (e EaseType) Func() ease.TweenFunc {
	if e < easeCount {
		return easeFuncs[e]
	}
	return ease.Linear
}

// ParseEaseType returns the EaseType with the given name, e.g. "in_out_cubic".
func ParseEaseType(name string) (EaseType, error) {
	for i, n := range easeNames {
		if n == name {
			return EaseType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ease %q", name)
}

// Ease maps alpha in [0, 1] through the named curve. Inputs outside the range
// are clamped, and the endpoints map exactly to 0 and 1.
func Ease(alpha float64, e EaseType) float64 {
	switch {
	case alpha <= 0:
		return 0
	case alpha >= 1:
		return 1
	case e == EaseLinear:
		return alpha
	}
	return float64(e.Func()(float32(alpha), 0, 1, 1))
}

// LerpFloat interpolates between a and b.
func LerpFloat(a, b, alpha float64) float64 {
	return a + (b-a)*alpha
}

// LerpInt interpolates between a and b and rounds to the nearest integer.
func LerpInt(a, b int, alpha float64) int {
	return int(math.Round(float64(a) + float64(b-a)*alpha))
}

// kernel turns a tween's normalized progress into an eased alpha: the
// optional curve remaps progress first, then a unit gween.Tween evaluates the
// ease with exact endpoints.
type kernel struct {
	unit   *gween.Tween
	linear bool
	curve  Curve
}

func newKernel(e EaseType, curve Curve) kernel {
	return kernel{
		unit:   gween.New(0, 1, 1, e.Func()),
		linear: e == EaseLinear,
		curve:  curve,
	}
}

func (k *kernel) alpha(progress float64) float64 {
	if k.curve != nil {
		progress = k.curve.Evaluate(progress)
	}
	if k.linear || progress <= 0 || progress >= 1 {
		return math.Max(0, math.Min(1, progress))
	}
	v, _ := k.unit.Set(float32(progress))
	return float64(v)
}
