package quicktween

import (
	"math"
	"testing"
)

func TestTweenVec2ReachesTarget(t *testing.T) {
	pos := Vec2{X: 10, Y: 20}

	tw := TweenVec2(&pos, Vec2{X: 100, Y: 200}, 1.0, EaseLinear)

	tw.Update(0.5)
	tw.Update(0.5)

	if !tw.IsCompleted() {
		t.Fatal("expected completed after full duration")
	}
	if pos != (Vec2{X: 100, Y: 200}) {
		t.Errorf("pos = %v, want {100 200}", pos)
	}
}

func TestTweenVec3ReachesTarget(t *testing.T) {
	var v Vec3

	tw := TweenVec3(&v, Vec3{X: 1, Y: 2, Z: 3}, 0.5, EaseLinear)
	tw.Update(0.25)
	if math.Abs(v.Z-1.5) > 1e-9 {
		t.Errorf("Z = %f at halfway, want 1.5", v.Z)
	}
	tw.Update(0.25)

	if v != (Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("v = %v, want {1 2 3}", v)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	tw := TweenColor(&c, target, 1.0, EaseLinear)

	tw.Update(0.5)
	if math.Abs(c.R-0.5) > 1e-9 || math.Abs(c.G-0.5) > 1e-9 {
		t.Errorf("color at halfway = %v, want R=G=0.5", c)
	}
	tw.Update(0.5)

	if !tw.IsCompleted() {
		t.Fatal("expected completed after full duration")
	}
	if c != target {
		t.Errorf("color = %v, want %v", c, target)
	}
}

func TestTweenFloatInterpolates(t *testing.T) {
	alpha := 1.0

	tw := TweenFloat(&alpha, 0.0, 1.0, EaseLinear)

	tw.Update(0.5)
	if tw.IsCompleted() {
		t.Fatal("should not be completed at halfway")
	}
	if math.Abs(alpha-0.5) > 1e-9 {
		t.Errorf("alpha = %f, want 0.5 at halfway", alpha)
	}

	tw.Update(0.5)
	if !tw.IsCompleted() {
		t.Fatal("should be completed after full duration")
	}
	if alpha != 0 {
		t.Errorf("alpha = %f, want 0", alpha)
	}
}

func TestTweenIntRounds(t *testing.T) {
	score := 0

	tw := TweenInt(&score, 10, 1.0, EaseLinear)

	tw.Update(0.26)
	if score != 3 {
		t.Errorf("score = %d at 26%%, want 3", score)
	}
	tw.Update(0.74)
	if score != 10 {
		t.Errorf("score = %d, want 10", score)
	}
}

func TestTweenRotatorReachesTarget(t *testing.T) {
	var r Rotator

	tw := TweenRotator(&r, Rotator{Yaw: 90}, 1.0, EaseLinear, PathShortest)

	tw.Update(0.5)
	if math.Abs(r.Yaw-45) > 1e-6 {
		t.Errorf("Yaw = %f at halfway, want 45", r.Yaw)
	}
	tw.Update(0.5)
	if r != (Rotator{Yaw: 90}) {
		t.Errorf("r = %v, want exactly {0 90 0}", r)
	}
}

func TestHelperReadsStartOnFirstUpdate(t *testing.T) {
	x := 0.0
	tw := TweenFloat(&x, 100, 1.0, EaseLinear)

	// Moved after creation but before the first update.
	x = 50

	tw.Update(0.5)
	if math.Abs(x-75) > 1e-9 {
		t.Errorf("x = %f, want 75", x)
	}
}

func TestHelperDoneTransition(t *testing.T) {
	var pos Vec2
	tw := TweenVec2(&pos, Vec2{X: 50, Y: 50}, 0.5, EaseLinear)

	if tw.IsCompleted() {
		t.Fatal("should not be completed at start")
	}

	tw.Update(0.25)
	if tw.IsCompleted() {
		t.Fatal("should not be completed partway through")
	}

	tw.Update(0.25)
	if !tw.IsCompleted() {
		t.Fatal("should be completed after full duration")
	}
	if !tw.IsPendingKill() {
		t.Error("helper tweens are killed on completion")
	}

	// Update after done is a no-op.
	tw.Update(0.1)
	if pos != (Vec2{X: 50, Y: 50}) {
		t.Errorf("pos = %v after extra update, want {50 50}", pos)
	}
}

func TestHelperDisposedMidAnimation(t *testing.T) {
	var pos Vec2
	tw := TweenVec2(&pos, Vec2{X: 100, Y: 100}, 1.0, EaseLinear)

	tw.Update(0.1)
	tw.Update(0.1)

	tw.Dispose()
	saved := pos

	tw.Update(0.1)
	if pos != saved {
		t.Error("target should not change after disposal")
	}
	if tw.IsPlaying() {
		t.Error("disposed tween should not be playing")
	}
}

func TestHelperNilTarget(t *testing.T) {
	silenceLog(t)

	tw := TweenFloat(nil, 1, 1, EaseLinear)
	tw.Update(0.5) // logs, must not panic
	tw.Update(0.5)
	if !tw.IsCompleted() {
		t.Error("an unbound tween still keeps time")
	}
}

func TestEasingFunctionsProduceDifferentCurves(t *testing.T) {
	var linear, cubic Vec2

	tl := TweenVec2(&linear, Vec2{X: 100}, 1.0, EaseLinear)
	tc := TweenVec2(&cubic, Vec2{X: 100}, 1.0, EaseOutCubic)

	tl.Update(0.5)
	tc.Update(0.5)

	// OutCubic is ahead of linear at the midpoint.
	if cubic.X-linear.X < 1.0 {
		t.Errorf("easing curves should differ at midpoint: linear=%f cubic=%f", linear.X, cubic.X)
	}
}

func TestTweenUpdateZeroAlloc(t *testing.T) {
	var pos Vec2
	tw := TweenVec2(&pos, Vec2{X: 100, Y: 100}, 1000.0, EaseInOutQuad)

	// Warm up: the first update resolves the endpoints.
	tw.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		tw.Update(0.001)
	})
	if result > 0 {
		t.Errorf("Tween.Update allocated %f times per run, want 0", result)
	}
}
