package quicktween

import (
	"math"
	"testing"
)

func nearAngle(a, b float64) bool {
	return math.Abs(normalizeAxis(a-b)) < 1e-6
}

func TestRotatorQuatRoundTrip(t *testing.T) {
	tests := []Rotator{
		{},
		{Yaw: 90},
		{Pitch: 30, Yaw: -45, Roll: 10},
		{Pitch: -60, Yaw: 170, Roll: -120},
	}
	for _, r := range tests {
		got := r.quat().rotator()
		if !nearAngle(got.Pitch, r.Pitch) || !nearAngle(got.Yaw, r.Yaw) || !nearAngle(got.Roll, r.Roll) {
			t.Errorf("round trip of %v = %v", r, got)
		}
	}
}

func TestSlerpRotatorShortest(t *testing.T) {
	got := SlerpRotator(Rotator{}, Rotator{Yaw: 90}, 0.5, PathShortest)
	if !nearAngle(got.Yaw, 45) || !nearAngle(got.Pitch, 0) || !nearAngle(got.Roll, 0) {
		t.Errorf("midpoint = %v, want yaw 45", got)
	}
}

func TestSlerpRotatorShortestWraps(t *testing.T) {
	// 170 to -170 crosses 180 rather than sweeping through 0.
	got := SlerpRotator(Rotator{Yaw: 170}, Rotator{Yaw: -170}, 0.5, PathShortest)
	if !nearAngle(got.Yaw, 180) {
		t.Errorf("midpoint yaw = %v, want 180", got.Yaw)
	}
}

func TestSlerpRotatorLongest(t *testing.T) {
	got := SlerpRotator(Rotator{}, Rotator{Yaw: 90}, 0.5, PathLongest)
	if !nearAngle(got.Yaw, -135) {
		t.Errorf("midpoint yaw = %v, want -135", got.Yaw)
	}
}

func TestSlerpRotatorEndpointsExact(t *testing.T) {
	from := Rotator{Pitch: 10, Yaw: 20, Roll: 30}
	to := Rotator{Pitch: -10, Yaw: 400, Roll: 0}
	for _, path := range []RotationPath{PathShortest, PathLongest} {
		if got := SlerpRotator(from, to, 0, path); got != from {
			t.Errorf("%v alpha 0 = %v, want %v", path, got, from)
		}
		if got := SlerpRotator(from, to, 1, path); got != to {
			t.Errorf("%v alpha 1 = %v, want %v", path, got, to)
		}
	}
}

func TestRotatorTweenLongestPath(t *testing.T) {
	var r Rotator
	tw := TweenRotator(&r, Rotator{Yaw: 90}, 1, EaseLinear, PathLongest)
	tw.Update(0.5)
	if !nearAngle(r.Yaw, -135) {
		t.Errorf("yaw = %v, want -135", r.Yaw)
	}
	tw.Update(0.5)
	if r != (Rotator{Yaw: 90}) {
		t.Errorf("r = %v, want {0 90 0}", r)
	}
}

func TestRotatorNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{540, 180},
		{-370, -10},
	}
	for _, tt := range tests {
		if got := (Rotator{Yaw: tt.in}).Normalize().Yaw; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
