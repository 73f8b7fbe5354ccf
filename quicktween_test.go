package quicktween

import "testing"

// --- Lerp ---

func TestVec2Lerp(t *testing.T) {
	a, b := Vec2{0, 10}, Vec2{10, 20}
	tests := []struct {
		name  string
		alpha float64
		want  Vec2
	}{
		{"start", 0, a},
		{"half", 0.5, Vec2{5, 15}},
		{"end", 1, b},
		{"overshoot", 1.5, Vec2{15, 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.alpha); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestVec3Lerp(t *testing.T) {
	got := Vec3{0, 0, 0}.Lerp(Vec3{2, 4, 8}, 0.25)
	if got != (Vec3{0.5, 1, 2}) {
		t.Errorf("Lerp = %v, want {0.5 1 2}", got)
	}
}

func TestColorLerp(t *testing.T) {
	got := Color{0, 0, 0, 0}.Lerp(ColorWhite, 0.5)
	if got != (Color{0.5, 0.5, 0.5, 0.5}) {
		t.Errorf("Lerp = %v, want all 0.5", got)
	}
}

// --- Enums ---

func TestEnumValues(t *testing.T) {
	if LoopRestart != 0 || LoopPingPong != 1 {
		t.Error("LoopType values changed")
	}
	if PathShortest != 0 || PathLongest != 1 {
		t.Error("RotationPath values changed")
	}
	if KindEmpty != 0 || KindInt != 6 {
		t.Error("ValueKind values changed")
	}
	if EventStart != 0 || EventKilled != 4 {
		t.Error("EventKind values changed")
	}
	if EaseLinear != 0 || easeCount != 41 {
		t.Errorf("easeCount = %d, want 41", easeCount)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{LoopPingPong.String(), "pingpong"},
		{LoopType(7).String(), "LoopType(7)"},
		{PathLongest.String(), "longest"},
		{KindRotator.String(), "rotator"},
		{ValueKind(99).String(), "ValueKind(99)"},
		{EventComplete.String(), "complete"},
		{EventKind(9).String(), "EventKind(9)"},
		{EaseOutInBounce.String(), "out_in_bounce"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if l, err := ParseLoopType("restart"); err != nil || l != LoopRestart {
		t.Errorf("ParseLoopType = %v, %v", l, err)
	}
	if _, err := ParseLoopType("yoyo"); err == nil {
		t.Error("expected error for unknown loop type")
	}
	if p, err := ParseRotationPath("longest"); err != nil || p != PathLongest {
		t.Errorf("ParseRotationPath = %v, %v", p, err)
	}
	if _, err := ParseRotationPath(""); err == nil {
		t.Error("expected error for empty rotation path")
	}
}

func TestTweenKinds(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		tw   *Tween
		want ValueKind
	}{
		{NewEmptyTween(cfg), KindEmpty},
		{NewFloatTween(Fixed(0.0), Fixed(1.0), func(float64) {}, cfg), KindFloat},
		{NewVec2Tween(Fixed(Vec2{}), Fixed(Vec2{}), func(Vec2) {}, cfg), KindVec2},
		{NewVec3Tween(Fixed(Vec3{}), Fixed(Vec3{}), func(Vec3) {}, cfg), KindVec3},
		{NewRotatorTween(Fixed(Rotator{}), Fixed(Rotator{}), func(Rotator) {}, cfg), KindRotator},
		{NewColorTween(Fixed(Color{}), Fixed(Color{}), func(Color) {}, cfg), KindColor},
		{NewIntTween(Fixed(0), Fixed(1), func(int) {}, cfg), KindInt},
	}
	for _, tt := range tests {
		if got := tt.tw.Kind(); got != tt.want {
			t.Errorf("Kind() = %v, want %v", got, tt.want)
		}
	}
}
