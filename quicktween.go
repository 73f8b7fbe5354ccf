package quicktween

import "fmt"

// InfiniteLoops is the loop count of a tween that never completes on its own.
// Such tweens cannot be placed in a Sequence.
const InfiniteLoops = -1

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Lerp interpolates each component linearly. alpha is not clamped so eases
// that overshoot (Back, Elastic) carry through.
func (c Color) Lerp(to Color, alpha float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*alpha,
		G: c.G + (to.G-c.G)*alpha,
		B: c.B + (to.B-c.B)*alpha,
		A: c.A + (to.A-c.A)*alpha,
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Lerp interpolates v toward to by alpha.
func (v Vec2) Lerp(to Vec2, alpha float64) Vec2 {
	return Vec2{v.X + (to.X-v.X)*alpha, v.Y + (to.Y-v.Y)*alpha}
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp interpolates v toward to by alpha.
func (v Vec3) Lerp(to Vec3, alpha float64) Vec3 {
	return Vec3{
		X: v.X + (to.X-v.X)*alpha,
		Y: v.Y + (to.Y-v.Y)*alpha,
		Z: v.Z + (to.Z-v.Z)*alpha,
	}
}

// Rotator is an orientation expressed as Euler angles in degrees.
// Yaw turns about Z, Pitch about Y, Roll about X, applied in that order.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// LoopType selects what happens when a tween or sequence crosses a loop
// boundary.
type LoopType uint8

const (
	LoopRestart  LoopType = iota // jump back to the start pose and replay forward
	LoopPingPong                 // flip direction and play back toward the start
)

var loopTypeNames = [...]string{
	LoopRestart:  "restart",
	LoopPingPong: "pingpong",
}

func (l LoopType) String() string {
	if int(l) < len(loopTypeNames) {
		return loopTypeNames[l]
	}
	return fmt.Sprintf("LoopType(%d)", uint8(l))
}

// ParseLoopType returns the LoopType with the given name.
func ParseLoopType(name string) (LoopType, error) {
	for i, n := range loopTypeNames {
		if n == name {
			return LoopType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown loop type %q", name)
}

// RotationPath chooses which arc a rotator tween travels.
type RotationPath uint8

const (
	PathShortest RotationPath = iota // the arc of at most 180 degrees
	PathLongest                      // the complementary arc
)

var rotationPathNames = [...]string{
	PathShortest: "shortest",
	PathLongest:  "longest",
}

func (p RotationPath) String() string {
	if int(p) < len(rotationPathNames) {
		return rotationPathNames[p]
	}
	return fmt.Sprintf("RotationPath(%d)", uint8(p))
}

// ParseRotationPath returns the RotationPath with the given name.
func ParseRotationPath(name string) (RotationPath, error) {
	for i, n := range rotationPathNames {
		if n == name {
			return RotationPath(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rotation path %q", name)
}

// ValueKind identifies the value type a Tween drives.
type ValueKind uint8

const (
	KindEmpty   ValueKind = iota // timing only, no value
	KindFloat                    // float64
	KindVec2                     // Vec2
	KindVec3                     // Vec3
	KindRotator                  // Rotator, slerped through quaternions
	KindColor                    // Color
	KindInt                      // int, rounded to nearest
)

var valueKindNames = [...]string{
	KindEmpty:   "empty",
	KindFloat:   "float",
	KindVec2:    "vec2",
	KindVec3:    "vec3",
	KindRotator: "rotator",
	KindColor:   "color",
	KindInt:     "int",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", uint8(k))
}

// EventKind identifies a lifecycle notification.
type EventKind uint8

const (
	EventStart    EventKind = iota // first update after play or restart
	EventUpdate                    // every update that moved the value
	EventLoop                      // a loop boundary was crossed
	EventComplete                  // the run finished or Complete was called
	EventKilled                    // the object was killed
)

var eventKindNames = [...]string{
	EventStart:    "start",
	EventUpdate:   "update",
	EventLoop:     "loop",
	EventComplete: "complete",
	EventKilled:   "killed",
}

func (e EventKind) String() string {
	if int(e) < len(eventKindNames) {
		return eventKindNames[e]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(e))
}
