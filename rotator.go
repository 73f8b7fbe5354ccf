package quicktween

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// quat is a unit quaternion used for rotator interpolation.
type quat struct {
	X, Y, Z, W float64
}

func (r Rotator) quat() quat {
	sy, cy := math.Sincos(r.Yaw * degToRad / 2)
	sp, cp := math.Sincos(r.Pitch * degToRad / 2)
	sr, cr := math.Sincos(r.Roll * degToRad / 2)
	return quat{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}
}

func (q quat) rotator() Rotator {
	roll := math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	var pitch float64
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}
	yaw := math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
	return Rotator{Pitch: pitch * radToDeg, Yaw: yaw * radToDeg, Roll: roll * radToDeg}
}

func (q quat) dot(o quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q quat) scale(s float64) quat {
	return quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q quat) add(o quat) quat {
	return quat{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

func (q quat) normalize() quat {
	n := math.Sqrt(q.dot(q))
	if n == 0 {
		return quat{W: 1}
	}
	return q.scale(1 / n)
}

// slerp interpolates from a to b. q and -q are the same orientation, so the
// sign of b picks the arc: shortest keeps the dot product positive, longest
// keeps it negative.
func slerp(a, b quat, t float64, path RotationPath) quat {
	d := a.dot(b)
	if (path == PathShortest && d < 0) || (path == PathLongest && d > 0) {
		b = b.scale(-1)
		d = -d
	}
	if d > 0.9995 {
		return a.add(b.add(a.scale(-1)).scale(t)).normalize()
	}
	d = math.Max(-1, math.Min(1, d))
	theta := math.Acos(d)
	sinTheta := math.Sin(theta)
	if sinTheta < 1e-9 {
		// Antipodal: no unique great circle, hold the start.
		return a
	}
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return a.scale(wa).add(b.scale(wb)).normalize()
}

// SlerpRotator interpolates between two rotators along the chosen arc. The
// endpoints are returned unchanged at alpha 0 and 1.
func SlerpRotator(from, to Rotator, alpha float64, path RotationPath) Rotator {
	switch alpha {
	case 0:
		return from
	case 1:
		return to
	}
	return slerp(from.quat(), to.quat(), alpha, path).rotator()
}

// Normalize wraps every angle into (-180, 180].
func (r Rotator) Normalize() Rotator {
	return Rotator{Pitch: normalizeAxis(r.Pitch), Yaw: normalizeAxis(r.Yaw), Roll: normalizeAxis(r.Roll)}
}

func normalizeAxis(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
