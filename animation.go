package quicktween

// The helpers below bind a tween straight to a field. The start value is read
// from the field on the first update, the tween plays immediately and is
// killed when it completes. Call Update(dt) each frame or add the tween to a
// Manager.

// TweenFloat animates *target to the given value.
func TweenFloat(target *float64, to, duration float64, e EaseType) *Tween {
	if target == nil {
		return NewFloatTween(nil, nil, nil, helperConfig(duration, e))
	}
	return NewFloatTween(
		func() float64 { return *target },
		Fixed(to),
		func(v float64) { *target = v },
		helperConfig(duration, e),
	)
}

// TweenVec2 animates *target, typically a position or scale, to the given
// value.
func TweenVec2(target *Vec2, to Vec2, duration float64, e EaseType) *Tween {
	if target == nil {
		return NewVec2Tween(nil, nil, nil, helperConfig(duration, e))
	}
	return NewVec2Tween(
		func() Vec2 { return *target },
		Fixed(to),
		func(v Vec2) { *target = v },
		helperConfig(duration, e),
	)
}

// TweenVec3 animates *target to the given value.
func TweenVec3(target *Vec3, to Vec3, duration float64, e EaseType) *Tween {
	if target == nil {
		return NewVec3Tween(nil, nil, nil, helperConfig(duration, e))
	}
	return NewVec3Tween(
		func() Vec3 { return *target },
		Fixed(to),
		func(v Vec3) { *target = v },
		helperConfig(duration, e),
	)
}

// TweenColor animates all four components of *target.
func TweenColor(target *Color, to Color, duration float64, e EaseType) *Tween {
	if target == nil {
		return NewColorTween(nil, nil, nil, helperConfig(duration, e))
	}
	return NewColorTween(
		func() Color { return *target },
		Fixed(to),
		func(v Color) { *target = v },
		helperConfig(duration, e),
	)
}

// TweenRotator animates *target along the chosen arc.
func TweenRotator(target *Rotator, to Rotator, duration float64, e EaseType, path RotationPath) *Tween {
	cfg := helperConfig(duration, e)
	cfg.Path = path
	if target == nil {
		return NewRotatorTween(nil, nil, nil, cfg)
	}
	return NewRotatorTween(
		func() Rotator { return *target },
		Fixed(to),
		func(v Rotator) { *target = v },
		cfg,
	)
}

// TweenInt animates *target, rounding intermediate values.
func TweenInt(target *int, to int, duration float64, e EaseType) *Tween {
	if target == nil {
		return NewIntTween(nil, nil, nil, helperConfig(duration, e))
	}
	return NewIntTween(
		func() int { return *target },
		Fixed(to),
		func(v int) { *target = v },
		helperConfig(duration, e),
	)
}

func helperConfig(duration float64, e EaseType) Config {
	cfg := DefaultConfig()
	cfg.Duration = duration
	cfg.Ease = e
	cfg.AutoPlay = true
	return cfg
}
