// Package quicktween is a tweening engine for games built on a fixed-step
// frame loop such as [Ebitengine].
//
// It provides timed interpolations of floats, vectors, rotators, colors and
// integers, loop policies, mid-flight reversal, and sequences that compose
// tweens into ordered groups of parallel animations.
//
// # Quick start
//
// Create a tween with a typed constructor, passing accessors for the start
// and end values and a setter that receives every interpolated value:
//
//	cfg := quicktween.DefaultConfig()
//	cfg.Duration = 0.5
//	cfg.Ease = quicktween.EaseOutBack
//	tw := quicktween.NewVec2Tween(
//		func() quicktween.Vec2 { return hero.Pos },
//		quicktween.Fixed(quicktween.Vec2{X: 200, Y: 120}),
//		func(v quicktween.Vec2) { hero.Pos = v },
//		cfg,
//	)
//	tw.Play()
//
// Call [Tween.Update] with the frame delta, or register the tween with a
// [Manager] and call [Manager.Update] once per frame. For plain fields the
// helpers [TweenFloat], [TweenVec2] and friends bind a pointer directly.
//
// # Loops and reversal
//
// A tween runs Config.Loops times ([InfiniteLoops] repeats forever).
// [LoopRestart] jumps back to the start pose each loop; [LoopPingPong]
// plays every even loop backwards, so an even loop count ends on the start
// pose. [Tween.Reverse] flips direction at any point: the tween runs its
// timeline back to zero and completes on the start pose.
//
// # Sequences
//
// A [Sequence] holds groups of tweens. [Sequence.Join] starts a new group,
// [Sequence.Append] adds to the last one. Groups play one after another and
// a group ends when its slowest member completes:
//
//	seq := quicktween.NewSequence(quicktween.DefaultConfig())
//	seq.Join(slideIn).Append(fadeIn).Join(bounce)
//	seq.Play()
//
// Once added, a tween is owned by its sequence and ignores lifecycle calls
// from anyone else. Disposing a member does not stall the sequence; the
// member counts as completed.
//
// # Configuration
//
// [Config] values can be loaded from YAML with [LoadConfig] and
// [LoadPresets]. Frame scripts ([LoadScript]) replay lifecycle calls against
// a manager for deterministic tests.
//
// # Logging
//
// Misuse is logged and ignored rather than returned as errors. Redirect or
// silence the output with [SetLogger].
//
// Adapters live in subpackages: quicktween/ecs forwards events to a
// [Donburi] world and quicktween/ebitenrun drives a manager from an
// ebiten.Game.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package quicktween
