package quicktween

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every tween constructor and by
// NewSequence. Start from DefaultConfig; the zero value has a zero time scale
// and never advances.
type Config struct {
	// Duration of one loop in seconds. 0 completes on the first update.
	Duration float64 `yaml:"duration"`
	// TimeScale multiplies every delta. 0 freezes the tween.
	TimeScale float64  `yaml:"time_scale"`
	Ease      EaseType `yaml:"ease"`
	// Curve remaps progress before the ease. It takes precedence over
	// CurveKeys.
	Curve     Curve        `yaml:"-"`
	CurveKeys []Keyframe   `yaml:"curve,omitempty"`
	Loops     int          `yaml:"loops"`
	LoopType  LoopType     `yaml:"loop_type"`
	Path      RotationPath `yaml:"path"`
	Tag       string       `yaml:"tag"`
	// AutoPlay starts the object playing on creation.
	AutoPlay bool `yaml:"auto_play"`
	// AutoKill kills the object when it completes so its manager drops it.
	// Owned members of a sequence are never auto-killed.
	AutoKill bool `yaml:"auto_kill"`
	// PlayWhilePaused keeps the object ticking while its manager is paused.
	PlayWhilePaused bool `yaml:"play_while_paused"`
	// LiveTarget re-reads the To accessor on every update.
	LiveTarget bool `yaml:"live_target"`
}

// DefaultConfig returns a one-second linear tween that plays once and is
// killed when it completes.
func DefaultConfig() Config {
	return Config{
		Duration:  1,
		TimeScale: 1,
		Ease:      EaseLinear,
		Loops:     1,
		LoopType:  LoopRestart,
		AutoKill:  true,
	}
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	if c.Duration < 0 {
		errs = append(errs, fmt.Errorf("duration %v is negative", c.Duration))
	}
	if c.TimeScale < 0 {
		errs = append(errs, fmt.Errorf("time scale %v is negative", c.TimeScale))
	}
	if c.Loops == 0 || c.Loops < InfiniteLoops {
		errs = append(errs, fmt.Errorf("loops %d must be positive or %d for infinite", c.Loops, InfiniteLoops))
	}
	if c.LoopType > LoopPingPong {
		errs = append(errs, fmt.Errorf("unknown loop type %d", c.LoopType))
	}
	if c.Ease >= easeCount {
		errs = append(errs, fmt.Errorf("unknown ease %d", c.Ease))
	}
	if c.Path > PathLongest {
		errs = append(errs, fmt.Errorf("unknown rotation path %d", c.Path))
	}
	return errors.Join(errs...)
}

// sanitized clamps values constructors cannot work with. The loop type is
// left alone: an unknown one is a programming error caught at the first loop
// boundary.
func (c Config) sanitized() Config {
	if c.Duration < 0 {
		warnf("tween %q: negative duration %v treated as 0", c.Tag, c.Duration)
		c.Duration = 0
	}
	if c.TimeScale < 0 {
		warnf("tween %q: negative time scale %v treated as 0", c.Tag, c.TimeScale)
		c.TimeScale = 0
	}
	if c.Loops == 0 || c.Loops < InfiniteLoops {
		c.Loops = 1
	}
	return c
}

func (c Config) curve() Curve {
	if c.Curve != nil {
		return c.Curve
	}
	if len(c.CurveKeys) > 0 {
		return NewKeyframeCurve(c.CurveKeys...)
	}
	return nil
}

// LoadConfig parses a YAML document into a Config. Fields missing from the
// document keep their DefaultConfig values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse tween config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse tween config: %w", err)
	}
	return cfg, nil
}

type presetFile struct {
	Presets map[string]yaml.Node `yaml:"presets"`
}

// LoadPresets parses a YAML document of named configs:
//
//	presets:
//	  fade_in:
//	    duration: 0.3
//	    ease: out_quad
//	  bob:
//	    loops: -1
//	    loop_type: pingpong
//
// Each preset starts from DefaultConfig.
func LoadPresets(data []byte) (map[string]Config, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse tween presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("parse tween presets: no presets")
	}
	out := make(map[string]Config, len(file.Presets))
	for name, node := range file.Presets {
		cfg := DefaultConfig()
		if err := node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse tween preset %q: %w", name, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("parse tween preset %q: %w", name, err)
		}
		if cfg.Tag == "" {
			cfg.Tag = name
		}
		out[name] = cfg
	}
	return out, nil
}

// UnmarshalYAML decodes an ease by name.
func (e *EaseType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	v, err := ParseEaseType(name)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalYAML encodes an ease by name.
func (e EaseType) MarshalYAML() (any, error) { return e.String(), nil }

// UnmarshalYAML decodes a loop type by name.
func (l *LoopType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	v, err := ParseLoopType(name)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalYAML encodes a loop type by name.
func (l LoopType) MarshalYAML() (any, error) { return l.String(), nil }

// UnmarshalYAML decodes a rotation path by name.
func (p *RotationPath) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	v, err := ParseRotationPath(name)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalYAML encodes a rotation path by name.
func (p RotationPath) MarshalYAML() (any, error) { return p.String(), nil }
