package quicktween

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a frame script.
type scriptStep struct {
	Action string `yaml:"action"`
	Tag    string `yaml:"tag,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
}

// frameScript is the top-level structure of a frame script.
type frameScript struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]func(m *Manager, tag string){
	"play":     func(m *Manager, tag string) { m.EachTagged(tag, Tweenable.Play) },
	"pause":    func(m *Manager, tag string) { m.EachTagged(tag, Tweenable.Pause) },
	"toggle":   func(m *Manager, tag string) { m.EachTagged(tag, Tweenable.TogglePause) },
	"reverse":  func(m *Manager, tag string) { m.EachTagged(tag, Tweenable.Reverse) },
	"restart":  func(m *Manager, tag string) { m.EachTagged(tag, Tweenable.Restart) },
	"complete": func(m *Manager, tag string) { m.EachTagged(tag, Tweenable.Complete) },
	"stop":     func(m *Manager, tag string) { m.EachTagged(tag, Tweenable.Stop) },
	"kill":     func(m *Manager, tag string) { m.EachTagged(tag, Tweenable.Kill) },

	"pause_world":  func(m *Manager, _ string) { m.SetPaused(true) },
	"resume_world": func(m *Manager, _ string) { m.SetPaused(false) },
}

// ScriptRunner replays lifecycle calls against a Manager frame by frame, for
// deterministic tests and demos. Attach it with Manager.SetScript.
//
// A script is YAML (JSON works too, being a subset):
//
//	steps:
//	  - {action: play, tag: intro}
//	  - {action: wait, frames: 30}
//	  - {action: reverse, tag: intro}
//
// Actions other than wait apply to every registered object with the step's
// tag, or to all objects when the tag is empty.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a frame script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script frameScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse frame script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse frame script: no steps")
	}
	for i, st := range script.Steps {
		if _, ok := scriptActions[st.Action]; !ok && st.Action != "wait" {
			return nil, fmt.Errorf("parse frame script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step runs at most one step. Called from Manager.Update before ticking.
func (r *ScriptRunner) step(m *Manager) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if st.Action == "wait" {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	} else {
		scriptActions[st.Action](m, st.Tag)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
