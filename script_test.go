package quicktween

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - {action: play, tag: intro}
  - {action: wait, frames: 3}
  - {action: reverse, tag: intro}
  - {action: pause_world}
`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "play" || runner.steps[0].Tag != "intro" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[3].Action != "pause_world" || runner.steps[3].Tag != "" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_JSON(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "kill", "tag": "x"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.steps[0].Action != "kill" || runner.steps[0].Tag != "x" {
		t.Error("step 0 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", `steps: [`},
		{"empty", `steps: []`},
		{"unknown action", `steps: [{action: explode}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptWait(t *testing.T) {
	m := NewManager()
	tw, _ := managedProbe("intro")
	tw.Pause()
	m.Add(tw)

	runner, err := LoadScript([]byte(`steps: [{action: wait, frames: 3}, {action: play, tag: intro}]`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(m)
	if runner.Done() {
		t.Error("should not be done during wait")
	}
	// Frames 2 and 3: count down.
	runner.step(m)
	runner.step(m)
	if runner.Done() || tw.IsPlaying() {
		t.Error("play step ran before the wait finished")
	}
	// Frame 4: play runs and the runner finishes.
	runner.step(m)
	if !runner.Done() || !tw.IsPlaying() {
		t.Errorf("done = %v playing = %v, want both true", runner.Done(), tw.IsPlaying())
	}
}

func TestScriptDrivesManager(t *testing.T) {
	m := NewManager()
	intro, vi := managedProbe("intro")
	other, vo := managedProbe("other")
	m.Add(intro)
	m.Add(other)

	runner, err := LoadScript([]byte(`
steps:
  - {action: pause, tag: intro}
  - {action: wait, frames: 2}
  - {action: play, tag: intro}
  - {action: pause_world}
`))
	if err != nil {
		t.Fatal(err)
	}
	m.SetScript(runner)

	m.Update(0.25) // pause intro
	m.Update(0.25) // wait
	if *vi != 0 || !nearly(*vo, 50) {
		t.Fatalf("intro = %f other = %f, want 0 and 50", *vi, *vo)
	}
	m.Update(0.25) // wait
	m.Update(0.25) // play intro
	if !nearly(*vi, 25) {
		t.Errorf("intro = %f, want 25", *vi)
	}
	m.Update(0.25) // pause world
	if !m.Paused() || !nearly(*vi, 25) {
		t.Errorf("paused = %v intro = %f, want true and 25", m.Paused(), *vi)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestScriptEmptyTagAppliesToAll(t *testing.T) {
	m := NewManager()
	a, _ := managedProbe("a")
	b, _ := managedProbe("b")
	m.Add(a)
	m.Add(b)

	runner, err := LoadScript([]byte(`steps: [{action: kill}]`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(m)
	if !a.IsPendingKill() || !b.IsPendingKill() {
		t.Error("untagged kill should reach every object")
	}
	if !runner.Done() {
		t.Error("runner should be done after its only step")
	}
}
