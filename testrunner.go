package cardboard

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"checkpoint": true,
	"hover":      true,
	"press":      true,
	"move":       true,
	"release":    true,
	"click":      true,
	"drag":       true,
	"wait":       true,
}

// TestRunner sequences injected pointer input and checkpoints across frames
// for scripted interaction tests. Attach to a Board via SetTestRunner.
type TestRunner struct {
	// OnCheckpoint, when set, is called with the label of every checkpoint
	// step as it executes.
	OnCheckpoint func(label string)

	steps       []testStep
	cursor      int
	waitCount   int
	done        bool
	checkpoints []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Board via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the board. The runner's step method
// is called from Board.Update before the pointer is read each frame.
func (b *Board) SetTestRunner(runner *TestRunner) {
	b.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Checkpoints returns the labels of the checkpoint steps executed so far.
func (r *TestRunner) Checkpoints() []string {
	return r.checkpoints
}

// step advances the test runner by one frame. Called from Board.Update.
func (r *TestRunner) step(b *Board) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(b.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
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

	switch st.Action {
	case "checkpoint":
		r.checkpoints = append(r.checkpoints, st.Label)
		if r.OnCheckpoint != nil {
			r.OnCheckpoint(st.Label)
		}
	case "hover":
		b.InjectHover(st.X, st.Y)
	case "press":
		b.InjectPress(st.X, st.Y)
	case "move":
		b.InjectMove(st.X, st.Y)
	case "release":
		b.InjectRelease(st.X, st.Y)
	case "click":
		b.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		b.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(b.injectQueue) == 0 {
		r.done = true
	}
}
