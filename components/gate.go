package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type GateState int

const (
	GateIdle GateState = iota
	// GateEvaluating waits out the completion feedback before transitioning.
	GateEvaluating
	GateTransitioning
)

func (s GateState) String() string {
	switch s {
	case GateIdle:
		return "Idle"
	case GateEvaluating:
		return "Evaluating"
	case GateTransitioning:
		return "Transitioning"
	}
	return "Unknown"
}

// GateData is the exit gate state machine. Timer and Epoch belong to the
// pending step: the step is dropped if the progress epoch moves on.
type GateData struct {
	State   GateState
	Timer   int    // Frames until the pending step resumes
	Epoch   uint64 // Progress epoch the pending step was scheduled under
	Contact bool   // Player overlapped the gate last frame

	// Flash fades the gate's failure tint; nil when idle.
	Flash      *gween.Tween
	FlashLevel float32 // Last value of Flash, 1 fully tinted
	// Succeeded tints the gate while the completion delay runs.
	Succeeded bool
}

var Gate = donburi.NewComponentType[GateData]()
