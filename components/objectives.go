package components

import "github.com/yohamta/donburi"

// ObjectiveDisplayData is the singleton objective tracker. Lines are rebuilt
// whenever Dirty is set.
type ObjectiveDisplayData struct {
	Lines     []string
	Satisfied bool
	Dirty     bool
}

var ObjectiveDisplay = donburi.NewComponentType[ObjectiveDisplayData]()
