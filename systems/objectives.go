package systems

import (
	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a font.Face
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// OnObjectivesChanged marks the tracker for a rebuild. Subscribe it to
// ObjectivesChangedEvent.
func OnObjectivesChanged(w donburi.World, _ ObjectivesChanged) {
	getOrCreateObjectiveDisplay(w).Dirty = true
}

// RefreshObjectives forces the tracker to rebuild on the next update.
func RefreshObjectives(ecs *ecs.ECS) {
	getOrCreateObjectiveDisplay(ecs.World).Dirty = true
}

// UpdateObjectives rebuilds the tracker lines for the current level.
func (s *Services) UpdateObjectives(ecs *ecs.ECS) {
	display := getOrCreateObjectiveDisplay(ecs.World)
	if !display.Dirty {
		return
	}
	m, ok := s.Progress.Get()
	if !ok {
		return // stays dirty until progress is reachable
	}
	display.Dirty = false

	level := m.CurrentLevel()
	snap, ok := m.Snapshot(level)
	if !ok || level == 0 {
		display.Lines = nil
		display.Satisfied = false
		return
	}
	display.Lines = append([]string{snap.ID}, snap.MissionLines()...)
	display.Satisfied = snap.Satisfied
}

func DrawObjectives(ecs *ecs.ECS, screen *ebiten.Image) {
	display := getOrCreateObjectiveDisplay(ecs.World)
	if len(display.Lines) == 0 {
		return
	}
	clr := cfg.Objectives.TextColor
	if display.Satisfied {
		clr = cfg.Objectives.DoneColor
	}
	face := basicfont.Face7x13
	y := cfg.Objectives.Y
	for _, line := range display.Lines {
		text.Draw(screen, line, face, cfg.Objectives.X, y, clr) //nolint:staticcheck
		y += cfg.Objectives.LineHeight
	}
}

func getOrCreateObjectiveDisplay(w donburi.World) *components.ObjectiveDisplayData {
	entry, ok := components.ObjectiveDisplay.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.ObjectiveDisplay))
		components.ObjectiveDisplay.SetValue(entry, components.ObjectiveDisplayData{Dirty: true})
	}
	return components.ObjectiveDisplay.Get(entry)
}
