package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ObjectivesChanged is published after a pickup or boss defeat changes the
// counts for Level.
type ObjectivesChanged struct {
	Level int
}

// BossDied is published once when a boss's health runs out.
type BossDied struct {
	Entry    *donburi.Entry
	BossType string
}

var (
	ObjectivesChangedEvent = events.NewEventType[ObjectivesChanged]()
	BossDiedEvent          = events.NewEventType[BossDied]()
)

// ProcessEvents delivers the events queued this frame. It runs after the
// systems that publish them.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
