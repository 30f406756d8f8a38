package factory

import (
	"github.com/automoto/deadknight/archetypes"
	"github.com/automoto/deadknight/components"
	"github.com/automoto/deadknight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGate creates a level exit gate with collision detection
func CreateGate(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	gate := archetypes.Gate.Spawn(ecs)
	newObject(ecs, gate, x, y, w, h, tags.ResolvGate)
	components.Gate.SetValue(gate, components.GateData{
		State: components.GateIdle,
	})
	return gate
}
