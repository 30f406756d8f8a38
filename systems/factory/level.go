package factory

import (
	"github.com/automoto/deadknight/archetypes"
	"github.com/automoto/deadknight/components"
	"github.com/automoto/deadknight/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records which level the world holds.
func CreateLevel(ecs *ecs.ECS, index int, id string, m *leveldata.Map) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Index:  index,
		ID:     id,
		Width:  m.Width,
		Height: m.Height,
	})
	return level
}
