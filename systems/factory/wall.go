package factory

import (
	"github.com/automoto/deadknight/archetypes"
	"github.com/automoto/deadknight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	newObject(ecs, wall, x, y, w, h, tags.ResolvSolid)
	return wall
}
