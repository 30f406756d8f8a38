package systems

import (
	"github.com/automoto/deadknight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes entities whose death timer has run out. A boss keeps
// its pending registration retry only while it is still in the world.
func UpdateDeaths(ecs *ecs.ECS) {
	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		removeEntity(ecs.World, e)
	}
}
