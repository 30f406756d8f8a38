package systems

import (
	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies friction and gravity, then moves bodies against
// solid colliders one axis at a time.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		friction := cfg.Player.Friction
		if physics.SpeedX > friction {
			physics.SpeedX -= friction
		} else if physics.SpeedX < -friction {
			physics.SpeedX += friction
		} else {
			physics.SpeedX = 0
		}

		physics.SpeedY = min(physics.SpeedY+cfg.Player.Gravity, cfg.Physics.MaxFallSpeed)

		moveX(physics, obj)
		moveY(physics, obj)
		obj.Update()
	})
}

func moveX(physics *components.PhysicsData, obj *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solid := blockingSolid(obj, dx, 0, check); solid != nil {
			dx = check.ContactWithObject(solid).X()
			physics.SpeedX = 0
		}
	}
	obj.X += dx
}

func moveY(physics *components.PhysicsData, obj *resolv.Object) {
	physics.OnGround = false
	dy := physics.SpeedY
	if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
		if solid := blockingSolid(obj, 0, dy, check); solid != nil {
			dy = check.ContactWithObject(solid).Y()
			if physics.SpeedY > 0 {
				physics.OnGround = true
			}
			physics.SpeedY = 0
		}
	}
	obj.Y += dy
}

// blockingSolid returns the first solid obj would overlap after moving by
// (dx, dy). Solids merely sharing a cell are ignored.
func blockingSolid(obj *resolv.Object, dx, dy float64, check *resolv.Collision) *resolv.Object {
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlapsAt(obj, dx, dy, solid) {
			return solid
		}
	}
	return nil
}
