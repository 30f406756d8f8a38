package systems

import (
	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// applyKnockback pushes target away from the centre of source. Entities with
// a physics body get an impulse; anything else is slid along a tween.
func applyKnockback(target, source *donburi.Entry) {
	if target == nil || !target.Valid() {
		return
	}
	targetObj := components.Object.Get(target)
	sourceObj := components.Object.Get(source)

	dir := -1.0
	if targetObj.X+targetObj.W/2 >= sourceObj.X+sourceObj.W/2 {
		dir = 1.0
	}

	if target.HasComponent(components.Physics) {
		physics := components.Physics.Get(target)
		physics.SpeedX = dir * cfg.Gate.KnockbackForce
		physics.SpeedY = -cfg.Gate.KnockbackForce / 2
		physics.OnGround = false
		return
	}

	if !target.HasComponent(components.Knockback) {
		target.AddComponent(components.Knockback)
	}
	components.Knockback.SetValue(target, components.KnockbackData{
		Tween:   gween.New(0, float32(dir*cfg.Gate.KnockbackDistance), float32(cfg.Gate.KnockbackFrames), ease.OutQuad),
		OriginX: targetObj.X,
	})
}

// UpdateKnockback advances tween-driven displacements.
func UpdateKnockback(ecs *ecs.ECS) {
	var done []*donburi.Entry
	components.Knockback.Each(ecs.World, func(e *donburi.Entry) {
		kb := components.Knockback.Get(e)
		offset, finished := kb.Tween.Update(1)
		obj := components.Object.Get(e)
		obj.X = kb.OriginX + float64(offset)
		obj.Update()
		if finished {
			done = append(done, e)
		}
	})
	for _, e := range done {
		e.RemoveComponent(components.Knockback)
	}
}
