package factory

import (
	"github.com/automoto/deadknight/archetypes"
	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss spawns a boss whose defeat counts toward level. Non-positive
// sizes and health fall back to the configured defaults.
func CreateBoss(ecs *ecs.ECS, bossType progress.BossType, level int, x, y, w, h float64, health int) *donburi.Entry {
	if w <= 0 || h <= 0 {
		w, h = cfg.Boss.Width, cfg.Boss.Height
	}
	if health <= 0 {
		health = cfg.Boss.DefaultHealth
	}

	boss := archetypes.Boss.Spawn(ecs)
	newObject(ecs, boss, x, y, w, h, tags.ResolvBoss)
	components.Boss.SetValue(boss, components.BossData{
		Type:  bossType,
		Level: level,
	})
	components.Health.SetValue(boss, components.HealthData{
		Current: health,
		Max:     health,
	})
	return boss
}
