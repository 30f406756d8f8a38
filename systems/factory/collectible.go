package factory

import (
	"github.com/automoto/deadknight/archetypes"
	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollectible spawns a coin or chest counted toward level. Point
// objects (zero size) are centred on their position.
func CreateCollectible(ecs *ecs.ECS, kind components.CollectibleKind, level int, x, y, w, h float64) *donburi.Entry {
	if w <= 0 || h <= 0 {
		if kind == components.Chest {
			w, h = cfg.Collectible.ChestWidth, cfg.Collectible.ChestHeight
		} else {
			w, h = cfg.Collectible.CoinSize, cfg.Collectible.CoinSize
		}
		x -= w / 2
		y -= h / 2
	}

	pickup := archetypes.Collectible.Spawn(ecs)
	newObject(ecs, pickup, x, y, w, h, tags.ResolvCollectible)
	components.Collectible.SetValue(pickup, components.CollectibleData{
		Kind:  kind,
		Level: level,
	})
	return pickup
}
