package systems

import (
	"image/color"

	"github.com/automoto/deadknight/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	bossBarHeight = 3
	bossBarGap    = 4
)

// DrawBossHealth renders a health bar above each living boss.
func DrawBossHealth(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Boss.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		hp := components.Health.Get(e)
		if hp.Max <= 0 {
			return
		}
		o := components.Object.Get(e)
		x := float32(o.X)
		y := float32(o.Y) - bossBarGap - bossBarHeight

		// Background (dark gray)
		vector.FillRect(screen, x, y, float32(o.W), bossBarHeight, color.RGBA{40, 40, 40, 255}, false)

		// Current HP (red)
		ratio := float32(hp.Current) / float32(hp.Max)
		vector.FillRect(screen, x, y, float32(o.W)*ratio, bossBarHeight, color.RGBA{220, 40, 40, 255}, false)
	})
}
