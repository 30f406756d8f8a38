package systems

import (
	"image/color"

	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders every collider as a flat rectangle.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, e, cfg.Gray)
	})

	components.Gate.Each(ecs.World, func(e *donburi.Entry) {
		gate := components.Gate.Get(e)
		clr := cfg.Gate.Color
		switch {
		case gate.Succeeded:
			clr = cfg.Gate.SuccessColor
		case gate.FlashLevel > 0:
			clr = mix(cfg.Gate.Color, cfg.Gate.FailureColor, gate.FlashLevel)
		}
		fillObject(screen, e, clr)
	})

	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		clr := cfg.Collectible.CoinColor
		if components.Collectible.Get(e).Kind == components.Chest {
			clr = cfg.Collectible.ChestColor
		}
		fillObject(screen, e, clr)
	})

	components.Boss.Each(ecs.World, func(e *donburi.Entry) {
		clr := cfg.Boss.Color
		if e.HasComponent(components.Death) {
			clr = cfg.BlackOverlay
		}
		fillObject(screen, e, clr)
	})

	if entry, ok := tags.Player.First(ecs.World); ok {
		fillObject(screen, entry, cfg.Player.Color)
	}
}

func fillObject(screen *ebiten.Image, e *donburi.Entry, clr color.Color) {
	o := components.Object.Get(e)
	vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
}

// mix blends from a toward b by t in [0, 1].
func mix(a, b color.RGBA, t float32) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
