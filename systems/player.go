package systems

import (
	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns keyboard input into player velocity. Input is ignored
// while a level transition is pending.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.InputLocked {
		return
	}
	physics := components.Physics.Get(entry)

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	switch {
	case left && !right:
		player.Facing = -1
		physics.SpeedX = max(physics.SpeedX-cfg.Player.Acceleration, -cfg.Player.MaxSpeed)
	case right && !left:
		player.Facing = 1
		physics.SpeedX = min(physics.SpeedX+cfg.Player.Acceleration, cfg.Player.MaxSpeed)
	}

	if physics.OnGround && (inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW)) {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		for _, boss := range touchedEntries(entry, tags.ResolvBoss) {
			DamageBoss(ecs, boss, 1)
		}
	}
}
