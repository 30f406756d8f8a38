package systems

import (
	"testing"

	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/systems/factory"
)

func TestKnockbackWithoutPhysicsBody(t *testing.T) {
	f := newFixture(t)
	target := factory.CreateWall(f.ecs, 100, 100, 16, 16)
	source := factory.CreateGate(f.ecs, 110, 100, 24, 64)

	applyKnockback(target, source)
	if !target.HasComponent(components.Knockback) {
		t.Fatal("expected a knockback tween")
	}
	for i := 0; i < cfg.Gate.KnockbackFrames; i++ {
		UpdateKnockback(f.ecs)
	}

	want := 100 - cfg.Gate.KnockbackDistance
	if got := components.Object.Get(target).X; got != want {
		t.Errorf("X = %v, want %v", got, want)
	}
	if target.HasComponent(components.Knockback) {
		t.Error("finished knockback should be removed")
	}
}

func TestKnockbackImpulseDirection(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		wantDir float64
	}{
		{"left of gate", 590, -1},
		{"right of gate", 620, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			gate := factory.CreateGate(f.ecs, 600, 272, 24, 64)
			player := factory.CreatePlayer(f.ecs, tt.playerX, 296)

			applyKnockback(player, gate)

			physics := components.Physics.Get(player)
			if physics.SpeedX != tt.wantDir*cfg.Gate.KnockbackForce {
				t.Errorf("SpeedX = %v, want %v", physics.SpeedX, tt.wantDir*cfg.Gate.KnockbackForce)
			}
			if physics.SpeedY >= 0 {
				t.Error("knockback should lift the player")
			}
		})
	}
}

func TestPhysicsLandsOnSolid(t *testing.T) {
	f := newFixture(t)
	factory.CreateWall(f.ecs, 0, 336, 640, 24)
	player := factory.CreatePlayer(f.ecs, 100, 290)

	for i := 0; i < 30; i++ {
		UpdatePhysics(f.ecs)
	}

	obj := components.Object.Get(player)
	if !components.Physics.Get(player).OnGround {
		t.Error("player should be on the ground")
	}
	if obj.Y+obj.H > 336 {
		t.Errorf("player sank into the floor: bottom %v", obj.Y+obj.H)
	}
}
