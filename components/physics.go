package components

import "github.com/yohamta/donburi"

// PhysicsData is the player's velocity. Entities without it cannot receive a
// knockback impulse and are displaced directly instead.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
