package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // -1 left, 1 right
	// InputLocked freezes control while a level transition is pending.
	InputLocked bool
}

var Player = donburi.NewComponentType[PlayerData]()
