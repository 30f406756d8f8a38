package components

import (
	"github.com/automoto/deadknight/progress"
	"github.com/yohamta/donburi"
)

// BossData identifies a boss and the level whose objectives it counts for.
type BossData struct {
	Type  progress.BossType
	Level int
}

var Boss = donburi.NewComponentType[BossData]()

// BossRegistrarData tracks reporting this boss's defeat. Registered is set
// on the first death signal, even when the report had to be deferred.
type BossRegistrarData struct {
	Registered bool
	// RetryTimer counts down a pending retry; 0 means none is scheduled.
	RetryTimer int
}

var BossRegistrar = donburi.NewComponentType[BossRegistrarData]()
