package store

import (
	"strconv"
	"strings"
)

// Key names are shared with existing saves and must not change.
const (
	KeyCurrentMap     = "CurrentMap"
	KeyProgressRecord = "ProgressRecord"

	// Spawn override consumed once by the next level load.
	KeyUseCustomSpawn = "UseCustomSpawn"
	KeySpawnPositionX = "SpawnPositionX"
	KeySpawnPositionY = "SpawnPositionY"
)

func MapUnlockedKey(level int) string {
	return "MapUnlocked_" + strconv.Itoa(level)
}

func MapCompletedKey(level int) string {
	return "MapCompleted_" + strconv.Itoa(level)
}

func CollectedCoinsKey(level int) string {
	return "CollectedCoins_" + strconv.Itoa(level)
}

func CollectedChestsKey(level int) string {
	return "CollectedChests_" + strconv.Itoa(level)
}

// DefeatedKey is "Defeated<Boss>_<level>", e.g. DefeatedDeadKnight_4.
func DefeatedKey(boss string, level int) string {
	return "Defeated" + boss + "_" + strconv.Itoa(level)
}

// PendingDefeatKey is the fallback marker written when a boss dies before
// progress is reachable, e.g. defeated_deadknight_pending.
func PendingDefeatKey(boss string) string {
	return "defeated_" + strings.ToLower(boss) + "_pending"
}

// SetBool stores b as 0/1.
func SetBool(s Store, key string, b bool) {
	v := 0
	if b {
		v = 1
	}
	s.SetInt(key, v)
}

// GetBool reads a 0/1 value; any non-zero int is true.
func GetBool(s Store, key string, def bool) bool {
	d := 0
	if def {
		d = 1
	}
	return s.GetInt(key, d) != 0
}
