package progress

import (
	"fmt"
	"strings"
)

// BossType identifies one of the bosses a level can require.
type BossType int

const (
	DeadKnight BossType = iota
	Ashe
	Zombie

	bossTypeCount
)

// AllBossTypes lists every boss in declaration order.
var AllBossTypes = [bossTypeCount]BossType{DeadKnight, Ashe, Zombie}

// unmetOrder is the order bosses are listed in "objectives not met" notices.
var unmetOrder = [bossTypeCount]BossType{DeadKnight, Zombie, Ashe}

func (b BossType) String() string {
	switch b {
	case DeadKnight:
		return "DeadKnight"
	case Ashe:
		return "Ashe"
	case Zombie:
		return "Zombie"
	default:
		return fmt.Sprintf("BossType(%d)", int(b))
	}
}

func (b BossType) valid() bool {
	return b >= 0 && b < bossTypeCount
}

// ParseBossType matches name case-insensitively against the known bosses.
func ParseBossType(name string) (BossType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "deadknight":
		return DeadKnight, nil
	case "ashe":
		return Ashe, nil
	case "zombie":
		return Zombie, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBoss, name)
}
