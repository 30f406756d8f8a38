package progress

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the static objective definition of one map.
type Level struct {
	ID             string
	RequiredCoins  int
	RequiredChests int
	Requires       [bossTypeCount]bool
}

func (l Level) RequiresBoss(b BossType) bool {
	return b.valid() && l.Requires[b]
}

// Satisfied reports whether ls meets every objective of l. Counts may exceed
// their requirement.
func (l Level) Satisfied(ls LevelState) bool {
	if ls.CollectedCoins < l.RequiredCoins || ls.CollectedChests < l.RequiredChests {
		return false
	}
	for _, b := range AllBossTypes {
		if l.Requires[b] && !ls.Defeated[b] {
			return false
		}
	}
	return true
}

// Unmet lists one line per objective l still needs from ls.
func (l Level) Unmet(ls LevelState) []string {
	var lines []string
	if short := l.RequiredCoins - ls.CollectedCoins; short > 0 {
		lines = append(lines, fmt.Sprintf("Collect %d more %s", short, plural(short, "coin", "coins")))
	}
	if short := l.RequiredChests - ls.CollectedChests; short > 0 {
		lines = append(lines, fmt.Sprintf("Find %d more %s", short, plural(short, "chest", "chests")))
	}
	for _, b := range unmetOrder {
		if l.Requires[b] && !ls.Defeated[b] {
			lines = append(lines, "Defeat "+b.String())
		}
	}
	return lines
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// LevelTable maps level indexes to identifiers and back. Index 0 is the hub.
type LevelTable struct {
	levels []Level
	index  map[string]int
}

var errTooFewLevels = errors.New("level table needs a hub and at least one level")

func NewLevelTable(levels []Level) (LevelTable, error) {
	if len(levels) < 2 {
		return LevelTable{}, errTooFewLevels
	}
	t := LevelTable{
		levels: make([]Level, len(levels)),
		index:  make(map[string]int, len(levels)),
	}
	copy(t.levels, levels)
	for i, l := range levels {
		key := strings.ToLower(strings.TrimSpace(l.ID))
		if key == "" {
			return LevelTable{}, fmt.Errorf("level %d has no id", i)
		}
		if prev, dup := t.index[key]; dup {
			return LevelTable{}, fmt.Errorf("level id %q used by %d and %d", l.ID, prev, i)
		}
		t.index[key] = i
	}
	return t, nil
}

// Len is the number of entries including the hub (N+1).
func (t LevelTable) Len() int { return len(t.levels) }

// Last is the index of the final playable level (N).
func (t LevelTable) Last() int { return len(t.levels) - 1 }

func (t LevelTable) Valid(level int) bool {
	return level >= 0 && level < len(t.levels)
}

func (t LevelTable) Level(level int) (Level, bool) {
	if !t.Valid(level) {
		return Level{}, false
	}
	return t.levels[level], true
}

func (t LevelTable) ID(level int) (string, bool) {
	if !t.Valid(level) {
		return "", false
	}
	return t.levels[level].ID, true
}

// Hub is the identifier of index 0.
func (t LevelTable) Hub() string {
	if len(t.levels) == 0 {
		return ""
	}
	return t.levels[0].ID
}

// IndexOf looks id up in the table, ignoring case.
func (t LevelTable) IndexOf(id string) (int, bool) {
	i, ok := t.index[strings.ToLower(strings.TrimSpace(id))]
	return i, ok
}
