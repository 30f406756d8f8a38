package progress

import (
	"fmt"
	"strings"
)

type BossStatus struct {
	Type     BossType
	Required bool
	Defeated bool
}

// Snapshot is a read-only view of one level for UI and debug tools.
type Snapshot struct {
	Level           int
	ID              string
	Unlocked        bool
	Completed       bool
	Satisfied       bool
	CollectedCoins  int
	RequiredCoins   int
	CollectedChests int
	RequiredChests  int
	Bosses          []BossStatus
}

// Snapshot returns the view of level, or false if level is out of range.
func (m *Manager) Snapshot(level int) (Snapshot, bool) {
	if m.checkLevel("Snapshot", level) != nil {
		return Snapshot{Level: level}, false
	}
	def, _ := m.levels.Level(level)
	ls := m.state.Levels[level]
	s := Snapshot{
		Level:           level,
		ID:              def.ID,
		Unlocked:        ls.Unlocked,
		Completed:       ls.Completed,
		Satisfied:       def.Satisfied(ls),
		CollectedCoins:  ls.CollectedCoins,
		RequiredCoins:   def.RequiredCoins,
		CollectedChests: ls.CollectedChests,
		RequiredChests:  def.RequiredChests,
		Bosses:          make([]BossStatus, 0, len(AllBossTypes)),
	}
	for _, b := range AllBossTypes {
		s.Bosses = append(s.Bosses, BossStatus{
			Type:     b,
			Required: def.Requires[b],
			Defeated: ls.Defeated[b],
		})
	}
	return s, true
}

// BossCounts returns how many required bosses are defeated and how many are
// required.
func (s Snapshot) BossCounts() (defeated, required int) {
	for _, b := range s.Bosses {
		if !b.Required {
			continue
		}
		required++
		if b.Defeated {
			defeated++
		}
	}
	return defeated, required
}

// MissionLines renders the objective tracker, one line per objective kind the
// level actually has.
func (s Snapshot) MissionLines() []string {
	var lines []string
	if s.RequiredCoins > 0 {
		lines = append(lines, fmt.Sprintf("%d/%d Coins", s.CollectedCoins, s.RequiredCoins))
	}
	if s.RequiredChests > 0 {
		lines = append(lines, fmt.Sprintf("%d/%d Chests", s.CollectedChests, s.RequiredChests))
	}
	if defeated, required := s.BossCounts(); required > 0 {
		lines = append(lines, fmt.Sprintf("%d/%d Bosses", defeated, required))
	}
	return lines
}

// DebugDump describes the whole state in a human readable block.
func (m *Manager) DebugDump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Progress (save %s, epoch %d) ===\n", m.state.SaveID, m.epoch)
	curID, _ := m.levels.ID(m.state.CurrentLevel)
	fmt.Fprintf(&b, "Current level: %d (%s)\n", m.state.CurrentLevel, curID)
	for i := 0; i < m.levels.Len(); i++ {
		s, _ := m.Snapshot(i)
		fmt.Fprintf(&b, "[%d] %-10s unlocked=%t completed=%t coins=%d/%d chests=%d/%d",
			i, s.ID, s.Unlocked, s.Completed,
			s.CollectedCoins, s.RequiredCoins, s.CollectedChests, s.RequiredChests)
		for _, boss := range s.Bosses {
			if !boss.Required && !boss.Defeated {
				continue
			}
			state := "alive"
			if boss.Defeated {
				state = "defeated"
			}
			fmt.Fprintf(&b, " %s=%s", boss.Type, state)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Game completed: %t\n", m.IsGameCompleted())
	return b.String()
}
