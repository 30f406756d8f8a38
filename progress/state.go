package progress

import "fmt"

// LevelState is the mutable progress of one level.
type LevelState struct {
	Unlocked        bool
	Completed       bool
	CollectedCoins  int
	CollectedChests int
	Defeated        [bossTypeCount]bool
}

// State is the full progression state. Only Manager mutates it.
type State struct {
	CurrentLevel int
	Levels       []LevelState
	SaveID       string
}

// DefaultState returns a fresh state for n levels (hub included) with the hub
// and the first level unlocked.
func DefaultState(n int) State {
	s := State{Levels: make([]LevelState, n)}
	s.repair(n)
	return s
}

func (s State) clone() State {
	out := s
	out.Levels = make([]LevelState, len(s.Levels))
	copy(out.Levels, s.Levels)
	return out
}

// repair resizes Levels to n and re-asserts the unlock invariants. It returns
// a description of every correction it had to make.
func (s *State) repair(n int) []string {
	var fixes []string

	if len(s.Levels) != n {
		if len(s.Levels) != 0 {
			fixes = append(fixes, fmt.Sprintf("resized level array from %d to %d", len(s.Levels), n))
		}
		levels := make([]LevelState, n)
		copy(levels, s.Levels)
		s.Levels = levels
	}

	// Hub and first level are always open.
	for i := 0; i < n && i < 2; i++ {
		s.Levels[i].Unlocked = true
	}

	last := n - 1
	for i := 0; i < n; i++ {
		if !s.Levels[i].Completed {
			continue
		}
		next := min(i+1, last)
		if !s.Levels[next].Unlocked {
			s.Levels[next].Unlocked = true
			fixes = append(fixes, fmt.Sprintf("unlocked level %d after completed level %d", next, i))
		}
	}

	for i := range s.Levels {
		if s.Levels[i].CollectedCoins < 0 {
			s.Levels[i].CollectedCoins = 0
			fixes = append(fixes, fmt.Sprintf("negative coin count on level %d", i))
		}
		if s.Levels[i].CollectedChests < 0 {
			s.Levels[i].CollectedChests = 0
			fixes = append(fixes, fmt.Sprintf("negative chest count on level %d", i))
		}
	}

	if s.CurrentLevel < 0 || s.CurrentLevel > last {
		fixes = append(fixes, fmt.Sprintf("current level %d out of range", s.CurrentLevel))
		s.CurrentLevel = 0
	}

	return fixes
}
