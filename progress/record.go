package progress

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/deadknight/store"
)

// recordVersion is bumped whenever record gains a field that older saves
// need migrating for.
const recordVersion = 1

// record is the on-disk form of State, stored as JSON under
// store.KeyProgressRecord.
type record struct {
	Version      int           `json:"version"`
	SaveID       string        `json:"saveId,omitempty"`
	CurrentLevel int           `json:"currentLevel"`
	Levels       []levelRecord `json:"levels"`
}

type levelRecord struct {
	Unlocked  bool     `json:"unlocked"`
	Completed bool     `json:"completed"`
	Coins     int      `json:"coins"`
	Chests    int      `json:"chests"`
	Defeated  []string `json:"defeated,omitempty"`
}

func encodeRecord(s State) ([]byte, error) {
	r := record{
		Version:      recordVersion,
		SaveID:       s.SaveID,
		CurrentLevel: s.CurrentLevel,
		Levels:       make([]levelRecord, len(s.Levels)),
	}
	for i, ls := range s.Levels {
		lr := levelRecord{
			Unlocked:  ls.Unlocked,
			Completed: ls.Completed,
			Coins:     ls.CollectedCoins,
			Chests:    ls.CollectedChests,
		}
		for _, b := range AllBossTypes {
			if ls.Defeated[b] {
				lr.Defeated = append(lr.Defeated, b.String())
			}
		}
		r.Levels[i] = lr
	}
	return json.Marshal(r)
}

// decodeRecord parses data into a State. Problems that do not prevent loading
// (newer version, unknown boss names) are returned as warnings.
func decodeRecord(data []byte) (State, []error, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return State{}, nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}

	var warnings []error
	if r.Version > recordVersion {
		warnings = append(warnings, fmt.Errorf("record version %d is newer than %d, loading known fields", r.Version, recordVersion))
	}

	s := State{
		CurrentLevel: r.CurrentLevel,
		SaveID:       r.SaveID,
		Levels:       make([]LevelState, len(r.Levels)),
	}
	for i, lr := range r.Levels {
		ls := LevelState{
			Unlocked:        lr.Unlocked,
			Completed:       lr.Completed,
			CollectedCoins:  lr.Coins,
			CollectedChests: lr.Chests,
		}
		for _, name := range lr.Defeated {
			b, err := ParseBossType(name)
			if err != nil {
				warnings = append(warnings, fmt.Errorf("level %d: %w", i, err))
				continue
			}
			ls.Defeated[b] = true
		}
		s.Levels[i] = ls
	}
	return s, warnings, nil
}

// hasLegacyKeys reports whether st holds progress written with one key per
// field.
func hasLegacyKeys(st store.Store) bool {
	return st.HasKey(store.KeyCurrentMap) || st.HasKey(store.MapUnlockedKey(1))
}

func loadLegacy(st store.Store, n int) State {
	s := State{
		CurrentLevel: st.GetInt(store.KeyCurrentMap, 0),
		Levels:       make([]LevelState, n),
	}
	for i := range s.Levels {
		ls := LevelState{
			Unlocked:        store.GetBool(st, store.MapUnlockedKey(i), i <= 1),
			Completed:       store.GetBool(st, store.MapCompletedKey(i), false),
			CollectedCoins:  st.GetInt(store.CollectedCoinsKey(i), 0),
			CollectedChests: st.GetInt(store.CollectedChestsKey(i), 0),
		}
		for _, b := range AllBossTypes {
			ls.Defeated[b] = store.GetBool(st, store.DefeatedKey(b.String(), i), false)
		}
		s.Levels[i] = ls
	}
	return s
}

func writeLegacy(st store.Store, s State) {
	st.SetInt(store.KeyCurrentMap, s.CurrentLevel)
	for i, ls := range s.Levels {
		store.SetBool(st, store.MapUnlockedKey(i), ls.Unlocked)
		store.SetBool(st, store.MapCompletedKey(i), ls.Completed)
		st.SetInt(store.CollectedCoinsKey(i), ls.CollectedCoins)
		st.SetInt(store.CollectedChestsKey(i), ls.CollectedChests)
		for _, b := range AllBossTypes {
			store.SetBool(st, store.DefeatedKey(b.String(), i), ls.Defeated[b])
		}
	}
}
