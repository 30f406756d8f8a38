// Package progress owns the player's map progression: which levels are
// unlocked and completed, objective counts, and boss defeats. Manager is the
// only writer and persists after every change.
package progress

import (
	"fmt"
	"log"

	"github.com/automoto/deadknight/store"
	"github.com/google/uuid"
)

const logTag = "Progress"

// Options tune Manager start-up and reporting.
type Options struct {
	// ForceResetOnStart discards saved progress during Init.
	ForceResetOnStart bool
	// UnlockAll opens every level during Init.
	UnlockAll bool
	// AutoSync lets OnLevelBecameActive update the current level.
	AutoSync bool
	// MirrorLegacyKeys also writes the one-key-per-field layout on persist.
	MirrorLegacyKeys bool
	// ReadOnly loads and repairs in memory only. Pending defeat markers are
	// left in the store and every mutation fails with ErrReadOnly.
	ReadOnly bool
	// OnDiagnostic receives every diagnostic after it is logged.
	OnDiagnostic func(Diagnostic)
}

type Manager struct {
	store  store.Store
	levels LevelTable
	opts   Options

	state State
	// epoch increases on ResetAll; continuations scheduled under an older
	// epoch must not resume.
	epoch        uint64
	syncDisabled bool
}

func NewManager(st store.Store, levels LevelTable, opts Options) *Manager {
	return &Manager{
		store:  st,
		levels: levels,
		opts:   opts,
		state:  DefaultState(levels.Len()),
	}
}

// Init loads saved progress, reconciles boss defeats recorded while the
// manager was unreachable, repairs invariants and persists the result.
func (m *Manager) Init() error {
	if m.opts.ReadOnly {
		m.state = m.load()
		m.repair("Init")
		log.Printf("[%s] Opened read-only: current level %d, %d levels", logTag, m.state.CurrentLevel, m.levels.Len())
		return nil
	}
	if m.opts.ForceResetOnStart {
		log.Printf("[%s] Force reset on start, discarding saved progress", logTag)
		m.state = m.freshState()
		m.clearPendingDefeats()
	} else {
		m.state = m.load()
	}

	m.repair("Init")
	m.reconcilePendingDefeats()

	if m.opts.UnlockAll {
		for i := range m.state.Levels {
			m.state.Levels[i].Unlocked = true
		}
	}
	if m.state.SaveID == "" {
		m.state.SaveID = uuid.NewString()
	}

	log.Printf("[%s] Initialized: current level %d, %d levels", logTag, m.state.CurrentLevel, m.levels.Len())
	return m.persist("Init")
}

// Close flushes and closes the underlying store.
func (m *Manager) Close() error {
	if err := m.store.Flush(); err != nil {
		return err
	}
	return m.store.Close()
}

func (m *Manager) freshState() State {
	s := DefaultState(m.levels.Len())
	s.SaveID = uuid.NewString()
	return s
}

func (m *Manager) load() State {
	if raw := m.store.GetString(store.KeyProgressRecord, ""); raw != "" {
		s, warnings, err := decodeRecord([]byte(raw))
		for _, w := range warnings {
			m.report(SeverityWarning, "load", w)
		}
		if err == nil {
			return s
		}
		m.report(SeverityError, "load", err)
	}
	if hasLegacyKeys(m.store) {
		log.Printf("[%s] Importing per-key progress from an older save", logTag)
		s := loadLegacy(m.store, m.levels.Len())
		s.SaveID = uuid.NewString()
		return s
	}
	return m.freshState()
}

// reconcilePendingDefeats applies and clears fallback markers written by boss
// registrars that could not reach the manager.
func (m *Manager) reconcilePendingDefeats() {
	for _, b := range AllBossTypes {
		key := store.PendingDefeatKey(b.String())
		if !m.store.HasKey(key) {
			continue
		}
		level := m.store.GetInt(key, -1)
		if level < 0 {
			level = m.state.CurrentLevel
		}
		if m.levels.Valid(level) {
			m.state.Levels[level].Defeated[b] = true
			log.Printf("[%s] Reconciled pending %s defeat on level %d", logTag, b, level)
		} else {
			m.report(SeverityWarning, "reconcile", fmt.Errorf("%w: pending %s defeat on level %d", ErrInvalidLevel, b, level))
		}
		m.store.DeleteKey(key)
	}
}

// clearPendingDefeats drops markers without applying them. A reset also
// forgets defeats that never reached the manager.
func (m *Manager) clearPendingDefeats() {
	for _, b := range AllBossTypes {
		m.store.DeleteKey(store.PendingDefeatKey(b.String()))
	}
}

func (m *Manager) repair(op string) {
	for _, fix := range m.state.repair(m.levels.Len()) {
		m.report(SeverityWarning, op, fmt.Errorf("repaired state: %s", fix))
	}
}

func (m *Manager) persist(op string) error {
	if m.opts.ReadOnly {
		err := fmt.Errorf("%s: %w", op, ErrReadOnly)
		m.report(SeverityError, op, err)
		return err
	}
	data, err := encodeRecord(m.state)
	if err != nil {
		err = fmt.Errorf("encode after %s: %w", op, err)
		m.report(SeverityError, op, err)
		return err
	}
	m.store.SetString(store.KeyProgressRecord, string(data))
	if m.opts.MirrorLegacyKeys {
		writeLegacy(m.store, m.state)
	}
	if err := m.store.Flush(); err != nil {
		err = fmt.Errorf("persist after %s: %w", op, err)
		m.report(SeverityError, op, err)
		return err
	}
	return nil
}

func (m *Manager) report(sev Severity, op string, err error) {
	Report(logTag, m.opts.OnDiagnostic, Diagnostic{Severity: sev, Op: op, Err: err})
}

func (m *Manager) checkLevel(op string, level int) error {
	if m.levels.Valid(level) {
		return nil
	}
	err := fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidLevel, level, m.levels.Last())
	m.report(SeverityWarning, op, err)
	return err
}

// Levels returns the identifier table the manager was built with.
func (m *Manager) Levels() LevelTable {
	return m.levels
}

// Epoch changes every time progress is reset.
func (m *Manager) Epoch() uint64 {
	return m.epoch
}

func (m *Manager) CurrentLevel() int {
	return m.state.CurrentLevel
}

func (m *Manager) SetCurrentLevel(level int) error {
	if err := m.checkLevel("SetCurrentLevel", level); err != nil {
		return err
	}
	m.state.CurrentLevel = level
	return m.persist("SetCurrentLevel")
}

func (m *Manager) IsUnlocked(level int) bool {
	if m.checkLevel("IsUnlocked", level) != nil {
		return false
	}
	return m.state.Levels[level].Unlocked
}

func (m *Manager) IsCompleted(level int) bool {
	if m.checkLevel("IsCompleted", level) != nil {
		return false
	}
	return m.state.Levels[level].Completed
}

func (m *Manager) UnlockLevel(level int) error {
	if err := m.checkLevel("UnlockLevel", level); err != nil {
		return err
	}
	if m.state.Levels[level].Unlocked {
		return nil
	}
	m.state.Levels[level].Unlocked = true
	return m.persist("UnlockLevel")
}

// UnlockAll opens every level. Used by level-select debugging.
func (m *Manager) UnlockAll() error {
	for i := range m.state.Levels {
		m.state.Levels[i].Unlocked = true
	}
	log.Printf("[%s] Unlocked all levels", logTag)
	return m.persist("UnlockAll")
}

// CompleteLevel marks level completed and unlocks the one after it.
func (m *Manager) CompleteLevel(level int) error {
	if err := m.checkLevel("CompleteLevel", level); err != nil {
		return err
	}
	ls := &m.state.Levels[level]
	next := min(level+1, m.levels.Last())
	if ls.Completed && m.state.Levels[next].Unlocked {
		return nil
	}
	ls.Completed = true
	m.state.Levels[next].Unlocked = true
	log.Printf("[%s] Completed level %d", logTag, level)
	return m.persist("CompleteLevel")
}

// CollectCoin adds one coin to level. Counts are not clamped to the
// requirement.
func (m *Manager) CollectCoin(level int) error {
	if err := m.checkLevel("CollectCoin", level); err != nil {
		return err
	}
	m.state.Levels[level].CollectedCoins++
	return m.persist("CollectCoin")
}

func (m *Manager) CollectChest(level int) error {
	if err := m.checkLevel("CollectChest", level); err != nil {
		return err
	}
	m.state.Levels[level].CollectedChests++
	return m.persist("CollectChest")
}

// RegisterBossDefeat records that boss b was beaten on level. Repeats are
// no-ops.
func (m *Manager) RegisterBossDefeat(b BossType, level int) error {
	if !b.valid() {
		err := fmt.Errorf("%w: %s", ErrUnknownBoss, b)
		m.report(SeverityWarning, "RegisterBossDefeat", err)
		return err
	}
	if err := m.checkLevel("RegisterBossDefeat", level); err != nil {
		return err
	}
	if m.state.Levels[level].Defeated[b] {
		return nil
	}
	m.state.Levels[level].Defeated[b] = true
	log.Printf("[%s] Registered %s defeat on level %d", logTag, b, level)
	return m.persist("RegisterBossDefeat")
}

// RegisterBossDefeatByName resolves name case-insensitively and registers
// the defeat. Unknown names change nothing.
func (m *Manager) RegisterBossDefeatByName(name string, level int) error {
	b, err := ParseBossType(name)
	if err != nil {
		m.report(SeverityWarning, "RegisterBossDefeat", err)
		return err
	}
	return m.RegisterBossDefeat(b, level)
}

func (m *Manager) IsBossDefeated(b BossType, level int) bool {
	if !b.valid() || m.checkLevel("IsBossDefeated", level) != nil {
		return false
	}
	return m.state.Levels[level].Defeated[b]
}

// HasSatisfiedObjectives evaluates the objective predicate for level. An
// invalid level is treated as satisfied so a bad index never traps the
// player.
func (m *Manager) HasSatisfiedObjectives(level int) bool {
	if m.checkLevel("HasSatisfiedObjectives", level) != nil {
		return true
	}
	def, _ := m.levels.Level(level)
	return def.Satisfied(m.state.Levels[level])
}

// UnmetObjectives lists what level still needs, for the gate's notice.
func (m *Manager) UnmetObjectives(level int) []string {
	if m.checkLevel("UnmetObjectives", level) != nil {
		return nil
	}
	def, _ := m.levels.Level(level)
	return def.Unmet(m.state.Levels[level])
}

// IsGameCompleted reports whether every playable level is completed.
func (m *Manager) IsGameCompleted() bool {
	for i := 1; i <= m.levels.Last(); i++ {
		if !m.state.Levels[i].Completed {
			return false
		}
	}
	return true
}

// ResetAll restores the default state and invalidates pending continuations.
func (m *Manager) ResetAll() error {
	if m.opts.ReadOnly {
		return m.persist("ResetAll")
	}
	m.state = m.freshState()
	m.epoch++
	m.syncDisabled = false
	m.clearPendingDefeats()
	log.Printf("[%s] Reset all progress", logTag)
	return m.persist("ResetAll")
}

// SuppressAutoSync ignores OnLevelBecameActive until the next Tick. Callers
// about to set the current level themselves use it so a late scene signal
// cannot undo their change.
func (m *Manager) SuppressAutoSync() {
	m.syncDisabled = true
}

// Tick runs once per frame before gameplay systems.
func (m *Manager) Tick() {
	m.syncDisabled = false
}

// OnLevelBecameActive updates the current level from the identifier of the
// scene that just loaded.
func (m *Manager) OnLevelBecameActive(id string) {
	if !m.opts.AutoSync {
		return
	}
	if m.syncDisabled {
		log.Printf("[%s] Auto-sync suppressed for %q", logTag, id)
		return
	}
	level, ok := m.levels.IndexOf(id)
	if !ok {
		m.report(SeverityWarning, "OnLevelBecameActive", fmt.Errorf("%w: %q", ErrUnknownLevelID, id))
		return
	}
	if level == m.state.CurrentLevel {
		return
	}
	log.Printf("[%s] Auto-sync current level %d -> %d (%s)", logTag, m.state.CurrentLevel, level, id)
	_ = m.SetCurrentLevel(level)
}

// State returns a copy of the current state.
func (m *Manager) State() State {
	return m.state.clone()
}
