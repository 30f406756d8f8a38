package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/store"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const bossTag = "BossRegistrar"

var errProgressUnavailable = errors.New("progress manager not available")

// DamageBoss removes amount health from boss. When health runs out the boss
// starts dying and BossDied is published once.
func DamageBoss(ecs *ecs.ECS, boss *donburi.Entry, amount int) {
	if !boss.Valid() || boss.HasComponent(components.Death) {
		return
	}
	health := components.Health.Get(boss)
	health.Current -= amount
	if health.Current > 0 {
		return
	}
	health.Current = 0

	boss.AddComponent(components.Death)
	components.Death.SetValue(boss, components.DeathData{Timer: cfg.Boss.DeathLinger})

	data := components.Boss.Get(boss)
	log.Printf("[%s] %s died on level %d", bossTag, data.Type, data.Level)
	BossDiedEvent.Publish(ecs.World, BossDied{Entry: boss, BossType: data.Type.String()})
}

// OnBossDied reports the defeat. Subscribe it to BossDiedEvent.
func (s *Services) OnBossDied(w donburi.World, event BossDied) {
	if event.Entry == nil || !event.Entry.Valid() {
		log.Printf("[%s] %s died but its entity is gone", bossTag, event.BossType)
		return
	}
	s.registerBossDefeat(w, event.Entry)
}

// UpdateBossRegistrars catches dying bosses whose death signal was missed and
// runs pending retries. A retry lives as long as its boss entity; a marker in
// the store covers the rest.
func (s *Services) UpdateBossRegistrars(ecs *ecs.ECS) {
	components.BossRegistrar.Each(ecs.World, func(entry *donburi.Entry) {
		reg := components.BossRegistrar.Get(entry)
		if reg.RetryTimer > 0 {
			reg.RetryTimer--
			if reg.RetryTimer == 0 {
				s.retryBossDefeat(ecs.World, entry)
			}
			return
		}
		if entry.HasComponent(components.Death) {
			s.registerBossDefeat(ecs.World, entry)
		}
	})
}

func (s *Services) registerBossDefeat(w donburi.World, entry *donburi.Entry) {
	reg := components.BossRegistrar.Get(entry)
	if reg.Registered {
		return
	}
	reg.Registered = true

	boss := components.Boss.Get(entry)
	m, ok := s.Progress.Get()
	if !ok {
		s.writePendingDefeat(boss)
		reg.RetryTimer = cfg.Boss.RetryDelay
		return
	}
	s.reportDefeat(w, m, boss)
}

func (s *Services) retryBossDefeat(w donburi.World, entry *donburi.Entry) {
	boss := components.Boss.Get(entry)
	key := store.PendingDefeatKey(boss.Type.String())
	if s.Store != nil && !s.Store.HasKey(key) {
		log.Printf("[%s] Pending %s defeat already reconciled", bossTag, boss.Type)
		// Init applied the marker behind the tracker's back.
		if _, ok := s.Progress.Get(); ok {
			ObjectivesChangedEvent.Publish(w, ObjectivesChanged{Level: boss.Level})
		}
		return
	}

	m, ok := s.Progress.Get()
	if !ok {
		s.report(bossTag, progress.SeverityFatal, "RegisterBossDefeat",
			fmt.Errorf("%w after retry: %s defeat on level %d left in %s", errProgressUnavailable, boss.Type, boss.Level, key))
		return
	}
	if s.reportDefeat(w, m, boss) && s.Store != nil {
		s.Store.DeleteKey(key)
		if err := s.Store.Flush(); err != nil {
			s.report(bossTag, progress.SeverityWarning, "RegisterBossDefeat", fmt.Errorf("clear %s: %w", key, err))
		}
	}
}

func (s *Services) reportDefeat(w donburi.World, m *progress.Manager, boss *components.BossData) bool {
	if err := m.RegisterBossDefeat(boss.Type, boss.Level); err != nil {
		return false
	}
	current := m.CurrentLevel()
	log.Printf("[%s] %s defeat registered on level %d; level %d objectives satisfied: %t",
		bossTag, boss.Type, boss.Level, current, m.HasSatisfiedObjectives(current))
	ObjectivesChangedEvent.Publish(w, ObjectivesChanged{Level: boss.Level})
	return true
}

// writePendingDefeat leaves a marker the manager applies on its next Init.
func (s *Services) writePendingDefeat(boss *components.BossData) {
	key := store.PendingDefeatKey(boss.Type.String())
	if s.Store == nil {
		s.report(bossTag, progress.SeverityError, "RegisterBossDefeat",
			fmt.Errorf("%w and no store for %s", errProgressUnavailable, key))
		return
	}
	s.Store.SetInt(key, boss.Level)
	if err := s.Store.Flush(); err != nil {
		s.report(bossTag, progress.SeverityError, "RegisterBossDefeat", fmt.Errorf("flush %s: %w", key, err))
		return
	}
	log.Printf("[%s] Progress not ready, wrote %s=%d and scheduled a retry", bossTag, key, boss.Level)
}
