package systems

import (
	"reflect"
	"testing"

	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/store"
	"github.com/automoto/deadknight/systems/factory"
	"github.com/yohamta/donburi"
)

func (f *fixture) killBoss(b progress.BossType, level int) *donburi.Entry {
	boss := factory.CreateBoss(f.ecs, b, level, 300, 200, 0, 0, 1)
	DamageBoss(f.ecs, boss, 1)
	ProcessEvents(f.ecs)
	return boss
}

func runRegistrars(f *fixture, frames int) {
	for i := 0; i < frames; i++ {
		f.svc.UpdateBossRegistrars(f.ecs)
	}
}

func TestBossDefeatRegistersOnce(t *testing.T) {
	f := newFixture(t)
	m := f.withManager(t)
	changed := 0
	ObjectivesChangedEvent.Subscribe(f.ecs.World, func(donburi.World, ObjectivesChanged) { changed++ })

	boss := f.killBoss(progress.Ashe, 5)

	if !m.IsBossDefeated(progress.Ashe, 5) {
		t.Fatal("Ashe defeat not registered")
	}
	if !boss.HasComponent(components.Death) {
		t.Error("dead boss should carry a death timer")
	}

	// Repeated death signals are ignored.
	BossDiedEvent.Publish(f.ecs.World, BossDied{Entry: boss, BossType: "Ashe"})
	runRegistrars(f, 3)
	DamageBoss(f.ecs, boss, 5)
	ProcessEvents(f.ecs)

	if changed != 1 {
		t.Errorf("ObjectivesChanged published %d times, want 1", changed)
	}
	if f.store.HasKey(store.PendingDefeatKey("Ashe")) {
		t.Error("no fallback marker expected when progress is reachable")
	}
}

func TestBossDamageBelowZeroHealth(t *testing.T) {
	f := newFixture(t)
	f.withManager(t)
	boss := factory.CreateBoss(f.ecs, progress.Zombie, 6, 300, 200, 0, 0, 3)

	DamageBoss(f.ecs, boss, 2)
	if boss.HasComponent(components.Death) {
		t.Fatal("boss died with health left")
	}
	DamageBoss(f.ecs, boss, 2)
	if !boss.HasComponent(components.Death) {
		t.Fatal("boss should die at zero health")
	}
	if got := components.Health.Get(boss).Current; got != 0 {
		t.Errorf("health = %d, want 0", got)
	}
}

func TestBossRegistrarCatchesMissedSignal(t *testing.T) {
	f := newFixture(t)
	m := f.withManager(t)
	boss := factory.CreateBoss(f.ecs, progress.DeadKnight, 4, 300, 200, 0, 0, 1)
	boss.AddComponent(components.Death)
	components.Death.SetValue(boss, components.DeathData{Timer: cfg.Boss.DeathLinger})

	runRegistrars(f, 1)

	if !m.IsBossDefeated(progress.DeadKnight, 4) {
		t.Error("registrar should pick up a dying boss without an event")
	}
}

func TestBossDefeatBeforeProgressReady(t *testing.T) {
	f := newFixture(t)
	key := store.PendingDefeatKey("Zombie")

	boss := f.killBoss(progress.Zombie, 6)

	if got := f.store.GetInt(key, -2); got != 6 {
		t.Fatalf("%s = %d, want 6", key, got)
	}
	if got := components.BossRegistrar.Get(boss).RetryTimer; got != cfg.Boss.RetryDelay {
		t.Errorf("RetryTimer = %d, want %d", got, cfg.Boss.RetryDelay)
	}

	// The manager comes up before the retry and reconciles the marker.
	m := f.withManager(t)
	if !m.IsBossDefeated(progress.Zombie, 6) {
		t.Error("Init should apply the pending defeat")
	}
	if f.store.HasKey(key) {
		t.Error("Init should clear the marker")
	}

	runRegistrars(f, cfg.Boss.RetryDelay)
	if !m.IsBossDefeated(progress.Zombie, 6) {
		t.Error("defeat lost after retry")
	}
	if n := f.countDiags(progress.SeverityFatal); n != 0 {
		t.Errorf("fatal diagnostics = %d, want 0", n)
	}
}

func TestBossRetryRegistersWhenPublishedLate(t *testing.T) {
	f := newFixture(t)
	m := f.newManager(t)
	key := store.PendingDefeatKey("DeadKnight")

	f.killBoss(progress.DeadKnight, 4)
	f.svc.Progress.Set(m)
	runRegistrars(f, cfg.Boss.RetryDelay)

	if !m.IsBossDefeated(progress.DeadKnight, 4) {
		t.Fatal("retry should register the defeat")
	}
	if f.store.HasKey(key) {
		t.Error("a successful retry should clear its marker")
	}

	reloaded := f.newManager(t)
	if !reloaded.IsBossDefeated(progress.DeadKnight, 4) {
		t.Error("defeat should survive a reload")
	}
}

func TestBossRetryAfterInitRefreshesObjectives(t *testing.T) {
	f := newFixture(t)
	m := f.withManager(t)
	_ = m.SetCurrentLevel(6)
	f.svc.UpdateObjectives(f.ecs)

	// The boss dies while the manager is being replaced; the new one
	// applies the marker in Init before the retry runs.
	f.svc.Progress.Clear()
	f.killBoss(progress.Zombie, 6)
	reloaded := f.newManager(t)
	f.svc.Progress.Set(reloaded)
	if !reloaded.IsBossDefeated(progress.Zombie, 6) {
		t.Fatal("Init should apply the pending defeat")
	}

	runRegistrars(f, cfg.Boss.RetryDelay)
	ProcessEvents(f.ecs)
	f.svc.UpdateObjectives(f.ecs)

	d := getOrCreateObjectiveDisplay(f.ecs.World)
	if want := []string{"Map6", "1/3 Bosses"}; !reflect.DeepEqual(d.Lines, want) {
		t.Errorf("lines = %q, want %q", d.Lines, want)
	}
}

func TestBossRetryFailsFatally(t *testing.T) {
	f := newFixture(t)

	f.killBoss(progress.Ashe, 5)
	runRegistrars(f, cfg.Boss.RetryDelay-1)
	if n := f.countDiags(progress.SeverityFatal); n != 0 {
		t.Fatalf("fatal before the retry ran: %d", n)
	}
	runRegistrars(f, 1)

	if n := f.countDiags(progress.SeverityFatal); n != 1 {
		t.Errorf("fatal diagnostics = %d, want 1", n)
	}
	if !f.store.HasKey(store.PendingDefeatKey("Ashe")) {
		t.Error("marker should survive for the next Init")
	}

	runRegistrars(f, cfg.Boss.RetryDelay*2)
	if n := f.countDiags(progress.SeverityFatal); n != 1 {
		t.Errorf("retry ran again: %d fatal diagnostics", n)
	}
}

func TestBossRetryCancelledByReset(t *testing.T) {
	f := newFixture(t)
	m := f.newManager(t)

	f.killBoss(progress.Ashe, 5)
	f.svc.Progress.Set(m)
	if err := m.ResetAll(); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}
	runRegistrars(f, cfg.Boss.RetryDelay)

	if m.IsBossDefeated(progress.Ashe, 5) {
		t.Error("retry scheduled before a reset should be dropped")
	}
}

func TestDeadBossRemovedAfterLinger(t *testing.T) {
	f := newFixture(t)
	f.withManager(t)
	boss := f.killBoss(progress.Ashe, 5)

	for i := 0; i < cfg.Boss.DeathLinger-1; i++ {
		UpdateDeaths(f.ecs)
	}
	if !boss.Valid() {
		t.Fatal("boss removed before its death timer ran out")
	}
	UpdateDeaths(f.ecs)
	if boss.Valid() {
		t.Error("boss should be removed")
	}
}
