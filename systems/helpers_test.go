package systems

import (
	"errors"
	"fmt"
	"testing"

	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/store"
	"github.com/automoto/deadknight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errLoad = errors.New("scene failed to build")

func testLevels(t *testing.T) progress.LevelTable {
	t.Helper()
	boss := func(b progress.BossType) progress.Level {
		l := progress.Level{}
		l.Requires[b] = true
		return l
	}
	map4 := boss(progress.DeadKnight)
	map4.ID, map4.RequiredCoins = "Map4", 80
	map5 := boss(progress.Ashe)
	map5.ID, map5.RequiredCoins = "Map5", 100
	map6 := progress.Level{ID: "Map6"}
	for _, b := range progress.AllBossTypes {
		map6.Requires[b] = true
	}

	table, err := progress.NewLevelTable([]progress.Level{
		{ID: "HomeScene"},
		{ID: "Map1", RequiredCoins: 30, RequiredChests: 1},
		{ID: "Map2", RequiredCoins: 45, RequiredChests: 1},
		{ID: "Map3", RequiredCoins: 60, RequiredChests: 1},
		map4,
		map5,
		map6,
	})
	if err != nil {
		t.Fatalf("NewLevelTable: %v", err)
	}
	return table
}

type fakeLoader struct {
	failIDs   map[string]bool
	failIndex bool
	calls     []string
}

func (f *fakeLoader) LoadLevel(id string) error {
	f.calls = append(f.calls, "id:"+id)
	if f.failIDs[id] {
		return errLoad
	}
	return nil
}

func (f *fakeLoader) LoadLevelIndex(index int) error {
	f.calls = append(f.calls, fmt.Sprintf("index:%d", index))
	if f.failIndex {
		return errLoad
	}
	return nil
}

type fixture struct {
	ecs    *ecs.ECS
	svc    *Services
	store  *store.MemoryStore
	loader *fakeLoader
	diags  []progress.Diagnostic
}

// newFixture builds a world with a collision space and services whose
// progress handle is still empty.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		store:  store.NewMemoryStore(),
		loader: &fakeLoader{},
	}
	f.svc = &Services{
		Progress: progress.NewHandle(),
		Loader:   f.loader,
		Store:    f.store,
		OnDiagnostic: func(d progress.Diagnostic) {
			f.diags = append(f.diags, d)
		},
	}
	factory.CreateSpace(f.ecs, 640, 360, 16, 16)
	BossDiedEvent.Subscribe(f.ecs.World, f.svc.OnBossDied)
	ObjectivesChangedEvent.Subscribe(f.ecs.World, OnObjectivesChanged)
	return f
}

// newManager initializes a manager over the fixture's store without
// publishing it.
func (f *fixture) newManager(t *testing.T) *progress.Manager {
	t.Helper()
	m := progress.NewManager(f.store, testLevels(t), progress.Options{AutoSync: true})
	if err := m.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return m
}

// withManager initializes and publishes a manager.
func (f *fixture) withManager(t *testing.T) *progress.Manager {
	t.Helper()
	m := f.newManager(t)
	f.svc.Progress.Set(m)
	return m
}

func (f *fixture) countDiags(sev progress.Severity) int {
	n := 0
	for _, d := range f.diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

func collect(t *testing.T, m *progress.Manager, level, coins, chests int) {
	t.Helper()
	for i := 0; i < coins; i++ {
		if err := m.CollectCoin(level); err != nil {
			t.Fatalf("CollectCoin: %v", err)
		}
	}
	for i := 0; i < chests; i++ {
		if err := m.CollectChest(level); err != nil {
			t.Fatalf("CollectChest: %v", err)
		}
	}
}
