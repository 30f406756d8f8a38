package scenes

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/deadknight/assets"
	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/shared/leveldata"
	"github.com/automoto/deadknight/store"
	"github.com/automoto/deadknight/systems"
	"github.com/automoto/deadknight/tags"
	"github.com/yohamta/donburi"
)

type sceneRecorder struct {
	scenes []*LevelScene
}

func (r *sceneRecorder) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene.(*LevelScene))
}

func (r *sceneRecorder) last() *LevelScene {
	if len(r.scenes) == 0 {
		return nil
	}
	return r.scenes[len(r.scenes)-1]
}

type directorFixture struct {
	director *Director
	changer  *sceneRecorder
	manager  *progress.Manager
	store    *store.MemoryStore
}

func newDirectorFixture(t *testing.T) *directorFixture {
	t.Helper()
	f := &directorFixture{
		changer: &sceneRecorder{},
		store:   store.NewMemoryStore(),
	}
	svc := &systems.Services{Progress: progress.NewHandle(), Store: f.store}

	d, err := NewDirector(f.changer, cfg.Levels, assets.Levels(), svc)
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	f.director = d

	f.manager = progress.NewManager(f.store, d.Levels(), progress.Options{AutoSync: true})
	if err := f.manager.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	svc.Progress.Set(f.manager)
	return f
}

func TestDirectorLoadsByID(t *testing.T) {
	f := newDirectorFixture(t)

	if err := f.director.LoadLevel("map2"); err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	scene := f.changer.last()
	if scene == nil || scene.ID() != "Map2" || scene.Index() != 2 {
		t.Fatalf("scene = %+v, want Map2", scene)
	}
	if f.manager.CurrentLevel() != 2 {
		t.Errorf("CurrentLevel = %d, want 2 after activation", f.manager.CurrentLevel())
	}
	if f.director.Current() != scene {
		t.Error("Current should return the new scene")
	}
}

func TestDirectorUnknownLevel(t *testing.T) {
	f := newDirectorFixture(t)

	if err := f.director.LoadLevel("Map"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("LoadLevel(Map) = %v, want ErrUnknownLevel", err)
	}
	if err := f.director.LoadLevelIndex(7); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("LoadLevelIndex(7) = %v, want ErrUnknownLevel", err)
	}
	if len(f.changer.scenes) != 0 {
		t.Error("no scene should be swapped in")
	}
}

func TestDirectorBrokenMap(t *testing.T) {
	changer := &sceneRecorder{}
	rows := []cfg.LevelConfig{
		{ID: "Hub", Map: "hub.tmx"},
		{ID: "L1", Map: "missing.tmx"},
	}
	fsys := fstest.MapFS{"hub.tmx": {Data: []byte("not a map")}}
	d, err := NewDirector(changer, rows, fsys, &systems.Services{Progress: progress.NewHandle()})
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}

	if err := d.LoadLevel("L1"); err == nil {
		t.Error("expected an error for a missing map")
	}
	if err := d.LoadLevel("Hub"); err == nil {
		t.Error("expected an error for a malformed map")
	}
	if len(changer.scenes) != 0 {
		t.Error("failed loads must not swap scenes")
	}
}

func TestDirectorRespectsSuppressedSync(t *testing.T) {
	f := newDirectorFixture(t)
	_ = f.manager.SetCurrentLevel(3)
	f.manager.SuppressAutoSync()

	if err := f.director.LoadLevel("Map1"); err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if f.manager.CurrentLevel() != 3 {
		t.Errorf("CurrentLevel = %d, want 3", f.manager.CurrentLevel())
	}
}

func TestDirectorTearsDownPreviousScene(t *testing.T) {
	f := newDirectorFixture(t)
	_ = f.director.LoadLevel("Map1")
	first := f.changer.last()
	_ = f.director.LoadLevel("HomeScene")

	if !first.torn {
		t.Error("previous scene should be torn down")
	}
}

func TestLevelSceneBuildsEntities(t *testing.T) {
	f := newDirectorFixture(t)
	if err := f.director.LoadLevel("Map4"); err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	scene := f.changer.last()
	scene.once.Do(scene.configure)

	m, err := leveldata.Load(assets.Levels(), cfg.Levels[4].Map)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	world := scene.ecs.World
	coins, chests := 0, 0
	components.Collectible.Each(world, func(e *donburi.Entry) {
		c := components.Collectible.Get(e)
		if c.Level != 4 {
			t.Errorf("pickup counted for level %d", c.Level)
		}
		if c.Kind == components.Chest {
			chests++
		} else {
			coins++
		}
	})
	if coins != len(m.Coins) || chests != len(m.Chests) {
		t.Errorf("built %d coins %d chests, want %d/%d", coins, chests, len(m.Coins), len(m.Chests))
	}

	bosses := 0
	components.Boss.Each(world, func(e *donburi.Entry) { bosses++ })
	if bosses != len(m.Bosses) {
		t.Errorf("built %d bosses, want %d", bosses, len(m.Bosses))
	}
	gates := 0
	components.Gate.Each(world, func(e *donburi.Entry) { gates++ })
	if gates != len(m.Goals) {
		t.Errorf("built %d gates, want %d", gates, len(m.Goals))
	}

	player, ok := tags.Player.First(world)
	if !ok {
		t.Fatal("no player")
	}
	if obj := components.Object.Get(player); obj.X != m.SpawnX || obj.Y != m.SpawnY {
		t.Errorf("player at (%v, %v), want map spawn (%v, %v)", obj.X, obj.Y, m.SpawnX, m.SpawnY)
	}
}

func TestLevelSceneSpawnOverrideConsumedOnce(t *testing.T) {
	f := newDirectorFixture(t)
	store.SetBool(f.store, store.KeyUseCustomSpawn, true)
	f.store.SetFloat(store.KeySpawnPositionX, 200)
	f.store.SetFloat(store.KeySpawnPositionY, 100)

	playerAt := func() (float64, float64) {
		scene := f.changer.last()
		scene.once.Do(scene.configure)
		player, _ := tags.Player.First(scene.ecs.World)
		obj := components.Object.Get(player)
		return obj.X, obj.Y
	}

	_ = f.director.LoadLevel("Map1")
	if x, y := playerAt(); x != 200 || y != 100 {
		t.Errorf("player at (%v, %v), want (200, 100)", x, y)
	}
	if store.GetBool(f.store, store.KeyUseCustomSpawn, true) {
		t.Error("override should be cleared after use")
	}

	_ = f.director.LoadLevel("Map1")
	if x, _ := playerAt(); x == 200 {
		t.Error("override used twice")
	}
}

func TestRestartGame(t *testing.T) {
	f := newDirectorFixture(t)
	_ = f.manager.UnlockAll()
	_ = f.manager.CompleteLevel(5)
	_ = f.manager.SetCurrentLevel(5)

	if err := f.director.RestartGame(); err != nil {
		t.Fatalf("RestartGame: %v", err)
	}

	if f.manager.CurrentLevel() != 1 {
		t.Errorf("CurrentLevel = %d, want 1", f.manager.CurrentLevel())
	}
	if f.manager.IsCompleted(5) || f.manager.IsUnlocked(3) {
		t.Error("progress should be wiped")
	}
	if scene := f.changer.last(); scene == nil || scene.ID() != "Map1" {
		t.Errorf("scene = %+v, want Map1", scene)
	}
}

func TestLoadStartUsesSavedLevel(t *testing.T) {
	f := newDirectorFixture(t)
	_ = f.manager.UnlockLevel(3)
	_ = f.manager.SetCurrentLevel(3)

	if err := f.director.LoadStart(); err != nil {
		t.Fatalf("LoadStart: %v", err)
	}
	if scene := f.changer.last(); scene == nil || scene.ID() != "Map3" {
		t.Errorf("scene = %+v, want Map3", scene)
	}
}
