package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/shared/leveldata"
	"github.com/automoto/deadknight/store"
	"github.com/automoto/deadknight/systems"
	"github.com/automoto/deadknight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a font.Face
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const completedBanner = "All levels complete! Press R to start over"

// LevelScene runs one level. Entities are built from the parsed map on the
// first update.
type LevelScene struct {
	ecs      *ecs.ECS
	director *Director
	index    int
	id       string
	levelMap *leveldata.Map
	once     sync.Once
	torn     bool
}

func newLevelScene(d *Director, index int, id string, m *leveldata.Map) *LevelScene {
	return &LevelScene{director: d, index: index, id: id, levelMap: m}
}

func (ls *LevelScene) ID() string { return ls.id }

func (ls *LevelScene) Index() int { return ls.index }

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	if ls.torn {
		return
	}
	ls.ecs.Update()

	if ls.index == 0 && inpututil.IsKeyJustPressed(ebiten.KeyR) && ls.gameCompleted() {
		if err := ls.director.RestartGame(); err != nil {
			log.Printf("[Director] %v", err)
		}
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)

	if ls.index == 0 && ls.gameCompleted() {
		face := basicfont.Face7x13
		x := (screen.Bounds().Dx() - text.BoundString(face, completedBanner).Dx()) / 2 //nolint:staticcheck
		text.Draw(screen, completedBanner, face, x, screen.Bounds().Dy()/3, cfg.LightGreen) //nolint:staticcheck
	}
}

// Teardown stops the scene. Timers held by its entities stop with it.
func (ls *LevelScene) Teardown() {
	ls.torn = true
}

func (ls *LevelScene) gameCompleted() bool {
	m, ok := ls.director.services.Progress.Get()
	return ok && m.IsGameCompleted()
}

func (ls *LevelScene) configure() {
	svc := ls.director.services
	ecs := ecs.NewECS(donburi.NewWorld())

	systems.BossDiedEvent.Subscribe(ecs.World, svc.OnBossDied)
	systems.ObjectivesChangedEvent.Subscribe(ecs.World, systems.OnObjectivesChanged)

	// Progress ticks first so per-frame flags are fresh for every system.
	ecs.AddSystem(svc.UpdateProgress)
	ecs.AddSystem(svc.UpdateDebug)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateKnockback)
	ecs.AddSystem(svc.UpdateCollectibles)
	ecs.AddSystem(svc.UpdateBossRegistrars)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(svc.UpdateNotice)
	ecs.AddSystem(systems.ProcessEvents)
	ecs.AddSystem(svc.UpdateObjectives)
	// Gates run last: a transition replaces this scene.
	ecs.AddSystem(svc.UpdateGates)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawBossHealth)
	ecs.AddRenderer(cfg.Default, systems.DrawObjectives)
	ecs.AddRenderer(cfg.Default, systems.DrawNotice)
	ecs.AddRenderer(cfg.Default, svc.DrawDebug)

	ls.ecs = ecs
	ls.spawnEntities()
	systems.RefreshObjectives(ls.ecs)
}

func (ls *LevelScene) spawnEntities() {
	m := ls.levelMap
	factory.CreateLevel(ls.ecs, ls.index, ls.id, m)
	factory.CreateSpace(ls.ecs, m.Width, m.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)

	for _, r := range m.Solids {
		factory.CreateWall(ls.ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range m.Goals {
		factory.CreateGate(ls.ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range m.Coins {
		factory.CreateCollectible(ls.ecs, components.Coin, ls.index, r.X, r.Y, r.W, r.H)
	}
	for _, r := range m.Chests {
		factory.CreateCollectible(ls.ecs, components.Chest, ls.index, r.X, r.Y, r.W, r.H)
	}
	for _, b := range m.Bosses {
		bossType, err := progress.ParseBossType(b.Type)
		if err != nil {
			log.Printf("[Director] %s: skipping boss: %v", ls.id, err)
			continue
		}
		factory.CreateBoss(ls.ecs, bossType, ls.index, b.X, b.Y, b.W, b.H, b.Health)
	}

	x, y := ls.spawnPoint()
	factory.CreatePlayer(ls.ecs, x, y)
}

// spawnPoint returns the map's spawn, unless a one-shot override was saved.
func (ls *LevelScene) spawnPoint() (float64, float64) {
	m := ls.levelMap
	x, y := m.SpawnX, m.SpawnY
	if !m.HasSpawn {
		x, y = float64(m.Width)/2, 0
	}

	st := ls.director.services.Store
	if st == nil || !store.GetBool(st, store.KeyUseCustomSpawn, false) {
		return x, y
	}
	x = st.GetFloat(store.KeySpawnPositionX, x)
	y = st.GetFloat(store.KeySpawnPositionY, y)
	store.SetBool(st, store.KeyUseCustomSpawn, false)
	if err := st.Flush(); err != nil {
		log.Printf("[Director] Could not clear spawn override: %v", err)
	}
	log.Printf("[Director] Using saved spawn (%.0f, %.0f) in %s", x, y, ls.id)
	return x, y
}
