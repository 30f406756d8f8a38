package main

import (
	"image"
	"log"

	"github.com/automoto/deadknight/assets"
	"github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/scenes"
	"github.com/automoto/deadknight/store"
	"github.com/automoto/deadknight/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	if g.scene != nil {
		g.scene.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene != nil {
		g.scene.Draw(screen)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	st, err := store.Open(store.Config{
		Backend: config.Storage.Backend,
		AppName: config.Storage.AppName,
		Path:    config.Storage.Path,
	})
	if err != nil {
		log.Printf("Warning: Could not open %s store, progress will not be saved: %v", config.Storage.Backend, err)
		st = store.NewMemoryStore()
	}

	g := &Game{}
	svc := &systems.Services{
		Progress: progress.NewHandle(),
		Store:    st,
	}
	director, err := scenes.NewDirector(g, config.Levels, assets.Levels(), svc)
	if err != nil {
		log.Fatalf("Invalid level table: %v", err)
	}

	manager := progress.NewManager(st, director.Levels(), progress.Options{
		ForceResetOnStart: config.Debug.ForceResetOnStart,
		UnlockAll:         config.Debug.UnlockAllLevels,
		AutoSync:          config.Debug.AutoSyncLevel,
		MirrorLegacyKeys:  config.Storage.MirrorLegacyKeys,
	})
	if err := manager.Init(); err != nil {
		log.Printf("Warning: Could not save initial progress: %v", err)
	}
	svc.Progress.Set(manager)
	defer func() {
		if err := manager.Close(); err != nil {
			log.Printf("Warning: Could not close progress store: %v", err)
		}
	}()

	if err := director.LoadStart(); err != nil {
		log.Fatalf("Could not load any level: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Dead Knight")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
