package systems

import (
	"image/color"
	"log"
	"strings"

	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// UpdateDebug toggles the debug overlay with F1.
func (s *Services) UpdateDebug(ecs *ecs.ECS) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return
	}
	s.showDebug = !s.showDebug
	if m, ok := s.Progress.Get(); ok && s.showDebug {
		log.Printf("[Progress] Debug dump\n%s", m.DebugDump())
	}
}

// DrawDebug outlines every collider and, while the overlay is on, prints the
// progress dump over the level.
func (s *Services) DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !s.showDebug && !cfg.Debug.DrawColliders {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvBoss) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvGate) {
				c = color.RGBA{255, 255, 0, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if !s.showDebug {
		return
	}
	m, ok := s.Progress.Get()
	if !ok {
		return
	}
	face := basicfont.Face7x13
	lines := strings.Split(strings.TrimSpace(m.DebugDump()), "\n")
	y := screen.Bounds().Dy() - len(lines)*cfg.Objectives.LineHeight
	vector.FillRect(screen, 0, float32(y-cfg.Objectives.LineHeight), float32(screen.Bounds().Dx()),
		float32((len(lines)+1)*cfg.Objectives.LineHeight), cfg.BlackOverlay, false)
	for _, line := range lines {
		text.Draw(screen, line, face, 4, y, cfg.White) //nolint:staticcheck
		y += cfg.Objectives.LineHeight
	}
}
