package systems

import (
	"github.com/automoto/deadknight/components"
	cfg "github.com/automoto/deadknight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// ShowNotice displays the mission-incomplete box with lines under the
// configured title. The notice hides itself after cfg.Notice.Duration frames
// and is dropped early if progress epoch moves past epoch.
func ShowNotice(ecs *ecs.ECS, lines []string, epoch uint64) {
	notice := getOrCreateNotice(ecs)
	notice.Lines = append([]string{cfg.Notice.Title}, lines...)
	notice.Timer = cfg.Notice.Duration
	notice.Epoch = epoch
}

// UpdateNotice counts the notice down.
func (s *Services) UpdateNotice(ecs *ecs.ECS) {
	notice := getOrCreateNotice(ecs)
	if notice.Timer == 0 {
		return
	}
	if m, ok := s.Progress.Get(); ok && m.Epoch() != notice.Epoch {
		hideNotice(notice)
		return
	}
	notice.Timer--
	if notice.Timer == 0 {
		hideNotice(notice)
	}
}

func hideNotice(notice *components.NoticeData) {
	notice.Timer = 0
	notice.Lines = nil
}

// DrawNotice renders the notice at the top center of the screen.
func DrawNotice(ecs *ecs.ECS, screen *ebiten.Image) {
	notice := getOrCreateNotice(ecs)
	if notice.Timer == 0 || len(notice.Lines) == 0 {
		return
	}

	face := basicfont.Face7x13
	widest := 0
	for _, line := range notice.Lines {
		if w := text.BoundString(face, line).Dx(); w > widest { //nolint:staticcheck
			widest = w
		}
	}

	padding := float32(cfg.Notice.BoxPadding)
	lineHeight := cfg.Notice.LineHeight
	boxWidth := float32(widest) + padding*2
	boxHeight := float32(lineHeight*len(notice.Lines)) + padding*2
	boxX := (float32(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := float32(cfg.Notice.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Notice.BoxColor, false)

	x := int(boxX + padding)
	y := int(boxY+padding) + face.Metrics().Ascent.Ceil()
	for _, line := range notice.Lines {
		text.Draw(screen, line, face, x, y, cfg.Notice.TextColor) //nolint:staticcheck
		y += lineHeight
	}
}

func getOrCreateNotice(ecs *ecs.ECS) *components.NoticeData {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Notice))
	}
	return components.Notice.Get(entry)
}
