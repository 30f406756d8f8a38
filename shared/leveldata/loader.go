package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the map.
const (
	GroupSolid       = "Solid"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupGoal        = "Goal"
	GroupCoin        = "Coin"
	GroupChest       = "Chest"
	GroupBoss        = "Boss"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// levels or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &Map{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch og.Name {
			case GroupSolid:
				data.Solids = append(data.Solids, r)
			case GroupPlayerSpawn:
				// First spawn wins.
				if !data.HasSpawn {
					data.SpawnX, data.SpawnY = o.X, o.Y
					data.HasSpawn = true
				}
			case GroupGoal:
				data.Goals = append(data.Goals, r)
			case GroupCoin:
				data.Coins = append(data.Coins, r)
			case GroupChest:
				data.Chests = append(data.Chests, r)
			case GroupBoss:
				bossType := o.Properties.GetString("bossType")
				if bossType == "" {
					return nil, fmt.Errorf("%s: boss object %d has no bossType", tmxPath, o.ID)
				}
				data.Bosses = append(data.Bosses, BossSpawn{
					Rect:   r,
					Type:   bossType,
					Health: o.Properties.GetInt("health"),
				})
			}
		}
	}

	// Keep pickups in reading order so entity creation is deterministic.
	sortRects(data.Coins)
	sortRects(data.Chests)

	return data, nil
}

func sortRects(rs []Rect) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Y != rs[j].Y {
			return rs[i].Y < rs[j].Y
		}
		return rs[i].X < rs[j].X
	})
}
