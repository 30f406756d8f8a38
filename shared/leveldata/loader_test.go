package leveldata

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="9">
 <objectgroup id="1" name="Solid">
  <object id="1" x="0" y="144" width="320" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="24" y="120"><point/></object>
  <object id="3" x="200" y="120"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="Goal">
  <object id="4" x="290" y="96" width="24" height="48"/>
 </objectgroup>
 <objectgroup id="4" name="Coin">
  <object id="5" x="80" y="130"><point/></object>
  <object id="6" x="60" y="130"><point/></object>
 </objectgroup>
 <objectgroup id="5" name="Boss">
  <object id="7" x="150" y="112" width="24" height="32">
   <properties>
    <property name="bossType" value="Zombie"/>
    <property name="health" type="int" value="4"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func writeTMX(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "level.tmx"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeTMX(t, sampleTMX)

	m, err := Load(os.DirFS(dir), "level.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Width != 320 || m.Height != 160 {
		t.Errorf("size = %dx%d, want 320x160", m.Width, m.Height)
	}
	if len(m.Solids) != 1 || m.Solids[0].W != 320 {
		t.Errorf("solids = %+v", m.Solids)
	}
	if !m.HasSpawn || m.SpawnX != 24 || m.SpawnY != 120 {
		t.Errorf("spawn = (%v,%v) %t, want first spawn", m.SpawnX, m.SpawnY, m.HasSpawn)
	}
	if len(m.Goals) != 1 || m.Goals[0].H != 48 {
		t.Errorf("goals = %+v", m.Goals)
	}
	if len(m.Coins) != 2 || m.Coins[0].X != 60 {
		t.Errorf("coins = %+v, want sorted by x", m.Coins)
	}
	if len(m.Bosses) != 1 || m.Bosses[0].Type != "Zombie" || m.Bosses[0].Health != 4 {
		t.Errorf("bosses = %+v", m.Bosses)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(os.DirFS(t.TempDir()), "nope.tmx"); err == nil {
			t.Error("expected an error for a missing map")
		}
	})

	t.Run("boss without type", func(t *testing.T) {
		dir := writeTMX(t, `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Boss">
  <object id="1" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>
`)
		if _, err := Load(os.DirFS(dir), "level.tmx"); err == nil {
			t.Error("expected an error for a boss without bossType")
		}
	})
}
