package assets

import (
	"embed"
	"io/fs"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// Levels returns the filesystem the level table's map paths resolve in.
func Levels() fs.FS {
	return levelFS
}
