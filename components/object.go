package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's collision shape. Object.Data points back at
// the owning *donburi.Entry so trigger checks can find the entity.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the per-level collision space singleton.
var Space = donburi.NewComponentType[resolv.Space]()
