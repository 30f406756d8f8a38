package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// KnockbackData moves an entity without a physics body. The tween yields the
// offset from OriginX.
type KnockbackData struct {
	Tween   *gween.Tween
	OriginX float64
}

var Knockback = donburi.NewComponentType[KnockbackData]()
