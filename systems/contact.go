package systems

import (
	"github.com/automoto/deadknight/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// touchedEntries returns the live entities tagged resolvTag that overlap the
// entry's collider. The space check is cell based, so candidates are
// confirmed against their bounds.
func touchedEntries(entry *donburi.Entry, resolvTag string) []*donburi.Entry {
	obj := components.Object.Get(entry)
	check := obj.Check(0, 0, resolvTag)
	if check == nil {
		return nil
	}

	var touched []*donburi.Entry
	for _, other := range check.ObjectsByTags(resolvTag) {
		if !overlaps(obj.Object, other) {
			continue
		}
		otherEntry, ok := other.Data.(*donburi.Entry)
		if !ok || otherEntry == nil || !otherEntry.Valid() {
			continue
		}
		touched = append(touched, otherEntry)
	}
	return touched
}

func overlaps(a, b *resolv.Object) bool {
	return overlapsAt(a, 0, 0, b)
}

// overlapsAt reports whether a, offset by (dx, dy), overlaps b. Touching
// edges do not count.
func overlapsAt(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && b.X < ax+a.W &&
		ay < b.Y+b.H && b.Y < ay+a.H
}

// removeEntity takes entry out of the collision space and the world.
func removeEntity(world donburi.World, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(world); ok {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
		}
	}
	world.Remove(entry.Entity())
}
