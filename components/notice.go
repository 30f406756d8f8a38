package components

import "github.com/yohamta/donburi"

// NoticeData is a singleton holding the in-world message shown when a gate
// rejects the player.
type NoticeData struct {
	Lines []string
	Timer int // Frames remaining; 0 hides the notice
	Epoch uint64
}

var Notice = donburi.NewComponentType[NoticeData]()
