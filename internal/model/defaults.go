package model

// Shared defaults used by the CLI and the game packages.
const (
	DefaultCountdown = 5 // seconds per question
	DefaultSkin      = "default"
)

// CountdownPresets are the durations offered on the start menu.
var CountdownPresets = []int{3, 5, 10, 15, 30, 60}
