package core

import "time"

// RuntimeConfig contains the host-side settings a session is started with.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between game ticks
	Seed         int64         // RNG seed for food placement; 0 means time based
}
