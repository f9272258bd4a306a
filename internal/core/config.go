package core

// RuntimeConfig contains settings a frontend passes to the game at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal frontends)
	ScreenH  int   // Screen height in characters (terminal frontends)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed, 0 means seed from the clock
}
