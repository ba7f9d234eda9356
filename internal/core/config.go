package core

// RuntimeConfig carries host settings that do not belong to the game rules.
type RuntimeConfig struct {
	Cols int   // Terminal columns available to the playfield
	Rows int   // Terminal rows available to the playfield
	FPS  int   // Host frames per second
	Seed int64 // Fixed run seed; 0 means derive from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Cols: 60,
		Rows: 30,
		FPS:  60,
	}
}

// Normalize clamps the config into usable ranges.
func (c *RuntimeConfig) Normalize() {
	c.FPS = Clamp(c.FPS, 10, 240)
	if c.Cols < 20 {
		c.Cols = 20
	}
	if c.Rows < 10 {
		c.Rows = 10
	}
}
