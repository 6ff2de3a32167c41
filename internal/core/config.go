package core

import "time"

// RuntimeConfig describes the session rather than the match: terminal size,
// frame rate and the seed for the simulation's random numbers.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Simulation frames per second
	Seed     int64 // 0 picks a seed from the clock
}

// DefaultConfig returns an 80x24 session at 60 fps.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Normalize fills unset fields: a clock seed and the default frame rate.
func (c RuntimeConfig) Normalize(now time.Time) RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	return c
}
