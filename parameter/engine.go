package parameter

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the simulation and rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the host event channel
	EventQueueSize = 100
)
