package constant

import "time"

// Terminal Geometry (VT102 default screen)
const (
	Columns = 80
	Rows    = 24
)

// Frame Timing
const (
	// FramePeriod is the fixed tick interval (~15 FPS, comfortable for a
	// 115200 baud link carrying a full frame of escape sequences)
	FramePeriod = 66 * time.Millisecond
)

// Serial Link
const (
	BaudRate = 115200

	// SerialReadyTimeout bounds the initial wait for the remote terminal to
	// raise DSR. On expiry the stream starts anyway; an unready terminal
	// simply drops the bytes.
	SerialReadyTimeout = 3 * time.Second

	// SerialReadyPoll is the DSR polling interval during the ready wait
	SerialReadyPoll = 50 * time.Millisecond
)

// Drop Population Limits
const (
	MaxDrops     = 40
	MaxFastDrops = 6
)

// Trail length bounds, in rows
const (
	TrailMin = 4
	TrailMax = 16
)

// Fall cadence bounds, in ticks per one-row advance (higher is slower)
const (
	SpeedMin = 1
	SpeedMax = 4
)

// Spawn probabilities, expressed as N out of 256 per tick
const (
	DropSpawnChance     = 48
	FastDropSpawnChance = 10
)

// BoostFrames is how long a drop head stays forced to full brightness
// after a fast drop lands on it
const BoostFrames = 8

// StartHour seeds the simulated clock when the host clock is not used
const StartHour = 20

// Glyphs is the character palette trail cells roll through
const Glyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&*+-<>=?"
