package constants

import "time"

// Schedule milestones, in steps
const (
	// StepOmega is the first step displaying ω
	StepOmega = 1000

	// StepOmegaTimes2 is the first step displaying ω⋅2
	StepOmegaTimes2 = 2000

	// StepOmegaSquared is the first step displaying ω², after which the successor rule takes over
	StepOmegaSquared = 3000
)

// Timing
const (
	// TickInterval is the delay between two displayed values, π seconds rounded to the nanosecond
	TickInterval = 3141592654 * time.Nanosecond

	// EventBufferSize is the capacity of the display event channel
	EventBufferSize = 16
)

// Audio
const (
	ChimeSampleRate = 44100
	ChimeFrequency  = 528.0
	ChimeOvertone   = 1056.0
	ChimeDuration   = 900 * time.Millisecond
	ChimeAttack     = 10 * time.Millisecond
	ChimeRelease    = 800 * time.Millisecond
	ChimeBuffer     = 100 * time.Millisecond
)

// Environment overrides
const (
	EnvInterval = "THE_SEQUENCE_INTERVAL"
	EnvDebug    = "THE_SEQUENCE_DEBUG"
	EnvSound    = "THE_SEQUENCE_SOUND"
	EnvVolume   = "THE_SEQUENCE_VOLUME"
	EnvLogFile  = "THE_SEQUENCE_LOG_FILE"
)

// Logging defaults
const (
	DefaultLogFile    = "logs/the-sequence.log"
	LogMaxSizeMB      = 10
	LogMaxBackups     = 3
	LogMaxAgeDays     = 28
	DefaultChimeLevel = 0.5
)
