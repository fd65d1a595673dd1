package constants

// Ordinal representation bounds
const (
	// MaxTerms is the largest number of terms a single ordinal value holds
	MaxTerms = 32

	// MaxStringLength is the byte budget for a rendered ordinal
	MaxStringLength = 1024
)

// Rendering glyphs
const (
	GlyphOmega   = "ω"
	GlyphSquared = "²"
	GlyphTimes   = "⋅"
	GlyphPower   = "^"
	GlyphPlus    = "+"
	GlyphZero    = "0"
)
