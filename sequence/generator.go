package sequence

import (
	"github.com/lixenwraith/the-sequence/ordinal"
)

// Generator walks a Schedule one step per Advance
// Not safe for concurrent use; callers confine it to one goroutine or guard Advance/Current
type Generator struct {
	schedule Schedule
	current  ordinal.Ordinal
	step     uint64
	phase    Phase
}

// NewGenerator creates a generator at step 0 (value 0) on the default schedule
func NewGenerator() *Generator {
	return NewGeneratorWithSchedule(DefaultSchedule())
}

// NewGeneratorWithSchedule creates a generator at step 0 on a custom schedule
func NewGeneratorWithSchedule(s Schedule) *Generator {
	return &Generator{
		schedule: s,
		current:  ordinal.New(),
		phase:    PhaseZero,
	}
}

// Advance moves to the next step and returns its value
// A step no rule matches keeps the previous value
func (g *Generator) Advance() ordinal.Ordinal {
	g.step++
	if rule, ok := g.schedule.Resolve(g.step); ok {
		g.current = rule.Build(g.step, g.current)
		g.phase = rule.Phase
	}
	return g.current
}

// Current returns the value of the current step without advancing
func (g *Generator) Current() ordinal.Ordinal {
	return g.current
}

// Step returns the number of Advance calls so far
func (g *Generator) Step() uint64 {
	return g.step
}

// Phase returns the rule that produced the current value
func (g *Generator) Phase() Phase {
	return g.phase
}

// SkipTo advances until Step reaches step; earlier steps are a no-op
func (g *Generator) SkipTo(step uint64) ordinal.Ordinal {
	for g.step < step {
		g.Advance()
	}
	return g.current
}
