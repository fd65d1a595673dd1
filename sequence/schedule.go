package sequence

import (
	"github.com/lixenwraith/the-sequence/constants"
	"github.com/lixenwraith/the-sequence/ordinal"
)

// Rule maps a step to a value when Match accepts it
// Build receives the new step and the previous value
type Rule struct {
	Phase Phase
	Match func(step uint64) bool
	Build func(step uint64, prev ordinal.Ordinal) ordinal.Ordinal
}

// Schedule is an ordered rule list; the first matching rule wins
type Schedule []Rule

// DefaultSchedule walks the naturals, then ω, ω⋅2 and ω² with their finite tails,
// then hands over to the successor rule indefinitely
func DefaultSchedule() Schedule {
	return Schedule{
		{
			Phase: PhaseNaturals,
			Match: func(s uint64) bool { return s < constants.StepOmega },
			Build: func(s uint64, _ ordinal.Ordinal) ordinal.Ordinal { return ordinal.FromNatural(s) },
		},
		{
			Phase: PhaseOmega,
			Match: equals(constants.StepOmega),
			Build: limit(1, 1),
		},
		{
			Phase: PhaseOmegaPlusNatural,
			Match: below(constants.StepOmegaTimes2),
			Build: limitPlus(1, 1, constants.StepOmega),
		},
		{
			Phase: PhaseOmegaTimes2,
			Match: equals(constants.StepOmegaTimes2),
			Build: limit(1, 2),
		},
		{
			Phase: PhaseOmegaTimes2PlusNatural,
			Match: below(constants.StepOmegaSquared),
			Build: limitPlus(1, 2, constants.StepOmegaTimes2),
		},
		{
			Phase: PhaseOmegaSquared,
			Match: equals(constants.StepOmegaSquared),
			Build: limit(2, 1),
		},
		{
			Phase: PhaseOmegaSquaredPlusSuccessor,
			Match: func(uint64) bool { return true },
			Build: func(_ uint64, prev ordinal.Ordinal) ordinal.Ordinal { return prev.Successor() },
		},
	}
}

// Resolve returns the first rule matching step
func (s Schedule) Resolve(step uint64) (Rule, bool) {
	for _, r := range s {
		if r.Match(step) {
			return r, true
		}
	}
	return Rule{}, false
}

func equals(n uint64) func(uint64) bool {
	return func(s uint64) bool { return s == n }
}

func below(n uint64) func(uint64) bool {
	return func(s uint64) bool { return s < n }
}

// limit builds the single term coefficient·ω^exponent
func limit(exponent, coefficient int) func(uint64, ordinal.Ordinal) ordinal.Ordinal {
	return func(uint64, ordinal.Ordinal) ordinal.Ordinal {
		return ordinal.FromTerms(ordinal.Term{Exponent: exponent, Coefficient: coefficient})
	}
}

// limitPlus builds coefficient·ω^exponent + (step - base)
func limitPlus(exponent, coefficient int, base uint64) func(uint64, ordinal.Ordinal) ordinal.Ordinal {
	return func(s uint64, _ ordinal.Ordinal) ordinal.Ordinal {
		o := ordinal.New()
		o.AddTerm(exponent, coefficient)
		if s > base {
			o.AddTerm(0, int(s-base))
		}
		o.Normalize()
		return o
	}
}
