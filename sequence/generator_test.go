package sequence

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/the-sequence/ordinal"
)

func TestFreshGenerator(t *testing.T) {
	g := NewGenerator()

	assert.Equal(t, uint64(0), g.Step())
	assert.Equal(t, PhaseZero, g.Phase())
	assert.Equal(t, "0", g.Current().String())
}

func TestNaturals(t *testing.T) {
	g := NewGenerator()
	for s := 1; s <= 999; s++ {
		g.Advance()
		require.Equal(t, strconv.Itoa(s), g.Current().String(), "step %d", s)
		require.Equal(t, PhaseNaturals, g.Phase())
	}
}

func TestScheduleMilestones(t *testing.T) {
	tests := []struct {
		step  uint64
		want  string
		phase Phase
	}{
		{1000, "ω", PhaseOmega},
		{1001, "ω+1", PhaseOmegaPlusNatural},
		{1500, "ω+500", PhaseOmegaPlusNatural},
		{1999, "ω+999", PhaseOmegaPlusNatural},
		{2000, "ω⋅2", PhaseOmegaTimes2},
		{2500, "ω⋅2+500", PhaseOmegaTimes2PlusNatural},
		{3000, "ω²", PhaseOmegaSquared},
		{3001, "ω²+1", PhaseOmegaSquaredPlusSuccessor},
		{3010, "ω²+10", PhaseOmegaSquaredPlusSuccessor},
	}

	g := NewGenerator()
	for _, tt := range tests {
		t.Run(fmt.Sprintf("step %d", tt.step), func(t *testing.T) {
			g.SkipTo(tt.step)
			assert.Equal(t, tt.step, g.Step())
			assert.Equal(t, tt.want, g.Current().String())
			assert.Equal(t, tt.phase, g.Phase())
		})
	}
}

func TestAdvanceReturnsCurrent(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 3005; i++ {
		v := g.Advance()
		require.True(t, v.Equal(g.Current()), "step %d", g.Step())
	}
}

func TestCurrentIdempotent(t *testing.T) {
	g := NewGenerator()
	g.SkipTo(1500)

	a := g.Current()
	b := g.Current()
	assert.True(t, a.Equal(b))
	assert.Equal(t, uint64(1500), g.Step())
}

func TestCurrentIsolatedFromCaller(t *testing.T) {
	g := NewGenerator()
	g.SkipTo(1000)

	v := g.Current()
	v.AddTerm(0, 42)
	v.Normalize()

	assert.Equal(t, "ω+42", v.String())
	assert.Equal(t, "ω", g.Current().String())
}

func TestRenderedValuesNeverRepeat(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]uint64, 5000)
	seen[g.Current().String()] = 0

	for i := 0; i < 5000; i++ {
		g.Advance()
		s := g.Current().String()
		if prev, ok := seen[s]; ok {
			t.Fatalf("value %q at step %d repeats step %d", s, g.Step(), prev)
		}
		seen[s] = g.Step()
	}
}

func TestSuccessorTailTermCount(t *testing.T) {
	g := NewGenerator()
	g.SkipTo(10000)

	assert.Equal(t, "ω²+7000", g.Current().String())
	assert.Equal(t, 2, g.Current().Len())
}

func TestSkipToPastIsNoop(t *testing.T) {
	g := NewGenerator()
	g.SkipTo(20)
	g.SkipTo(5)

	assert.Equal(t, uint64(20), g.Step())
	assert.Equal(t, "20", g.Current().String())
}

func TestCustomSchedule(t *testing.T) {
	s := Schedule{
		{
			Phase: PhaseNaturals,
			Match: func(step uint64) bool { return step <= 2 },
			Build: func(step uint64, _ ordinal.Ordinal) ordinal.Ordinal { return ordinal.FromNatural(step * 10) },
		},
	}
	g := NewGeneratorWithSchedule(s)

	assert.Equal(t, "10", g.Advance().String())
	assert.Equal(t, "20", g.Advance().String())
	// No rule matches step 3, previous value is kept
	assert.Equal(t, "20", g.Advance().String())
	assert.Equal(t, uint64(3), g.Step())
}

func TestPhaseNames(t *testing.T) {
	assert.Equal(t, "naturals", PhaseNaturals.String())
	assert.Equal(t, "omega^2+succ", PhaseOmegaSquaredPlusSuccessor.String())
	assert.Equal(t, "unknown", Phase(200).String())

	assert.True(t, PhaseOmega.IsMilestone())
	assert.True(t, PhaseOmegaTimes2.IsMilestone())
	assert.True(t, PhaseOmegaSquared.IsMilestone())
	assert.False(t, PhaseOmegaPlusNatural.IsMilestone())
	assert.False(t, PhaseNaturals.IsMilestone())
}

// TestScheduleGolden pins the rendered values around every schedule boundary
// Regenerate with: go test ./sequence -update
func TestScheduleGolden(t *testing.T) {
	steps := []uint64{1, 2, 999, 1000, 1001, 1500, 1999, 2000, 2001, 2500, 2999, 3000, 3001, 3010, 4000}

	var b strings.Builder
	g := NewGenerator()
	for _, s := range steps {
		g.SkipTo(s)
		fmt.Fprintf(&b, "%d\t%s\t%s\n", s, g.Phase(), g.Current())
	}

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, "schedule", []byte(b.String()))
}
