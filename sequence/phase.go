package sequence

// Phase identifies which schedule rule produced the current value
type Phase uint8

const (
	PhaseZero Phase = iota
	PhaseNaturals
	PhaseOmega
	PhaseOmegaPlusNatural
	PhaseOmegaTimes2
	PhaseOmegaTimes2PlusNatural
	PhaseOmegaSquared
	PhaseOmegaSquaredPlusSuccessor
)

var phaseNames = [...]string{
	PhaseZero:                      "zero",
	PhaseNaturals:                  "naturals",
	PhaseOmega:                     "omega",
	PhaseOmegaPlusNatural:          "omega+n",
	PhaseOmegaTimes2:               "omega*2",
	PhaseOmegaTimes2PlusNatural:    "omega*2+n",
	PhaseOmegaSquared:              "omega^2",
	PhaseOmegaSquaredPlusSuccessor: "omega^2+succ",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// IsMilestone reports whether the phase is a single hand-authored limit value
func (p Phase) IsMilestone() bool {
	switch p {
	case PhaseOmega, PhaseOmegaTimes2, PhaseOmegaSquared:
		return true
	default:
		return false
	}
}
