package perfcalc

import "github.com/osupp/ppplus/diffcalc"

// Attributes is the full result of Calculate: the final pp value, its
// per-skill decomposition, and the difficulty attributes it was computed
// from (spec §7).
type Attributes struct {
	Difficulty diffcalc.DifficultyAttributes

	PP          float64
	PPAim       float64
	PPJumpAim   float64
	PPFlowAim   float64
	PPPrecision float64
	PPSpeed     float64
	PPStamina   float64
	PPAccuracy  float64

	EffectiveMissCount float64
}

// Stars is the map's star rating.
func (a Attributes) Stars() float64 {
	return a.Difficulty.Stars
}
