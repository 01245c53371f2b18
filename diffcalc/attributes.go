package diffcalc

import "math"

// DifficultyAttributes is the full per-map result of Calculate: every
// skill rating plus the raw counters performance calculation needs (spec
// §5).
type DifficultyAttributes struct {
	Aim                   float64
	AimDifficultSliderCount float64
	Jump                  float64
	Flow                  float64
	Precision             float64
	Speed                 float64
	Stamina               float64
	Accuracy              float64

	AimDifficultStrainCount      float64
	JumpAimDifficultStrainCount  float64
	FlowAimDifficultStrainCount  float64
	SpeedDifficultStrainCount    float64
	StaminaDifficultStrainCount  float64

	AR             float64
	GreatHitWindow float64
	OkHitWindow    float64
	MehHitWindow   float64
	HP             float64

	NCircles  int
	NSliders  int
	NSpinners int

	Stars     float64
	MaxCombo  int
}

// NObjects is the total hit object count.
func (a DifficultyAttributes) NObjects() int {
	return a.NCircles + a.NSliders + a.NSpinners
}

// OD recovers the overall-difficulty value implied by GreatHitWindow, the
// exact inverse of beatmap.GreatHitWindowFromOD.
func (a DifficultyAttributes) OD() float64 {
	return (80 - a.GreatHitWindow) / 6
}

// ratingFromDifficultyValue turns a strain-skill's raw difficulty_value into
// its public rating, per spec §4.8's difficultyMultiplier.
func ratingFromDifficultyValue(value float64) float64 {
	return math.Sqrt(value) * DifficultyMultiplier
}

// DifficultyMultiplier is the shared scale every *_rating = sqrt(value) *
// DifficultyMultiplier conversion in spec §4.8 uses, except precision's
// max(0, ...) guard and accuracy's bare sqrt.
const DifficultyMultiplier = 0.0675
