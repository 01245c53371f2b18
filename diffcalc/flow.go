package diffcalc

import (
	"math"

	"github.com/osupp/ppplus/internal/mutils"
)

// isNullOrNaN treats a nil angle, or NaN, as "no usable angle" (spec §7
// domain fallback: angle null/NaN is neutral).
func isNullOrNaN(angle *float64) bool {
	return angle == nil || *angle != *angle // NaN != NaN
}

func (d *DifficultyObject) calculateSpeedFlow() float64 {
	return mutils.TransitionToTrue(d.StreamBPM, 90, 30)
}

func (d *DifficultyObject) calculateDistanceFlow(angleScalingFactor float64) float64 {
	distanceOffset := (math.Tanh((d.StreamBPM-140)/20) + 2) * NormalizedRadius
	return mutils.TransitionToFalse(d.JumpDist, distanceOffset*angleScalingFactor, distanceOffset)
}

func (d *DifficultyObject) calculateExtendedDistanceFlow() float64 {
	distanceOffset := (math.Tanh((d.StreamBPM-140)/20)*1.75 + 2.75) * NormalizedRadius
	return mutils.TransitionToFalse(d.JumpDist, distanceOffset, distanceOffset)
}

func calculateAngleScalingFactor(angle *float64, lastDiff *DifficultyObject) float64 {
	if isNullOrNaN(angle) {
		return 0.5
	}

	asf := (-math.Sin(math.Cos(*angle)*math.Pi/2) + 3) / 4
	return asf + (1-asf)*lastDiff.AngleLeniency
}

func (d *DifficultyObject) calculateIrregularFlow(lastDiff *DifficultyObject, lastLastDiff *DifficultyObject) float64 {
	irregular := d.calculateExtendedDistanceFlow()

	if mutils.IsRoughlyEqual(d.StrainTime, lastDiff.StrainTime) {
		irregular *= lastDiff.BaseFlow
	} else {
		irregular = 0
	}

	if lastLastDiff != nil {
		if mutils.IsRoughlyEqual(d.StrainTime, lastLastDiff.StrainTime) {
			irregular *= lastLastDiff.BaseFlow
		} else {
			irregular = 0
		}
	}

	return irregular
}

func (d *DifficultyObject) setFlowValues(lastDiff, lastLastDiff *DifficultyObject) {
	if lastDiff == nil {
		d.BaseFlow = d.calculateSpeedFlow() * d.calculateDistanceFlow(1)
		d.Flow = d.BaseFlow
		return
	}

	if mutils.IsRatioEqualLess(0.667, d.StrainTime, lastDiff.StrainTime) {
		d.BaseFlow = d.calculateSpeedFlow() * d.calculateDistanceFlow(1)
	}

	if mutils.IsRoughlyEqual(d.StrainTime, lastDiff.StrainTime) {
		asf := calculateAngleScalingFactor(d.Angle, lastDiff)
		d.BaseFlow = d.calculateSpeedFlow() * d.calculateDistanceFlow(asf)
	}

	irregular := d.calculateIrregularFlow(lastDiff, lastLastDiff)

	d.AngleLeniency = (1 - d.BaseFlow) * irregular
	d.Flow = max(d.BaseFlow, irregular)
}
