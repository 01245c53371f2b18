package diffcalc

import (
	"math"

	"github.com/osupp/ppplus/beatmap"
	"github.com/osupp/ppplus/internal/mutils"
)

const rhythmStrainDecayBase = 0.45

// RhythmComplexity is not strain-section-based like Aim/Speed/Stamina: it
// accumulates a single running "rhythm bonus" total across the map and
// turns that into a rating at the end (spec §4.7), rather than sampling
// 400ms strain peaks.
type RhythmComplexity struct {
	isSliderAcc bool

	noteIndex               int
	difficultyTotal         float64
	difficultyTotalSliderAcc float64
	hitCircleCount          int
	accuracyObjectCount     int
	isPreviousOffbeat       bool
	prevDoubles             []int

	FlowTotal float64
	JumpTotal float64
}

// NewRhythmComplexity builds a tracker. isSliderAcc additionally folds
// each slider's own rhythm bonus into the slider-accuracy total and counts
// the slider as an accuracy object, matching the
// "with slider accuracy" variant the original source keeps alongside the
// plain one.
func NewRhythmComplexity(isSliderAcc bool) *RhythmComplexity {
	return &RhythmComplexity{isSliderAcc: isSliderAcc}
}

func (r *RhythmComplexity) Process(curr *DifficultyObject, objects []*DifficultyObject) {
	r.FlowTotal += curr.Flow
	r.JumpTotal += curr.JumpDist

	switch {
	case curr.Base.IsCircle():
		bonus := r.calcRhythmBonus(curr, objects)
		r.difficultyTotal += bonus
		r.difficultyTotalSliderAcc += bonus
		r.hitCircleCount++
		r.accuracyObjectCount++
	case r.isSliderAcc && curr.Base.IsSlider():
		bonus := r.calcRhythmBonus(curr, objects)
		r.difficultyTotalSliderAcc += bonus
		r.accuracyObjectCount++
	default:
		r.isPreviousOffbeat = false
	}

	r.noteIndex++
}

// DifficultyValue takes the better of the plain and slider-accuracy-aware
// totals, each length-normalized, then taking its rating is the caller's
// job (accuracy_rating = sqrt(DifficultyValue()), spec §4.7).
func (r *RhythmComplexity) DifficultyValue() float64 {
	return math.Max(
		calcDifficultyValueFor(r.difficultyTotal, r.hitCircleCount),
		calcDifficultyValueFor(r.difficultyTotalSliderAcc, r.accuracyObjectCount),
	)
}

func calcDifficultyValueFor(difficulty float64, objectCount int) float64 {
	if objectCount == 0 {
		return 1
	}

	lengthRequirement := math.Tanh(float64(objectCount) / 50)
	return 1 + difficulty/float64(objectCount)*lengthRequirement
}

func (r *RhythmComplexity) calcRhythmBonus(curr *DifficultyObject, objects []*DifficultyObject) float64 {
	rhythmBonus := 0.05 * curr.Flow

	if curr.Idx == 0 {
		return rhythmBonus
	}

	prev := curr.previous(0, objects)
	if prev == nil {
		return rhythmBonus
	}

	switch prev.Base.Kind {
	case beatmap.KindCircle:
		rhythmBonus += r.calcCircleToCircleRhythmBonus(curr, prev)
	case beatmap.KindSlider:
		rhythmBonus += r.calcSliderToCircleRhythmBonus(curr)
	case beatmap.KindSpinner:
		r.isPreviousOffbeat = false
	}

	return rhythmBonus
}

func (r *RhythmComplexity) calcCircleToCircleRhythmBonus(curr, prev *DifficultyObject) float64 {
	var rhythmBonus float64

	switch {
	case r.isPreviousOffbeat && mutils.IsRatioEqualGreater(1.5, curr.GapTime, prev.GapTime):
		rhythmBonus = 5.0

		start := len(r.prevDoubles) - 10
		if start < 0 {
			start = 0
		}
		for _, prevDouble := range r.prevDoubles[start:] {
			if prevDouble > 0 {
				rhythmBonus *= 1 - 0.5*math.Pow(0.9, float64(r.noteIndex-prevDouble))
			} else {
				rhythmBonus = 5.0
			}
		}
		r.prevDoubles = append(r.prevDoubles, r.noteIndex)

	case mutils.IsRatioEqual(0.667, curr.GapTime, prev.GapTime):
		if curr.Flow > 0.8 {
			r.prevDoubles = append(r.prevDoubles, -1)
		}
		rhythmBonus = 4.0 + 8.0*curr.Flow

	case mutils.IsRatioEqual(0.333, curr.GapTime, prev.GapTime):
		rhythmBonus = 0.4 + 0.8*curr.Flow

	case mutils.IsRatioEqual(0.5, curr.GapTime, prev.GapTime), mutils.IsRatioEqual(0.25, curr.GapTime, prev.GapTime):
		rhythmBonus = 0.1 + 0.2*curr.Flow

	default:
		rhythmBonus = 0
	}

	switch {
	case mutils.IsRatioEqual(0.667, curr.GapTime, prev.GapTime) && curr.Flow > 0.8:
		r.isPreviousOffbeat = true
	case mutils.IsRatioEqual(1.0, curr.GapTime, prev.GapTime) && curr.Flow > 0.8:
		r.isPreviousOffbeat = !r.isPreviousOffbeat
	default:
		r.isPreviousOffbeat = false
	}

	return rhythmBonus
}

func (r *RhythmComplexity) calcSliderToCircleRhythmBonus(curr *DifficultyObject) float64 {
	sliderMS := curr.StrainTime - curr.GapTime

	if mutils.IsRatioEqual(0.5, curr.GapTime, sliderMS) || mutils.IsRatioEqual(0.25, curr.GapTime, sliderMS) {
		endFlow := calcSliderEndFlow(curr)
		r.isPreviousOffbeat = endFlow > 0.8
		return 0.3 * endFlow
	}

	r.isPreviousOffbeat = false
	return 0
}

func calcSliderEndFlow(curr *DifficultyObject) float64 {
	streamBPM := 15000.0 / curr.GapTime
	isFlowSpeed := mutils.TransitionToTrue(streamBPM, 120, 30)

	distanceOffset := (math.Tanh((streamBPM-140)/20) + 2) * NormalizedRadius
	isFlowDistance := mutils.TransitionToFalse(curr.JumpDist, distanceOffset, NormalizedRadius)

	return isFlowSpeed * isFlowDistance
}
