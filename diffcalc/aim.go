package diffcalc

import (
	"math"

	"github.com/osupp/ppplus/internal/mutils"
	"github.com/osupp/ppplus/internal/vector"
)

// AimType selects which of the four aim decompositions an Aim skill
// instance evaluates (spec §4.5): All combines jump and flow with a small
// circle bonus, Flow/Jump isolate one side, Raw sums both without the
// small circle bonus (used as the baseline Precision is measured against).
type AimType int

const (
	AimAll AimType = iota
	AimFlow
	AimJump
	AimRaw
)

// Aim tracks one strain-decayed aim rating. Four Aim values are built per
// map (spec §4.5: jump, flow, raw, and the combined "All" used for the
// headline aim rating), sharing the same DifficultyObject sequence.
type Aim struct {
	Radius    float64
	HasHidden bool
	HasFL     bool
	Type      AimType

	strain        strainTracker
	sliderStrains []float64

	preempt []*DifficultyObject // sliding window within preempt ms, oldest first
}

const (
	aimSkillMultiplier = 1059.0
	aimStrainDecayBase = 0.15
)

// Process folds curr into the running strain. objects is the full
// DifficultyObject sequence curr belongs to (needed for Previous lookups).
func (a *Aim) Process(curr *DifficultyObject, objects []*DifficultyObject) {
	value := a.evaluate(curr, objects) * aimSkillMultiplier
	strain := a.strain.add(curr, objects, aimStrainDecayBase, curr.DeltaTime, value)

	if curr.Base.IsSlider() {
		a.sliderStrains = append(a.sliderStrains, strain)
	}
}

// DifficultyValue folds this Aim's section peaks the way every strain
// skill in this variant does: drop zeros, sort descending, decay-weighted
// sum (spec §4.4's "legacy" reduction).
func (a *Aim) DifficultyValue() float64 {
	return DifficultyValueLegacy(a.strain.peakSequence())
}

// CountDifficultStrains is spec §4.4's soft count applied to this Aim's
// raw per-object strains.
func (a *Aim) CountDifficultStrains(difficultyValue float64) float64 {
	return CountTopWeightedStrains(a.strain.objectStrains, difficultyValue)
}

// GetDifficultSliders gives a soft count of how many sliders in the map
// carried meaningful aim strain, relative to the hardest one (spec §4.5).
func (a *Aim) GetDifficultSliders() float64 {
	if len(a.sliderStrains) == 0 {
		return 0
	}

	maxStrain := 0.0
	for _, s := range a.sliderStrains {
		maxStrain = math.Max(maxStrain, s)
	}

	if maxStrain == 0 {
		return 0
	}

	total := 0.0
	for _, s := range a.sliderStrains {
		total += mutils.Logistic(s/maxStrain*12 - 6)
	}

	return total
}

func (a *Aim) evaluate(curr *DifficultyObject, objects []*DifficultyObject) float64 {
	prev0 := curr.previous(0, objects)
	prev1 := curr.previous(1, objects)

	var aim float64
	switch a.Type {
	case AimAll:
		jumpAim := calcJumpAimValue(curr, prev0, prev1)
		flowAim := calcFlowAimValue(curr, prev0)
		aim = (jumpAim + flowAim) * calcSmallCircleBonus(a.Radius)
	case AimFlow:
		aim = calcFlowAimValue(curr, prev0) * calcSmallCircleBonus(a.Radius)
	case AimJump:
		aim = calcJumpAimValue(curr, prev0, prev1) * calcSmallCircleBonus(a.Radius)
	case AimRaw:
		aim = calcFlowAimValue(curr, prev0) + calcJumpAimValue(curr, prev0, prev1)
	}

	return aim * a.calcReadingMultiplier(curr)
}

func calcJumpAimValue(curr, prev0, prev1 *DifficultyObject) float64 {
	if math.Abs(curr.Flow-1) < epsilon {
		return 0
	}

	distance := curr.JumpDist / NormalizedRadius
	jumpAimBase := distance / curr.StrainTime

	var locationWeight, angleWeight float64
	if prev0 != nil {
		locationWeight = calcLocationWeight(curr.Base.StackedPos(), prev0.Base.StackedPos())
		angleWeight = calcJumpAngleWeight(curr.Angle, curr.StrainTime, prev0.StrainTime, prev0.JumpDist)
	} else {
		locationWeight = 1
		angleWeight = calcJumpAngleWeight(curr.Angle, curr.StrainTime, 0, 0)
	}

	patternWeight := calcJumpPatternWeight(curr, prev0, prev1)

	jumpAim := jumpAimBase * angleWeight * patternWeight * locationWeight
	return jumpAim * (1 - curr.Flow)
}

func calcFlowAimValue(curr, prev *DifficultyObject) float64 {
	if curr.Flow == 0 {
		return 0
	}

	distance := curr.JumpDist / NormalizedRadius

	flowAimBase := (1+math.Tanh(distance-2))*2.5/curr.StrainTime + (distance/5)/curr.StrainTime

	locationWeight := 1.0
	if prev != nil {
		locationWeight = calcLocationWeight(curr.Base.StackedPos(), prev.Base.StackedPos())
	}
	angleWeight := calcFlowAngleWeight(curr.Angle)
	patternWeight := calcFlowPatternWeight(curr, prev, distance)

	flowAim := flowAimBase * angleWeight * patternWeight * (1 + (locationWeight-1)/2)
	return flowAim * curr.Flow
}

func (a *Aim) calcReadingMultiplier(curr *DifficultyObject) float64 {
	for len(a.preempt) > 0 && a.preempt[0].StartTime < curr.StartTime-curr.Preempt {
		a.preempt = a.preempt[1:]
	}

	readingStrain := 0.0
	for _, prev := range a.preempt {
		readingStrain += calcReadingDensity(prev.BaseFlow, prev.JumpDist)
	}

	densityBonus := math.Pow(readingStrain, 1.5) / 100

	readingMultiplier := 1 + densityBonus
	if a.HasHidden {
		readingMultiplier = 1.05 + densityBonus*1.5
	}

	flashlightMultiplier := calcFlashlightMultiplier(a.HasFL, curr.RawJumpDist, a.Radius)
	highARMultiplier := calcHighARMultiplier(curr.Preempt)

	a.preempt = append(a.preempt, curr)

	return readingMultiplier * flashlightMultiplier * highARMultiplier
}

func calcJumpPatternWeight(curr, prev0, prev1 *DifficultyObject) float64 {
	jumpPatternWeight := 1.0

	for i, previous := range [2]*DifficultyObject{prev0, prev1} {
		if previous == nil {
			continue
		}

		velocityWeight := 1.05
		if previous.JumpDist > 0 {
			velocityRatio := (curr.JumpDist/curr.StrainTime)/(previous.JumpDist/previous.StrainTime) - 1
			switch {
			case velocityRatio <= 0:
				velocityWeight = 1 + velocityRatio*velocityRatio/2
			case velocityRatio < 1:
				velocityWeight = 1 + (-math.Cos(velocityRatio*math.Pi)+1)/40
			}
		}

		angleWeight := 1.0
		if mutils.IsRatioEqual(1, curr.StrainTime, previous.StrainTime) &&
			!isNullOrNaN(curr.Angle) && !isNullOrNaN(previous.Angle) {
			angleChange := math.Abs(math.Abs(*curr.Angle) - math.Abs(*previous.Angle))
			if angleChange >= math.Pi/1.5 {
				angleWeight = 1.05
			} else {
				angleWeight = 1 + (-math.Sin(math.Cos(angleChange*1.5)*math.Pi/2)+1)/40
			}
		}

		jumpPatternWeight *= math.Pow(velocityWeight*angleWeight, 2-float64(i))
	}

	distanceRequirement := 0.0
	if prev0 != nil {
		distanceRequirement = calcDistanceRequirement(curr.StrainTime, prev0.StrainTime, prev0.JumpDist)
	}

	return 1 + (jumpPatternWeight-1)*distanceRequirement
}

func calcFlowPatternWeight(curr, prev *DifficultyObject, distance float64) float64 {
	if prev == nil {
		return 1
	}

	distanceRate := 1.0
	if prev.JumpDist > 0 {
		distanceRate = curr.JumpDist/prev.JumpDist - 1
	}

	var distanceBonus float64
	switch {
	case distanceRate <= 0:
		distanceBonus = distanceRate * distanceRate
	case distanceRate < 1:
		distanceBonus = mutils.Midpoint(-math.Cos(math.Pi*distanceRate), 1)
	default:
		distanceBonus = 1
	}

	angleBonus := 0.0
	if !isNullOrNaN(curr.Angle) && !isNullOrNaN(prev.Angle) {
		cangle, pangle := *curr.Angle, *prev.Angle

		switch {
		case (cangle > 0 && pangle < 0) || (cangle < 0 && pangle > 0):
			var angleChange float64
			if math.Abs(cangle) > (math.Pi-math.Abs(pangle))/2 {
				angleChange = math.Pi - math.Abs(cangle)
			} else {
				angleChange = math.Abs(pangle) - math.Abs(cangle)
			}
			angleBonus = mutils.Midpoint(-math.Cos(math.Sin(angleChange/2)*math.Pi), 1)
		case math.Abs(cangle) < math.Abs(pangle):
			angleChange := cangle - pangle
			angleBonus = mutils.Midpoint(-math.Cos(math.Sin(angleChange/2)*math.Pi), 1)
		}

		if angleBonus > 0 {
			angleChange := math.Abs(cangle) - math.Abs(pangle)
			capped := mutils.Midpoint(-math.Cos(math.Sin(angleChange/2)*math.Pi), 1)
			angleBonus = math.Min(angleBonus, capped)
		}
	}

	streamJumpRate := mutils.TransitionToTrue(distanceRate, 0, 1)
	distanceWeight := (1 + distanceBonus) * calcStreamJumpWeight(curr.JumpDist, streamJumpRate, distance)
	angleWeight := 1 + angleBonus*(1-streamJumpRate)

	return 1 + (distanceWeight*angleWeight-1)*prev.Flow
}

func calcJumpAngleWeight(angle *float64, deltaTime, previousDeltaTime, previousDistance float64) float64 {
	if isNullOrNaN(angle) {
		return 1
	}

	distanceRequirement := calcDistanceRequirement(deltaTime, previousDeltaTime, previousDistance)
	return 1 + (-math.Sin(math.Cos(*angle)*math.Pi/2)+1)/10*distanceRequirement
}

func calcFlowAngleWeight(angle *float64) float64 {
	if isNullOrNaN(angle) {
		return 1
	}
	return 1 + (math.Cos(*angle)+1)/10
}

func calcStreamJumpWeight(jumpDist, streamJumpRate, distance float64) float64 {
	if jumpDist <= 0 {
		return 1
	}

	flowAimRevertFactor := 1 / ((math.Tanh(distance-2)+1)*2.5 + distance/5)
	return (1-streamJumpRate)*1 + streamJumpRate*flowAimRevertFactor*distance
}

func calcLocationWeight(pos, prevPos vector.Vector2) float64 {
	x := (pos.X+prevPos.X)*0.5 - PlayfieldBaseSize.X/2
	y := (pos.Y+prevPos.Y)*0.5 - PlayfieldBaseSize.Y/2

	angle := math.Pi / 3
	av := (x*math.Cos(angle) + y*math.Sin(angle)) / 750
	bv := (x*math.Sin(angle) - y*math.Cos(angle)) / 1000

	return 1 + av*av + bv*bv
}

func calcDistanceRequirement(deltaTime, previousDeltaTime, previousDistance float64) float64 {
	if !mutils.IsRatioEqualGreater(1, deltaTime, previousDeltaTime) {
		return 0
	}

	overlapDistance := (previousDeltaTime / deltaTime) * NormalizedRadius * 2
	return mutils.TransitionToTrue(previousDistance, 0, overlapDistance)
}

func calcReadingDensity(prevBaseFlow, prevJumpDist float64) float64 {
	return (1 - prevBaseFlow*0.75) * (1 + prevBaseFlow*0.5*prevJumpDist/NormalizedRadius)
}

func calcFlashlightMultiplier(flashlightEnabled bool, rawJumpDistance, radius float64) float64 {
	if !flashlightEnabled {
		return 1
	}
	return 1 + mutils.TransitionToTrue(rawJumpDistance, PlayfieldBaseSize.Y/4, radius)*0.3
}

func calcSmallCircleBonus(radius float64) float64 {
	return 1 + 120/math.Pow(radius, 2)
}

func calcHighARMultiplier(preempt float64) float64 {
	return 1 + (-math.Tanh((preempt-325)/30)+1)/15
}

const epsilon = 1e-9
