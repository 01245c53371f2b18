package diffcalc

import (
	"math"

	"github.com/osupp/ppplus/beatmap"
)

// skills bundles every evaluator that walks the DifficultyObject sequence
// together, mirroring how the original groups its four Aim instances plus
// Speed/Stamina/RhythmComplexity behind one constructor and one process
// loop (spec §4.8).
type skills struct {
	aim      Aim
	rawAim   Aim
	jumpAim  Aim
	flowAim  Aim
	speed    Speed
	stamina  Stamina
	rhythm   *RhythmComplexity
}

func newSkills(radius float64, mods beatmap.Mods, lazer bool) *skills {
	return &skills{
		aim:     Aim{Radius: radius, HasHidden: mods.HD(), HasFL: mods.FL(), Type: AimAll},
		rawAim:  Aim{Radius: radius, HasHidden: mods.HD(), HasFL: mods.FL(), Type: AimRaw},
		jumpAim: Aim{Radius: radius, HasHidden: mods.HD(), HasFL: mods.FL(), Type: AimJump},
		flowAim: Aim{Radius: radius, HasHidden: mods.HD(), HasFL: mods.FL(), Type: AimFlow},
		rhythm:  NewRhythmComplexity(!noSliderHeadAcc(lazer)),
	}
}

// noSliderHeadAcc reports whether slider heads don't contribute their own
// hit judgement for rhythm-complexity purposes. osu!stable scoring never
// judges a slider head separately, so it's always true off lazer; a lazer
// score is assumed to use lazer's slider-head judgement (no "Classic" mod
// layer is modeled here, an explicit Non-goal).
func noSliderHeadAcc(lazer bool) bool {
	return !lazer
}

func (s *skills) process(curr *DifficultyObject, objects []*DifficultyObject) {
	s.aim.Process(curr, objects)
	s.rawAim.Process(curr, objects)
	s.jumpAim.Process(curr, objects)
	s.flowAim.Process(curr, objects)
	s.speed.Process(curr, objects)
	s.stamina.Process(curr, objects)
	s.rhythm.Process(curr, objects)
}

// Calculate runs the full difficulty pipeline for a beatmap under the
// given Difficulty configuration (spec §2/§8's top-level entry point):
// slider lazy-cursor precompute, DifficultyObject construction, the
// per-object skill walk, and the final rating/star/count aggregation.
func Calculate(bm *beatmap.Beatmap, d beatmap.Difficulty) DifficultyAttributes {
	attrs := bm.Attributes(d)
	scaling := NewScalingFactor(attrs.CS)

	take := d.PassedObjectsOrAll(len(bm.HitObjects))
	objects := bm.HitObjects[:take]

	PrecomputeSliderCursors(objects, scaling.Radius)

	clockRate := attrs.ClockRate
	diffObjects := BuildDifficultyObjects(objects, clockRate, attrs.Preempt, scaling)

	sk := newSkills(scaling.Radius, d.Mods, d.Lazer)
	for _, obj := range diffObjects {
		sk.process(obj, diffObjects)
	}

	out := DifficultyAttributes{
		AR:             attrs.AR,
		GreatHitWindow: attrs.HitWindows.Great,
		OkHitWindow:    attrs.HitWindows.Ok,
		MehHitWindow:   attrs.HitWindows.Meh,
		HP:             attrs.HP,
		NCircles:       bm.NCircles(d),
		NSliders:       bm.NSliders(d),
		NSpinners:      bm.NSpinners(d),
		MaxCombo:       bm.MaxCombo(d),
	}

	evalSkills(&out, d.Mods, sk)

	return out
}

// evalSkills turns raw strain-skill totals into the public ratings, mod
// transforms, and the final star rating (spec §4.8).
func evalSkills(attrs *DifficultyAttributes, mods beatmap.Mods, sk *skills) {
	aimValue := sk.aim.DifficultyValue()
	rawAimValue := sk.rawAim.DifficultyValue()
	jumpAimValue := sk.jumpAim.DifficultyValue()
	flowAimValue := sk.flowAim.DifficultyValue()
	speedValue := sk.speed.DifficultyValue()
	staminaValue := sk.stamina.DifficultyValue()
	rhythmValue := sk.rhythm.DifficultyValue()

	aimRating := ratingFromDifficultyValue(aimValue)
	jumpAimRating := ratingFromDifficultyValue(jumpAimValue)
	flowAimRating := ratingFromDifficultyValue(flowAimValue)
	precisionRating := math.Sqrt(math.Max(aimValue-rawAimValue, 0)) * DifficultyMultiplier
	speedRating := ratingFromDifficultyValue(speedValue)
	staminaRating := ratingFromDifficultyValue(staminaValue)
	accuracyRating := math.Sqrt(rhythmValue)

	aimDifficultStrainCount := sk.aim.CountDifficultStrains(aimValue)
	jumpAimDifficultStrainCount := sk.jumpAim.CountDifficultStrains(rawAimValue)
	flowAimDifficultStrainCount := sk.flowAim.CountDifficultStrains(flowAimValue)
	speedDifficultStrainCount := sk.speed.CountDifficultStrains(speedValue)
	staminaDifficultStrainCount := sk.stamina.CountDifficultStrains(staminaValue)
	difficultSliders := sk.aim.GetDifficultSliders()

	if mods.TD() {
		aimRating = math.Pow(aimRating, 0.8)
	}

	if mods.RX() {
		aimRating *= 0.9
		speedRating = 0
	} else if mods.AP() {
		speedRating *= 0.5
		aimRating = 0
		jumpAimRating = 0
		flowAimRating = 0
		precisionRating = 0
	}

	starRating := math.Pow(math.Pow(aimRating, 3)+math.Pow(math.Max(speedRating, staminaRating), 3), 1.0/3) * 1.6

	attrs.Aim = aimRating
	attrs.AimDifficultSliderCount = difficultSliders
	attrs.Jump = jumpAimRating
	attrs.Flow = flowAimRating
	attrs.Precision = precisionRating
	attrs.Speed = speedRating
	attrs.Stamina = staminaRating
	attrs.Accuracy = accuracyRating
	attrs.AimDifficultStrainCount = aimDifficultStrainCount
	attrs.JumpAimDifficultStrainCount = jumpAimDifficultStrainCount
	attrs.FlowAimDifficultStrainCount = flowAimDifficultStrainCount
	attrs.SpeedDifficultStrainCount = speedDifficultStrainCount
	attrs.StaminaDifficultStrainCount = staminaDifficultStrainCount
	attrs.Stars = starRating
}
