package perfcalc

import (
	"math"

	"github.com/osupp/ppplus/beatmap"
	"github.com/osupp/ppplus/diffcalc"
	"github.com/osupp/ppplus/internal/statdist"
)

// PerformanceBaseMultiplier scales the whole pp formula; it exists purely
// to keep pp values in a historically familiar range as the formula
// itself evolves (spec §7.5).
const PerformanceBaseMultiplier = 1.12

// calculator holds one pp calculation's inputs. classicSliderAcc controls
// whether sliders contribute their own accuracy judgement (lazer-only) or
// are folded entirely into combo, which changes how effective miss count is
// estimated (spec §7.2). Calculate takes it as a parameter rather than a
// package constant since it varies per score, not per map.
type calculator struct {
	attrs    diffcalc.DifficultyAttributes
	mods     beatmap.Mods
	state    ScoreState
	classicSliderAcc bool

	effectiveMissCount float64
}

// Calculate runs the full pp pipeline for one played score against one
// map's DifficultyAttributes (spec §7's top-level entry point).
func Calculate(attrs diffcalc.DifficultyAttributes, mods beatmap.Mods, state ScoreState, classicSliderAcc bool) Attributes {
	c := calculator{attrs: attrs, mods: mods, state: state, classicSliderAcc: classicSliderAcc}
	return c.calculate()
}

func (c *calculator) calculate() Attributes {
	totalHitsInt := c.state.TotalHits()
	if totalHitsInt == 0 {
		return Attributes{Difficulty: c.attrs}
	}

	multiplier := PerformanceBaseMultiplier

	c.effectiveMissCount = float64(c.state.Misses)

	accuracyHitObjectsCount := c.attrs.NCircles
	if !c.classicSliderAcc {
		accuracyHitObjectsCount += c.attrs.NSliders
	} else {
		c.effectiveMissCount = math.Max(c.effectiveMissCount, c.calculateEffectiveMissCount(
			totalHitsInt-c.state.N300,
		))
	}

	normalizedHitError := c.calculateNormalizedHitError(totalHitsInt, accuracyHitObjectsCount)

	totalHits := float64(totalHitsInt)

	if c.mods.NF() {
		multiplier *= math.Max(1-0.02*float64(c.state.Misses), 0.9)
	}

	if c.mods.SO() && totalHits > 0 {
		multiplier *= 1 - math.Pow(float64(c.attrs.NSpinners)/totalHits, 0.85)
	}

	if c.mods.RX() {
		od := c.attrs.OD()

		n100Mult, n50Mult := 1.0, 1.0
		if od > 0 {
			n100Mult = math.Max(1-math.Pow(od/13.33, 1.8), 0)
			n50Mult = math.Max(1-math.Pow(od/13.33, 5), 0)
		}

		c.effectiveMissCount = math.Min(
			c.effectiveMissCount+float64(c.state.N100)*n100Mult+float64(c.state.N50)*n50Mult,
			totalHits,
		)
	}

	aimWeight := c.calculateAimWeight(normalizedHitError, totalHits)
	speedWeight := c.calculateSpeedWeight(normalizedHitError)
	accuracyWeight := c.calculateAccuracyWeight(accuracyHitObjectsCount)

	aimValue := aimWeight * calculateSkillValue(c.attrs.Aim) * c.calculateMissWeight(c.attrs.AimDifficultStrainCount)
	jumpAimValue := aimWeight * calculateSkillValue(c.attrs.Jump) * c.calculateMissWeight(c.attrs.JumpAimDifficultStrainCount)
	flowAimValue := aimWeight * calculateSkillValue(c.attrs.Flow) * c.calculateMissWeight(c.attrs.FlowAimDifficultStrainCount)
	precisionValue := aimWeight * calculateSkillValue(c.attrs.Precision) * c.calculateMissWeight(c.attrs.AimDifficultStrainCount)

	speedValue := speedWeight * calculateSkillValue(c.attrs.Speed) * c.calculateMissWeight(c.attrs.SpeedDifficultStrainCount)
	staminaValue := speedWeight * calculateSkillValue(c.attrs.Stamina) * c.calculateMissWeight(c.attrs.StaminaDifficultStrainCount)

	accuracyValue := calculateAccuracyValue(normalizedHitError) * c.attrs.Accuracy * accuracyWeight

	finalAim, finalJumpAim, finalFlowAim, finalPrecision := aimValue, jumpAimValue, flowAimValue, precisionValue
	finalSpeed := speedValue
	finalStamina := staminaValue // stamina doesn't get the length bonus

	lengthBonus := 0.95 + 0.4*math.Min(totalHits/2000, 1)
	if totalHits > 2000 {
		lengthBonus += math.Log10(totalHits/2000) * 0.5
	}

	finalAim *= lengthBonus
	finalJumpAim *= lengthBonus
	finalFlowAim *= lengthBonus
	finalPrecision *= lengthBonus
	finalSpeed *= lengthBonus

	totalValue := math.Pow(
		math.Pow(finalAim, 1.1)+math.Pow(math.Max(finalSpeed, finalStamina), 1.1)+math.Pow(accuracyValue, 1.1),
		1.0/1.1,
	) * multiplier

	return Attributes{
		Difficulty:         c.attrs,
		PP:                 totalValue,
		PPAim:              finalAim,
		PPJumpAim:          finalJumpAim,
		PPFlowAim:          finalFlowAim,
		PPPrecision:        finalPrecision,
		PPSpeed:            finalSpeed,
		PPStamina:          finalStamina,
		PPAccuracy:         accuracyValue,
		EffectiveMissCount: c.effectiveMissCount,
	}
}

func calculateSkillValue(skillDiff float64) float64 {
	return math.Pow(skillDiff, 3) * 3.9
}

// calculateNormalizedHitError estimates, from the 20th percentile of a
// beta-distributed "how many 300s out of the accuracy-relevant objects"
// model, the hit error (ms) a normal distribution with that tail would
// need (spec §7.3). Falls back to a flat OD-derived estimate whenever the
// beta/normal construction is degenerate (too few relevant 300s, or an
// invalid parameterization).
func (c *calculator) calculateNormalizedHitError(objectCount, accuracyObjectCount int) float64 {
	od := c.attrs.OD()
	fallback := 200 - od*10

	relevant300Count := c.state.N300 - (objectCount - accuracyObjectCount)
	if relevant300Count <= 0 {
		return fallback
	}

	probability, err := statdist.BetaQuantile(float64(relevant300Count), 1+float64(accuracyObjectCount)-float64(relevant300Count), 0.2)
	if err != nil {
		return fallback
	}

	probability += (1 - probability) / 2

	zValue, err := statdist.StandardNormalQuantile(probability)
	if err != nil {
		return fallback
	}

	hitWindow := 79.5 - od*6
	return hitWindow / zValue
}

func (c *calculator) calculateMissWeight(difficultStrainCount float64) float64 {
	if difficultStrainCount <= 1 {
		return 0.96 / (c.effectiveMissCount/4 + 1)
	}

	poweredLn := math.Pow(math.Log(difficultStrainCount), 0.94)
	if !math.IsInf(poweredLn, 0) && !math.IsNaN(poweredLn) && poweredLn > 0 {
		return 0.96 / (c.effectiveMissCount/(4*poweredLn) + 1)
	}

	return 0.96 / (c.effectiveMissCount/4 + 1)
}

func (c *calculator) calculateAimWeight(normalizedHitError, totalHits float64) float64 {
	accuracyWeight := math.Pow(0.995, normalizedHitError) * 1.04

	flashlightLengthWeight := 1.0
	if c.mods.FL() {
		flashlightLengthWeight = 1 + math.Atan(totalHits/2000)
	}

	return accuracyWeight * flashlightLengthWeight
}

func (c *calculator) calculateSpeedWeight(normalizedHitError float64) float64 {
	return math.Pow(0.985, normalizedHitError) * 1.12
}

func (c *calculator) calculateAccuracyWeight(accuracyHitObjectsCount int) float64 {
	lengthWeight := math.Tanh(float64(accuracyHitObjectsCount+400)/1050) * 1.2

	modWeight := 1.0
	if c.mods.HD() {
		modWeight *= 1.02
	}
	if c.mods.FL() {
		modWeight *= 1.04
	}

	return lengthWeight * modWeight
}

func calculateAccuracyValue(normalizedHitError float64) float64 {
	return 560 * math.Pow(0.85, normalizedHitError)
}

// calculateEffectiveMissCount approximates how many slider breaks a combo
// shortfall implies, when slider ticks don't carry their own judgement
// (spec §7.2).
func (c *calculator) calculateEffectiveMissCount(countMistakes int) float64 {
	comboBasedMissCount := 0.0

	if c.attrs.NSliders > 0 {
		fullComboThreshold := float64(c.attrs.MaxCombo) - 0.1*float64(c.attrs.NSliders)
		if float64(c.state.MaxCombo) < fullComboThreshold {
			comboBasedMissCount = fullComboThreshold / math.Max(float64(c.state.MaxCombo), 1)
		}
	}

	comboBasedMissCount = math.Min(comboBasedMissCount, float64(countMistakes))

	return math.Max(float64(c.state.Misses), comboBasedMissCount)
}
