package diffcalc

import (
	"math"
	"sort"

	"github.com/osupp/ppplus/internal/mutils"
)

// SectionLength is the wall-clock width, in ms, of one strain section (spec
// §4.4).
const SectionLength = 400.0

// ReducedSectionCount and ReducedStrainBaseline parameterize the "standard"
// difficulty value's de-emphasis of the very top strain peaks.
const (
	ReducedSectionCount   = 10
	ReducedStrainBaseline = 0.75
	DecayWeight           = 0.9
)

// strainDecay is the exponential-decay driver every strain skill shares:
// base^(ms/1000).
func strainDecay(ms, base float64) float64 {
	return math.Pow(base, ms/1000)
}

// strainTracker is the generic strain-skill bookkeeping shared by Aim,
// Speed and Stamina (spec §4.4): per-object exponential decay plus
// fixed-400ms-section peak sampling. RhythmComplexity does not use this —
// it accumulates a single running total instead (spec §4.7).
type strainTracker struct {
	currentStrain       float64
	sectionEnd          float64
	sectionStarted      bool
	currentSectionPeak  float64
	peaks               []float64 // section peaks, including zeros, not yet sorted
	objectStrains       []float64 // raw per-object strain, in object order
}

// add decays currentStrain by decayDelta (strain_time or delta_time,
// depending on the skill) then adds instantaneous, performing whatever
// section-peak bookkeeping curr.StartTime requires first. Returns the new
// currentStrain (== this object's strain value).
func (s *strainTracker) add(curr *DifficultyObject, objects []*DifficultyObject, decayBase, decayDelta, instantaneous float64) float64 {
	if !s.sectionStarted {
		s.sectionEnd = math.Ceil(curr.StartTime/SectionLength) * SectionLength
		s.sectionStarted = true
	}

	for curr.StartTime > s.sectionEnd {
		s.peaks = append(s.peaks, s.currentSectionPeak)

		prevStart := 0.0
		if prev := curr.previous(0, objects); prev != nil {
			prevStart = prev.StartTime
		}

		s.currentSectionPeak = s.currentStrain * strainDecay(s.sectionEnd-prevStart, decayBase)
		s.sectionEnd += SectionLength
	}

	s.currentStrain *= strainDecay(decayDelta, decayBase)
	s.currentStrain += instantaneous

	s.objectStrains = append(s.objectStrains, s.currentStrain)
	s.currentSectionPeak = math.Max(s.currentSectionPeak, s.currentStrain)

	return s.currentStrain
}

// peakSequence returns every section peak, including the still-open final
// one, in chronological order. It is empty when no object was added.
func (s *strainTracker) peakSequence() []float64 {
	if !s.sectionStarted {
		return nil
	}

	out := make([]float64, 0, len(s.peaks)+1)
	out = append(out, s.peaks...)
	out = append(out, s.currentSectionPeak)
	return out
}

// DifficultyValueLegacy drops zero peaks, sorts descending and sums
// peak_i * DecayWeight^i. This is the weighting every strain skill in this
// variant (Aim, Speed, Stamina) actually uses.
func DifficultyValueLegacy(peaks []float64) float64 {
	nonZero := make([]float64, 0, len(peaks))
	for _, p := range peaks {
		if p > 0 {
			nonZero = append(nonZero, p)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(nonZero)))

	difficulty, weight := 0.0, 1.0
	for _, p := range nonZero {
		difficulty += p * weight
		weight *= DecayWeight
	}

	return difficulty
}

// DifficultyValueStandard additionally de-emphasizes the very top peaks
// before the same descending weighted sum (spec §4.4's "standard" variant).
// No skill in this module selects it — like the Rust source it's grounded
// on, it is kept as the general-purpose strain reducer alongside the
// "legacy" one every skill here actually uses.
func DifficultyValueStandard(peaks []float64) float64 {
	nonZero := make([]float64, 0, len(peaks))
	for _, p := range peaks {
		if p > 0 {
			nonZero = append(nonZero, p)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(nonZero)))

	for i := 0; i < len(nonZero) && i < ReducedSectionCount; i++ {
		clamped := mutils.Clamp(float64(i)/ReducedSectionCount, 0, 1)
		scale := math.Log10(mutils.Lerp(1, 10, clamped))
		nonZero[i] *= mutils.Lerp(ReducedStrainBaseline, 1, scale)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(nonZero)))

	difficulty, weight := 0.0, 1.0
	for _, p := range nonZero {
		difficulty += p * weight
		weight *= DecayWeight
	}

	return difficulty
}

// CountTopWeightedStrains gives a soft count of how many of the raw
// per-object strains in objectStrains are "consequential" relative to the
// largest one (spec §4.4).
func CountTopWeightedStrains(objectStrains []float64, _difficultyValue float64) float64 {
	pivot := 0.0
	for _, s := range objectStrains {
		if s > pivot {
			pivot = s
		}
	}

	if pivot == 0 {
		return 0
	}

	total := 0.0
	for _, s := range objectStrains {
		total += mutils.Logistic(10 * (s/pivot - 0.88))
	}

	return total
}
