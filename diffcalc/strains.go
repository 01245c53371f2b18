package diffcalc

import "github.com/osupp/ppplus/beatmap"

// Strains is the per-400ms-section strain-peak sequence for every
// strain-section-based skill, suitable for plotting a map's difficulty
// over time (spec's supplemented "strains export" feature, carried over
// from the original's own strains.rs).
type Strains struct {
	Aim     []float64
	RawAim  []float64
	JumpAim []float64
	FlowAim []float64
	Speed   []float64
	Stamina []float64
}

// StrainsSectionLen is the wall-clock width, in ms, between two entries of
// any Strains slice.
const StrainsSectionLen = SectionLength

// CalculateStrains runs the same difficulty pipeline as Calculate but
// returns section-peak timelines instead of aggregated ratings.
// RhythmComplexity is omitted: it isn't strain-section-based (see
// RhythmComplexity's doc comment), so it has no peak sequence to export.
func CalculateStrains(bm *beatmap.Beatmap, d beatmap.Difficulty) Strains {
	attrs := bm.Attributes(d)
	scaling := NewScalingFactor(attrs.CS)

	take := d.PassedObjectsOrAll(len(bm.HitObjects))
	objects := bm.HitObjects[:take]

	PrecomputeSliderCursors(objects, scaling.Radius)

	diffObjects := BuildDifficultyObjects(objects, attrs.ClockRate, attrs.Preempt, scaling)

	sk := newSkills(scaling.Radius, d.Mods, d.Lazer)
	for _, obj := range diffObjects {
		sk.process(obj, diffObjects)
	}

	return Strains{
		Aim:     sk.aim.strain.peakSequence(),
		RawAim:  sk.rawAim.strain.peakSequence(),
		JumpAim: sk.jumpAim.strain.peakSequence(),
		FlowAim: sk.flowAim.strain.peakSequence(),
		Speed:   sk.speed.strain.peakSequence(),
		Stamina: sk.stamina.strain.peakSequence(),
	}
}
