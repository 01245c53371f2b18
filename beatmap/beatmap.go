// Package beatmap defines the read-only osu!standard map abstraction the
// difficulty and performance calculators consume (spec §3/§6). Parsing a
// real .osu file — curve evaluation, stacking, slider-tick generation,
// mode conversion — is explicitly out of scope; FromJSON exists only as a
// minimal construction path for tests and the cmd/ppcalc demo CLI.
package beatmap

import "math"

// Beatmap is the enriched, already-converted osu!standard map the core
// operates on. HitObjects must be sorted by StartTime.
type Beatmap struct {
	HitObjects []*HitObject

	// Raw, pre-mod difficulty settings as stored on the map.
	CS, AR, OD, HP float64
}

// Difficulty is the per-calculation configuration: which mods are active,
// any clock-rate override, how many objects to consider, and whether the
// score being evaluated is a lazer-rules score (affects slider-head
// accuracy bookkeeping, see rhythm complexity in package diffcalc).
type Difficulty struct {
	Mods              Mods
	ClockRateOverride float64 // 0 means "use Mods.ClockRate()"
	PassedObjects     int     // 0 (or >= len(HitObjects)) means "all objects"
	Lazer             bool
}

// ClockRate returns the effective clock rate for this calculation.
func (d Difficulty) ClockRate() float64 {
	if d.ClockRateOverride > 0 {
		return d.ClockRateOverride
	}
	return d.Mods.ClockRate()
}

// PassedObjectsOrAll clamps PassedObjects against n, treating 0 (or
// anything >= n) as "all objects".
func (d Difficulty) PassedObjectsOrAll(n int) int {
	if d.PassedObjects <= 0 || d.PassedObjects > n {
		return n
	}
	return d.PassedObjects
}

// HitWindows are the three accuracy-judgement half-widths, in milliseconds,
// derived from the post-mod OD. They are NOT clock-rate adjusted: like the
// rest of DifficultyAttributes, they describe the map independent of
// playback speed.
type HitWindows struct {
	Great, Ok, Meh float64
}

// GreatHitWindowFromOD and ODFromGreatHitWindow are exact inverses of each
// other over the classic osu!standard OD range (and beyond, for mod-boosted
// OD past 10), satisfying spec §8 property 6.
func GreatHitWindowFromOD(od float64) float64 {
	return 80 - 6*od
}

func ODFromGreatHitWindow(window float64) float64 {
	return (80 - window) / 6
}

func hitWindowsFromOD(od float64) HitWindows {
	return HitWindows{
		Great: GreatHitWindowFromOD(od),
		Ok:    140 - 8*od,
		Meh:   200 - 10*od,
	}
}

// preemptFromAR is the standard osu!standard AR-to-preempt-time (ms)
// formula; below AR5 it's linear from 1800ms, above AR5 linear to 450ms at
// AR10 (and continues past that for mod-boosted AR > 10).
func preemptFromAR(ar float64) float64 {
	if ar <= 5 {
		return 1800 - 120*ar
	}
	return 1200 - 150*(ar-5)
}

// Attributes is the fully mod-adjusted set of map attributes (§4.1's
// scaling factor is derived from Attributes.CS by package diffcalc).
type Attributes struct {
	CS, AR, OD, HP float64
	HitWindows     HitWindows
	Preempt        float64 // ms, NOT clock-rate adjusted (see Difficulty.ClockRate)
	ClockRate      float64
}

// Attributes computes the mod-adjusted map attributes for this difficulty
// configuration.
func (b *Beatmap) Attributes(d Difficulty) Attributes {
	mods := d.Mods

	cs := math.Min(b.CS*mods.csMultiplier(), 10)
	ar := math.Min(b.AR*mods.arodhpMultiplier(), 10)
	od := math.Min(b.OD*mods.arodhpMultiplier(), 10)
	hp := math.Min(b.HP*mods.arodhpMultiplier(), 10)

	return Attributes{
		CS:         cs,
		AR:         ar,
		OD:         od,
		HP:         hp,
		HitWindows: hitWindowsFromOD(od),
		Preempt:    preemptFromAR(ar),
		ClockRate:  d.ClockRate(),
	}
}

// NCircles, NSliders and NSpinners count the beatmap's object kinds among
// the first PassedObjectsOrAll(len(HitObjects)) objects.
func (b *Beatmap) NCircles(d Difficulty) (n int) {
	return b.countKind(d, KindCircle)
}

func (b *Beatmap) NSliders(d Difficulty) (n int) {
	return b.countKind(d, KindSlider)
}

func (b *Beatmap) NSpinners(d Difficulty) (n int) {
	return b.countKind(d, KindSpinner)
}

func (b *Beatmap) countKind(d Difficulty, k Kind) int {
	take := d.PassedObjectsOrAll(len(b.HitObjects))
	n := 0
	for _, h := range b.HitObjects[:take] {
		if h.Kind == k {
			n++
		}
	}
	return n
}

// MaxCombo returns the maximum achievable combo among the first
// PassedObjectsOrAll objects: one per circle/spinner, plus one per slider
// head and one per nested slider object (ticks, repeats, tail).
func (b *Beatmap) MaxCombo(d Difficulty) int {
	take := d.PassedObjectsOrAll(len(b.HitObjects))
	combo := 0
	for _, h := range b.HitObjects[:take] {
		combo++
		if h.Kind == KindSlider && h.Slider != nil {
			combo += len(h.Slider.NestedObjects)
		}
	}
	return combo
}
