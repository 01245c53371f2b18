package diffcalc

import (
	"math"

	"github.com/osupp/ppplus/beatmap"
	"github.com/osupp/ppplus/internal/mutils"
	"github.com/osupp/ppplus/internal/vector"
)

// NormalizedRadius is the hit circle radius every distance is rescaled to,
// so aim calculations are CS-independent (spec §3).
const NormalizedRadius = 52.0

// MinDeltaTime is the floor applied to every inter-object delta before the
// low-strain rescale kicks in (spec §3).
const MinDeltaTime = 25.0

// PlayfieldBaseSize is the osu!standard playfield in osu! pixels.
var PlayfieldBaseSize = vector.NewVec2(512, 384)

// approxFollowCircleRadiusScale is the follow-circle approximation used by
// the slider lazy-cursor pass (spec §4.2): 3x the hit circle radius.
const approxFollowCircleRadiusScale = 3.0

// DifficultyObject is one enriched kinematic record, built per hit object
// starting at index 1 (the first object has none). See spec §3 for the
// full field contract.
type DifficultyObject struct {
	Idx       int
	Base      *beatmap.HitObject
	StartTime float64
	EndTime   float64
	DeltaTime float64

	GapTime           float64
	StrainTime        float64
	LastTwoStrainTime float64

	RawJumpDist float64
	JumpDist    float64
	TravelDist  float64
	TravelTime  float64

	// Angle is nil when fewer than three objects are available.
	Angle *float64

	BaseFlow      float64
	Flow          float64
	AngleLeniency float64

	Preempt    float64
	StreamBPM  float64
}

// Previous returns the DifficultyObject back-to-back positions before curr
// in objects: back(0) is the immediately preceding object, back(1) the one
// before that. Returns nil past the start of the slice.
func Previous(idx, back int, objects []*DifficultyObject) *DifficultyObject {
	i := idx - back - 1
	if i < 0 || i >= len(objects) {
		return nil
	}
	return objects[i]
}

func (d *DifficultyObject) previous(back int, objects []*DifficultyObject) *DifficultyObject {
	return Previous(d.Idx, back, objects)
}

// rescaleLowStrainTime implements spec §3's low-strain rescaling: values
// below threshold are lerp'd up towards targetMin instead of being left to
// blow up 1/strain-time based strain formulas.
func rescaleLowStrainTime(value, min, targetMin, threshold float64) float64 {
	if value < threshold {
		t := (value - min) / min
		return mutils.Lerp(targetMin, threshold, t)
	}
	return value
}

// getEndCursorPos returns the position aim must travel from/to for a given
// hit object: a slider's lazy end position, or the object's stacked
// position for anything else.
func getEndCursorPos(h *beatmap.HitObject) vector.Vector2 {
	if h.Kind == beatmap.KindSlider && h.Slider != nil {
		return h.Slider.LazyEndPos
	}
	return h.StackedPos()
}

// PrecomputeSliderCursors walks every slider's nested objects and fills in
// LazyTravelDist/LazyEndPos (spec §4.2). It must run, for every slider in
// the map, before BuildDifficultyObjects constructs anything that might
// reference that slider as a predecessor; it mutates objects in place and
// is idempotent.
func PrecomputeSliderCursors(objects []*beatmap.HitObject, radius float64) {
	approxFollowCircleRadius := radius * approxFollowCircleRadiusScale

	for _, h := range objects {
		if h.Kind != beatmap.KindSlider || h.Slider == nil {
			continue
		}

		slider := h.Slider
		cursor := h.Pos.Add(h.StackOffset)

		slider.LazyTravelDist = 0

		for i, nested := range slider.NestedObjects {
			movement := nested.Pos.Add(h.StackOffset).Sub(cursor)
			movementLen := movement.Length()

			if movementLen > approxFollowCircleRadius {
				movement = movement.Normalize()
				movementLen -= approxFollowCircleRadius
				cursor = cursor.Add(movement.Scl(movementLen))
				slider.LazyTravelDist += movementLen
			}

			if i == len(slider.NestedObjects)-1 {
				slider.LazyEndPos = cursor
			}
		}

		if len(slider.NestedObjects) == 0 {
			slider.LazyEndPos = cursor
		}
	}
}

// BuildDifficultyObjects runs the single forward pass described in spec
// §3's Lifecycle: PrecomputeSliderCursors must already have been called on
// objects. Returns one DifficultyObject per hit object after the first.
func BuildDifficultyObjects(objects []*beatmap.HitObject, clockRate, timePreempt float64, scaling ScalingFactor) []*DifficultyObject {
	if len(objects) < 2 {
		return nil
	}

	diffObjects := make([]*DifficultyObject, 0, len(objects)-1)

	for i := 1; i < len(objects); i++ {
		d := &DifficultyObject{Idx: i - 1, Base: objects[i]}
		diffObjects = append(diffObjects, d)
	}

	for i, d := range diffObjects {
		last := objects[i] // objects[i] precedes objects[i+1] == d.Base
		var lastLast *beatmap.HitObject
		if i > 0 {
			lastLast = objects[i-1]
		}

		var lastDiff, lastLastDiff *DifficultyObject
		if i > 0 {
			lastDiff = diffObjects[i-1]
		}
		if i > 1 {
			lastLastDiff = diffObjects[i-2]
		}

		d.run(last, lastLast, lastDiff, lastLastDiff, clockRate, timePreempt, scaling)
	}

	return diffObjects
}

func (d *DifficultyObject) run(
	lastObject *beatmap.HitObject,
	lastLastObject *beatmap.HitObject,
	lastDiff *DifficultyObject,
	lastLastDiff *DifficultyObject,
	clockRate, timePreempt float64,
	scaling ScalingFactor,
) {
	d.DeltaTime = (d.Base.StartTime - lastObject.StartTime) / clockRate
	d.StartTime = d.Base.StartTime / clockRate
	d.EndTime = d.Base.EndTime() / clockRate

	d.setDistances(lastObject, lastLastObject, clockRate, scaling)

	d.Preempt = timePreempt / clockRate
	d.StrainTime = math.Max(d.DeltaTime, MinDeltaTime)
	d.StreamBPM = mutils.MillisecondsToBPM(d.StrainTime)

	if lastLastObject != nil {
		d.LastTwoStrainTime = math.Max((d.Base.StartTime-lastLastObject.StartTime)/clockRate, MinDeltaTime*2)
	} else {
		d.LastTwoStrainTime = math.Inf(1)
	}

	switch {
	case lastObject.IsCircle():
		d.GapTime = d.StrainTime
	case lastObject.IsSlider(), lastObject.IsSpinner():
		d.GapTime = math.Max((d.Base.StartTime-lastObject.EndTime())/clockRate, MinDeltaTime)
	}

	d.StrainTime = rescaleLowStrainTime(d.StrainTime, 25, 30, 50)
	d.LastTwoStrainTime = rescaleLowStrainTime(d.LastTwoStrainTime, 50, 60, 100)
	d.GapTime = rescaleLowStrainTime(d.GapTime, 25, 30, 50)

	d.setFlowValues(lastDiff, lastLastDiff)
}

func (d *DifficultyObject) setDistances(
	lastObject *beatmap.HitObject,
	lastLastObject *beatmap.HitObject,
	clockRate float64,
	scaling ScalingFactor,
) {
	factor := scaling.Factor

	switch {
	case lastObject.IsCircle():
		d.TravelTime = d.StrainTime
	case lastObject.Kind == beatmap.KindSlider && lastObject.Slider != nil:
		d.TravelDist = lastObject.Slider.LazyTravelDist * factor
		d.TravelTime = math.Max((d.StartTime-lastObject.EndTime())/clockRate, MinDeltaTime)
	case lastObject.IsSpinner():
		d.TravelTime = math.Max((d.StartTime-lastObject.EndTime())/clockRate, MinDeltaTime)
	}

	lastCursorPos := getEndCursorPos(lastObject)

	if !d.Base.IsSpinner() {
		d.RawJumpDist = d.Base.StackedPos().Sub(lastCursorPos).Length()
	}
	d.JumpDist = d.Base.StackedPos().Scl(factor).Sub(lastCursorPos.Scl(factor)).Length()

	if lastLastObject != nil {
		lastLastCursorPos := getEndCursorPos(lastLastObject)

		v1 := lastLastCursorPos.Sub(lastObject.StackedPos())
		v2 := d.Base.StackedPos().Sub(lastCursorPos)

		dot := v1.Dot(v2)
		det := v1.Cross(v2)

		angle := math.Abs(math.Atan2(det, dot))
		d.Angle = &angle
	}
}

// DoubletapNess estimates how likely this object and next form a doubletap
// rather than two deliberately distinct hits, from their delta-time
// symmetry. It is not consumed by any skill evaluator named in spec §4 (the
// original source reserves it for a future speed rework); it's kept here,
// exported, for callers that want it.
func (d *DifficultyObject) DoubletapNess(next *DifficultyObject, hitWindow float64) float64 {
	if next == nil {
		return 0
	}

	if d.Base.IsSpinner() {
		hitWindow = 0
	}

	currDelta := math.Max(d.DeltaTime, 1)
	nextDelta := math.Max(next.DeltaTime, 1)
	deltaDiff := math.Abs(nextDelta - currDelta)
	speedRatio := currDelta / math.Max(currDelta, deltaDiff)
	windowRatio := math.Pow(math.Min(currDelta/hitWindow, 1), 2)

	return 1 - math.Pow(speedRatio, 1-windowRatio)
}
