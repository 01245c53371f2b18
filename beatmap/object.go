package beatmap

import "github.com/osupp/ppplus/internal/vector"

// Kind discriminates the three osu!standard hit object shapes.
type Kind int

const (
	KindCircle Kind = iota
	KindSlider
	KindSpinner
)

// NestedObject is one point of a slider's path (tick, repeat, tail or
// legacy control point), already expressed in playfield coordinates.
type NestedObject struct {
	Pos  vector.Vector2
	Time float64
}

// SliderData holds the slider-specific sub-record of a HitObject. Before
// PrecomputeSliderCursors runs, LazyTravelDist and LazyEndPos are zero;
// after it runs they hold the lazy-follow-circle approximation described in
// spec §4.2.
type SliderData struct {
	NestedObjects  []NestedObject
	SpanEndTime    float64 // the slider's own end time (start_time + duration)
	LazyTravelDist float64
	LazyEndPos     vector.Vector2
}

// HitObject is a single osu!standard hit object as the difficulty core
// consumes it: already stacked, already mode-converted. Building these from
// a real .osu file (curve evaluation, stacking, spinner auto-conversion) is
// explicitly out of this module's scope; see beatmap.FromJSON for a minimal
// test/demo construction path.
type HitObject struct {
	StartTime   float64
	EndTimeVal  float64 // precomputed: == StartTime for circles, span end for sliders/spinners
	Pos         vector.Vector2
	StackOffset vector.Vector2
	Kind        Kind
	Slider      *SliderData // non-nil iff Kind == KindSlider
}

// EndTime returns the time at which this object stops being interactable:
// the start time for circles, the span/spin end time otherwise.
func (h *HitObject) EndTime() float64 {
	return h.EndTimeVal
}

// StackedPos returns the object's position after stack offset is applied.
func (h *HitObject) StackedPos() vector.Vector2 {
	return h.Pos.Add(h.StackOffset)
}

func (h *HitObject) IsCircle() bool  { return h.Kind == KindCircle }
func (h *HitObject) IsSlider() bool  { return h.Kind == KindSlider }
func (h *HitObject) IsSpinner() bool { return h.Kind == KindSpinner }
