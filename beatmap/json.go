package beatmap

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/osupp/ppplus/internal/vector"
)

// jsonNested mirrors NestedObject for decoding.
type jsonNested struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Time float64 `json:"time"`
}

type jsonHitObject struct {
	Kind        string       `json:"kind"` // "circle" | "slider" | "spinner"
	StartTime   float64      `json:"start_time"`
	EndTime     float64      `json:"end_time"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	StackOffset []float64    `json:"stack_offset,omitempty"`
	Nested      []jsonNested `json:"nested_objects,omitempty"`
}

type jsonBeatmap struct {
	CS         float64         `json:"cs"`
	AR         float64         `json:"ar"`
	OD         float64         `json:"od"`
	HP         float64         `json:"hp"`
	HitObjects []jsonHitObject `json:"hit_objects"`
}

// FromJSON decodes a minimal JSON description of an already-converted
// osu!standard map: no curve evaluation or stacking is performed, the
// fields are taken as given. This exists purely so tests and the cmd/ppcalc
// CLI have a file format to exercise the core with, without reaching into
// .osu slider-curve/stacking territory (explicitly out of scope, see §1).
func FromJSON(r io.Reader) (*Beatmap, error) {
	var raw jsonBeatmap
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("beatmap: decode json: %w", err)
	}

	bm := &Beatmap{CS: raw.CS, AR: raw.AR, OD: raw.OD, HP: raw.HP}

	for i, jh := range raw.HitObjects {
		h := &HitObject{
			StartTime: jh.StartTime,
			Pos:       vector.NewVec2(jh.X, jh.Y),
		}

		if len(jh.StackOffset) == 2 {
			h.StackOffset = vector.NewVec2(jh.StackOffset[0], jh.StackOffset[1])
		}

		switch jh.Kind {
		case "circle":
			h.Kind = KindCircle
			h.EndTimeVal = jh.StartTime
		case "slider":
			h.Kind = KindSlider
			h.EndTimeVal = jh.EndTime
			nested := make([]NestedObject, len(jh.Nested))
			for j, n := range jh.Nested {
				nested[j] = NestedObject{Pos: vector.NewVec2(n.X, n.Y), Time: n.Time}
			}
			h.Slider = &SliderData{NestedObjects: nested, SpanEndTime: jh.EndTime}
		case "spinner":
			h.Kind = KindSpinner
			h.EndTimeVal = jh.EndTime
		default:
			return nil, fmt.Errorf("beatmap: hit object %d: unknown kind %q", i, jh.Kind)
		}

		bm.HitObjects = append(bm.HitObjects, h)
	}

	return bm, nil
}
