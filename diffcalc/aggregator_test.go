package diffcalc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osupp/ppplus/beatmap"
	"github.com/osupp/ppplus/diffcalc"
	"github.com/osupp/ppplus/internal/testutil"
)

func loadBeatmap(t *testing.T, name string) *beatmap.Beatmap {
	t.Helper()

	fm, err := testutil.NewFixtureMap("testdata")
	require.NoError(t, err)

	bm, err := fm.Load(name)
	require.NoError(t, err)

	return bm
}

func TestCalculate_EmptyMap(t *testing.T) {
	bm := &beatmap.Beatmap{CS: 4, AR: 9, OD: 8, HP: 5}
	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{})

	assert.Equal(t, 0.0, attrs.Aim)
	assert.Equal(t, 0.0, attrs.Stars)
	assert.Equal(t, 0, attrs.NObjects())
}

func TestCalculate_SingleCircle(t *testing.T) {
	bm := &beatmap.Beatmap{
		CS: 4, AR: 9, OD: 8, HP: 5,
		HitObjects: []*beatmap.HitObject{
			{Kind: beatmap.KindCircle, StartTime: 1000, EndTimeVal: 1000},
		},
	}

	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{})
	assert.Equal(t, 0.0, attrs.Stars, "a single object has no difficulty object, so no strain is ever recorded")
}

func TestCalculate_TwoCircles(t *testing.T) {
	bm := loadBeatmap(t, "two_circles")
	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{})

	assert.Greater(t, attrs.Stars, 0.0)
	assert.True(t, math.IsInf(attrs.Stars, 0) == false)
	assert.GreaterOrEqual(t, attrs.Accuracy, 0.0)
}

func TestCalculate_Stream_FlowDominant(t *testing.T) {
	bm := loadBeatmap(t, "stream")
	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{})

	assert.Greater(t, attrs.Stamina, 0.0)
	assert.Greater(t, attrs.Stars, 0.0)
}

func TestCalculate_JumpMap_JumpExceedsFlow(t *testing.T) {
	bm := loadBeatmap(t, "jump_map")
	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{})

	assert.Greater(t, attrs.Jump, attrs.Flow)
}

func TestCalculate_SliderMap_DifficultSliders(t *testing.T) {
	bm := loadBeatmap(t, "slider_map")
	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{})

	assert.GreaterOrEqual(t, attrs.AimDifficultSliderCount, 0.0)
	assert.LessOrEqual(t, attrs.AimDifficultSliderCount, float64(attrs.NSliders))
}

func TestCalculate_RelaxZeroesSpeed(t *testing.T) {
	bm := loadBeatmap(t, "stream")

	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{Mods: beatmap.ModRelax})
	assert.Equal(t, 0.0, attrs.Speed)
	assert.GreaterOrEqual(t, attrs.Stars, 0.0)
}

func TestCalculate_AutopilotZeroesAim(t *testing.T) {
	bm := loadBeatmap(t, "jump_map")

	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{Mods: beatmap.ModAutopilot})
	assert.Equal(t, 0.0, attrs.Aim)
}

func TestCalculate_NoSliderMap_ZeroDifficultSliders(t *testing.T) {
	bm := loadBeatmap(t, "stream")
	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{})

	assert.Equal(t, 0, attrs.NSliders)
	assert.Equal(t, 0.0, attrs.AimDifficultSliderCount)
}

func TestCalculate_ODRoundTrip(t *testing.T) {
	bm := loadBeatmap(t, "two_circles")
	attrs := diffcalc.Calculate(bm, beatmap.Difficulty{})

	assert.InDelta(t, bm.OD, attrs.OD(), 1e-9)
}
