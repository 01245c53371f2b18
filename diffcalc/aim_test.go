package diffcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osupp/ppplus/diffcalc"
	"github.com/osupp/ppplus/internal/testutil"
)

func buildDiffObjects(t *testing.T, name string) []*diffcalc.DifficultyObject {
	t.Helper()

	fm, err := testutil.NewFixtureMap("testdata")
	require.NoError(t, err)

	bm, err := fm.Load(name)
	require.NoError(t, err)

	scaling := diffcalc.NewScalingFactor(bm.CS)
	diffcalc.PrecomputeSliderCursors(bm.HitObjects, scaling.Radius)

	return diffcalc.BuildDifficultyObjects(bm.HitObjects, 1, 1200, scaling)
}

func runAim(objects []*diffcalc.DifficultyObject, typ diffcalc.AimType, radius float64) *diffcalc.Aim {
	aim := &diffcalc.Aim{Radius: radius, Type: typ}
	for _, o := range objects {
		aim.Process(o, objects)
	}
	return aim
}

func TestAim_JumpMap_JumpHigherThanFlow(t *testing.T) {
	objects := buildDiffObjects(t, "jump_map")

	jumpAim := runAim(objects, diffcalc.AimJump, diffcalc.NewScalingFactor(4).Radius)
	flowAim := runAim(objects, diffcalc.AimFlow, diffcalc.NewScalingFactor(4).Radius)

	assert.Greater(t, jumpAim.DifficultyValue(), flowAim.DifficultyValue())
}

func TestAim_StreamMap_FlowHigherThanJump(t *testing.T) {
	objects := buildDiffObjects(t, "stream")

	jumpAim := runAim(objects, diffcalc.AimJump, diffcalc.NewScalingFactor(4).Radius)
	flowAim := runAim(objects, diffcalc.AimFlow, diffcalc.NewScalingFactor(4).Radius)

	assert.Greater(t, flowAim.DifficultyValue(), jumpAim.DifficultyValue())
}

func TestAim_All_TwoCirclesNonNegative(t *testing.T) {
	objects := buildDiffObjects(t, "two_circles")

	all := runAim(objects, diffcalc.AimAll, diffcalc.NewScalingFactor(4).Radius)
	assert.GreaterOrEqual(t, all.DifficultyValue(), 0.0)
}

func TestAim_RawIgnoresSmallCircleBonus(t *testing.T) {
	objects := buildDiffObjects(t, "jump_map")

	radius := diffcalc.NewScalingFactor(4).Radius
	raw := runAim(objects, diffcalc.AimRaw, radius)
	all := runAim(objects, diffcalc.AimAll, radius)

	// Raw sums jump+flow without the small-circle bonus applied to All, so
	// it should never exceed All on a map dominated by jump content with a
	// non-trivial circle size.
	assert.LessOrEqual(t, raw.DifficultyValue(), all.DifficultyValue())
}

func TestAim_GetDifficultSliders_SliderMap(t *testing.T) {
	objects := buildDiffObjects(t, "slider_map")
	radius := diffcalc.NewScalingFactor(4).Radius

	all := runAim(objects, diffcalc.AimAll, radius)
	difficult := all.GetDifficultSliders()

	assert.GreaterOrEqual(t, difficult, 0.0)

	sliders := 0
	for _, o := range objects {
		if o.Base.IsSlider() {
			sliders++
		}
	}
	assert.LessOrEqual(t, difficult, float64(sliders))
}

func TestAim_GetDifficultSliders_NoSliders(t *testing.T) {
	objects := buildDiffObjects(t, "stream")
	radius := diffcalc.NewScalingFactor(4).Radius

	all := runAim(objects, diffcalc.AimAll, radius)
	assert.Equal(t, 0.0, all.GetDifficultSliders())
}

func TestAim_CountDifficultStrains_Bounds(t *testing.T) {
	objects := buildDiffObjects(t, "jump_map")
	radius := diffcalc.NewScalingFactor(4).Radius

	all := runAim(objects, diffcalc.AimAll, radius)
	value := all.DifficultyValue()
	count := all.CountDifficultStrains(value)

	assert.GreaterOrEqual(t, count, 0.0)
	assert.LessOrEqual(t, count, float64(len(objects)))
}

func TestAim_HiddenIncreasesReadingMultiplier(t *testing.T) {
	objects := buildDiffObjects(t, "stream")
	radius := diffcalc.NewScalingFactor(4).Radius

	noHD := &diffcalc.Aim{Radius: radius, Type: diffcalc.AimAll}
	withHD := &diffcalc.Aim{Radius: radius, Type: diffcalc.AimAll, HasHidden: true}

	for _, o := range objects {
		noHD.Process(o, objects)
		withHD.Process(o, objects)
	}

	assert.GreaterOrEqual(t, withHD.DifficultyValue(), noHD.DifficultyValue())
}
