package diffcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osupp/ppplus/diffcalc"
	"github.com/osupp/ppplus/internal/testutil"
)

func TestBuildDifficultyObjects_TwoCircles(t *testing.T) {
	fm, err := testutil.NewFixtureMap("testdata")
	require.NoError(t, err)

	bm, err := fm.Load("two_circles")
	require.NoError(t, err)

	scaling := diffcalc.NewScalingFactor(bm.CS)
	diffcalc.PrecomputeSliderCursors(bm.HitObjects, scaling.Radius)

	diffObjects := diffcalc.BuildDifficultyObjects(bm.HitObjects, 1, 1200, scaling)
	require.Len(t, diffObjects, 1)

	d := diffObjects[0]
	assert.Equal(t, 200.0, d.DeltaTime)
	assert.Nil(t, d.Angle, "angle is undefined with fewer than 3 objects")
	assert.Greater(t, d.JumpDist, 0.0)
}

func TestBuildDifficultyObjects_EmptyOrSingle(t *testing.T) {
	scaling := diffcalc.NewScalingFactor(4)

	assert.Nil(t, diffcalc.BuildDifficultyObjects(nil, 1, 1200, scaling))
}

func TestPrecomputeSliderCursors_Idempotent(t *testing.T) {
	fm, err := testutil.NewFixtureMap("testdata")
	require.NoError(t, err)

	bm, err := fm.Load("slider_map")
	require.NoError(t, err)

	scaling := diffcalc.NewScalingFactor(bm.CS)

	diffcalc.PrecomputeSliderCursors(bm.HitObjects, scaling.Radius)
	firstPass := bm.HitObjects[0].Slider.LazyEndPos

	diffcalc.PrecomputeSliderCursors(bm.HitObjects, scaling.Radius)
	secondPass := bm.HitObjects[0].Slider.LazyEndPos

	assert.Equal(t, firstPass, secondPass)
}

func TestDoubletapNess_SymmetricDeltasGiveLowValue(t *testing.T) {
	fm, err := testutil.NewFixtureMap("testdata")
	require.NoError(t, err)

	bm, err := fm.Load("stream")
	require.NoError(t, err)

	scaling := diffcalc.NewScalingFactor(bm.CS)
	diffcalc.PrecomputeSliderCursors(bm.HitObjects, scaling.Radius)
	diffObjects := diffcalc.BuildDifficultyObjects(bm.HitObjects, 1, 1200, scaling)

	require.Greater(t, len(diffObjects), 2)

	dt := diffObjects[0].DoubletapNess(diffObjects[1], 50)
	assert.GreaterOrEqual(t, dt, 0.0)
	assert.LessOrEqual(t, dt, 1.0)
}

func TestDoubletapNess_NilNext(t *testing.T) {
	d := &diffcalc.DifficultyObject{}
	assert.Equal(t, 0.0, d.DoubletapNess(nil, 50))
}
