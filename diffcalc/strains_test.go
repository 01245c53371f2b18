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

func TestCalculateStrains_SectionCountMatchesMapDuration(t *testing.T) {
	fm, err := testutil.NewFixtureMap("testdata")
	require.NoError(t, err)

	bm, err := fm.Load("stream")
	require.NoError(t, err)

	strains := diffcalc.CalculateStrains(bm, beatmap.Difficulty{})

	first := bm.HitObjects[0].StartTime
	last := bm.HitObjects[len(bm.HitObjects)-1].StartTime
	expected := math.Ceil((last-first)/diffcalc.StrainsSectionLen) + 1

	assert.InDelta(t, expected, float64(len(strains.Aim)), 1)
	assert.InDelta(t, expected, float64(len(strains.Speed)), 1)
	assert.InDelta(t, expected, float64(len(strains.Stamina)), 1)
}

func TestCalculateStrains_EmptyMap(t *testing.T) {
	bm := &beatmap.Beatmap{CS: 4, AR: 9, OD: 8, HP: 5}
	strains := diffcalc.CalculateStrains(bm, beatmap.Difficulty{})

	assert.Empty(t, strains.Aim)
	assert.Empty(t, strains.Speed)
}

func TestCalculateStrains_AllSkillsSameLength(t *testing.T) {
	fm, err := testutil.NewFixtureMap("testdata")
	require.NoError(t, err)

	bm, err := fm.Load("jump_map")
	require.NoError(t, err)

	strains := diffcalc.CalculateStrains(bm, beatmap.Difficulty{})

	assert.Equal(t, len(strains.Aim), len(strains.RawAim))
	assert.Equal(t, len(strains.Aim), len(strains.JumpAim))
	assert.Equal(t, len(strains.Aim), len(strains.FlowAim))
	assert.Equal(t, len(strains.Aim), len(strains.Speed))
	assert.Equal(t, len(strains.Aim), len(strains.Stamina))
}
