package diffcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osupp/ppplus/diffcalc"
)

func TestDifficultyValueLegacy_DropsZerosAndSortsDescending(t *testing.T) {
	peaks := []float64{0, 3, 0, 5, 1}
	value := diffcalc.DifficultyValueLegacy(peaks)

	want := 5.0 + 3.0*diffcalc.DecayWeight + 1.0*diffcalc.DecayWeight*diffcalc.DecayWeight
	assert.InDelta(t, want, value, 1e-9)
}

func TestDifficultyValueLegacy_AllZero(t *testing.T) {
	assert.Equal(t, 0.0, diffcalc.DifficultyValueLegacy([]float64{0, 0, 0}))
}

func TestDifficultyValueStandard_DeemphasizesTopPeaks(t *testing.T) {
	peaks := make([]float64, 20)
	for i := range peaks {
		peaks[i] = 10
	}

	standard := diffcalc.DifficultyValueStandard(peaks)
	legacy := diffcalc.DifficultyValueLegacy(peaks)

	assert.Less(t, standard, legacy)
}

func TestCountTopWeightedStrains_Bounds(t *testing.T) {
	strains := []float64{1, 2, 3, 10, 10, 10}
	count := diffcalc.CountTopWeightedStrains(strains, 0)

	assert.GreaterOrEqual(t, count, 0.0)
	assert.LessOrEqual(t, count, float64(len(strains)))
}

func TestCountTopWeightedStrains_AllZero(t *testing.T) {
	assert.Equal(t, 0.0, diffcalc.CountTopWeightedStrains([]float64{0, 0, 0}, 0))
}
