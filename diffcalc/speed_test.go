package diffcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osupp/ppplus/diffcalc"
)

func TestSpeed_DifficultyValue_NonNegative(t *testing.T) {
	objects := buildDiffObjects(t, "stream")

	var s diffcalc.Speed
	for _, o := range objects {
		s.Process(o, objects)
	}

	assert.GreaterOrEqual(t, s.DifficultyValue(), 0.0)
}

func TestSpeed_FasterStreamIsHarder(t *testing.T) {
	fastObjects := buildDiffObjects(t, "stream")
	slowObjects := buildDiffObjects(t, "slider_map")

	var fast, slow diffcalc.Speed
	for _, o := range fastObjects {
		fast.Process(o, fastObjects)
	}
	for _, o := range slowObjects {
		slow.Process(o, slowObjects)
	}

	assert.Greater(t, fast.DifficultyValue(), slow.DifficultyValue())
}

func TestSpeed_CountDifficultStrains_Bounds(t *testing.T) {
	objects := buildDiffObjects(t, "stream")

	var s diffcalc.Speed
	for _, o := range objects {
		s.Process(o, objects)
	}

	value := s.DifficultyValue()
	count := s.CountDifficultStrains(value)

	assert.GreaterOrEqual(t, count, 0.0)
	assert.LessOrEqual(t, count, float64(len(objects)))
}

func TestSpeed_EmptySequence(t *testing.T) {
	var s diffcalc.Speed
	assert.Equal(t, 0.0, s.DifficultyValue())
}
