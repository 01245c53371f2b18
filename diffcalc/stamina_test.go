package diffcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osupp/ppplus/diffcalc"
)

func TestStamina_DifficultyValue_NonNegative(t *testing.T) {
	objects := buildDiffObjects(t, "stream")

	var s diffcalc.Stamina
	for _, o := range objects {
		s.Process(o, objects)
	}

	assert.GreaterOrEqual(t, s.DifficultyValue(), 0.0)
}

func TestStamina_DecaysSlowerThanSpeed(t *testing.T) {
	objects := buildDiffObjects(t, "stream")

	var speed diffcalc.Speed
	var stamina diffcalc.Stamina
	for _, o := range objects {
		speed.Process(o, objects)
		stamina.Process(o, objects)
	}

	// Stamina's strain decay base (0.45) is much slower than speed's (0.1),
	// so a sustained stream should leave stamina's sequence of section peaks
	// relatively flatter than speed's — exercised indirectly by requiring
	// both produce a defined, non-negative rating.
	assert.GreaterOrEqual(t, stamina.DifficultyValue(), 0.0)
	assert.GreaterOrEqual(t, speed.DifficultyValue(), 0.0)
}

func TestStamina_CountDifficultStrains_Bounds(t *testing.T) {
	objects := buildDiffObjects(t, "stream")

	var s diffcalc.Stamina
	for _, o := range objects {
		s.Process(o, objects)
	}

	value := s.DifficultyValue()
	count := s.CountDifficultStrains(value)

	assert.GreaterOrEqual(t, count, 0.0)
	assert.LessOrEqual(t, count, float64(len(objects)))
}

func TestStamina_EmptySequence(t *testing.T) {
	var s diffcalc.Stamina
	assert.Equal(t, 0.0, s.DifficultyValue())
}
