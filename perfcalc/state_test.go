package perfcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osupp/ppplus/perfcalc"
)

func TestScoreState_TotalHits(t *testing.T) {
	s := perfcalc.ScoreState{N300: 10, N100: 2, N50: 1, Misses: 1}
	assert.Equal(t, 14, s.TotalHits())
}

func TestScoreState_Accuracy_FullCombo(t *testing.T) {
	s := perfcalc.ScoreState{N300: 100}
	assert.InDelta(t, 1.0, s.Accuracy(), 1e-9)
}

func TestScoreState_Accuracy_Mixed(t *testing.T) {
	s := perfcalc.ScoreState{N300: 1, N100: 1, N50: 1, Misses: 1}
	want := float64(6+2+1) / float64(4*6)
	assert.InDelta(t, want, s.Accuracy(), 1e-9)
}

func TestScoreState_Accuracy_Empty(t *testing.T) {
	var s perfcalc.ScoreState
	assert.Equal(t, 0.0, s.Accuracy())
}
