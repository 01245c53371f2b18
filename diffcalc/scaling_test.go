package diffcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osupp/ppplus/diffcalc"
)

func TestNewScalingFactor(t *testing.T) {
	sf := diffcalc.NewScalingFactor(4)

	assert.InDelta(t, 54.4-4.48*4, sf.Radius, 1e-9)
	assert.InDelta(t, diffcalc.NormalizedRadius/sf.Radius, sf.Factor, 1e-9)
}

func TestNewScalingFactor_SmallerCircleHigherFactor(t *testing.T) {
	small := diffcalc.NewScalingFactor(10) // CS10: smallest circle
	big := diffcalc.NewScalingFactor(0)    // CS0: largest circle

	assert.Greater(t, small.Factor, big.Factor)
}
