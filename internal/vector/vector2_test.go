package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osupp/ppplus/internal/vector"
)

func TestVector2_Arithmetic(t *testing.T) {
	a := vector.NewVec2(3, 4)
	b := vector.NewVec2(1, 2)

	assert.Equal(t, vector.NewVec2(4, 6), a.Add(b))
	assert.Equal(t, vector.NewVec2(2, 2), a.Sub(b))
	assert.Equal(t, vector.NewVec2(6, 8), a.Scl(2))
	assert.Equal(t, 5.0, a.Length())
}

func TestVector2_DotCross(t *testing.T) {
	a := vector.NewVec2(1, 0)
	b := vector.NewVec2(0, 1)

	assert.Equal(t, 0.0, a.Dot(b))
	assert.Equal(t, 1.0, a.Cross(b))
}

func TestVector2_Normalize(t *testing.T) {
	v := vector.NewVec2(3, 4).Normalize()
	assert.InDelta(t, 1.0, v.Length(), 1e-9)

	zero := vector.Vector2{}.Normalize()
	assert.Equal(t, vector.Vector2{}, zero)
}

func TestVector2_Dst(t *testing.T) {
	a := vector.NewVec2(0, 0)
	b := vector.NewVec2(3, 4)
	assert.Equal(t, 5.0, a.Dst(b))
}

func TestVector2_AngleViaDotCross(t *testing.T) {
	a := vector.NewVec2(1, 0)
	b := vector.NewVec2(0, 1)

	angle := math.Atan2(a.Cross(b), a.Dot(b))
	assert.InDelta(t, math.Pi/2, angle, 1e-9)
}
