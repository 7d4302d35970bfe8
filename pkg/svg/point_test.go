package svg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Pt(10, 20)

	assert.Equal(t, "10,20", p.String())
	assert.Equal(t, fmt.Sprintf("%v,%v", p.X, p.Y), p.String())
	assert.InDelta(t, 22.360679775, p.Length(), 1e-9)
	assert.InDelta(t, 1.1071487178, p.Radians(), 1e-9)
	assert.InDelta(t, 63.4349488229, p.Degrees(), 1e-9)

	pol := p.ToPolar()
	assert.InDelta(t, 1.1071487178, pol.Radians, 1e-9)
	assert.InDelta(t, 22.360679775, pol.Modulus, 1e-9)
	assert.InDelta(t, p.X, pol.X(), 1e-9)
	assert.InDelta(t, p.Y, pol.Y(), 1e-9)

	back := FromPolar(Polar{Radians: 1.1071487178, Modulus: 22.360679775})
	assert.True(t, back.Equal(p))

	tr := p.Traverse()
	assert.InDelta(t, -20.0, tr.X, 1e-9)
	assert.InDelta(t, 10.0, tr.Y, 1e-9)
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 20)

	assert.True(t, p.Add(Pt(-10, -20)).Equal(Pt(0, 0)))
	assert.True(t, p.Sub(Pt(10, 20)).Equal(Pt(0, 0)))
	assert.True(t, p.Mul(10).Equal(Pt(100, 200)))
	assert.True(t, p.Div(10).Equal(Pt(1, 2)))
	assert.InDelta(t, 10*(-5)+20*10, p.Dot(Pt(-5, 10)), 1e-9)
	assert.InDelta(t, 10*(-5)+20*10, Pt(-5, 10).Dot(p), 1e-9)
	assert.True(t, p.Equal(p))
	assert.False(t, Pt(3, 4).Equal(p))
}

func TestPolar(t *testing.T) {
	assert.InDelta(t, 0.5235987756, ToRadians(30), 1e-9)
	assert.InDelta(t, 30.0, ToDegrees(0.5235987756), 1e-8)

	p := Polar{Radians: ToRadians(30), Modulus: 5}
	assert.InDelta(t, 4.3301270189, p.X(), 1e-9)
	assert.InDelta(t, 2.5, p.Y(), 1e-9)
	assert.InDelta(t, 30.0, p.Degrees(), 1e-9)
}
