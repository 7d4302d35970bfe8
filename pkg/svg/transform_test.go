package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	assert.Equal(t, "transform", Transform{}.AsAttribute().Name())
	assert.Equal(t, "", Transform{}.AsAttribute().Value())

	tests := []struct {
		name string
		t    Transform
		want string
	}{
		{"matrix", Transform{}.Matrix(1.2, 2.3, 3.4, 4.5, 5.6, 6.7), "matrix(1.2 2.3 3.4 4.5 5.6 6.7)"},
		{"translate pair", Transform{}.Translate(1.2, 2.3), "translate(1.2 2.3)"},
		{"translate single", Transform{}.TranslateX(1.2), "translate(1.2 0)"},
		{"translate point", Transform{}.TranslatePoint(Pt(1.2, 2.3)), "translate(1.2 2.3)"},
		{"scale pair", Transform{}.Scale(1.2, 2.3), "scale(1.2 2.3)"},
		{"scale point", Transform{}.ScalePoint(Pt(1.2, 2.3)), "scale(1.2 2.3)"},
		{"scale single", Transform{}.ScaleUniform(1.2), "scale(1.2 1.2)"},
		{"rotate around", Transform{}.RotateAround(45, 1.2, 2.3), "rotate(45 1.2 2.3)"},
		{"rotate around point", Transform{}.RotateAroundPoint(45, Pt(1.2, 2.3)), "rotate(45 1.2 2.3)"},
		{"rotate", Transform{}.Rotate(45), "rotate(45)"},
		{"skewX", Transform{}.SkewX(1.2), "skewX(1.2)"},
		{"skewY", Transform{}.SkewY(1.2), "skewY(1.2)"},
		{
			"chain keeps insertion order",
			Transform{}.RotateAround(45, 0, 0).SkewX(25).Translate(100, 0).Scale(2, 3).SkewY(30).Translate(0, 100),
			"rotate(45 0 0) skewX(25) translate(100 0) scale(2 3) skewY(30) translate(0 100)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.AsAttribute().Value())
		})
	}
}

func TestTransformIsAValue(t *testing.T) {
	base := Transform{}.Rotate(45)
	a := base.Translate(1, 2)
	b := base.Scale(3, 3)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, "rotate(45) translate(1 2)", a.AsAttribute().Value())
	assert.Equal(t, "rotate(45) scale(3 3)", b.AsAttribute().Value())
}
