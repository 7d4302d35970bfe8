package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathCommands(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		want string
	}{
		{"move cubic", NewPath().MoveTo(Pt(10, 10)).CubicTo(Pt(20, 20), Pt(40, 20), Pt(50, 10)), "M 10 10 C 20 20,40 20,50 10"},
		{"relative move", NewPath().MoveToRel(Pt(1, 2)), "m 1 2"},
		{"lines", NewPath().LineTo(Pt(1, 2)).LineToRel(Pt(-3, 4)), "L 1 2 l -3 4"},
		{"horizontal", NewPath().HorizontalTo(5).HorizontalToRel(-5), "H 5 h -5"},
		{"vertical", NewPath().VerticalTo(5).VerticalToRel(-5), "V 5 v -5"},
		{"relative cubic", NewPath().CubicToRel(Pt(1, 1), Pt(2, 2), Pt(3, 3)), "c 1 1,2 2,3 3"},
		{"smooth cubic", NewPath().SmoothCubicTo(Pt(1, 2), Pt(3, 4)).SmoothCubicToRel(Pt(5, 6), Pt(7, 8)), "S 1 2,3 4 s 5 6,7 8"},
		{"quadratic", NewPath().QuadraticTo(Pt(1, 2), Pt(3, 4)).QuadraticToRel(Pt(5, 6), Pt(7, 8)), "Q 1 2,3 4 q 5 6,7 8"},
		{"smooth quadratic", NewPath().SmoothQuadraticTo(Pt(1, 2)).SmoothQuadraticToRel(Pt(3, 4)), "T 1 2 t 3 4"},
		{"arc", NewPath().ArcTo(25, 25, -30, false, true, Pt(50, -25)), "A 25 25,-30,0,1,50 -25"},
		{"relative arc", NewPath().ArcToRel(1, 2, 0, true, false, Pt(3, 4)), "a 1 2,0,1,0,3 4"},
		{"negative radius", NewPath().ArcTo(-1, -2, 0, false, false, Pt(0, 0)), "A -1 -2,0,0,0,0 0"},
		{"close", NewPath().MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).LineTo(Pt(1, 1)).Close(), "M 0 0 L 1 0 L 1 1 Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.path.dataAttribute()
			assert.Equal(t, "d", d.Name())
			assert.Equal(t, tt.want, d.Value())
		})
	}
}

func TestPathRender(t *testing.T) {
	p := NewPath().MoveTo(Pt(10, 10)).CubicTo(Pt(20, 20), Pt(40, 20), Pt(50, 10)).Stroke("black").Fill("none")

	assert.Equal(t, `<path d="M 10 10 C 20 20,40 20,50 10" stroke="black" fill="none"/>`, p.String())
	assert.Equal(t, []string{"M 10 10", "C 20 20,40 20,50 10"}, p.Commands())
	assert.Equal(t, `<path d=""/>`, NewPath().String())
}

func TestPathClone(t *testing.T) {
	p := NewPath().MoveTo(Pt(0, 0))
	c := p.Clone().(*Path)
	c.LineTo(Pt(1, 1))

	assert.Equal(t, []string{"M 0 0"}, p.Commands())
	assert.Equal(t, []string{"M 0 0", "L 1 1"}, c.Commands())
}
