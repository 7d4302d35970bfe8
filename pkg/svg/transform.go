package svg

import (
	"strings"
)

// Transform is an ordered list of transform operations. Operations render
// in the order they were added; the target format applies the rightmost
// one to a point first.
//
// Transform is a value: every method returns a new Transform and leaves the
// receiver untouched, so
//
//	svg.Transform{}.Rotate(45).Translate(100, 100)
//
// can be built in a single expression.
type Transform struct {
	ops []string
}

func (t Transform) add(name string, args ...float64) Transform {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatFloat(a)
	}
	ops := make([]string, len(t.ops), len(t.ops)+1)
	copy(ops, t.ops)
	return Transform{ops: append(ops, name+"("+strings.Join(parts, " ")+")")}
}

func (t Transform) Matrix(a, b, c, d, e, f float64) Transform {
	return t.add("matrix", a, b, c, d, e, f)
}

func (t Transform) Translate(dx, dy float64) Transform {
	return t.add("translate", dx, dy)
}

// TranslateX moves along the x axis only.
func (t Transform) TranslateX(dx float64) Transform {
	return t.Translate(dx, 0)
}

func (t Transform) TranslatePoint(d Point) Transform {
	return t.Translate(d.X, d.Y)
}

func (t Transform) Scale(sx, sy float64) Transform {
	return t.add("scale", sx, sy)
}

// ScaleUniform scales both axes by s.
func (t Transform) ScaleUniform(s float64) Transform {
	return t.Scale(s, s)
}

func (t Transform) ScalePoint(s Point) Transform {
	return t.Scale(s.X, s.Y)
}

// Rotate rotates by angle degrees about the origin of the current user
// space.
func (t Transform) Rotate(angle float64) Transform {
	return t.add("rotate", angle)
}

func (t Transform) RotateAround(angle, cx, cy float64) Transform {
	return t.add("rotate", angle, cx, cy)
}

func (t Transform) RotateAroundPoint(angle float64, about Point) Transform {
	return t.RotateAround(angle, about.X, about.Y)
}

func (t Transform) SkewX(angle float64) Transform {
	return t.add("skewX", angle)
}

func (t Transform) SkewY(angle float64) Transform {
	return t.add("skewY", angle)
}

func (t Transform) Len() int { return len(t.ops) }

// AsAttribute collapses the operations into one transform attribute.
func (t Transform) AsAttribute() Attribute {
	return NewAttribute("transform", strings.Join(t.ops, " "))
}
