package scene

import (
	"fmt"

	"github.com/jeff-blank/svgwriter/pkg/config"
	"github.com/jeff-blank/svgwriter/pkg/svg"
)

// applyStyle copies every style setting present in s onto e. Settings
// that cannot be applied are reported and skipped.
func applyStyle[T any](e *svg.Element[T], s config.StyleDef) []string {
	var warnings []string

	if len(s.Id) > 0 {
		e.ID(s.Id)
	}
	if len(s.Class) > 0 {
		e.Class(s.Class)
	}
	if len(s.Stroke) > 0 {
		e.Stroke(s.Stroke)
	}
	if s.StrokeWidth != nil {
		e.StrokeWidth(*s.StrokeWidth)
	}
	if s.StrokeOpacity != nil {
		e.StrokeOpacity(*s.StrokeOpacity)
	}
	if len(s.StrokeDashArray) > 0 {
		e.StrokeDashArray(s.StrokeDashArray...)
	}
	if s.StrokeDashOffset != nil {
		e.StrokeDashOffset(*s.StrokeDashOffset)
	}
	if len(s.StrokeLineCap) > 0 {
		if c, ok := svg.ParseLineCap(s.StrokeLineCap); ok {
			e.StrokeLineCap(c)
		} else {
			warnings = append(warnings, fmt.Sprintf("unknown stroke_linecap '%s'", s.StrokeLineCap))
		}
	}
	if len(s.StrokeLineJoin) > 0 {
		if j, ok := svg.ParseLineJoin(s.StrokeLineJoin); ok {
			e.StrokeLineJoin(j)
		} else {
			warnings = append(warnings, fmt.Sprintf("unknown stroke_linejoin '%s'", s.StrokeLineJoin))
		}
	}
	if len(s.Fill) > 0 {
		e.Fill(s.Fill)
	}
	if s.FillOpacity != nil {
		e.FillOpacity(*s.FillOpacity)
	}
	if s.Opacity != nil {
		e.Opacity(*s.Opacity)
	}
	if len(s.Transform) > 0 {
		t, err := buildTransform(s.Transform)
		if err != nil {
			warnings = append(warnings, err.Error())
		} else {
			e.Transform(t)
		}
	}
	for _, a := range s.Attributes {
		e.Attr(a.Name, a.Value)
	}
	if len(s.Title) > 0 {
		e.Title(s.Title)
	}

	return warnings
}

func buildTransform(defs []config.TransformDef) (svg.Transform, error) {
	var t svg.Transform
	for _, d := range defs {
		a := d.Args
		switch {
		case d.Op == "matrix" && len(a) == 6:
			t = t.Matrix(a[0], a[1], a[2], a[3], a[4], a[5])
		case d.Op == "translate" && len(a) == 1:
			t = t.TranslateX(a[0])
		case d.Op == "translate" && len(a) == 2:
			t = t.Translate(a[0], a[1])
		case d.Op == "scale" && len(a) == 1:
			t = t.ScaleUniform(a[0])
		case d.Op == "scale" && len(a) == 2:
			t = t.Scale(a[0], a[1])
		case d.Op == "rotate" && len(a) == 1:
			t = t.Rotate(a[0])
		case d.Op == "rotate" && len(a) == 3:
			t = t.RotateAround(a[0], a[1], a[2])
		case d.Op == "skewX" && len(a) == 1:
			t = t.SkewX(a[0])
		case d.Op == "skewY" && len(a) == 1:
			t = t.SkewY(a[0])
		default:
			return svg.Transform{}, fmt.Errorf("bad transform '%s' with %d argument(s)", d.Op, len(a))
		}
	}
	return t, nil
}
