// Package scene turns a YAML document description into an svg.Document.
package scene

import (
	"fmt"
	"strings"

	"github.com/jeff-blank/svgwriter/pkg/config"
	"github.com/jeff-blank/svgwriter/pkg/svg"
	log "github.com/sirupsen/logrus"
)

// Build assembles the document described by def. Shapes that cannot be
// built are skipped and reported in the returned list; the rest of the
// document is still produced. src may be nil when no shape uses a query.
func Build(def config.DocumentDef, src PointSource) (*svg.Document, []string) {
	var errors []string

	var doc *svg.Document
	if def.Width > 0 && def.Height > 0 {
		doc = svg.NewDocumentSized(def.Width, def.Height)
	} else {
		doc = svg.NewDocument()
	}
	if len(def.ViewBox) == 4 {
		v := def.ViewBox
		doc.ViewBox(v[0], v[1], v[2], v[3])
	}
	errors = append(errors, applyStyle(&doc.Element, def.Style)...)

	for _, l := range def.Layers {
		var layer *svg.Layer
		if len(l.Label) > 0 {
			layer = svg.NewNamedLayer(l.Label)
		} else {
			layer = svg.NewLayer()
		}
		errors = append(errors, applyStyle(&layer.Element, l.Style)...)
		errors = append(errors, appendShapes(layer, l.Shapes, src)...)
		doc.Append(layer)
	}
	errors = append(errors, appendShapes(doc, def.Shapes, src)...)

	return doc, errors
}

func appendShapes(parent svg.Appender, defs []config.ShapeDef, src PointSource) []string {
	var errors []string
	for i, def := range defs {
		node, errs := buildShape(def, src)
		for _, e := range errs {
			errors = append(errors, fmt.Sprintf("shape %d (%s): %s", i, def.Kind, e))
		}
		if node == nil {
			continue
		}
		log.Debugf("append %s", def.Kind)
		parent.Append(node)
	}
	return errors
}

func buildShape(def config.ShapeDef, src PointSource) (svg.Node, []string) {
	switch def.Kind {
	case "rect":
		r := svg.NewRect(def.X, def.Y, def.Width, def.Height)
		return r, applyStyle(&r.Element, def.Style)
	case "circle":
		c := svg.NewCircle(def.CX, def.CY, def.R)
		return c, applyStyle(&c.Element, def.Style)
	case "ellipse":
		e := svg.NewEllipse(def.CX, def.CY, def.RX, def.RY)
		return e, applyStyle(&e.Element, def.Style)
	case "line":
		l := svg.NewLine(def.X1, def.Y1, def.X2, def.Y2)
		return l, applyStyle(&l.Element, def.Style)
	case "use":
		u := svg.NewUse(def.Href)
		return u, applyStyle(&u.Element, def.Style)
	case "polyline", "polygon":
		points, err := shapePoints(def, src)
		if err != nil {
			return nil, []string{err.Error()}
		}
		if def.Kind == "polyline" {
			p := svg.NewPolyline(points...)
			return p, applyStyle(&p.Element, def.Style)
		}
		p := svg.NewPolygon(points...)
		return p, applyStyle(&p.Element, def.Style)
	case "path":
		p := svg.NewPath()
		for _, cmd := range def.Commands {
			if err := pathCommand(p, cmd); err != nil {
				return nil, []string{err.Error()}
			}
		}
		return p, applyStyle(&p.Element, def.Style)
	case "text":
		t := svg.NewText(def.X, def.Y, def.Text)
		applyFont(t, def.Font)
		return t, applyStyle(&t.Element, def.Style)
	case "group":
		g := svg.NewGroup()
		errors := applyStyle(&g.Element, def.Style)
		return g, append(errors, appendShapes(g, def.Children, src)...)
	}
	return nil, []string{"unknown kind"}
}

func toPoints(raw [][]float64) ([]svg.Point, error) {
	points := make([]svg.Point, 0, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d has %d coordinate(s)", i, len(p))
		}
		points = append(points, svg.Pt(p[0], p[1]))
	}
	return points, nil
}

func shapePoints(def config.ShapeDef, src PointSource) ([]svg.Point, error) {
	points, err := toPoints(def.Points)
	if err != nil {
		return nil, err
	}
	if len(def.Query) == 0 {
		return points, nil
	}
	if src == nil {
		return nil, fmt.Errorf("query set but no database configured")
	}
	queried, err := src.Points(def.Query)
	if err != nil {
		return nil, err
	}
	return append(points, queried...), nil
}

func pathCommand(p *svg.Path, cmd config.PathCommandDef) error {
	op := strings.ToUpper(cmd.Op)
	rel := cmd.Rel || (len(cmd.Op) == 1 && cmd.Op != op)

	pts, err := toPoints(cmd.Points)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Op, err)
	}
	want := map[string]int{"M": 1, "L": 1, "C": 3, "S": 2, "Q": 2, "T": 1, "A": 1}
	if n, ok := want[op]; ok && len(pts) != n {
		return fmt.Errorf("%s: want %d point(s), got %d", cmd.Op, n, len(pts))
	}

	switch {
	case op == "M" && !rel:
		p.MoveTo(pts[0])
	case op == "M":
		p.MoveToRel(pts[0])
	case op == "L" && !rel:
		p.LineTo(pts[0])
	case op == "L":
		p.LineToRel(pts[0])
	case op == "H" && !rel:
		p.HorizontalTo(cmd.X)
	case op == "H":
		p.HorizontalToRel(cmd.X)
	case op == "V" && !rel:
		p.VerticalTo(cmd.Y)
	case op == "V":
		p.VerticalToRel(cmd.Y)
	case op == "C" && !rel:
		p.CubicTo(pts[0], pts[1], pts[2])
	case op == "C":
		p.CubicToRel(pts[0], pts[1], pts[2])
	case op == "S" && !rel:
		p.SmoothCubicTo(pts[0], pts[1])
	case op == "S":
		p.SmoothCubicToRel(pts[0], pts[1])
	case op == "Q" && !rel:
		p.QuadraticTo(pts[0], pts[1])
	case op == "Q":
		p.QuadraticToRel(pts[0], pts[1])
	case op == "T" && !rel:
		p.SmoothQuadraticTo(pts[0])
	case op == "T":
		p.SmoothQuadraticToRel(pts[0])
	case op == "A" && !rel:
		p.ArcTo(cmd.RX, cmd.RY, cmd.Rotation, cmd.LargeArc, cmd.Sweep, pts[0])
	case op == "A":
		p.ArcToRel(cmd.RX, cmd.RY, cmd.Rotation, cmd.LargeArc, cmd.Sweep, pts[0])
	case op == "Z":
		p.Close()
	default:
		return fmt.Errorf("unknown path command '%s'", cmd.Op)
	}
	return nil
}

func applyFont(t *svg.Text, f config.FontDef) {
	if len(f.Family) > 0 {
		t.FontFamily(f.Family)
	}
	if f.Size > 0 {
		t.FontSizePt(f.Size)
	}
	if len(f.Style) > 0 {
		t.FontStyle(f.Style)
	}
	if len(f.Weight) > 0 {
		t.FontWeight(f.Weight)
	}
	if len(f.Anchor) > 0 {
		t.TextAnchor(f.Anchor)
	}
	if len(f.Baseline) > 0 {
		t.DominantBaseline(f.Baseline)
	}
}
