package svg

import (
	"strings"
)

// Poly is the base of shapes described by a list of points. Points are
// kept in the order they were added and rendered as the points attribute.
type Poly[T any] struct {
	Element[T]
	points []Point
}

func (p *Poly[T]) Add(pt Point) *T {
	p.points = append(p.points, pt)
	return p.self
}

func (p *Poly[T]) AddXY(x, y float64) *T {
	return p.Add(Point{X: x, Y: y})
}

func (p *Poly[T]) AddPoints(pts ...Point) *T {
	p.points = append(p.points, pts...)
	return p.self
}

func (p *Poly[T]) Points() []Point {
	return append([]Point(nil), p.points...)
}

func (p *Poly[T]) copyFor(self *T) Poly[T] {
	return Poly[T]{
		Element: p.Element.copyFor(self),
		points:  append([]Point(nil), p.points...),
	}
}

// pointsAttribute renders "x,y x,y ". The trailing separator is accepted by
// viewers.
func (p *Poly[T]) pointsAttribute() Attribute {
	var b strings.Builder
	for _, pt := range p.points {
		b.WriteString(pt.String())
		b.WriteString(" ")
	}
	return NewAttribute("points", b.String())
}

func (p *Poly[T]) String() string {
	return p.render(p.pointsAttribute().String())
}

// Polyline is a <polyline> element.
type Polyline struct {
	Poly[Polyline]
}

func NewPolyline(points ...Point) *Polyline {
	p := &Polyline{}
	p.init(p, "polyline")
	p.points = append(p.points, points...)
	return p
}

func (p *Polyline) Clone() Node {
	c := &Polyline{}
	c.Poly = p.Poly.copyFor(c)
	return c
}

// Polygon is a <polygon> element.
type Polygon struct {
	Poly[Polygon]
}

func NewPolygon(points ...Point) *Polygon {
	p := &Polygon{}
	p.init(p, "polygon")
	p.points = append(p.points, points...)
	return p
}

func (p *Polygon) Clone() Node {
	c := &Polygon{}
	c.Poly = p.Poly.copyFor(c)
	return c
}
