package svg

import (
	"math"
)

// Point is a coordinate pair in user units.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// String renders the point the way polyline/polygon points expect it.
func (p Point) String() string {
	return formatFloat(p.X) + "," + formatFloat(p.Y)
}

func (p Point) Length() float64  { return math.Hypot(p.X, p.Y) }
func (p Point) Radians() float64 { return math.Atan2(p.Y, p.X) }
func (p Point) Degrees() float64 { return ToDegrees(p.Radians()) }

// Traverse returns p rotated a quarter turn counter-clockwise.
func (p Point) Traverse() Point { return Point{X: -p.Y, Y: p.X} }

func (p Point) Add(q Point) Point   { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }
func (p Point) Div(d float64) Point { return Point{X: p.X / d, Y: p.Y / d} }
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) ToPolar() Polar      { return Polar{Radians: p.Radians(), Modulus: p.Length()} }

// Equal compares with a tolerance of 1e-3 on each axis.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) < 1e-3 && math.Abs(p.Y-q.Y) < 1e-3
}

func FromPolar(pol Polar) Point {
	return Point{X: pol.X(), Y: pol.Y()}
}

// Polar is an angle (radians) and a distance from the origin.
type Polar struct {
	Radians float64
	Modulus float64
}

func (p Polar) X() float64       { return p.Modulus * math.Cos(p.Radians) }
func (p Polar) Y() float64       { return p.Modulus * math.Sin(p.Radians) }
func (p Polar) Point() Point     { return FromPolar(p) }
func (p Polar) Degrees() float64 { return ToDegrees(p.Radians) }

func ToRadians(degrees float64) float64 { return degrees * math.Pi / 180 }
func ToDegrees(radians float64) float64 { return radians * 180 / math.Pi }
