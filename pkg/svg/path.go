package svg

import (
	"strings"
)

// Path is a <path> element. Each method appends one fully formatted
// command to the path data; commands are never edited once appended.
//
// Uppercase letters are absolute coordinates, lowercase (the *Rel
// variants) are relative to the current point. Coordinates within a point
// are separated by a space and points by a comma, so
//
//	NewPath().MoveTo(Pt(10, 10)).CubicTo(Pt(20, 20), Pt(40, 20), Pt(50, 10))
//
// renders d="M 10 10 C 20 20,40 20,50 10".
type Path struct {
	Element[Path]
	commands []string
}

func NewPath() *Path {
	p := &Path{}
	p.init(p, "path")
	return p
}

func (p *Path) Clone() Node {
	c := &Path{commands: append([]string(nil), p.commands...)}
	c.Element = p.Element.copyFor(c)
	return c
}

// Commands returns the formatted commands in append order.
func (p *Path) Commands() []string {
	return append([]string(nil), p.commands...)
}

func (p *Path) command(letter byte, relative bool, operands ...string) *Path {
	if relative {
		letter += 'a' - 'A'
	}
	cmd := string(letter)
	if len(operands) > 0 {
		cmd += " " + strings.Join(operands, ",")
	}
	p.commands = append(p.commands, cmd)
	return p
}

func coords(pt Point) string {
	return formatFloat(pt.X) + " " + formatFloat(pt.Y)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (p *Path) MoveTo(pt Point) *Path    { return p.command('M', false, coords(pt)) }
func (p *Path) MoveToRel(pt Point) *Path { return p.command('M', true, coords(pt)) }
func (p *Path) LineTo(pt Point) *Path    { return p.command('L', false, coords(pt)) }
func (p *Path) LineToRel(pt Point) *Path { return p.command('L', true, coords(pt)) }

func (p *Path) HorizontalTo(x float64) *Path    { return p.command('H', false, formatFloat(x)) }
func (p *Path) HorizontalToRel(x float64) *Path { return p.command('H', true, formatFloat(x)) }
func (p *Path) VerticalTo(y float64) *Path      { return p.command('V', false, formatFloat(y)) }
func (p *Path) VerticalToRel(y float64) *Path   { return p.command('V', true, formatFloat(y)) }

// CubicTo draws a cubic Bézier curve to end using two control points.
func (p *Path) CubicTo(c1, c2, end Point) *Path {
	return p.command('C', false, coords(c1), coords(c2), coords(end))
}

func (p *Path) CubicToRel(c1, c2, end Point) *Path {
	return p.command('C', true, coords(c1), coords(c2), coords(end))
}

// SmoothCubicTo continues a cubic curve; the first control point is the
// reflection of the previous command's second control point.
func (p *Path) SmoothCubicTo(c2, end Point) *Path {
	return p.command('S', false, coords(c2), coords(end))
}

func (p *Path) SmoothCubicToRel(c2, end Point) *Path {
	return p.command('S', true, coords(c2), coords(end))
}

func (p *Path) QuadraticTo(c, end Point) *Path {
	return p.command('Q', false, coords(c), coords(end))
}

func (p *Path) QuadraticToRel(c, end Point) *Path {
	return p.command('Q', true, coords(c), coords(end))
}

// SmoothQuadraticTo continues a quadratic curve with a reflected control
// point.
func (p *Path) SmoothQuadraticTo(end Point) *Path {
	return p.command('T', false, coords(end))
}

func (p *Path) SmoothQuadraticToRel(end Point) *Path {
	return p.command('T', true, coords(end))
}

// ArcTo draws an elliptical arc to end. rotation is in degrees.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, end Point) *Path {
	return p.arc(false, rx, ry, rotation, largeArc, sweep, end)
}

func (p *Path) ArcToRel(rx, ry, rotation float64, largeArc, sweep bool, end Point) *Path {
	return p.arc(true, rx, ry, rotation, largeArc, sweep, end)
}

func (p *Path) arc(relative bool, rx, ry, rotation float64, largeArc, sweep bool, end Point) *Path {
	return p.command('A', relative,
		coords(Point{X: rx, Y: ry}),
		formatFloat(rotation),
		flag(largeArc),
		flag(sweep),
		coords(end),
	)
}

// Close joins the current point to the start of the subpath.
func (p *Path) Close() *Path {
	p.commands = append(p.commands, "Z")
	return p
}

func (p *Path) dataAttribute() Attribute {
	return NewAttribute("d", strings.Join(p.commands, " "))
}

func (p *Path) String() string {
	return p.render(p.dataAttribute().String())
}
