package svg

// Rect is a <rect> element.
type Rect struct {
	Element[Rect]
}

func newRect(attrs ...Attribute) *Rect {
	r := &Rect{}
	r.init(r, "rect", attrs...)
	return r
}

// EmptyRect returns a rect with no geometry set.
func EmptyRect() *Rect { return newRect() }

// NewRect places a rect by its top-left corner and size.
func NewRect(x, y, width, height float64) *Rect {
	return newRect(
		FloatAttribute("x", x),
		FloatAttribute("y", y),
		FloatAttribute("width", width),
		FloatAttribute("height", height),
	)
}

// NewRectSize sets only width and height, leaving the position at the
// default origin.
func NewRectSize(width, height float64) *Rect {
	return newRect(FloatAttribute("width", width), FloatAttribute("height", height))
}

// NewRectCorners spans the rect between two opposite corners.
func NewRectCorners(from, to Point) *Rect {
	return NewRect(from.X, from.Y, to.X-from.X, to.Y-from.Y)
}

func (r *Rect) Clone() Node {
	c := &Rect{}
	c.Element = r.Element.copyFor(c)
	return c
}

// Line is a <line> element.
type Line struct {
	Element[Line]
}

func NewLine(x1, y1, x2, y2 float64) *Line {
	l := &Line{}
	l.init(l, "line",
		FloatAttribute("x1", x1),
		FloatAttribute("y1", y1),
		FloatAttribute("x2", x2),
		FloatAttribute("y2", y2),
	)
	return l
}

func NewLineBetween(from, to Point) *Line {
	return NewLine(from.X, from.Y, to.X, to.Y)
}

func (l *Line) Clone() Node {
	c := &Line{}
	c.Element = l.Element.copyFor(c)
	return c
}

// Circle is a <circle> element.
type Circle struct {
	Element[Circle]
}

func NewCircle(cx, cy, r float64) *Circle {
	c := &Circle{}
	c.init(c, "circle",
		FloatAttribute("cx", cx),
		FloatAttribute("cy", cy),
		FloatAttribute("r", r),
	)
	return c
}

func NewCircleAt(center Point, r float64) *Circle {
	return NewCircle(center.X, center.Y, r)
}

func (c *Circle) Clone() Node {
	n := &Circle{}
	n.Element = c.Element.copyFor(n)
	return n
}

// Ellipse is an <ellipse> element.
type Ellipse struct {
	Element[Ellipse]
}

func NewEllipse(cx, cy, rx, ry float64) *Ellipse {
	e := &Ellipse{}
	e.init(e, "ellipse",
		FloatAttribute("cx", cx),
		FloatAttribute("cy", cy),
		FloatAttribute("rx", rx),
		FloatAttribute("ry", ry),
	)
	return e
}

func NewEllipseAt(center Point, rx, ry float64) *Ellipse {
	return NewEllipse(center.X, center.Y, rx, ry)
}

func (e *Ellipse) Clone() Node {
	c := &Ellipse{}
	c.Element = e.Element.copyFor(c)
	return c
}

// Use is a <use> element drawing another element by its id.
type Use struct {
	Element[Use]
}

func NewUse(refID string) *Use {
	u := &Use{}
	u.init(u, "use", NewAttribute("xlink:href", "#"+refID))
	return u
}

func (u *Use) Clone() Node {
	c := &Use{}
	c.Element = u.Element.copyFor(c)
	return c
}
