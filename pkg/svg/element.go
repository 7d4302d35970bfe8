package svg

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Element is the attribute-bearing base of every node. T is the concrete
// node type embedding it; setters return *T so that type specific methods
// stay reachable in a chain.
//
// An Element must be initialised through its node's constructor. The zero
// value renders, but its setters return nil.
type Element[T any] struct {
	self  *T
	tag   string
	attrs *orderedmap.OrderedMap[string, Attribute]
	title string
}

func (e *Element[T]) init(self *T, tag string, attrs ...Attribute) {
	e.self = self
	e.tag = tag
	e.attrs = orderedmap.New[string, Attribute]()
	for _, a := range attrs {
		e.attrs.Set(a.name, a)
	}
}

func (e *Element[T]) copyFor(self *T) Element[T] {
	c := Element[T]{self: self, tag: e.tag, title: e.title}
	c.attrs = orderedmap.New[string, Attribute]()
	for _, a := range e.Attributes() {
		c.attrs.Set(a.name, a)
	}
	return c
}

func (e *Element[T]) Tag() string { return e.tag }

// Attributes returns the attributes in the order they were first set.
func (e *Element[T]) Attributes() []Attribute {
	if e.attrs == nil {
		return nil
	}
	out := make([]Attribute, 0, e.attrs.Len())
	for pair := e.attrs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Lookup returns the attribute called name, if set.
func (e *Element[T]) Lookup(name string) (Attribute, bool) {
	if e.attrs == nil {
		return Attribute{}, false
	}
	return e.attrs.Get(name)
}

// AddAttribute inserts a, or overwrites the value of an attribute with the
// same name. An overwritten attribute keeps its original position.
func (e *Element[T]) AddAttribute(a Attribute) *T {
	if e.attrs == nil {
		e.attrs = orderedmap.New[string, Attribute]()
	}
	e.attrs.Set(a.name, a)
	return e.self
}

// Attr is AddAttribute for a plain text value.
func (e *Element[T]) Attr(name, value string) *T {
	return e.AddAttribute(NewAttribute(name, value))
}

func (e *Element[T]) ID(id string) *T {
	return e.Attr("id", id)
}

func (e *Element[T]) Class(className string) *T {
	return e.Attr("class", className)
}

func (e *Element[T]) Stroke(stroke string) *T {
	return e.Attr("stroke", stroke)
}

func (e *Element[T]) StrokeWidth(width float64) *T {
	return e.AddAttribute(FloatAttribute("stroke-width", width))
}

func (e *Element[T]) StrokeOpacity(opacity float64) *T {
	return e.AddAttribute(FloatAttribute("stroke-opacity", opacity))
}

// StrokeDashArray sets the dash and gap lengths, e.g. 4 1 2.
func (e *Element[T]) StrokeDashArray(lengths ...float64) *T {
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = formatFloat(l)
	}
	return e.Attr("stroke-dasharray", strings.Join(parts, " "))
}

func (e *Element[T]) StrokeDashOffset(offset float64) *T {
	return e.AddAttribute(FloatAttribute("stroke-dashoffset", offset))
}

func (e *Element[T]) StrokeLineCap(c LineCap) *T {
	return e.Attr("stroke-linecap", c.String())
}

func (e *Element[T]) StrokeLineJoin(j LineJoin) *T {
	return e.Attr("stroke-linejoin", j.String())
}

func (e *Element[T]) Fill(fill string) *T {
	return e.Attr("fill", fill)
}

func (e *Element[T]) FillOpacity(opacity float64) *T {
	return e.AddAttribute(FloatAttribute("fill-opacity", opacity))
}

func (e *Element[T]) Opacity(opacity float64) *T {
	return e.AddAttribute(FloatAttribute("opacity", opacity))
}

func (e *Element[T]) Transform(t Transform) *T {
	return e.AddAttribute(t.AsAttribute())
}

// Title sets the tooltip text. A node with a title is rendered with a
// closing tag instead of self-closing.
func (e *Element[T]) Title(title string) *T {
	e.title = title
	return e.self
}

func (e *Element[T]) TitleText() string { return e.title }

func (e *Element[T]) String() string {
	return e.render("")
}

// render writes the single tag form. extras is inserted ahead of the
// stored attributes.
func (e *Element[T]) render(extras string) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.tag)
	if extras != "" {
		b.WriteString(" ")
		b.WriteString(extras)
	}
	e.writeAttributes(&b)
	if e.title == "" {
		b.WriteString("/>")
		return b.String()
	}
	b.WriteString(">")
	b.WriteString(titleTag(e.title))
	b.WriteString(e.endTag())
	return b.String()
}

func (e *Element[T]) writeAttributes(b *strings.Builder) {
	for _, a := range e.Attributes() {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
}

func (e *Element[T]) startTag() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.tag)
	e.writeAttributes(&b)
	b.WriteString(">")
	return b.String()
}

func (e *Element[T]) endTag() string {
	return "</" + e.tag + ">"
}

func titleTag(title string) string {
	return "<title>" + title + "</title>"
}
