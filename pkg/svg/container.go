package svg

import (
	"strings"
)

const indent = "  "

// Container is the base of nodes that own child nodes. Children are copied
// on append, kept in append order and rendered one per line, indented
// below the container's open tag.
type Container[T any] struct {
	Element[T]
	children []Node
}

// Append stores a deep copy of n and returns the stored copy. Changes made
// through the returned node show up when the container is rendered; the
// caller's original is never touched.
func (c *Container[T]) Append(n Node) Node {
	child := n.Clone()
	c.children = append(c.children, child)
	return child
}

// Add appends copies of nodes and returns the container for chaining.
func (c *Container[T]) Add(nodes ...Node) *T {
	for _, n := range nodes {
		c.Append(n)
	}
	return c.self
}

func (c *Container[T]) Children() []Node {
	return append([]Node(nil), c.children...)
}

func (c *Container[T]) Len() int { return len(c.children) }

func (c *Container[T]) copyFor(self *T) Container[T] {
	n := Container[T]{Element: c.Element.copyFor(self)}
	for _, child := range c.children {
		n.children = append(n.children, child.Clone())
	}
	return n
}

func (c *Container[T]) String() string {
	var b strings.Builder
	b.WriteString(c.startTag())
	b.WriteString("\n")
	if c.title != "" {
		writeIndented(&b, titleTag(c.title))
	}
	for _, child := range c.children {
		writeIndented(&b, child.String())
	}
	b.WriteString(c.endTag())
	return b.String()
}

// writeIndented writes every line of text one level deeper than the
// enclosing tag.
func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// Group is a <g> element.
type Group struct {
	Container[Group]
}

func NewGroup() *Group {
	g := &Group{}
	g.init(g, "g")
	return g
}

func (g *Group) Clone() Node {
	c := &Group{}
	c.Container = g.Container.copyFor(c)
	return c
}

// Layer is a <g> marked as an Inkscape layer.
type Layer struct {
	Container[Layer]
}

func NewLayer() *Layer {
	l := &Layer{}
	l.init(l, "g", NewAttribute("inkscape:groupmode", "layer"))
	return l
}

// NewNamedLayer returns a layer shown as label in the viewer's layer list.
func NewNamedLayer(label string) *Layer {
	l := &Layer{}
	l.init(l, "g",
		NewAttribute("inkscape:label", label),
		NewAttribute("inkscape:groupmode", "layer"),
	)
	return l
}

func (l *Layer) Clone() Node {
	c := &Layer{}
	c.Container = l.Container.copyFor(c)
	return c
}
