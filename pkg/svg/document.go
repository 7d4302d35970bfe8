package svg

import (
	"strings"
)

const xmlDeclaration = `<?xml version="1.0"?>`

// Document is the <svg> root.
type Document struct {
	Container[Document]
}

func namespaces() []Attribute {
	return []Attribute{
		NewAttribute("xmlns", "http://www.w3.org/2000/svg"),
		NewAttribute("xmlns:xlink", "http://www.w3.org/1999/xlink"),
		NewAttribute("xmlns:inkscape", "http://www.inkscape.org/namespaces/inkscape"),
	}
}

func NewDocument() *Document {
	d := &Document{}
	d.init(d, "svg", namespaces()...)
	return d
}

// NewDocumentSized fixes the rendered size in pixels.
func NewDocumentSized(width, height float64) *Document {
	d := &Document{}
	attrs := append([]Attribute{
		FloatAttribute("width", width),
		FloatAttribute("height", height),
	}, namespaces()...)
	d.init(d, "svg", attrs...)
	return d
}

func (d *Document) ViewBox(xMin, yMin, width, height float64) *Document {
	v := strings.Join([]string{
		formatFloat(xMin), formatFloat(yMin), formatFloat(width), formatFloat(height),
	}, " ")
	return d.Attr("viewBox", v)
}

func (d *Document) Clone() Node {
	c := &Document{}
	c.Container = d.Container.copyFor(c)
	return c
}

func (d *Document) String() string {
	return xmlDeclaration + "\n" + d.Container.String()
}
