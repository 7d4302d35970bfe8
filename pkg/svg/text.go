package svg

// Text is a <text> element. Its character content is written verbatim
// between the tags.
type Text struct {
	Container[Text]
	text string
}

func NewText(x, y float64, text string) *Text {
	t := &Text{text: text}
	t.init(t, "text", FloatAttribute("x", x), FloatAttribute("y", y))
	return t
}

func NewTextAt(where Point, text string) *Text {
	return NewText(where.X, where.Y, text)
}

func (t *Text) Clone() Node {
	c := &Text{text: t.text}
	c.Container = t.Container.copyFor(c)
	return c
}

func (t *Text) Content() string { return t.text }

func (t *Text) SetContent(text string) *Text {
	t.text = text
	return t
}

func (t *Text) TextAnchor(anchor string) *Text { return t.Attr("text-anchor", anchor) }

func (t *Text) Left() *Text   { return t.TextAnchor("start") }
func (t *Text) Center() *Text { return t.TextAnchor("middle") }
func (t *Text) Right() *Text  { return t.TextAnchor("end") }

func (t *Text) DominantBaseline(baseline string) *Text {
	return t.Attr("dominant-baseline", baseline)
}

// BaselineAuto sits the text on the line.
func (t *Text) BaselineAuto() *Text    { return t.DominantBaseline("auto") }
func (t *Text) BaselineMiddle() *Text  { return t.DominantBaseline("middle") }
func (t *Text) BaselineHanging() *Text { return t.DominantBaseline("hanging") }

func (t *Text) FontFamily(family string) *Text { return t.Attr("font-family", family) }
func (t *Text) FontSize(size string) *Text     { return t.Attr("font-size", size) }
func (t *Text) FontStyle(style string) *Text   { return t.Attr("font-style", style) }
func (t *Text) FontWeight(weight string) *Text { return t.Attr("font-weight", weight) }

// FontSizePt sets the size in points.
func (t *Text) FontSizePt(size float64) *Text {
	return t.FontSize(formatFloat(size) + "pt")
}

func (t *Text) Bold() *Text    { return t.FontWeight("bold") }
func (t *Text) Italic() *Text  { return t.FontStyle("italic") }
func (t *Text) Oblique() *Text { return t.FontStyle("oblique") }

// Normal resets both style and weight.
func (t *Text) Normal() *Text {
	return t.FontStyle("normal").FontWeight("normal")
}

func (t *Text) String() string {
	s := t.startTag()
	if t.title != "" {
		s += titleTag(t.title)
	}
	return s + t.text + t.endTag()
}
