package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapes(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			"rect",
			NewRect(0, 0, 100, 100).Stroke("red").StrokeWidth(2).Fill("green"),
			`<rect x="0" y="0" width="100" height="100" stroke="red" stroke-width="2" fill="green"/>`,
		},
		{"empty rect", EmptyRect(), `<rect/>`},
		{"rect size", NewRectSize(5, 6), `<rect width="5" height="6"/>`},
		{"rect corners", NewRectCorners(Pt(10, 20), Pt(40, 25)), `<rect x="10" y="20" width="30" height="5"/>`},
		{"line", NewLine(50, 50, 25, 15).Stroke("brown").StrokeWidth(4), `<line x1="50" y1="50" x2="25" y2="15" stroke="brown" stroke-width="4"/>`},
		{"line between", NewLineBetween(Pt(1, 2), Pt(3, 4)), `<line x1="1" y1="2" x2="3" y2="4"/>`},
		{"circle", NewCircle(50, 50, 25).ID("hej"), `<circle cx="50" cy="50" r="25" id="hej"/>`},
		{"circle at", NewCircleAt(Pt(1, 2), 3), `<circle cx="1" cy="2" r="3"/>`},
		{"ellipse", NewEllipse(50, 50, 25, 15).Fill("yellow"), `<ellipse cx="50" cy="50" rx="25" ry="15" fill="yellow"/>`},
		{"ellipse at", NewEllipseAt(Pt(1, 2), 3, 4), `<ellipse cx="1" cy="2" rx="3" ry="4"/>`},
		{"use", NewUse("star").Transform(Transform{}.Translate(10, 0)), `<use xlink:href="#star" transform="translate(10 0)"/>`},
		{
			"polygon",
			NewPolygon(Pt(0, 0), Pt(100, 100), Pt(50, 100)),
			`<polygon points="0,0 100,100 50,100 "/>`,
		},
		{
			"polyline",
			NewPolyline().Add(Pt(0, 0)).AddXY(1.5, 2).AddPoints(Pt(3, 4), Pt(5, 6)).Stroke("yellow"),
			`<polyline points="0,0 1.5,2 3,4 5,6 " stroke="yellow"/>`,
		},
		{"empty polyline", NewPolyline(), `<polyline points=""/>`},
		{"single point polygon", NewPolygon(Pt(1, 1)), `<polygon points="1,1 "/>`},
		{"titled circle", NewCircle(1, 1, 1).Title("dot"), `<circle cx="1" cy="1" r="1"><title>dot</title></circle>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestPolyPointsAreCopied(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1)}
	p := NewPolyline(pts...)
	pts[0] = Pt(9, 9)

	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 1)}, p.Points())

	c := p.Clone().(*Polyline)
	c.Add(Pt(2, 2)).Stroke("red")
	assert.Len(t, p.Points(), 2)
	assert.Equal(t, `<polyline points="0,0 1,1 "/>`, p.String())
	assert.Equal(t, `<polyline points="0,0 1,1 2,2 " stroke="red"/>`, c.String())
}
