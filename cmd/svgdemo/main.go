package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jeff-blank/svgwriter/pkg/svg"
	log "github.com/sirupsen/logrus"
)

// demoShapes are the stand-alone elements printed before the document.
func demoShapes() []svg.Node {
	return []svg.Node{
		svg.NewRect(0, 0, 100, 100).Stroke("red").StrokeWidth(2).Fill("green"),
		svg.NewPolyline(svg.Pt(0, 0), svg.Pt(100, 100), svg.Pt(50, 100), svg.Pt(200, 200)).
			Stroke("yellow").StrokeWidth(8).Fill("none"),
		svg.NewPolygon(svg.Pt(0, 0), svg.Pt(100, 100), svg.Pt(50, 100), svg.Pt(200, 200)).
			Stroke("red").Fill("green").StrokeWidth(2).ID("hej"),
		svg.NewCircle(50, 50, 25).Stroke("red").Fill("green").StrokeWidth(2).ID("hej"),
		svg.NewEllipse(50, 50, 25, 15).Stroke("blue").Fill("yellow").StrokeWidth(2),
		svg.NewLine(50, 50, 25, 15).Stroke("brown").StrokeWidth(4),
	}
}

func demoDocument() *svg.Document {
	doc := svg.NewDocumentSized(400, 300).ViewBox(0, 0, 400, 300)

	background := svg.AppendTo(doc, svg.NewNamedLayer("background"))
	background.Append(svg.NewRect(0, 0, 400, 300).Fill("white"))

	shapes := svg.AppendTo(doc, svg.NewNamedLayer("shapes"))
	for _, n := range demoShapes() {
		shapes.Append(n)
	}
	wave := svg.AppendTo(shapes, svg.NewPath().ID("wave")).
		MoveTo(svg.Pt(10, 250)).
		CubicTo(svg.Pt(60, 200), svg.Pt(110, 300), svg.Pt(160, 250)).
		SmoothCubicTo(svg.Pt(260, 200), svg.Pt(310, 250)).
		Stroke("black").
		Fill("none")
	wave.StrokeLineCap(svg.CapRound).StrokeDashArray(6, 2)
	svg.AppendTo(shapes, svg.NewUse("wave")).
		Transform(svg.Transform{}.Translate(0, 20).ScaleUniform(0.9))

	labels := svg.AppendTo(doc, svg.NewNamedLayer("labels"))
	svg.AppendTo(labels, svg.NewText(200, 20, "simple svg writer")).
		Center().
		BaselineHanging().
		FontFamily("sans-serif").
		FontSizePt(14).
		Bold().
		Title("demo")

	return doc
}

func run(w io.Writer) error {
	for _, n := range demoShapes() {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, demoDocument())
	return err
}

func main() {
	outFile := flag.String("o", "", "output file (default stdout)")
	logDebug := flag.Bool("d", false, "debug-level logging")
	flag.Parse()

	if *logDebug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	var w io.Writer = os.Stdout
	if len(*outFile) > 0 {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("can't create '%s': %v", *outFile, err)
		}
		defer f.Close()
		w = f
	}

	log.Debug("writing demo scene")
	if err := run(w); err != nil {
		log.Fatal("write: ", err)
	}
}
