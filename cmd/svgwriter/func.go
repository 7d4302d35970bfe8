package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	s "strings"
	"time"

	"github.com/golang/freetype"
	"github.com/jeff-blank/svgwriter/pkg/config"
	log "github.com/sirupsen/logrus"
)

// writeDocument stores the rendered text as-is for .svg outputs. Any other
// extension is rasterized to PNG and annotated.
func writeDocument(cfg *config.Config, def config.DocumentDef, svgText string) error {
	if s.EqualFold(filepath.Ext(def.OutputFile), ".svg") {
		if err := ioutil.WriteFile(def.OutputFile, []byte(svgText), 0666); err != nil {
			return fmt.Errorf("can't write to '%s': %w", def.OutputFile, err)
		}
		return nil
	}

	img, err := rasterize(cfg.General["imagemagick_convert"], def.OutputSize, svgText)
	if err != nil {
		return err
	}

	params := mergeAnnotate(cfg.AnnotationDefaults, def.Annotate)
	if len(params.AnnotationFontFile) > 0 {
		if err := annotate(img, params, def.OutputFile, time.Now()); err != nil {
			return err
		}
	}

	outfile, err := os.Create(def.OutputFile)
	if err != nil {
		return fmt.Errorf("can't create '%s': %w", def.OutputFile, err)
	}
	if err := png.Encode(outfile, img); err != nil {
		outfile.Close()
		return fmt.Errorf("png.Encode(): %w", err)
	}
	return outfile.Close()
}

// rasterize pipes the document through ImageMagick's convert and returns
// the result as an RGBA image.
func rasterize(imagemagick, size, svgText string) (*image.RGBA, error) {
	if len(imagemagick) == 0 {
		imagemagick = "convert"
	}
	args := []string{"svg:-"}
	if len(size) > 0 {
		args = append(args, "-resize", size)
	}
	args = append(args, "png:-")

	cmd := exec.Command(imagemagick, args...)
	convertStdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("exec convert: %w", err)
	}
	go func() {
		defer convertStdin.Close()
		io.WriteString(convertStdin, svgText)
	}()

	pngData, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("read from convert: %w", err)
	}
	img, _, err := image.Decode(s.NewReader(string(pngData)))
	if err != nil {
		return nil, fmt.Errorf("image.Decode(): %w", err)
	}
	b := img.Bounds()
	imgRGBA := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(imgRGBA, imgRGBA.Bounds(), img, b.Min, draw.Src)
	return imgRGBA, nil
}

// mergeAnnotate overrides the defaults with every field the document sets.
func mergeAnnotate(defaults, attrs config.AnnotateParams) config.AnnotateParams {
	p := defaults
	if attrs.AnnotationX > 0 {
		p.AnnotationX = attrs.AnnotationX
	}
	if attrs.AnnotationY > 0 {
		p.AnnotationY = attrs.AnnotationY
	}
	if len(attrs.AnnotationFontFile) > 0 {
		p.AnnotationFontFile = attrs.AnnotationFontFile
	}
	if attrs.AnnotationFontSize > 0 {
		p.AnnotationFontSize = attrs.AnnotationFontSize
	}
	if len(attrs.AnnotationTimeFmt) > 0 {
		p.AnnotationTimeFmt = attrs.AnnotationTimeFmt
	}
	if len(attrs.AnnotationString) > 0 {
		p.AnnotationString = attrs.AnnotationString
	}
	return p
}

// annotationLines expands %o% (output file) and %T% (now, in timefmt) and
// splits the result into lines.
func annotationLines(str, timefmt, outfile string, now time.Time) []string {
	annotation := s.Replace(str, "%o%", filepath.Base(outfile), -1)
	if s.Index(annotation, "%T%") >= 0 {
		annotation = s.Replace(annotation, "%T%", now.Format(timefmt), -1)
	}
	return s.Split(annotation, "\n")
}

func annotate(img *image.RGBA, p config.AnnotateParams, outfile string, now time.Time) error {
	fontdata, err := ioutil.ReadFile(p.AnnotationFontFile)
	if err != nil {
		return fmt.Errorf("annotate(): read font file '%s': %w", p.AnnotationFontFile, err)
	}
	font, err := freetype.ParseFont(fontdata)
	if err != nil {
		return fmt.Errorf("annotate(): ParseFont(): %w", err)
	}

	fontsize := p.AnnotationFontSize
	if fontsize <= 0 {
		fontsize = 12
	}

	ftCtx := freetype.NewContext()
	ftCtx.SetDPI(72.0)
	ftCtx.SetFont(font)
	ftCtx.SetFontSize(fontsize)
	ftCtx.SetClip(img.Bounds())
	ftCtx.SetDst(img)
	ftCtx.SetSrc(image.Black)
	pt := freetype.Pt(p.AnnotationX, p.AnnotationY+int(ftCtx.PointToFixed(fontsize)>>6))

	for _, line := range annotationLines(p.AnnotationString, p.AnnotationTimeFmt, outfile, now) {
		log.Debugf("annotate %s: %q", outfile, line)
		if _, err := ftCtx.DrawString(line, pt); err != nil {
			return fmt.Errorf("annotate(): DrawString(): %w", err)
		}
		pt.Y += ftCtx.PointToFixed(fontsize * 1.2)
	}
	return nil
}
