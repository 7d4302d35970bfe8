package main

import (
	"image"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeff-blank/svgwriter/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAnnotate(t *testing.T) {
	defaults := config.AnnotateParams{
		AnnotationFontFile: "default.ttf",
		AnnotationFontSize: 12,
		AnnotationString:   "%T%",
		AnnotationX:        1,
		AnnotationY:        2,
	}

	assert.Equal(t, defaults, mergeAnnotate(defaults, config.AnnotateParams{}))

	got := mergeAnnotate(defaults, config.AnnotateParams{
		AnnotationFontSize: 20,
		AnnotationTimeFmt:  "2006",
		AnnotationY:        50,
	})
	assert.Equal(t, config.AnnotateParams{
		AnnotationFontFile: "default.ttf",
		AnnotationFontSize: 20,
		AnnotationTimeFmt:  "2006",
		AnnotationString:   "%T%",
		AnnotationX:        1,
		AnnotationY:        50,
	}, got)
}

func TestAnnotationLines(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	lines := annotationLines("%o%\nmade %T%", "2006-01-02", "/tmp/out/chart.png", now)
	assert.Equal(t, []string{"chart.png", "made 2024-03-01"}, lines)
}

func TestWriteDocumentSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "doc.SVG")

	err := writeDocument(&config.Config{}, config.DocumentDef{OutputFile: out}, "<svg/>")
	require.NoError(t, err)

	data, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestAnnotateMissingFont(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	err := annotate(img, config.AnnotateParams{AnnotationFontFile: filepath.Join(t.TempDir(), "none.ttf")}, "x.png", time.Now())
	assert.Error(t, err)
}
