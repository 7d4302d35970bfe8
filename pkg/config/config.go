package config

import (
	"fmt"
	"io/ioutil"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type AnnotateParams struct {
	AnnotationFontFile string  `yaml:"annotation_fontfile"`
	AnnotationFontSize float64 `yaml:"annotation_fontsize"`
	AnnotationTimeFmt  string  `yaml:"annotation_timefmt"`
	AnnotationString   string  `yaml:"annotation_str"`
	AnnotationX        int     `yaml:"annotation_x"`
	AnnotationY        int     `yaml:"annotation_y"`
}

type AttributeDef struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type TransformDef struct {
	Op   string    `yaml:"op"`
	Args []float64 `yaml:"args"`
}

// PathCommandDef is one path command. Op is the command letter (M, L, H,
// V, C, S, Q, T, A or Z) in either case; lowercase or Rel selects
// relative coordinates.
type PathCommandDef struct {
	Op       string      `yaml:"op"`
	Rel      bool        `yaml:"rel"`
	Points   [][]float64 `yaml:"points"`
	X        float64     `yaml:"x"`
	Y        float64     `yaml:"y"`
	RX       float64     `yaml:"rx"`
	RY       float64     `yaml:"ry"`
	Rotation float64     `yaml:"rotation"`
	LargeArc bool        `yaml:"large_arc"`
	Sweep    bool        `yaml:"sweep"`
}

type StyleDef struct {
	Id               string         `yaml:"id"`
	Class            string         `yaml:"class"`
	Title            string         `yaml:"title"`
	Stroke           string         `yaml:"stroke"`
	StrokeWidth      *float64       `yaml:"stroke_width"`
	StrokeOpacity    *float64       `yaml:"stroke_opacity"`
	StrokeDashArray  []float64      `yaml:"stroke_dasharray"`
	StrokeDashOffset *float64       `yaml:"stroke_dashoffset"`
	StrokeLineCap    string         `yaml:"stroke_linecap"`
	StrokeLineJoin   string         `yaml:"stroke_linejoin"`
	Fill             string         `yaml:"fill"`
	FillOpacity      *float64       `yaml:"fill_opacity"`
	Opacity          *float64       `yaml:"opacity"`
	Transform        []TransformDef `yaml:"transform"`
	Attributes       []AttributeDef `yaml:"attributes"`
}

type FontDef struct {
	Family   string  `yaml:"font_family"`
	Size     float64 `yaml:"font_size"`
	Weight   string  `yaml:"font_weight"`
	Style    string  `yaml:"font_style"`
	Anchor   string  `yaml:"text_anchor"`
	Baseline string  `yaml:"dominant_baseline"`
}

// ShapeDef describes one node. Which geometry fields are read depends on
// Kind.
type ShapeDef struct {
	Kind     string           `yaml:"kind"`
	X        float64          `yaml:"x"`
	Y        float64          `yaml:"y"`
	Width    float64          `yaml:"width"`
	Height   float64          `yaml:"height"`
	CX       float64          `yaml:"cx"`
	CY       float64          `yaml:"cy"`
	R        float64          `yaml:"r"`
	RX       float64          `yaml:"rx"`
	RY       float64          `yaml:"ry"`
	X1       float64          `yaml:"x1"`
	Y1       float64          `yaml:"y1"`
	X2       float64          `yaml:"x2"`
	Y2       float64          `yaml:"y2"`
	Points   [][]float64      `yaml:"points"`
	Query    string           `yaml:"query"`
	Commands []PathCommandDef `yaml:"commands"`
	Text     string           `yaml:"text"`
	Href     string           `yaml:"href"`
	Font     FontDef          `yaml:",inline"`
	Style    StyleDef         `yaml:",inline"`
	Children []ShapeDef       `yaml:"children"`
}

type LayerDef struct {
	Label  string     `yaml:"label"`
	Style  StyleDef   `yaml:",inline"`
	Shapes []ShapeDef `yaml:"shapes"`
}

type DocumentDef struct {
	OutputFile string         `yaml:"outfile"`
	OutputSize string         `yaml:"outsize"`
	Width      float64        `yaml:"width"`
	Height     float64        `yaml:"height"`
	ViewBox    []float64      `yaml:"viewbox"`
	Style      StyleDef       `yaml:",inline"`
	Annotate   AnnotateParams `yaml:",inline"`
	Layers     []LayerDef     `yaml:"layers"`
	Shapes     []ShapeDef     `yaml:"shapes"`
}

type Config struct {
	General            map[string]string
	DbParam            map[string]string `yaml:"database"`
	AnnotationDefaults AnnotateParams    `yaml:"annotation_defaults"`
	Documents          []DocumentDef     `yaml:"documents"`
}

// Parse decodes a YAML scene description.
func Parse(yamlcfg []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.UnmarshalStrict(yamlcfg, config); err != nil {
		return nil, fmt.Errorf("yaml.UnmarshalStrict(): %w", err)
	}
	for i, doc := range config.Documents {
		if len(doc.OutputFile) == 0 {
			return nil, fmt.Errorf("document %d: outfile not set", i)
		}
		if len(doc.ViewBox) != 0 && len(doc.ViewBox) != 4 {
			return nil, fmt.Errorf("%s: viewbox needs 4 numbers, got %d", doc.OutputFile, len(doc.ViewBox))
		}
	}
	return config, nil
}

// New reads and parses configFile, exiting the program on failure.
func New(configFile string) *Config {
	yamlcfg, err := ioutil.ReadFile(configFile)
	if err != nil {
		log.Fatalf("read config file '%s': %v", configFile, err)
	}

	config, err := Parse(yamlcfg)
	if err != nil {
		log.Fatalf("%s: %v", configFile, err)
	}
	log.Debugf("%s: %d document(s)", configFile, len(config.Documents))

	return config
}
