package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Style controls how a scene is drawn. Colors are hex strings, #rgb, #rrggbb or
// #rrggbbaa. Sizes are in output pixels, except Scale, which is pixels per scene
// unit.
type Style struct {
	Scale   float64 `yaml:"scale"`
	Padding float64 `yaml:"padding"`

	Background string   `yaml:"background"`
	Fills      []string `yaml:"fills"`

	Edge      string  `yaml:"edge"`
	EdgeWidth float64 `yaml:"edge_width"`
	Pending   string  `yaml:"pending"`

	Vertex       string  `yaml:"vertex"`
	VertexRadius float64 `yaml:"vertex_radius"`

	Marker       string  `yaml:"marker"`
	MarkerRadius float64 `yaml:"marker_radius"`
	ShowMarkers  bool    `yaml:"show_markers"`

	Label      string `yaml:"label"`
	ShowLabels bool   `yaml:"show_labels"`
}

func DefaultStyle() Style {
	return Style{
		Scale:        4,
		Padding:      20,
		Background:   "#ffffff",
		Fills:        []string{"#f4b942b0", "#6cc5b0b0", "#e36f6fb0", "#8f7fd6b0", "#9ad16bb0"},
		Edge:         "#202020",
		EdgeWidth:    2,
		Pending:      "#909090",
		Vertex:       "#d03030",
		VertexRadius: 3,
		Marker:       "#3070d0",
		MarkerRadius: 1.5,
		ShowMarkers:  false,
		Label:        "#000000",
		ShowLabels:   true,
	}
}

// LoadStyle reads a YAML style. Keys that are left out keep their defaults, so an
// empty document is the default style.
func LoadStyle(r io.Reader) (Style, error) {
	style := DefaultStyle()
	if err := yaml.NewDecoder(r).Decode(&style); err != nil && err != io.EOF {
		return Style{}, errors.Wrap(err, "decoding style")
	}
	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}

// LoadStyleFile is LoadStyle on a file. An empty path means the default style.
func LoadStyleFile(path string) (Style, error) {
	if path == "" {
		return DefaultStyle(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Style{}, errors.Wrap(err, "opening style")
	}
	defer f.Close()

	style, err := LoadStyle(f)
	if err != nil {
		return Style{}, errors.Wrapf(err, "style %s", path)
	}
	return style, nil
}

func (s Style) Validate() error {
	if s.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", s.Scale)
	}
	if s.Padding < 0 {
		return errors.Errorf("padding must not be negative, got %v", s.Padding)
	}
	if len(s.Fills) == 0 {
		return errors.New("at least one fill color is needed")
	}

	colors := map[string]string{
		"background": s.Background,
		"edge":       s.Edge,
		"pending":    s.Pending,
		"vertex":     s.Vertex,
		"marker":     s.Marker,
		"label":      s.Label,
	}
	for i, fill := range s.Fills {
		colors[fmt.Sprintf("fills[%d]", i)] = fill
	}
	for name, value := range colors {
		if _, err := parseHexColor(value); err != nil {
			return errors.Wrap(err, name)
		}
	}
	return nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	c := color.NRGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = errors.New("wrong length")
	}
	if err != nil || !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, errors.Errorf("invalid color %q", s)
	}
	return c, nil
}

// Only call on a validated style
func mustColor(s string) color.NRGBA {
	c, err := parseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
