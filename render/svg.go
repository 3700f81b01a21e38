package render

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/pkg/errors"
)

// svgo swallows write errors, so we keep the first one ourselves
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func WriteSVG(w io.Writer, scene Scene, style Style) error {
	canvas, commands := Commands(scene, style)
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	doc.Start(canvas.Width, canvas.Height)
	doc.Rect(0, 0, canvas.Width, canvas.Height, "fill:"+hex(mustColor(style.Background)))

	for _, cmd := range commands {
		switch cmd.Op {
		case FillPolygon:
			if len(cmd.Points) < 3 {
				continue
			}
			xs := make([]float64, len(cmd.Points))
			ys := make([]float64, len(cmd.Points))
			for i, p := range cmd.Points {
				xs[i], ys[i] = p.X, p.Y
			}
			doc.Polygon(xs, ys, paint("fill", cmd.Color))

		case StrokeLine:
			format := fmt.Sprintf("%s;stroke-width:%g;stroke-linecap:round", paint("stroke", cmd.Color), cmd.Size)
			if cmd.Dashed {
				format += fmt.Sprintf(";stroke-dasharray:%d %d", dashLength, dashLength)
			}
			doc.Line(cmd.Points[0].X, cmd.Points[0].Y, cmd.Points[1].X, cmd.Points[1].Y, format)

		case Dot:
			doc.Circle(cmd.Points[0].X, cmd.Points[0].Y, cmd.Size, paint("fill", cmd.Color))

		case Text:
			doc.Text(cmd.Points[0].X, cmd.Points[0].Y, cmd.Text,
				paint("fill", cmd.Color)+";font-family:monospace;font-size:13px;text-anchor:middle;dominant-baseline:central")
		}
	}

	doc.End()
	return errors.Wrap(ew.err, "writing svg")
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SVG 1.1 has no alpha in colors, so it goes into a separate opacity property
func paint(property string, c color.NRGBA) string {
	s := property + ":" + hex(c)
	if c.A != 0xff {
		s += fmt.Sprintf(";%s-opacity:%.3g", property, float64(c.A)/0xff)
	}
	return s
}
