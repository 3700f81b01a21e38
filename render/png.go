package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

const dashLength = 6

func draw(scene Scene, style Style) *gg.Context {
	canvas, commands := Commands(scene, style)
	c := gg.NewContext(int(math.Ceil(canvas.Width)), int(math.Ceil(canvas.Height)))
	c.SetColor(mustColor(style.Background))
	c.Clear()
	c.SetFontFace(basicfont.Face7x13)
	c.SetLineCapRound()
	c.SetLineJoinRound()

	for _, cmd := range commands {
		c.SetColor(cmd.Color)
		switch cmd.Op {
		case FillPolygon:
			if len(cmd.Points) < 3 {
				continue
			}
			c.MoveTo(cmd.Points[0].X, cmd.Points[0].Y)
			for _, p := range cmd.Points[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
			c.Fill()

		case StrokeLine:
			if cmd.Dashed {
				c.SetDash(dashLength, dashLength)
			}
			c.SetLineWidth(cmd.Size)
			c.DrawLine(cmd.Points[0].X, cmd.Points[0].Y, cmd.Points[1].X, cmd.Points[1].Y)
			c.Stroke()
			c.SetDash()

		case Dot:
			c.DrawCircle(cmd.Points[0].X, cmd.Points[0].Y, cmd.Size)
			c.Fill()

		case Text:
			c.DrawStringAnchored(cmd.Text, cmd.Points[0].X, cmd.Points[0].Y, 0.5, 0.5)
		}
	}
	return c
}

// Image draws the scene onto a new image. The style must be valid.
func Image(scene Scene, style Style) image.Image {
	return draw(scene, style).Image()
}

func WritePNG(w io.Writer, scene Scene, style Style) error {
	return errors.Wrap(draw(scene, style).EncodePNG(w), "encoding png")
}

func SavePNG(path string, scene Scene, style Style) error {
	return errors.Wrapf(draw(scene, style).SavePNG(path), "saving %s", path)
}
