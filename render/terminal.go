package render

import (
	"io"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Preview shows the scene inline in terminals that speak the iTerm2 image
// protocol. The image goes through a temporary PNG file.
func Preview(w io.Writer, scene Scene, style Style) error {
	f, err := os.CreateTemp("", "facefinder-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer os.Remove(f.Name())

	if err := WritePNG(f, scene, style); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing preview file")
	}
	return errors.Wrap(imgcat.CatFile(f.Name(), w), "imgcat")
}
