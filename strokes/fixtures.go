package strokes

import (
	"embed"
	"path"

	"github.com/pkg/errors"
)

// A few drawings ship with the package, for demos and tests. They are available
// by file name, with the extension picking the parser.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) ([]Segment, error) {
	f, err := fixtures.Open("fixtures/" + name)
	if err != nil {
		return nil, errors.Wrapf(err, "loading fixture %q", name)
	}
	defer f.Close()

	switch path.Ext(name) {
	case ".svg":
		return ParseSVG(f)
	case ".txt":
		return ParseText(f)
	}
	return nil, errors.Errorf("fixture %q: unknown format", name)
}
