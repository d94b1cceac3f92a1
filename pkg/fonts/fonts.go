// Package fonts provides the default glyph face for raster digit rendering.
//
// The Go Regular font ships inside golang.org/x/image, so the face is
// available without external font files. The parsed font is cached after
// first use; faces are built per requested size because font.Face values
// are not safe for concurrent use.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Family is the CSS font-family used by the vector renderer when no font
// is configured. The Go font is rarely installed on viewing systems, so
// generic fallbacks follow it.
const Family = `'Go', 'Helvetica Neue', Arial, sans-serif`

var (
	parseOnce sync.Once
	parsed    *opentype.Font
	parseErr  error
)

// Face returns a font.Face for the given pixel size.
//
// A new face is created on every call; faces hold internal rasterization
// buffers and must not be shared between concurrent renders.
func Face(size float64) (font.Face, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
