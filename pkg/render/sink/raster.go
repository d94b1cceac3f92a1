// Package sink materializes a render.Plan onto concrete drawing
// surfaces.
//
// Two surfaces are supported: an immediate-mode raster image (pixels,
// PNG export) and a retained-mode vector document (SVG markup). Both
// consume the same plan, so the geometry of a symbol is identical across
// surfaces for the same input.
package sink

import (
	"image"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/quietzone/ean13/pkg/ean13"
	"github.com/quietzone/ean13/pkg/errors"
	"github.com/quietzone/ean13/pkg/fonts"
	"github.com/quietzone/ean13/pkg/render"
)

// Render encodes code and draws the symbol onto dst in place.
//
// The plan is fully computed and painted before dst is touched, so a
// failed call leaves the surface unmodified.
func Render(dst draw.Image, code string, opts render.Options) error {
	p, err := buildPlan(code, opts)
	if err != nil {
		return err
	}
	return Draw(dst, p)
}

// Draw paints an already computed plan onto dst, anchored at the top
// left of its bounds. dst must be at least as large as the plan.
func Draw(dst draw.Image, p *render.Plan) error {
	if dst == nil {
		return errors.New(errors.ErrCodeInvalidSurface, "nil drawing surface")
	}
	b := dst.Bounds()
	if float64(b.Dx()) < p.Width || float64(b.Dy()) < p.Height {
		return errors.New(errors.ErrCodeInvalidSurface,
			"surface %dx%d is smaller than the %gx%g symbol", b.Dx(), b.Dy(), p.Width, p.Height)
	}
	dc, err := paint(p)
	if err != nil {
		return err
	}
	src := dc.Image()
	draw.Draw(dst, image.Rect(b.Min.X, b.Min.Y, b.Min.X+src.Bounds().Dx(), b.Min.Y+src.Bounds().Dy()),
		src, image.Point{}, draw.Src)
	return nil
}

// Image encodes code and returns a new raster image of exactly the
// required dimensions.
func Image(code string, opts render.Options) (image.Image, error) {
	p, err := buildPlan(code, opts)
	if err != nil {
		return nil, err
	}
	dc, err := paint(p)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func buildPlan(code string, opts render.Options) (*render.Plan, error) {
	res, err := ean13.Encode(code)
	if err != nil {
		return nil, err
	}
	return render.Layout(res, opts)
}

// paint rasterizes the plan: background fill, bar rects, then text runs.
func paint(p *render.Plan) (*gg.Context, error) {
	dc := gg.NewContext(int(math.Ceil(p.Width)), int(math.Ceil(p.Height)))

	dc.SetColor(p.Background)
	dc.Clear()

	dc.SetColor(p.Foreground)
	for _, r := range p.Bars {
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	}
	dc.Fill()

	faces := map[float64]font.Face{}
	for _, t := range p.Texts {
		face := p.FontFace
		if face == nil {
			var ok bool
			if face, ok = faces[t.Size]; !ok {
				var err error
				face, err = fonts.Face(t.Size)
				if err != nil {
					return nil, errors.Wrap(errors.ErrCodeInternal, err, "load glyph face")
				}
				faces[t.Size] = face
			}
		}
		dc.SetFontFace(face)
		// t.Y is the top of the glyph line; ay=1 drops the baseline by
		// one line height below the anchor point.
		dc.DrawStringAnchored(t.Value, t.X, t.Y, anchorFraction(t.Anchor), 1)
	}
	return dc, nil
}

func anchorFraction(a render.Anchor) float64 {
	switch a {
	case render.AnchorMiddle:
		return 0.5
	case render.AnchorEnd:
		return 1
	default:
		return 0
	}
}
