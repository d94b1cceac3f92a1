// Package render turns an encoded EAN-13 module string into absolute
// geometry: a plan of filled rectangles and anchored text runs, plus the
// overall surface dimensions.
//
// The plan is computed once by [Layout] and consumed unchanged by both
// the raster and the vector sink, so the two output paths cannot drift
// apart geometrically. Layout is pure; nothing here touches a drawing
// surface.
package render

import (
	"image/color"

	"golang.org/x/image/font"

	"github.com/quietzone/ean13/pkg/ean13"
)

// Guard module index ranges within the 95-module pattern: the start
// guard, the center guard after the 42 left-side modules, and the end
// guard.
const (
	startGuardEnd    = 3
	centerGuardStart = 45
	centerGuardEnd   = 50
	endGuardStart    = 92
)

// Anchor selects how a text run is positioned relative to its X
// coordinate. The values map onto SVG text-anchor keywords.
type Anchor int

const (
	AnchorStart  Anchor = iota // X is the left edge
	AnchorMiddle               // X is the horizontal center
	AnchorEnd                  // X is the right edge
)

// Rect is a filled rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Text is a positioned text run. Y is the top edge of the glyph line.
type Text struct {
	Value  string
	X, Y   float64
	Size   float64
	Anchor Anchor
}

// Plan is the complete set of drawing primitives for one symbol, in
// paint order: background fill, then Bars, then Texts.
type Plan struct {
	Width, Height float64 // total surface dimensions

	Background color.Color
	Foreground color.Color
	FontFamily string    // vector sink font-family
	FontFace   font.Face // raster face override, nil means built-in

	Bars  []Rect
	Texts []Text

	// FullCode is the 13-digit code the plan draws.
	FullCode string
}

// Layout computes the drawing plan for an encode result.
//
// Dimension arithmetic:
//
//	barcodeWidth  = 95 * ModuleWidth
//	guardHeight   = Height + GuardExtend
//	contentWidth  = barcodeWidth + 2*QuietZone
//	contentHeight = guardHeight + FontSize + TextMargin (+ ISBN caption)
//	total         = content + paddings
func Layout(res ean13.Result, opts Options) (*Plan, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	o := opts.withDefaults()

	guardHeight := o.Height + o.GuardExtend
	barcodeWidth := float64(ean13.PatternWidth) * o.ModuleWidth

	isbnPrefixHeight := 0.0
	if o.ISBNMode {
		isbnPrefixHeight = o.ISBNFontSize + 4
	}

	contentWidth := barcodeWidth + 2*o.QuietZone
	contentHeight := guardHeight + o.FontSize + o.TextMargin + isbnPrefixHeight

	p := &Plan{
		Width:      contentWidth + o.PaddingLeft + o.PaddingRight,
		Height:     contentHeight + o.PaddingTop + o.PaddingBottom,
		Background: o.Background,
		Foreground: o.Foreground,
		FontFamily: o.FontFamily,
		FontFace:   o.FontFace,
		FullCode:   res.FullCode,
	}

	offsetX := o.PaddingLeft + o.QuietZone
	offsetY := o.PaddingTop + isbnPrefixHeight

	for i := 0; i < len(res.Encoding); i++ {
		if res.Encoding[i] != '1' {
			continue
		}
		h := o.Height
		if isGuardModule(i) {
			h = guardHeight
		}
		p.Bars = append(p.Bars, Rect{
			X: offsetX + float64(i)*o.ModuleWidth,
			Y: offsetY,
			W: o.ModuleWidth,
			H: h,
		})
	}

	if o.ISBNMode {
		p.Texts = append(p.Texts, Text{
			Value:  "ISBN " + ean13.FormatISBN(res.FullCode),
			X:      offsetX,
			Y:      o.PaddingTop,
			Size:   o.ISBNFontSize,
			Anchor: AnchorStart,
		})
	}

	textY := offsetY + o.Height + o.TextMargin

	// First digit sits in the quiet zone, right-aligned against the
	// start guard.
	p.Texts = append(p.Texts, Text{
		Value:  res.FullCode[:1],
		X:      offsetX - o.SideDigitGap,
		Y:      textY,
		Size:   o.FontSize,
		Anchor: AnchorEnd,
	})

	// Left group starts after the 3 start-guard modules, right group
	// after 3 + 42 + 5 modules; each digit is centered in its own
	// 7-module cell.
	cell := 7 * o.ModuleWidth
	leftStart := offsetX + 3*o.ModuleWidth
	rightStart := offsetX + 50*o.ModuleWidth
	for i := 0; i < 6; i++ {
		p.Texts = append(p.Texts, Text{
			Value:  res.FullCode[1+i : 2+i],
			X:      leftStart + (float64(i)+0.5)*cell,
			Y:      textY,
			Size:   o.FontSize,
			Anchor: AnchorMiddle,
		})
	}
	for i := 0; i < 6; i++ {
		p.Texts = append(p.Texts, Text{
			Value:  res.FullCode[7+i : 8+i],
			X:      rightStart + (float64(i)+0.5)*cell,
			Y:      textY,
			Size:   o.FontSize,
			Anchor: AnchorMiddle,
		})
	}

	return p, nil
}

// isGuardModule reports whether module index i belongs to the start,
// center, or end guard. Guard modules render at guard height.
func isGuardModule(i int) bool {
	return i < startGuardEnd ||
		(i >= centerGuardStart && i < centerGuardEnd) ||
		i >= endGuardStart
}
