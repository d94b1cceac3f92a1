package render

import (
	"image/color"

	"golang.org/x/image/font"

	"github.com/quietzone/ean13/pkg/errors"
	"github.com/quietzone/ean13/pkg/fonts"
)

// Default option values. The content width scenario 95*ModuleWidth +
// 2*QuietZone works out to 214px with these.
const (
	DefaultModuleWidth  = 2.0 // px per module
	DefaultHeight       = 60.0
	DefaultGuardExtend  = 10.0
	DefaultFontSize     = 20.0
	DefaultTextMargin   = 2.0
	DefaultQuietZone    = 12.0
	DefaultSideDigitGap = 4.0
	DefaultISBNFontSize = 14.0
)

// Options configures the geometry and appearance of a rendered symbol.
//
// The zero value of a numeric field means "use the default"; paddings
// default to zero anyway. Options never affect encoding, only layout.
type Options struct {
	ModuleWidth  float64 // width of one module in px
	Height       float64 // data bar height in px
	GuardExtend  float64 // extra height of guard bars below data bars
	FontSize     float64 // digit glyph size in px
	TextMargin   float64 // gap between bar bottom and digit top
	QuietZone    float64 // blank margin either side of the symbol
	SideDigitGap float64 // gap between first digit and the start guard

	PaddingTop    float64
	PaddingRight  float64
	PaddingBottom float64
	PaddingLeft   float64

	Background color.Color // nil means white
	Foreground color.Color // nil means black

	// FontFace overrides the built-in raster digit face. When set it is
	// used for every text run, including the ISBN caption.
	FontFace font.Face

	// FontFamily is the font-family attribute emitted by the vector
	// renderer. Empty means fonts.Family.
	FontFamily string

	// ISBNMode draws an "ISBN 978-X-XX-XXXXXX-X" caption line above the
	// symbol using ISBNFontSize.
	ISBNMode     bool
	ISBNFontSize float64
}

// Defaults returns the documented default options.
func Defaults() Options {
	return Options{
		ModuleWidth:  DefaultModuleWidth,
		Height:       DefaultHeight,
		GuardExtend:  DefaultGuardExtend,
		FontSize:     DefaultFontSize,
		TextMargin:   DefaultTextMargin,
		QuietZone:    DefaultQuietZone,
		SideDigitGap: DefaultSideDigitGap,
		Background:   color.White,
		Foreground:   color.Black,
		FontFamily:   fonts.Family,
		ISBNFontSize: DefaultISBNFontSize,
	}
}

// withDefaults fills unset fields from Defaults. A zero numeric field is
// treated as unset; the paddings default to zero anyway, so only a caller
// wanting an explicit zero text margin or guard extend loses expressiveness,
// which matches the original option-merge behavior closely enough.
func (o Options) withDefaults() Options {
	d := Defaults()
	if o.ModuleWidth == 0 {
		o.ModuleWidth = d.ModuleWidth
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.GuardExtend == 0 {
		o.GuardExtend = d.GuardExtend
	}
	if o.FontSize == 0 {
		o.FontSize = d.FontSize
	}
	if o.TextMargin == 0 {
		o.TextMargin = d.TextMargin
	}
	if o.QuietZone == 0 {
		o.QuietZone = d.QuietZone
	}
	if o.SideDigitGap == 0 {
		o.SideDigitGap = d.SideDigitGap
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	if o.Foreground == nil {
		o.Foreground = d.Foreground
	}
	if o.FontFamily == "" {
		o.FontFamily = d.FontFamily
	}
	if o.ISBNFontSize == 0 {
		o.ISBNFontSize = d.ISBNFontSize
	}
	return o
}

// validate rejects geometry that cannot produce a sane layout.
func (o Options) validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"module width", o.ModuleWidth},
		{"height", o.Height},
		{"guard extend", o.GuardExtend},
		{"font size", o.FontSize},
		{"text margin", o.TextMargin},
		{"quiet zone", o.QuietZone},
		{"side digit gap", o.SideDigitGap},
		{"padding top", o.PaddingTop},
		{"padding right", o.PaddingRight},
		{"padding bottom", o.PaddingBottom},
		{"padding left", o.PaddingLeft},
		{"isbn font size", o.ISBNFontSize},
	}
	for _, n := range named {
		if n.value < 0 {
			return errors.New(errors.ErrCodeInvalidOption, "%s must not be negative, got %v", n.name, n.value)
		}
	}
	return nil
}
