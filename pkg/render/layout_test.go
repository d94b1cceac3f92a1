package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/quietzone/ean13/pkg/ean13"
	"github.com/quietzone/ean13/pkg/errors"
)

func mustEncode(t *testing.T, code string) ean13.Result {
	t.Helper()
	res, err := ean13.Encode(code)
	if err != nil {
		t.Fatalf("Encode(%q): %v", code, err)
	}
	return res
}

func TestLayoutDimensions(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	p, err := Layout(res, Options{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// 95*2 + 2*12 = 214 with defaults and no padding.
	if p.Width != 214 {
		t.Errorf("Width = %v, want 214", p.Width)
	}
	// guardHeight (60+10) + fontSize 20 + textMargin 2 = 92.
	if p.Height != 92 {
		t.Errorf("Height = %v, want 92", p.Height)
	}
}

func TestLayoutDimensionsWithPadding(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	p, err := Layout(res, Options{
		PaddingTop:    5,
		PaddingRight:  6,
		PaddingBottom: 7,
		PaddingLeft:   8,
	})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if p.Width != 214+6+8 {
		t.Errorf("Width = %v, want %v", p.Width, 214+6+8)
	}
	if p.Height != 92+5+7 {
		t.Errorf("Height = %v, want %v", p.Height, 92+5+7)
	}
}

func TestLayoutISBNPrefixHeight(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	plain, err := Layout(res, Options{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	isbn, err := Layout(res, Options{ISBNMode: true})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// ISBN caption adds its font size plus a fixed 4px gap.
	if got, want := isbn.Height-plain.Height, DefaultISBNFontSize+4; got != want {
		t.Errorf("ISBN height delta = %v, want %v", got, want)
	}

	caption := isbn.Texts[0]
	if caption.Value != "ISBN 978-0-20-137962-4" {
		t.Errorf("caption = %q", caption.Value)
	}
	if caption.Anchor != AnchorStart {
		t.Errorf("caption anchor = %v, want AnchorStart", caption.Anchor)
	}
	if caption.Y != 0 {
		t.Errorf("caption Y = %v, want 0", caption.Y)
	}

	// Bars shift down by the caption height.
	if got, want := isbn.Bars[0].Y-plain.Bars[0].Y, DefaultISBNFontSize+4; got != want {
		t.Errorf("bar Y delta = %v, want %v", got, want)
	}
}

func TestLayoutBarCount(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	p, err := Layout(res, Options{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// One rect per inked module, background modules emit nothing.
	if got, want := len(p.Bars), strings.Count(res.Encoding, "1"); got != want {
		t.Errorf("len(Bars) = %d, want %d", got, want)
	}
}

func TestLayoutGuardHeights(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	p, err := Layout(res, Options{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	guardHeight := DefaultHeight + DefaultGuardExtend

	// Map bar X back to module index: x = quietZone + i*moduleWidth.
	for _, bar := range p.Bars {
		i := int((bar.X - DefaultQuietZone) / DefaultModuleWidth)
		want := DefaultHeight
		if i < 3 || (i >= 45 && i < 50) || i >= 92 {
			want = guardHeight
		}
		if bar.H != want {
			t.Errorf("module %d height = %v, want %v", i, bar.H, want)
		}
	}
}

func TestLayoutBarPositions(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	p, err := Layout(res, Options{PaddingLeft: 10, PaddingTop: 3})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// The first module of the start guard is always inked and begins
	// right after the quiet zone.
	first := p.Bars[0]
	if first.X != 10+DefaultQuietZone {
		t.Errorf("first bar X = %v, want %v", first.X, 10+DefaultQuietZone)
	}
	if first.Y != 3 {
		t.Errorf("first bar Y = %v, want 3", first.Y)
	}
	if first.W != DefaultModuleWidth {
		t.Errorf("first bar W = %v, want %v", first.W, DefaultModuleWidth)
	}

	// The last module of the end guard is inked too.
	last := p.Bars[len(p.Bars)-1]
	wantX := 10 + DefaultQuietZone + 94*DefaultModuleWidth
	if last.X != wantX {
		t.Errorf("last bar X = %v, want %v", last.X, wantX)
	}
}

func TestLayoutTextPlacement(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	p, err := Layout(res, Options{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if len(p.Texts) != 13 {
		t.Fatalf("len(Texts) = %d, want 13", len(p.Texts))
	}

	offsetX := DefaultQuietZone
	textY := DefaultHeight + DefaultTextMargin

	first := p.Texts[0]
	if first.Value != "9" || first.Anchor != AnchorEnd {
		t.Errorf("first digit = %+v", first)
	}
	if first.X != offsetX-DefaultSideDigitGap {
		t.Errorf("first digit X = %v, want %v", first.X, offsetX-DefaultSideDigitGap)
	}
	if first.Y != textY {
		t.Errorf("first digit Y = %v, want %v", first.Y, textY)
	}

	// Left group digit 0 ("7") centered in the first 7-module cell
	// after the start guard.
	left0 := p.Texts[1]
	wantX := offsetX + 3*DefaultModuleWidth + 0.5*7*DefaultModuleWidth
	if left0.Value != "7" || left0.Anchor != AnchorMiddle || left0.X != wantX {
		t.Errorf("left digit 0 = %+v, want X %v", left0, wantX)
	}

	// Right group digit 0 ("3") starts 50 modules in.
	right0 := p.Texts[7]
	wantX = offsetX + 50*DefaultModuleWidth + 0.5*7*DefaultModuleWidth
	if right0.Value != "3" || right0.X != wantX {
		t.Errorf("right digit 0 = %+v, want X %v", right0, wantX)
	}

	// Everything sits on one line.
	for i, tx := range p.Texts {
		if tx.Y != textY {
			t.Errorf("text %d Y = %v, want %v", i, tx.Y, textY)
		}
	}
}

func TestLayoutMonotonicDimensions(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	base, err := Layout(res, Options{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	grow := []Options{
		{ModuleWidth: 3},
		{Height: 80},
		{GuardExtend: 20},
		{FontSize: 30},
		{TextMargin: 8},
		{QuietZone: 20},
		{PaddingTop: 4},
		{PaddingRight: 4},
		{PaddingBottom: 4},
		{PaddingLeft: 4},
		{ISBNMode: true},
	}
	for _, o := range grow {
		p, err := Layout(res, o)
		if err != nil {
			t.Fatalf("Layout(%+v): %v", o, err)
		}
		if p.Width < base.Width || p.Height < base.Height {
			t.Errorf("dimensions shrank for %+v: %vx%v < %vx%v",
				o, p.Width, p.Height, base.Width, base.Height)
		}
	}
}

func TestLayoutRejectsNegativeOptions(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	bad := []Options{
		{ModuleWidth: -1},
		{QuietZone: -2},
		{PaddingLeft: -0.5},
		{ISBNFontSize: -3},
	}
	for _, o := range bad {
		_, err := Layout(res, o)
		if !errors.Is(err, errors.ErrCodeInvalidOption) {
			t.Errorf("Layout(%+v) error = %v, want INVALID_OPTION", o, err)
		}
	}
}

func TestLayoutColorsAndDefaults(t *testing.T) {
	res := mustEncode(t, "9780201379624")

	p, err := Layout(res, Options{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if p.Background != color.White || p.Foreground != color.Black {
		t.Errorf("default colors = %v / %v", p.Background, p.Foreground)
	}

	red := color.RGBA{R: 255, A: 255}
	p, err = Layout(res, Options{Foreground: red})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if p.Foreground != red {
		t.Errorf("Foreground = %v, want %v", p.Foreground, red)
	}
}
