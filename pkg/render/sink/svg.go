package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"

	"github.com/quietzone/ean13/pkg/errors"
	"github.com/quietzone/ean13/pkg/render"
)

// svgAnchors maps render anchors onto SVG text-anchor keywords.
var svgAnchors = map[render.Anchor]string{
	render.AnchorStart:  "start",
	render.AnchorMiddle: "middle",
	render.AnchorEnd:    "end",
}

// SVG encodes code and returns the symbol as a serialized SVG document.
func SVG(code string, opts render.Options) (string, error) {
	p, err := buildPlan(code, opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	writeSVG(&buf, p)
	return buf.String(), nil
}

// RenderSVG encodes code and writes the SVG document to w.
//
// The document is built in memory first; nothing is written on failure.
func RenderSVG(w io.Writer, code string, opts render.Options) error {
	if w == nil {
		return errors.New(errors.ErrCodeInvalidSurface, "nil vector surface")
	}
	p, err := buildPlan(code, opts)
	if err != nil {
		return err
	}
	return WriteSVG(w, p)
}

// WriteSVG serializes an already computed plan to w: one background
// rect, one rect per inked bar, one text node per digit or caption.
func WriteSVG(w io.Writer, p *render.Plan) error {
	if w == nil {
		return errors.New(errors.ErrCodeInvalidSurface, "nil vector surface")
	}
	var buf bytes.Buffer
	writeSVG(&buf, p)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeEncodingFailed, err, "write svg")
	}
	return nil
}

func writeSVG(buf *bytes.Buffer, p *render.Plan) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		ftoa(p.Width), ftoa(p.Height), ftoa(p.Width), ftoa(p.Height))

	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
		ftoa(p.Width), ftoa(p.Height), cssColor(p.Background))

	fg := cssColor(p.Foreground)
	for _, r := range p.Bars {
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			ftoa(r.X), ftoa(r.Y), ftoa(r.W), ftoa(r.H), fg)
	}

	family := escapeXML(p.FontFamily)
	for _, t := range p.Texts {
		// Plan text Y is the top of the glyph line; hanging alignment
		// keeps the anchor semantics identical to the raster sink.
		fmt.Fprintf(buf, `  <text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s" text-anchor="%s" dominant-baseline="hanging">%s</text>`+"\n",
			ftoa(t.X), ftoa(t.Y), family, ftoa(t.Size), fg, svgAnchors[t.Anchor], escapeXML(t.Value))
	}

	buf.WriteString("</svg>\n")
}

// ftoa formats a coordinate without trailing zeros, so whole-pixel
// geometry serializes as integers.
func ftoa(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// cssColor renders a color as #rrggbb, or rgba() when translucent.
func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0xffff {
		return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	}
	if a == 0 {
		return "rgba(0,0,0,0)"
	}
	// RGBA returns alpha-premultiplied channels.
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)",
		(r*0xffff/a)>>8, (g*0xffff/a)>>8, (b*0xffff/a)>>8, float64(a)/0xffff)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
