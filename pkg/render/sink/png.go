package sink

import (
	"bytes"
	"image/png"

	"github.com/quietzone/ean13/pkg/errors"
	"github.com/quietzone/ean13/pkg/render"
)

// EncodePNG encodes code and returns the symbol as PNG bytes.
func EncodePNG(code string, opts render.Options) ([]byte, error) {
	img, err := Image(code, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailed, err, "png encode")
	}
	return buf.Bytes(), nil
}

// PNGResult is the outcome of a deferred PNG export.
type PNGResult struct {
	Data []byte
	Err  error
}

// EncodePNGAsync runs EncodePNG in a goroutine and returns a channel
// that yields exactly one result. The channel is buffered, so the
// result never blocks even if the caller abandons it.
//
// The underlying computation is synchronous and fast; this exists for
// callers that want a deferred-result shape around raster export.
func EncodePNGAsync(code string, opts render.Options) <-chan PNGResult {
	ch := make(chan PNGResult, 1)
	go func() {
		data, err := EncodePNG(code, opts)
		ch <- PNGResult{Data: data, Err: err}
	}()
	return ch
}
