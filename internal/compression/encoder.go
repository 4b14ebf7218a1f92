package compression

import (
	"bytes"
	"fmt"
	"image/jpeg"
)

// Encoder lossily re-encodes raster pages as JPEG at a fixed quality.
// Quality is validated once when the profile is resolved, not per page.
type Encoder struct {
	Quality int
}

// Encode compresses one raster page into JPEG bytes.
func (e Encoder) Encode(raster RasterImage) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, raster.Image, &jpeg.Options{Quality: e.Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
