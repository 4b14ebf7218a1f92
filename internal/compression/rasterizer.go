package compression

import "math"

// PointsPerInch is the PDF unit scale: page coordinates are in points,
// 72 per inch.
const PointsPerInch = 72.0

// Rasterizer renders document pages into pixel buffers at a fixed density.
type Rasterizer struct {
	DPI int
}

// PixelDims returns the raster dimensions for a page of widthPt x heightPt
// points rendered at dpi. The output page created by the rebuilder reuses
// these counts as its size in points.
func PixelDims(widthPt, heightPt float64, dpi int) (int, int) {
	scale := float64(dpi) / PointsPerInch
	return int(math.Round(widthPt * scale)), int(math.Round(heightPt * scale))
}

// Rasterize renders one page. The returned buffer is opaque RGB content;
// a failure is wrapped as a PageRenderError carrying the page index.
func (r Rasterizer) Rasterize(doc Document, pageIndex int) (RasterImage, error) {
	img, err := doc.ImageDPI(pageIndex, float64(r.DPI))
	if err != nil {
		return RasterImage{}, NewPageRenderError(pageIndex, err)
	}
	bounds := img.Bounds()
	return RasterImage{Image: img, Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
