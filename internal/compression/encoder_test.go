package compression

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func gradientRaster(width, height int) RasterImage {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return RasterImage{Image: img, Width: width, Height: height}
}

func TestEncodeProducesJPEG(t *testing.T) {
	data, err := Encoder{Quality: 70}.Encode(gradientRaster(64, 48))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		t.Error("output does not start with the JPEG SOI marker")
	}
}

func TestEncodeQualityAffectsSize(t *testing.T) {
	raster := gradientRaster(256, 256)

	low, err := Encoder{Quality: 10}.Encode(raster)
	if err != nil {
		t.Fatalf("Encode quality 10: %v", err)
	}
	high, err := Encoder{Quality: 95}.Encode(raster)
	if err != nil {
		t.Fatalf("Encode quality 95: %v", err)
	}

	if len(high) <= len(low) {
		t.Errorf("quality 95 output (%d bytes) not larger than quality 10 output (%d bytes)",
			len(high), len(low))
	}
}

func TestEncodeDeterministic(t *testing.T) {
	raster := gradientRaster(64, 64)

	first, err := Encoder{Quality: 70}.Encode(raster)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	second, err := Encoder{Quality: 70}.Encode(raster)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("identical input and quality produced different bytes")
	}
}
