package images

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// pngEncoder favours speed: frames are re-encoded on every render tick.
var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = pngEncoder.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleInto scales src to exactly fill r of dst.
func ScaleInto(dst draw.Image, r image.Rectangle, src image.Image) {
	if dst == nil || src == nil || r.Empty() {
		return
	}
	draw.ApproxBiLinear.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
}
