package scan

import (
	"image"

	"github.com/disintegration/imaging"
)

// prepareForOCR runs the enhancement chain that makes thermal-printer
// receipts readable for tesseract: grayscale, contrast, sharpen, a
// slight brightness lift and gamma correction.
func prepareForOCR(src image.Image) *image.NRGBA {
	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)
	img = imaging.AdjustBrightness(img, 10)
	img = imaging.AdjustGamma(img, 1.2)

	// Phone photos can be huge; tesseract gets slower and noisier past
	// a point, so cap the longest side.
	if b := img.Bounds(); b.Dx() > 2500 || b.Dy() > 2500 {
		img = imaging.Fit(img, 2500, 2500, imaging.Lanczos)
	}
	return img
}
