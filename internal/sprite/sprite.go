// Package sprite builds the small textures used for billboards.
package sprite

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
)

// SoftDisc returns a size×size white disc on a transparent background with its edge blurred by
// blurRadius pixels. Tinting the texture at draw time gives each particle its colour.
func SoftDisc(size int, blurRadius float64) *image.RGBA {
	if size < 1 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	r := c - blurRadius
	if r < 1 {
		r = max(c, 0.5)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	if blurRadius <= 0 {
		return img
	}
	return blur.Gaussian(img, blurRadius)
}
