package main

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// annotateImage stamps a small status label onto the bottom-left corner of a
// chart image so screenshots and exported canvases keep their context.
func annotateImage(src image.Image, label string) image.Image {
	if label == "" {
		return src
	}
	b := src.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, src, b.Min, draw.Src)
	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.RGBA{R: 80, G: 80, B: 80, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(b.Min.X+8, b.Max.Y-6),
	}
	d.DrawString(label)
	return out
}
