package main

import (
	"image"
	"image/color"
	"testing"
)

func TestFlipRows(t *testing.T) {
	for _, h := range []int{1, 2, 3, 4} {
		img := image.NewRGBA(image.Rect(0, 0, 2, h))
		for y := 0; y < h; y++ {
			img.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
		}

		flipRows(img)

		for y := 0; y < h; y++ {
			if got := img.RGBAAt(0, y).R; got != uint8(h-1-y) {
				t.Errorf("height %d: row %d holds %d, want %d", h, y, got, h-1-y)
			}
		}
	}
}
