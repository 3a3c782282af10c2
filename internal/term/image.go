package term

import (
	"image"
	"image/color"
)

// CanvasImage rasterizes the canvas into a two-color paletted image,
// one scale x scale block per dot. The paletted form feeds GIF
// recording directly.
func CanvasImage(c *Canvas, scale int, fg, bg color.Color) *image.Paletted {
	if scale < 1 {
		scale = 1
	}
	dw, dh := c.dotSpan()
	img := image.NewPaletted(image.Rect(0, 0, dw*scale, dh*scale), color.Palette{bg, fg})
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !c.DotAt(x, y) {
				continue
			}
			for py := 0; py < scale; py++ {
				for px := 0; px < scale; px++ {
					img.SetColorIndex(x*scale+px, y*scale+py, 1)
				}
			}
		}
	}
	return img
}

// HexRGBA parses a #rrggbb string. Anything malformed comes back
// white, which keeps theme handling total.
func HexRGBA(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{
		R: uint8(parseHexByte(hex[1:3])),
		G: uint8(parseHexByte(hex[3:5])),
		B: uint8(parseHexByte(hex[5:7])),
		A: 255,
	}
}
