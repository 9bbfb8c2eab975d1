package fonttable

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"fontbits/glyph"
)

// Preview draws the table back into an atlas laid out like the source one,
// black ink on white, every pixel enlarged to a scale x scale square.
// Rasterizing a preview of scale 1 gives back the table.
func Preview(t *Table, codes []rune, cellWidth, cellHeight, scale int) *image.NRGBA {
	img := imaging.New(cellWidth*len(codes), cellHeight, color.White)
	ink := color.NRGBA{A: 0xff}

	for i, code := range codes {
		g := glyph.Glyph{Index: i, Code: code, Mask: t.Entry(int(code))}
		for y, row := range g.Rows(cellWidth, cellHeight) {
			for x := 0; x < len(row); x++ {
				if row[x] == '#' {
					img.SetNRGBA(i*cellWidth+x, y, ink)
				}
			}
		}
	}

	if scale > 1 {
		img = imaging.Resize(img, img.Rect.Dx()*scale, img.Rect.Dy()*scale, imaging.NearestNeighbor)
	}
	return img
}
