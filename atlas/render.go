package atlas

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Render draws codes black on white into consecutive cells of a new atlas,
// the layout the rasterizer expects. The baseline sits at the face's ascent,
// clamped to the cell height; anything drawn outside a cell is clipped.
func Render(face font.Face, codes []rune, cellWidth, cellHeight int) *image.NRGBA {
	img := imaging.New(cellWidth*len(codes), cellHeight, color.White)

	baseline := face.Metrics().Ascent.Ceil()
	if baseline > cellHeight {
		baseline = cellHeight
	}

	for i, code := range codes {
		cell := image.Rect(i*cellWidth, 0, (i+1)*cellWidth, cellHeight)
		d := font.Drawer{
			Dst:  img.SubImage(cell).(*image.NRGBA),
			Src:  image.Black,
			Face: face,
			Dot:  fixed.P(cell.Min.X, baseline),
		}
		d.DrawString(string(code))
	}

	return img
}

// Save writes an image, picking the format from the file extension.
func Save(img image.Image, path string) error {
	return imaging.Save(img, path)
}
