package atlas

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"

	// formats an atlas may be stored in
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Grid is a decoded atlas. Every pixel is 8-bit non-premultiplied RGBA no
// matter what color model the source file used. A Grid is never modified
// after decoding.
type Grid struct {
	img *image.NRGBA
}

// NewGrid copies img into a Grid whose origin is (0,0).
func NewGrid(img image.Image) *Grid {
	return &Grid{img: imaging.Clone(img)}
}

func Decode(r io.Reader, name string) (*Grid, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}

	return NewGrid(img), nil
}

// Open decodes the atlas stored at path. The file is closed before Open
// returns, also when decoding fails.
func Open(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	return Decode(f, path)
}

func (g *Grid) Width() int {
	return g.img.Rect.Dx()
}

func (g *Grid) Height() int {
	return g.img.Rect.Dy()
}

func (g *Grid) Pixel(x, y int) (color.NRGBA, error) {
	if x < 0 || y < 0 || x >= g.Width() || y >= g.Height() {
		return color.NRGBA{}, &OutOfBoundsError{X: x, Y: y, Width: g.Width(), Height: g.Height()}
	}

	return g.img.NRGBAAt(x, y), nil
}

// Image returns a copy of the pixels.
func (g *Grid) Image() *image.NRGBA {
	return imaging.Clone(g.img)
}
