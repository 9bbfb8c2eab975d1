// Package glyph packs the glyph cells of a monospace font atlas into
// integer bitmasks.
//
// Cells are laid out side by side on the first row of the atlas, in the order
// of the character set. Each cell is scanned row by row, left to right, and
// every pixel contributes one bit, most significant bit first:
//
//	cell 3x2        bits          bitmask
//	. # .           0 1 0
//	# # #           1 1 1    ==   0b010111 == 23
package glyph

import (
	"bytes"
	"image/color"
	"math/big"
	"strings"

	"github.com/icza/bitio"
	"github.com/pkg/errors"

	"fontbits/atlas"
	"fontbits/config"
	"fontbits/diag"
)

// PixelSource is the part of an atlas the rasterizer reads. *atlas.Grid
// implements it.
type PixelSource interface {
	Width() int
	Height() int
	Pixel(x, y int) (color.NRGBA, error)
}

type Glyph struct {
	Index int  // position in the character set, selects the cell
	Code  rune // character code, the font table index
	Mask  *big.Int
}

type Glyphs []Glyph

// Map returns the bitmask of every glyph keyed by character code.
func (gs Glyphs) Map() map[rune]*big.Int {
	m := make(map[rune]*big.Int, len(gs))
	for _, g := range gs {
		m[g.Code] = g.Mask
	}
	return m
}

type Rasterizer struct {
	CellWidth  int
	CellHeight int
	Classify   InkClassifier // NotWhite when nil
	Log        *diag.Logger  // may be nil
}

// Rasterize packs the cells of codes with the NotWhite classifier.
func Rasterize(src PixelSource, codes []rune, cellWidth, cellHeight int) (Glyphs, error) {
	r := Rasterizer{CellWidth: cellWidth, CellHeight: cellHeight}
	return r.Rasterize(src, codes)
}

// Rasterize packs one bitmask per code. Either every glyph is returned or an
// error: an *atlas.OutOfBoundsError when the cells do not fit in src, a
// *config.Error for an empty character set or a non-positive cell size.
func (r *Rasterizer) Rasterize(src PixelSource, codes []rune) (Glyphs, error) {
	if err := r.check(src, codes); err != nil {
		return nil, err
	}

	glyphs := make(Glyphs, 0, len(codes))
	for i, code := range codes {
		mask, err := r.pack(src, i*r.CellWidth)
		if err != nil {
			return nil, errors.Wrapf(err, "glyph %d (code %d)", i, code)
		}

		g := Glyph{Index: i, Code: code, Mask: mask}
		if r.Log.Debug() {
			r.Log.Debugf("[%d:%c]: %s => %d = %d", i, code, Bits(mask, r.bitCount()), mask, code)
			r.Log.Art(g.Rows(r.CellWidth, r.CellHeight))
		}
		glyphs = append(glyphs, g)
	}

	return glyphs, nil
}

func (r *Rasterizer) bitCount() int {
	return r.CellWidth * r.CellHeight
}

// check rejects the whole run before a single pixel is read.
func (r *Rasterizer) check(src PixelSource, codes []rune) error {
	if r.CellWidth <= 0 {
		return &config.Error{Field: "cell_width", Value: r.CellWidth, Reason: "must be positive"}
	}
	if r.CellHeight <= 0 {
		return &config.Error{Field: "cell_height", Value: r.CellHeight, Reason: "must be positive"}
	}
	if len(codes) == 0 {
		return &config.Error{Field: "ranges", Value: codes, Reason: "character set is empty"}
	}

	span := len(codes) * r.CellWidth
	if span > src.Width() {
		return errors.Wrapf(
			&atlas.OutOfBoundsError{X: src.Width(), Y: 0, Width: src.Width(), Height: src.Height()},
			"%d cells of width %d need an atlas %d pixels wide", len(codes), r.CellWidth, span)
	}
	if r.CellHeight > src.Height() {
		return errors.Wrapf(
			&atlas.OutOfBoundsError{X: 0, Y: src.Height(), Width: src.Width(), Height: src.Height()},
			"cell height %d exceeds the atlas height", r.CellHeight)
	}

	return nil
}

// pack scans the cell whose left edge is at ox.
func (r *Rasterizer) pack(src PixelSource, ox int) (*big.Int, error) {
	classify := r.Classify
	if classify == nil {
		classify = NotWhite
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	// y outer, x inner: this fixes the bit layout
	for y := 0; y < r.CellHeight; y++ {
		for x := 0; x < r.CellWidth; x++ {
			c, err := src.Pixel(ox+x, y)
			if err != nil {
				return nil, err
			}
			r.Log.Debugf("[%d,%d]: %d,%d,%d,%d", ox+x, y, c.R, c.G, c.B, c.A)

			if err := w.WriteBool(classify(c)); err != nil {
				return nil, errors.Wrap(err, "write bit")
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "flush bits")
	}

	// Close pads the last byte with zeros
	mask := new(big.Int).SetBytes(buf.Bytes())
	return mask.Rsh(mask, padding(r.bitCount())), nil
}

// padding is the number of zero bits that fill up the last byte of an n bit
// value.
func padding(n int) uint {
	return uint((8 - n%8) % 8)
}

// Bits formats mask as a binary string of exactly n digits.
func Bits(mask *big.Int, n int) string {
	s := mask.Text(2)
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s
}

// Rows unpacks the bitmask into one string per cell row, '#' for ink and '.'
// for background.
func (g Glyph) Rows(cellWidth, cellHeight int) []string {
	n := cellWidth * cellHeight
	if n <= 0 || g.Mask.Sign() < 0 || g.Mask.BitLen() > n {
		return nil
	}

	raw := make([]byte, (n+7)/8)
	new(big.Int).Lsh(g.Mask, padding(n)).FillBytes(raw)

	br := bitio.NewReader(bytes.NewReader(raw))
	pixels := make([]byte, n)
	for i := range pixels {
		ink, err := br.ReadBool()
		if err != nil {
			return nil
		}
		pixels[i] = '.'
		if ink {
			pixels[i] = '#'
		}
	}

	rows := make([]string, 0, cellHeight)
	for _, row := range Chunk(pixels, cellWidth) {
		rows = append(rows, string(row))
	}
	return rows
}
