package main

import (
	"io"

	"github.com/pkg/errors"

	"fontbits/atlas"
	"fontbits/config"
	"fontbits/diag"
	"fontbits/fonttable"
	"fontbits/glyph"
)

// FontBits is one conversion run: an atlas goes in, a font table comes out.
type FontBits struct {
	Config config.Config
	Log    *diag.Logger

	Grid   *atlas.Grid
	Glyphs glyph.Glyphs
	Table  *fonttable.Table
	Sample []int
}

// Load reads the atlas, packs every glyph and builds the table. All
// configuration is checked before the atlas is opened.
func (fb *FontBits) Load(atlasFile string) error {
	classify, err := fb.prepare()
	if err != nil {
		return err
	}

	fb.Log.Printf("loading image %s...", atlasFile)
	fb.Grid, err = atlas.Open(atlasFile)
	if err != nil {
		return err
	}
	fb.Log.Debugf("atlas is %dx%d, %d cells need %dx%d",
		fb.Grid.Width(), fb.Grid.Height(), fb.Config.CharCount(), fb.Config.AtlasWidth(), fb.Config.CellHeight)

	return fb.process(fb.Grid, classify)
}

// Process packs the glyphs of an already decoded atlas.
func (fb *FontBits) Process(src glyph.PixelSource) error {
	classify, err := fb.prepare()
	if err != nil {
		return err
	}
	return fb.process(src, classify)
}

// prepare validates the configuration and encodes the sample text.
func (fb *FontBits) prepare() (glyph.InkClassifier, error) {
	cfg := fb.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	classify, err := glyph.ClassifierByName(cfg.Ink)
	if err != nil {
		return nil, err
	}
	if _, err := fonttable.EmitterByName(cfg.Format); err != nil {
		return nil, err
	}

	fb.Sample = nil
	if cfg.SampleText != "" {
		fb.Sample, err = fonttable.EncodeSample(cfg.SampleText)
		if err != nil {
			return nil, err
		}
	}

	fb.Log.Dump(cfg)
	return classify, nil
}

func (fb *FontBits) process(src glyph.PixelSource, classify glyph.InkClassifier) error {
	cfg := fb.Config

	fb.Log.Printf("processing %d glyphs...", cfg.CharCount())
	r := glyph.Rasterizer{
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
		Classify:   classify,
		Log:        fb.Log,
	}
	glyphs, err := r.Rasterize(src, cfg.CharSet())
	if err != nil {
		return errors.Wrap(err, "rasterize atlas")
	}

	table, err := fonttable.Build(glyphs.Map())
	if err != nil {
		return errors.Wrap(err, "build font table")
	}
	fb.Log.Debugf("font table has %d of %d entries in use", table.Used(), table.Len())

	fb.Glyphs, fb.Table = glyphs, table
	return nil
}

func (fb *FontBits) Document() fonttable.Document {
	return fonttable.Document{
		Table:      fb.Table,
		CellWidth:  fb.Config.CellWidth,
		CellHeight: fb.Config.CellHeight,
		Sample:     fb.Sample,
	}
}

// Encode writes the table in the configured output format.
func (fb *FontBits) Encode(w io.Writer) error {
	if fb.Table == nil {
		return errors.New("no font table, Load or Process first")
	}
	return fonttable.Serialize(w, fb.Config.Format, fb.Document())
}

// Preview writes a PNG of the packed glyphs.
func (fb *FontBits) Preview(path string, scale int) error {
	if fb.Table == nil {
		return errors.New("no font table, Load or Process first")
	}

	img := fonttable.Preview(fb.Table, fb.Config.CharSet(), fb.Config.CellWidth, fb.Config.CellHeight, scale)
	return errors.Wrapf(atlas.Save(img, path), "save preview %s", path)
}
