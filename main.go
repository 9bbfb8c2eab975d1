// fontbits converts a monospace font atlas into a table of packed glyph
// bitmasks that can be pasted into shader or program source.
//
// The atlas holds one cell per character, side by side on a single row, in
// the order of the configured character ranges. Every pixel that is not pure
// white is ink. Run
//
//	fontbits -i src/font.png > font.glsl
//
// to print the table with the default 7x12 cells and the characters
// [33,127) and [161,232).
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"fontbits/atlas"
	"fontbits/config"
	"fontbits/diag"
)

// debugEnv enables debug output like -d does.
const debugEnv = "FONTBITS_DEBUG"

type Options struct {
	Image    string         `short:"i" long:"image"     description:"font atlas image"                                       default:"src/font.png"`
	Config   flags.Filename `short:"c" long:"config"    description:"YAML config file"`
	Format   string         `short:"f" long:"format"    description:"output format: glsl, go or json"`
	Sample   string         `short:"s" long:"sample"    description:"sample text to encode next to the table"`
	NoSample bool           `long:"no-sample"           description:"do not encode a sample text"`
	Ink      string         `long:"ink"                 description:"ink policy: not-white, opaque-not-white or alpha"`
	Output   string         `short:"o" long:"output"    description:"write the table to a file instead of stdout"`
	Preview  string         `short:"p" long:"preview"   description:"write a PNG preview of the packed glyphs"`
	Scale    int            `long:"scale"               description:"preview scale"                                          default:"4"`
	Render   string         `long:"render"              description:"draw an atlas with the built-in 7x13 font to this file and exit"`
	Debug    bool           `short:"d" long:"debug"     description:"enable debug output"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if len(rest) > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(rest, " "))
		return 1
	}

	log := diag.New(stderr, opts.Debug || envEnabled(getenv(debugEnv)))

	if err := convert(opts, stdout, log); err != nil {
		fmt.Fprintf(stderr, "fontbits: %v\n", err)
		if log.Debug() {
			fmt.Fprintf(stderr, "%+v\n", err)
		}
		return 1
	}
	return 0
}

func envEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

func loadConfig(opts Options) (config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		cfg, err = config.Load(string(opts.Config))
		if err != nil {
			return cfg, err
		}
	}

	// command line wins over the config file
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Ink != "" {
		cfg.Ink = opts.Ink
	}
	if opts.Sample != "" {
		cfg.SampleText = opts.Sample
	}
	if opts.NoSample {
		cfg.SampleText = ""
	}
	return cfg, nil
}

func convert(opts Options, stdout io.Writer, log *diag.Logger) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.Render != "" {
		return render(cfg, opts.Render, log)
	}

	fb := FontBits{Config: cfg, Log: log}
	if err := fb.Load(opts.Image); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := fb.Encode(&buf); err != nil {
		return err
	}

	if opts.Preview != "" {
		if err := fb.Preview(opts.Preview, opts.Scale); err != nil {
			return err
		}
		log.Printf("wrote preview %s", opts.Preview)
	}

	if opts.Output == "" {
		_, err = stdout.Write(buf.Bytes())
		return errors.Wrap(err, "write output")
	}
	if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "write output")
	}
	log.Printf("wrote %s", opts.Output)
	return nil
}

// render writes a starter atlas for the configured character set.
func render(cfg config.Config, path string, log *diag.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	img := atlas.Render(basicfont.Face7x13, cfg.CharSet(), cfg.CellWidth, cfg.CellHeight)
	if err := atlas.Save(img, path); err != nil {
		return errors.Wrapf(err, "save atlas %s", path)
	}
	log.Printf("wrote %dx%d atlas %s", img.Rect.Dx(), img.Rect.Dy(), path)
	return nil
}
