package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Error reports an invalid configuration value. It is returned before any
// pixel of the atlas is inspected.
type Error struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Range is a half-open interval [Start, End) of character codes.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Ranges are written as two element sequences in the config file:
//
//	ranges: [[33, 127], [161, 232]]
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return &Error{Field: "range", Value: pair, Reason: "expected [start, end]"}
	}
	r.Start, r.End = pair[0], pair[1]
	return nil
}

func (r Range) MarshalYAML() (interface{}, error) {
	return []int{r.Start, r.End}, nil
}

type Config struct {
	CellWidth  int     `yaml:"cell_width"`
	CellHeight int     `yaml:"cell_height"`
	Ranges     []Range `yaml:"ranges"`
	Ink        string  `yaml:"ink"`
	Format     string  `yaml:"format"`
	SampleText string  `yaml:"sample_text"`
}

func Default() Config {
	ranges := make([]Range, len(DefaultRanges))
	copy(ranges, DefaultRanges)

	return Config{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Ranges:     ranges,
		Ink:        DefaultInk,
		Format:     DefaultFormat,
		SampleText: DefaultSampleText,
	}
}

// Load reads a YAML config file. Fields missing from the file keep their
// default value. Unknown fields are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// Validate checks the cell size and the character ranges. Ink and output
// format names are checked by the packages that own them.
func (c Config) Validate() error {
	if c.CellWidth <= 0 {
		return &Error{Field: "cell_width", Value: c.CellWidth, Reason: "must be positive"}
	}
	if c.CellHeight <= 0 {
		return &Error{Field: "cell_height", Value: c.CellHeight, Reason: "must be positive"}
	}
	if len(c.Ranges) == 0 {
		return &Error{Field: "ranges", Value: c.Ranges, Reason: "character set is empty"}
	}

	seen := make(map[int]Range)
	for _, r := range c.Ranges {
		if r.Len() <= 0 {
			return &Error{Field: "range", Value: r, Reason: "end must be greater than start"}
		}
		if r.Start < 0 || r.End > TableSize {
			return &Error{Field: "range", Value: r, Reason: fmt.Sprintf("codes must be within [0,%d)", TableSize)}
		}
		for code := r.Start; code < r.End; code++ {
			if prev, ok := seen[code]; ok {
				return &Error{Field: "range", Value: r, Reason: fmt.Sprintf("code %d already covered by %v", code, prev)}
			}
			seen[code] = r
		}
	}

	return nil
}

// CharSet expands the ranges into the ordered list of character codes. The
// position of a code in this list selects its cell in the atlas.
func (c Config) CharSet() []rune {
	codes := make([]rune, 0, c.CharCount())
	for _, r := range c.Ranges {
		for code := r.Start; code < r.End; code++ {
			codes = append(codes, rune(code))
		}
	}
	return codes
}

func (c Config) CharCount() int {
	n := 0
	for _, r := range c.Ranges {
		if r.Len() > 0 {
			n += r.Len()
		}
	}
	return n
}

// AtlasWidth is the minimum atlas width needed to hold every cell.
func (c Config) AtlasWidth() int {
	return c.CharCount() * c.CellWidth
}
