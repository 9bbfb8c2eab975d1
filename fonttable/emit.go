package fonttable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"io"
	"math/big"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"fontbits/config"
	"fontbits/glyph"
)

// Document is everything an emitter writes.
type Document struct {
	Table      *Table
	CellWidth  int
	CellHeight int
	Sample     []int // character codes of the sample text, nil for none
}

// Bits is the width of every bitmask in the table.
func (d Document) Bits() int {
	return d.CellWidth * d.CellHeight
}

type Emitter interface {
	Emit(w io.Writer, doc Document) error
}

type EmitterFunc func(w io.Writer, doc Document) error

func (f EmitterFunc) Emit(w io.Writer, doc Document) error {
	return f(w, doc)
}

// number of table entries per output line
const entriesPerLine = 8

var emitters = map[string]Emitter{
	"glsl": EmitterFunc(emitGLSL),
	"go":   GoEmitter{Package: "font"},
	"json": EmitterFunc(emitJSON),
}

// Emitters lists the names accepted by EmitterByName.
func Emitters() []string {
	names := make([]string, 0, len(emitters))
	for name := range emitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func EmitterByName(name string) (Emitter, error) {
	e, ok := emitters[name]
	if !ok {
		return nil, &config.Error{Field: "format", Value: name, Reason: "unknown output format, expected one of " + strings.Join(Emitters(), ", ")}
	}
	return e, nil
}

// Serialize writes doc in the named format. Nothing is written to w unless
// the whole document could be formatted.
func Serialize(w io.Writer, name string, doc Document) error {
	e, err := EmitterByName(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := e.Emit(&buf, doc); err != nil {
		return errors.Wrapf(err, "emit %s", name)
	}

	_, err = w.Write(buf.Bytes())
	return errors.Wrap(err, "write output")
}

func joinInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, ", ")
}

// emitGLSL writes declarations that can be pasted into a shader:
//
//	ivec2 font_size = ivec2(7, 12);
//	int font[256] = int[256](
//		0, 0, ...
//	);
//	uint test_text[2] = uint[2](72, 105);
func emitGLSL(w io.Writer, doc Document) error {
	fmt.Fprintf(w, "ivec2 font_size = ivec2(%d, %d);\n", doc.CellWidth, doc.CellHeight)

	n := doc.Table.Len()
	fmt.Fprintf(w, "int font[%d] = int[%d](\n", n, n)
	lines := glyph.Chunk(doc.Table.Entries(), entriesPerLine)
	for i, line := range lines {
		s := make([]string, len(line))
		for j, e := range line {
			s[j] = e.String()
		}
		sep := ","
		if i == len(lines)-1 {
			sep = ""
		}
		fmt.Fprintf(w, "\t%s%s\n", strings.Join(s, ", "), sep)
	}
	fmt.Fprintln(w, ");")

	if len(doc.Sample) > 0 {
		fmt.Fprintf(w, "uint test_text[%d] = uint[%d](%s);\n", len(doc.Sample), len(doc.Sample), joinInts(doc.Sample))
	}
	return nil
}

type jsonDocument struct {
	FontSize   [2]int   `json:"font_size"`
	Font       []string `json:"font"`
	SampleText []int    `json:"sample_text,omitempty"`
}

// emitJSON writes bitmasks as decimal strings, JSON numbers lose precision
// above 53 bits.
func emitJSON(w io.Writer, doc Document) error {
	jd := jsonDocument{
		FontSize:   [2]int{doc.CellWidth, doc.CellHeight},
		SampleText: doc.Sample,
	}
	for _, e := range doc.Table.Entries() {
		jd.Font = append(jd.Font, e.String())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jd)
}

// GoEmitter writes a gofmt'd Go file. Bitmasks wider than 64 bits are split
// into uint64 words, most significant word first.
type GoEmitter struct {
	Package string
}

func (g GoEmitter) Emit(w io.Writer, doc Document) error {
	words := (doc.Bits() + 63) / 64

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by fontbits. DO NOT EDIT.\n\npackage %s\n\n", g.Package)
	fmt.Fprintf(&buf, "// FontSize is the glyph cell width and height in pixels.\n")
	fmt.Fprintf(&buf, "var FontSize = [2]int{%d, %d}\n\n", doc.CellWidth, doc.CellHeight)

	fmt.Fprintf(&buf, "// Font holds one %d bit glyph per character code, first pixel in the most significant bit.\n", doc.Bits())
	if words == 1 {
		fmt.Fprintf(&buf, "var Font = [%d]uint64{\n", doc.Table.Len())
	} else {
		fmt.Fprintf(&buf, "var Font = [%d][%d]uint64{\n", doc.Table.Len(), words)
	}
	for code, e := range doc.Table.Entries() {
		if e.Sign() == 0 {
			continue
		}
		if words == 1 {
			fmt.Fprintf(&buf, "%d: %#x,\n", code, e.Uint64())
			continue
		}
		s := make([]string, words)
		for i, word := range splitWords(e, words) {
			s[i] = fmt.Sprintf("%#x", word)
		}
		fmt.Fprintf(&buf, "%d: {%s},\n", code, strings.Join(s, ", "))
	}
	fmt.Fprintln(&buf, "}")

	if len(doc.Sample) > 0 {
		fmt.Fprintf(&buf, "\nvar SampleText = []uint8{%s}\n", joinInts(doc.Sample))
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "gofmt generated source")
	}
	_, err = w.Write(src)
	return err
}

var wordMask = new(big.Int).SetUint64(^uint64(0))

// splitWords cuts v into n 64 bit words, most significant first.
func splitWords(v *big.Int, n int) []uint64 {
	res := make([]uint64, n)
	rest := new(big.Int).Set(v)
	for i := n - 1; i >= 0; i-- {
		res[i] = new(big.Int).And(rest, wordMask).Uint64()
		rest.Rsh(rest, 64)
	}
	return res
}
