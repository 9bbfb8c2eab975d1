package fonttable

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// EncodeSample returns the character codes of text. Codes index the font
// table, so text must be representable in Latin-1.
func EncodeSample(text string) ([]int, error) {
	codes := make([]int, 0, len(text))
	for i, r := range text {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, errors.Errorf("sample text %q: %U at byte %d has no Latin-1 code", text, r, i)
		}
		codes = append(codes, int(b))
	}
	return codes, nil
}
