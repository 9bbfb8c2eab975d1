// Package fonttable builds the 256 entry font table from packed glyphs and
// writes it as source code literals.
package fonttable

import (
	"fmt"
	"math/big"

	"fontbits/config"
)

// RangeError is returned for a character code that cannot index the table.
type RangeError struct {
	Code rune
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("character code %d is outside the font table [0,%d)", e.Code, config.TableSize)
}

// Table maps a character code to its glyph bitmask. Codes without a glyph
// map to 0, a blank glyph. A Table does not change after Build.
type Table struct {
	entries [config.TableSize]*big.Int
}

// Build copies masks into a new table. It fails only for keys outside
// [0,256).
func Build(masks map[rune]*big.Int) (*Table, error) {
	t := &Table{}
	for code := range t.entries {
		t.entries[code] = new(big.Int)
	}

	for code, mask := range masks {
		if code < 0 || int(code) >= config.TableSize {
			return nil, &RangeError{Code: code}
		}
		if mask != nil {
			t.entries[code].Set(mask)
		}
	}

	return t, nil
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns a copy of the bitmask for code, 0 for codes outside the
// table.
func (t *Table) Entry(code int) *big.Int {
	if code < 0 || code >= len(t.entries) {
		return new(big.Int)
	}
	return new(big.Int).Set(t.entries[code])
}

// Entries returns copies of all entries in code order.
func (t *Table) Entries() []*big.Int {
	res := make([]*big.Int, len(t.entries))
	for code := range t.entries {
		res[code] = t.Entry(code)
	}
	return res
}

// Used counts the non blank entries.
func (t *Table) Used() int {
	n := 0
	for _, e := range t.entries {
		if e.Sign() != 0 {
			n++
		}
	}
	return n
}
