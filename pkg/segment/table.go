// Package segment maps characters to 7-segment glyphs and lays decimal text
// out on a 4-digit display.
//
// Segment bits, MSB first: a b c d e f g dp.
package segment

// Segment bits.
const (
	SegA  byte = 1 << 7
	SegB  byte = 1 << 6
	SegC  byte = 1 << 5
	SegD  byte = 1 << 4
	SegE  byte = 1 << 3
	SegF  byte = 1 << 2
	SegG  byte = 1 << 1
	SegDP byte = 1 << 0
)

// Symbol binds a printable character to its segment pattern.
type Symbol struct {
	Char    byte
	Pattern byte
}

// Table is an immutable ordered character to pattern mapping.
type Table struct {
	symbols []Symbol
}

// DefaultTable holds the digits, minus, decimal point and space.
var DefaultTable = NewTable(
	Symbol{'0', 0b11111100},
	Symbol{'1', 0b01100000},
	Symbol{'2', 0b11011010},
	Symbol{'3', 0b11110010},
	Symbol{'4', 0b01100110},
	Symbol{'5', 0b10110110},
	Symbol{'6', 0b10111110},
	Symbol{'7', 0b11100000},
	Symbol{'8', 0b11111110},
	Symbol{'9', 0b11110110},
	Symbol{'-', 0b00000010},
	Symbol{'.', 0b00000001},
	Symbol{' ', 0b00000000},
)

// NewTable copies symbols into a new table. Order is preserved.
func NewTable(symbols ...Symbol) *Table {
	t := &Table{symbols: make([]Symbol, len(symbols))}
	copy(t.symbols, symbols)
	return t
}

// Lookup returns the pattern for c. The first matching entry wins.
// Characters missing from the table are returned unchanged.
func (t *Table) Lookup(c byte) byte {
	for _, s := range t.symbols {
		if s.Char == c {
			return s.Pattern
		}
	}
	return c
}

// Has reports whether c has an entry in the table.
func (t *Table) Has(c byte) bool {
	for _, s := range t.symbols {
		if s.Char == c {
			return true
		}
	}
	return false
}

// Symbols returns a copy of the table entries in lookup order.
func (t *Table) Symbols() []Symbol {
	out := make([]Symbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}
