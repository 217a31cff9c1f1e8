package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Lookup(t *testing.T) {
	tests := []struct {
		c    byte
		want byte
	}{
		{'0', 0b11111100},
		{'1', 0b01100000},
		{'2', 0b11011010},
		{'3', 0b11110010},
		{'4', 0b01100110},
		{'5', 0b10110110},
		{'6', 0b10111110},
		{'7', 0b11100000},
		{'8', 0b11111110},
		{'9', 0b11110110},
		{'-', 0b00000010},
		{'.', 0b00000001},
		{' ', 0b00000000},
	}

	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			assert.True(t, DefaultTable.Has(tt.c))
			assert.Equal(t, tt.want, DefaultTable.Lookup(tt.c))
		})
	}
}

func TestTable_LookupFallsBackToCharacter(t *testing.T) {
	for _, c := range []byte{'A', 'Z', 'e', '+', 0x00, 0xFF} {
		assert.False(t, DefaultTable.Has(c))
		assert.Equal(t, c, DefaultTable.Lookup(c), "unmapped %q", c)
	}
}

func TestTable_FirstMatchWins(t *testing.T) {
	tbl := NewTable(Symbol{'E', 0x9E}, Symbol{'E', 0x01})
	assert.Equal(t, byte(0x9E), tbl.Lookup('E'))
}

func TestTable_SymbolsIsCopy(t *testing.T) {
	syms := DefaultTable.Symbols()
	assert.Len(t, syms, 13)
	syms[0].Pattern = 0
	assert.Equal(t, byte(0b11111100), DefaultTable.Lookup('0'))
}

func TestTable_SegmentBits(t *testing.T) {
	assert.Equal(t, SegG, DefaultTable.Lookup('-'))
	assert.Equal(t, SegDP, DefaultTable.Lookup('.'))
	assert.Equal(t, SegB|SegC, DefaultTable.Lookup('1'))
	assert.Equal(t, SegA|SegB|SegC|SegD|SegE|SegF|SegG, DefaultTable.Lookup('8'))
}
