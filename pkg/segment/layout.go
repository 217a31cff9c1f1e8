package segment

// Layout renders decimal text onto a display buffer.
//
// The text is right-aligned with blank padding. When it is wider than the
// display, only the rightmost Width characters are kept. A reading with a
// single digit is shifted left and gets a leading '0' in DecimalSlot. The
// decimal point is then always lit in DecimalSlot, so the display reads as
// tenths regardless of magnitude.
func Layout(text []byte, t *Table) Buffer {
	var b Buffer

	digits := 0
	for i := 0; i < len(text) && i < Width; i++ {
		if text[i] >= '0' && text[i] <= '9' {
			digits++
		}
	}

	src := text
	if len(src) > Width {
		src = src[len(src)-Width:]
	}
	for i, c := range src {
		b[Width-len(src)+i] = t.Lookup(c)
	}

	if digits == 1 {
		b[0] = b[1]
		b[1] = b[2]
		b[2] = t.Lookup('0')
	}

	b[DecimalSlot] |= t.Lookup('.')
	return b
}
