package segment

// Art draws the buffer as three rows of text, four columns per digit.
// The decimal point sits in the bottom-right column of its digit.
func Art(b Buffer) [3]string {
	var rows [3][]byte
	for _, p := range b {
		rows[0] = append(rows[0], ' ', pick(p, SegA, '_'), ' ')
		rows[1] = append(rows[1], pick(p, SegF, '|'), pick(p, SegG, '_'), pick(p, SegB, '|'))
		rows[2] = append(rows[2], pick(p, SegE, '|'), pick(p, SegD, '_'), pick(p, SegC, '|'))
		rows[2] = append(rows[2], pick(p, SegDP, '.'))
		rows[0] = append(rows[0], ' ')
		rows[1] = append(rows[1], ' ')
	}
	return [3]string{string(rows[0]), string(rows[1]), string(rows[2])}
}

func pick(p, bit, c byte) byte {
	if p&bit != 0 {
		return c
	}
	return ' '
}
