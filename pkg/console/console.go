// Package console writes text to a byte-oriented serial transmitter.
package console

import "io"

// Banner is sent once at power-up.
const Banner = "Thermometer\r\n"

// WriteLine sends s one byte at a time and stops after the first newline.
func WriteLine(w io.ByteWriter, s string) error {
	for i := 0; i < len(s); i++ {
		if err := w.WriteByte(s[i]); err != nil {
			return err
		}
		if s[i] == '\n' {
			break
		}
	}
	return nil
}
