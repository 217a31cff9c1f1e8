package sampler

import "errors"

var ErrInvalidOverflow = errors.New("invalid overflow policy")

// Overflow selects what happens to a reading wider than the display.
type Overflow uint8

const (
	// Clamp saturates the temperature to [MinDisplay, MaxDisplay].
	Clamp Overflow = iota
	// Truncate keeps the rightmost characters of the text.
	Truncate
	// Dashes shows "----".
	Dashes
)

// Representable range of a 4-character reading.
const (
	MinDisplay = -999
	MaxDisplay = 9999
)

// ParseOverflow converts a policy name into an Overflow.
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "", "clamp":
		return Clamp, nil
	case "truncate":
		return Truncate, nil
	case "dashes":
		return Dashes, nil
	}
	return Clamp, ErrInvalidOverflow
}

func (o Overflow) String() string {
	switch o {
	case Clamp:
		return "clamp"
	case Truncate:
		return "truncate"
	case Dashes:
		return "dashes"
	}
	return "unknown"
}
