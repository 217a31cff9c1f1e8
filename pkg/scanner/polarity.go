package scanner

import "errors"

var ErrInvalidPolarity = errors.New("invalid polarity")

// Polarity is the logic level that switches a digit transistor on.
type Polarity uint8

const (
	ActiveHigh Polarity = iota
	ActiveLow
)

// Off returns the transistor port value with every digit switched off.
func (p Polarity) Off() byte {
	if p == ActiveLow {
		return 0xFF
	}
	return 0x00
}

// Select returns the transistor port value with only digit switched on.
func (p Polarity) Select(digit int) byte {
	mask := byte(1) << digit
	if p == ActiveLow {
		return ^mask
	}
	return mask
}

// Active reports whether digit is switched on in port value v.
func (p Polarity) Active(v byte, digit int) bool {
	on := v&(1<<digit) != 0
	if p == ActiveLow {
		return !on
	}
	return on
}

// ParsePolarity accepts "high" or "low".
func ParsePolarity(s string) (Polarity, error) {
	switch s {
	case "", "high":
		return ActiveHigh, nil
	case "low":
		return ActiveLow, nil
	}
	return ActiveHigh, ErrInvalidPolarity
}

func (p Polarity) String() string {
	if p == ActiveLow {
		return "low"
	}
	return "high"
}
