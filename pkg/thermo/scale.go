package thermo

import "errors"

// ADCFullScale is the divisor of the 10-bit ADC transfer function.
const ADCFullScale = 1024

// ReferenceCentiVolts is the ADC reference (AVcc = 5.00 V) in hundredths of a volt.
const ReferenceCentiVolts = 500

var ErrInvalidScale = errors.New("invalid scale: v_max equals v_min")

// Scale maps a sensor voltage range onto a temperature range.
// Voltages are in hundredths of a volt, temperatures in tenths of a degree.
type Scale struct {
	VMin int32
	VMax int32
	TMin int32
	TMax int32
}

// DefaultScale is 0.25..4.75 V mapped onto -50.0..150.0 °C.
var DefaultScale = Scale{
	VMin: 25,
	VMax: 475,
	TMin: -500,
	TMax: 1500,
}

// Voltage converts a raw 10-bit sample to hundredths of a volt.
// Division truncates toward zero, so 1023 yields 499.
func Voltage(raw uint16) int32 {
	return int32(raw) * ReferenceCentiVolts / ADCFullScale
}

// Temperature maps a voltage onto the temperature range.
// The product is computed in 32 bits; values outside [VMin, VMax]
// extrapolate linearly.
func (s Scale) Temperature(v int32) int32 {
	return (v-s.VMin)*(s.TMax-s.TMin)/(s.VMax-s.VMin) + s.TMin
}

// FromRaw converts a raw sample straight to tenths of a degree.
func (s Scale) FromRaw(raw uint16) int32 {
	return s.Temperature(Voltage(raw))
}

// Validate reports whether the scale can be evaluated.
func (s Scale) Validate() error {
	if s.VMax == s.VMin {
		return ErrInvalidScale
	}
	return nil
}
