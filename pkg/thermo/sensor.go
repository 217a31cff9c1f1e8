package thermo

import "tinygo.org/x/drivers"

// ADC is satisfied by machine.ADC. Get returns the sample scaled to 16 bits.
type ADC interface {
	Get() uint16
}

// Sensor is a polled temperature sensor on top of an ADC channel.
type Sensor struct {
	adc   ADC
	scale Scale

	raw         uint16
	centiVolts  int32
	deciDegrees int32
}

var _ drivers.Sensor = (*Sensor)(nil)

// NewSensor creates a sensor reading adc and converting with scale.
func NewSensor(adc ADC, scale Scale) *Sensor {
	return &Sensor{adc: adc, scale: scale}
}

// Update samples the ADC when a temperature or voltage measurement is requested.
func (s *Sensor) Update(which drivers.Measurement) error {
	if which&(drivers.Temperature|drivers.Voltage) == 0 {
		return nil
	}
	if err := s.scale.Validate(); err != nil {
		return err
	}
	// 16-bit left-justified value down to the 10-bit conversion result
	s.raw = s.adc.Get() >> 6
	s.centiVolts = Voltage(s.raw)
	s.deciDegrees = s.scale.Temperature(s.centiVolts)
	return nil
}

// Raw returns the last 10-bit sample.
func (s *Sensor) Raw() uint16 { return s.raw }

// Temperature returns the last temperature in milli-degrees Celsius.
func (s *Sensor) Temperature() int32 { return s.deciDegrees * 100 }

// Voltage returns the last sensor voltage in microvolts.
func (s *Sensor) Voltage() int32 { return s.centiVolts * 10000 }

// DeciDegrees returns the last temperature in tenths of a degree.
func (s *Sensor) DeciDegrees() int32 { return s.deciDegrees }
