package sample

import (
	"log"
	"time"

	"github.com/itohio/ledthermo/pkg/thermo"
)

// RawSample is one ADC conversion result.
type RawSample struct {
	Timestamp time.Time
	Value     uint16 // 10-bit ADC reading (0-1023)
}

// Reading is a converted sample.
type Reading struct {
	Timestamp   time.Time
	Raw         uint16
	CentiVolts  int32 // Sensor voltage in hundredths of a volt
	DeciDegrees int32 // Temperature in tenths of a degree
}

// Degrees returns the temperature in degrees.
func (r Reading) Degrees() float64 {
	return float64(r.DeciDegrees) / 10
}

// Volts returns the sensor voltage in volts.
func (r Reading) Volts() float64 {
	return float64(r.CentiVolts) / 100
}

// DefaultBufferSize is the channel buffer used when none is given.
const DefaultBufferSize = 100

// Converter is a function type that converts RawSample channel to Reading channel.
type Converter func(in <-chan RawSample) <-chan Reading

// NewConverter creates a converter function that transforms RawSample to Reading.
func NewConverter(scale thermo.Scale, bufSize int) Converter {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}

	return func(in <-chan RawSample) <-chan Reading {
		out := make(chan Reading, bufSize)

		go func() {
			defer close(out)

			if err := scale.Validate(); err != nil {
				log.Printf("Converter disabled: %v", err)
				for range in {
				}
				return
			}

			for raw := range in {
				select {
				case out <- Convert(raw, scale):
				case <-time.After(time.Second):
					log.Printf("Converter output channel full, dropping sample")
				}
			}
		}()

		return out
	}
}

// Convert converts a RawSample to a Reading. The scale must be valid.
func Convert(raw RawSample, scale thermo.Scale) Reading {
	v := thermo.Voltage(raw.Value)
	return Reading{
		Timestamp:   raw.Timestamp,
		Raw:         raw.Value,
		CentiVolts:  v,
		DeciDegrees: scale.Temperature(v),
	}
}
