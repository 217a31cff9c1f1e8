package main

import (
	"fmt"

	"github.com/itohio/ledthermo/pkg/sample"
	"github.com/itohio/ledthermo/pkg/thermo"
)

// formatReadout shows the instantaneous sensor values next to the averaged
// temperature the display is built from.
func formatReadout(s *thermo.Sensor, avg sample.Reading) string {
	return fmt.Sprintf("raw %4d   %.2f V   %.1f °C   (avg %.1f °C)",
		s.Raw(),
		float64(s.Voltage())/1e6,
		float64(s.Temperature())/1000,
		avg.Degrees())
}
