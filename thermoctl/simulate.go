package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/itohio/ledthermo/pkg/sample"
	"github.com/itohio/ledthermo/pkg/sampler"
	"github.com/itohio/ledthermo/pkg/segment"
	"github.com/itohio/ledthermo/pkg/sim"
	"github.com/itohio/ledthermo/pkg/thermo"
	"github.com/spf13/cobra"
	"tinygo.org/x/drivers"
)

// formatSensor prints the last sensor values in driver units.
func formatSensor(s *thermo.Sensor) string {
	return fmt.Sprintf("sensor %.1f °C %.2f V", float64(s.Temperature())/1000, float64(s.Voltage())/1e6)
}

var (
	simulateOpts = struct {
		count  int
		raw    int
		art    bool
		sensor bool
	}{}

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Stream readings from the simulated sensor",
		Long:  "Run the simulated ADC continuously and print every averaged reading with the buffer the display would show.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			src := sim.NewSource(cfg, true)
			if simulateOpts.raw >= 0 {
				src.Set(uint16(simulateOpts.raw))
			}
			go src.Run(ctx)

			stream := src.Samples()
			if cfg.Sampling.AverageSamples > 0 {
				stream = sample.NewAveragingConverter(cfg.Sampling.AverageSamples, 0)(stream)
			}
			readings := sample.NewConverter(cfg.Scale(), 0)(stream)

			// Polled view of the same ADC, as a drivers.Sensor consumer sees it
			sensor := thermo.NewSensor(src, cfg.Scale())

			s := sampler.New(sampler.Config{Scale: cfg.Scale(), Overflow: cfg.OverflowPolicy()}, segment.NewShared(nil), nil)
			out := cmd.OutOrStdout()

			n := 0
			for r := range readings {
				buf := s.Render(r.Raw)
				fmt.Fprintf(out, "%s raw %4d  %5.2f V  %6.1f °C  [% x]",
					r.Timestamp.Format("15:04:05.000"), r.Raw, r.Volts(), r.Degrees(), buf[:])
				if simulateOpts.sensor {
					if err := sensor.Update(drivers.Temperature | drivers.Voltage); err != nil {
						return err
					}
					fmt.Fprint(out, "  ", formatSensor(sensor))
				}
				fmt.Fprintln(out)
				if simulateOpts.art {
					printBuffer(out, buf)
				}

				n++
				if simulateOpts.count > 0 && n >= simulateOpts.count {
					cancel()
					break
				}
			}

			// Drain so the pipeline goroutines exit
			for range readings {
			}
			return nil
		},
	}
)

func init() {
	simulateCmd.Flags().IntVarP(&simulateOpts.count, "count", "n", 0, "stop after this many readings (0 = until interrupted)")
	simulateCmd.Flags().IntVar(&simulateOpts.raw, "raw", -1, "hold a fixed raw reading instead of the waveform")
	simulateCmd.Flags().BoolVar(&simulateOpts.art, "art", false, "draw the display for every reading")
	simulateCmd.Flags().BoolVar(&simulateOpts.sensor, "sensor", false, "also poll the ADC as a temperature sensor")
}
