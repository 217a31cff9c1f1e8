package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/itohio/ledthermo/pkg/sampler"
	"github.com/itohio/ledthermo/pkg/segment"
	"github.com/spf13/cobra"
)

var (
	renderOpts = struct {
		raw      bool
		overflow string
	}{}

	renderCmd = &cobra.Command{
		Use:   "render <temperature|raw>...",
		Short: "Show what the display would light",
		Long: "Render temperatures (in degrees, e.g. 23.5 or -5) or raw ADC readings (with --raw) " +
			"the way the firmware lays them out on the 4-digit display.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			policy := cfg.OverflowPolicy()
			if renderOpts.overflow != "" {
				if policy, err = sampler.ParseOverflow(renderOpts.overflow); err != nil {
					return fmt.Errorf("%w: %q", err, renderOpts.overflow)
				}
			}

			s := sampler.New(sampler.Config{Scale: cfg.Scale(), Overflow: policy}, segment.NewShared(nil), nil)
			out := cmd.OutOrStdout()

			for _, arg := range args {
				var buf segment.Buffer
				if renderOpts.raw {
					raw, err := strconv.ParseUint(arg, 10, 10)
					if err != nil {
						return fmt.Errorf("invalid raw reading %q: %w", arg, err)
					}
					buf = s.Render(uint16(raw))
					fmt.Fprintf(out, "raw %d -> %s\n", raw, formatDeci(s.Last()))
				} else {
					deci, err := parseDeci(arg)
					if err != nil {
						return err
					}
					var text [16]byte
					buf = segment.Layout(s.Text(text[:0], deci), segment.DefaultTable)
					fmt.Fprintf(out, "%s\n", formatDeci(deci))
				}
				printBuffer(out, buf)
			}
			return nil
		},
	}
)

func init() {
	renderCmd.Flags().BoolVarP(&renderOpts.raw, "raw", "r", false, "arguments are raw 10-bit ADC readings")
	renderCmd.Flags().StringVar(&renderOpts.overflow, "overflow", "", "overflow policy (clamp, truncate, dashes)")
}

// parseDeci parses a temperature in degrees into tenths of a degree, rounded
// half away from zero.
func parseDeci(s string) (int32, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid temperature %q: %w", s, err)
	}
	return int32(math.Round(f * 10)), nil
}

func formatDeci(deci int32) string {
	sign := ""
	if deci < 0 {
		sign = "-"
		deci = -deci
	}
	return fmt.Sprintf("%s%d.%d °C", sign, deci/10, deci%10)
}

func printBuffer(w io.Writer, buf segment.Buffer) {
	for _, row := range segment.Art(buf) {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintf(w, "%08b %08b %08b %08b\n\n", buf[0], buf[1], buf[2], buf[3])
}
