package main

import (
	"fmt"
	"log"
	"os"

	"github.com/itohio/ledthermo/pkg/config"
	"github.com/spf13/cobra"
)

var (
	rootOpts = struct {
		config  string
		variant string
	}{}

	rootCmd = &cobra.Command{
		Use:          "thermoctl",
		Short:        "Host tools for the LED thermometer",
		Long:         "Render display buffers, list and probe serial ports and run the thermometer pipeline against a simulated sensor.",
		SilenceUsage: true,
	}
)

func init() {
	log.SetFlags(0)

	rootCmd.PersistentFlags().StringVarP(&rootOpts.config, "config", "c", "config.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&rootOpts.variant, "variant", "", "parameter set to apply (timer, thermometer, spin)")

	rootCmd.AddCommand(renderCmd, tableCmd, portsCmd, probeCmd, simulateCmd)
}

// loadConfig loads the configuration file and applies the selected variant.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(rootOpts.config)
	if err != nil {
		return nil, err
	}
	if rootOpts.variant != "" {
		if err := cfg.Apply(rootOpts.variant); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid variant %q: %w", rootOpts.variant, err)
		}
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
