package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/itohio/ledthermo/pkg/link"
	"github.com/spf13/cobra"
)

var (
	probeOpts = struct {
		port    string
		timeout time.Duration
		mock    bool
	}{}

	probeCmd = &cobra.Command{
		Use:   "probe",
		Short: "Reset the board and wait for its banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if probeOpts.port != "" {
				cfg.Serial.Port = probeOpts.port
			}

			var dev link.Device
			name := cfg.Serial.Port
			if probeOpts.mock {
				dev = link.NewMock(cfg.Serial.Banner, 100*time.Millisecond)
				name = "mocked board"
			} else {
				dev = link.New(cfg.Serial.Port, cfg.Serial.BaudRate, link.DefaultBufferSize)
			}

			if err := dev.Connect(); err != nil {
				return err
			}
			defer dev.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), probeOpts.timeout)
			defer cancel()

			log.Printf("Waiting for %q on %s", cfg.Serial.Banner, name)
			line, err := link.WaitBanner(ctx, dev, cfg.Serial.Banner)
			if err != nil {
				return fmt.Errorf("board on %s did not answer: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s answered with %q\n", name, line.Text)
			return nil
		},
	}
)

func init() {
	probeCmd.Flags().StringVarP(&probeOpts.port, "port", "p", "", "serial port override")
	probeCmd.Flags().DurationVarP(&probeOpts.timeout, "timeout", "t", 5*time.Second, "how long to wait for the banner")
	probeCmd.Flags().BoolVar(&probeOpts.mock, "mock", false, "probe a mocked board")
}
