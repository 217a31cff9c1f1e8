package main

import (
	"fmt"

	"github.com/itohio/ledthermo/pkg/segment"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the glyph table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, sym := range segment.DefaultTable.Symbols() {
			art := segment.Art(segment.Buffer{sym.Pattern})
			fmt.Fprintf(out, "%q %08b\n", sym.Char, sym.Pattern)
			for _, row := range art {
				fmt.Fprintf(out, "  %s\n", row[:segment.Width])
			}
		}
	},
}
