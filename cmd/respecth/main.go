// Command respecth converts ReSpecTh-style ignition-delay experiment
// documents into simulation records for a kinetic model evaluation
// driver.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "respecth",
		Short: "Read ReSpecTh ignition-delay experiment documents",
		Long: `respecth reads shock tube and rapid compression machine experiment
descriptions and converts them into per-point simulation records.

Each input document is classified, its unit-tagged properties and data
series are extracted, and one record per data point is emitted. A
document that fails extraction is reported and skipped; the remaining
documents are still converted.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (info, debug)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("respecth version %s\n", version)
		},
	}
}

// newLogger builds the stderr logger from the root --log-level flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	lvl := slog.LevelInfo
	if strings.EqualFold(level, "debug") {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
