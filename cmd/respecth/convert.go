package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ignitiondata/respecth/experiment"
	"github.com/ignitiondata/respecth/simulation"
)

func newConvertCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Convert experiment documents to simulation records",
		Long: `Convert parses each experiment document, fans multi-point documents
out into one simulation record per data point, and writes all records
as a YAML stream. Documents that fail extraction are logged and
skipped; convert exits non-zero if any document failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd)

			var records []simulation.Simulation
			failed := 0
			for _, path := range args {
				log.Debug("reading document", "file", path)
				sims, err := convertOne(path)
				if err != nil {
					log.Error("skipping document", "file", path, "err", err)
					failed++
					continue
				}
				log.Info("converted document", "file", path, "records", len(sims))
				records = append(records, sims...)
			}

			if err := writeRecords(records, output); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Errorf("%d of %d documents failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", `Output file ("-" for stdout)`)
	return cmd
}

func convertOne(path string) ([]simulation.Simulation, error) {
	p, err := experiment.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return simulation.Build(p, path)
}

func writeRecords(records []simulation.Simulation, output string) error {
	var w io.Writer = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer f.Close()
		w = f
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(records); err != nil {
		return errors.Wrap(err, "encoding records")
	}
	return nil
}
