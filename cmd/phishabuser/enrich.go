package main

import (
	"encoding/json"
	"io"
	"os"

	"phishabuser/internal/config"
	"phishabuser/internal/structs"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

func enrichCommand(cfg *config.Config) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Enriches one JSON report and prints it with its notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var input io.Reader = cmd.InOrStdin()
			if inputPath != "" && inputPath != "-" {
				file, err := os.Open(inputPath)
				if err != nil {
					return eris.Wrapf(err, "could not open report %s", inputPath)
				}
				defer file.Close()

				input = file
			}

			var report structs.Report
			if err := json.NewDecoder(input).Decode(&report); err != nil {
				return eris.Wrap(err, "could not decode report")
			}

			p, closeASN := newPipeline(ctx, cfg, nil)
			defer closeASN()

			result, err := p.Run(ctx, report)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			return encoder.Encode(result)
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Report file, stdin when empty or -")

	return cmd
}
