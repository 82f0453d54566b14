// cmd/wikiplan/parse.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julianshen/wikiplan/internal/output"
	"github.com/julianshen/wikiplan/internal/structure"
)

func parseCmd() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a wiki structure from raw model output",
		Long: `Read raw LLM output from a file (or stdin) and recover the canonical
wiki structure, trying XML, JSON, and regex extraction in order. On total
failure the aggregated per-strategy reasons are printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			format := cfg.Output.Format
			if formatFlag != "" {
				format = formatFlag
			}
			formatter, err := output.New(format)
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			raw, err := readInput(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}

			ws, err := structure.Parse(raw)
			if err != nil {
				return err
			}

			rendered, err := formatter.Format(ws)
			if err != nil {
				return fmt.Errorf("formatting structure: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "output format: json, xml, yaml, markdown")

	return cmd
}
