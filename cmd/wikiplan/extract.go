// cmd/wikiplan/extract.go
package main

import (
	"encoding/json"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/julianshen/wikiplan/internal/diagram"
)

// fileDiagrams pairs one input file with the diagram records extracted
// from it.
type fileDiagrams struct {
	File     string         `json:"file"`
	Diagrams []diagram.Data `json:"diagrams"`
}

func extractCmd() *cobra.Command {
	var concurrencyFlag int

	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract diagram data blocks from generated page content",
		Long: `Scan finished wiki page content for delimited diagram data blocks and
print the validated records as JSON. Invalid blocks are skipped, never
fatal. With multiple files, extraction runs on a bounded worker pool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Stdin mode: one content stream, plain array output.
			if len(args) == 0 {
				content, err := readInput(cmd.InOrStdin(), "")
				if err != nil {
					return err
				}
				return writeJSON(cmd, nonNil(diagram.Extract(content)))
			}

			concurrency := concurrencyFlag
			if concurrency <= 0 {
				concurrency = cfg.Extract.Concurrency
			}

			// Results are indexed by position so output order matches
			// argument order regardless of completion order.
			results := make([]fileDiagrams, len(args))
			p := pool.New().WithMaxGoroutines(concurrency).WithErrors()
			for i, name := range args {
				p.Go(func() error {
					content, err := readInput(nil, name)
					if err != nil {
						return err
					}
					results[i] = fileDiagrams{File: name, Diagrams: nonNil(diagram.Extract(content))}
					return nil
				})
			}
			if err := p.Wait(); err != nil {
				return err
			}

			return writeJSON(cmd, results)
		},
	}

	cmd.Flags().IntVar(&concurrencyFlag, "concurrency", 0, "max files processed in parallel (0 = config default)")

	return cmd
}

// nonNil replaces a nil slice with an empty one so output is always a JSON
// array, never null.
func nonNil(ds []diagram.Data) []diagram.Data {
	if ds == nil {
		return []diagram.Data{}
	}
	return ds
}

// writeJSON marshals v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	data = append(data, '\n')
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
