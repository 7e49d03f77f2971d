package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liitahub/conllu2rdf/conllu"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [patterns...]",
		Short: "Check CoNLL-U files for structural problems",
		Long: `Validate CoNLL-U files against the structural rules of the format.
Each diagnostic is printed on its own line prefixed with the file. The
command exits non-zero when any file produces diagnostics.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := expandPatterns(args)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no input files match %v", args)
			}

			failed := 0
			for _, input := range inputs {
				data, err := os.ReadFile(input)
				if err != nil {
					return fmt.Errorf("read %s: %w", input, err)
				}
				report := conllu.Validate(string(data))
				for _, diag := range report.Errors {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", input, diag)
				}
				if !report.IsValid {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(inputs))
			}
			return nil
		},
	}
	return cmd
}
