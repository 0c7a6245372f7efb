package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <word>",
		Short: "Print a generated meaning and example sentence without storing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			word := a.Definitions.Generate(cmd.Context(), args[0])

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(word); err != nil {
				return fmt.Errorf("failed to encode word: %w", err)
			}
			return nil
		},
	}
}
