package main

import (
	"fmt"

	"github.com/example/go-kokoro-g2p/internal/pipeline"
	"github.com/spf13/cobra"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported language codes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, lang := range pipeline.Languages() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
