package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docqa/internal/config"
)

func extractCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file>",
		Short: "Print the text extracted from a PDF, XLSX or XLS file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(config.Load(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer r.close()

			out, err := r.extract(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return err
		},
	}
}
