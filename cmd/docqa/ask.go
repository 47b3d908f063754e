package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docqa/internal/config"
	"docqa/internal/model"
)

func askCMD() *cobra.Command {
	var question string

	cmd := &cobra.Command{
		Use:   "ask <file>",
		Short: "Extract a document and ask the provider a question about it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if question == "" {
				return errors.New("--question is required")
			}

			r, err := newRunner(config.Load(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer r.close()

			doc, err := r.extract(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			resp, err := r.svc.Ask(cmd.Context(), model.QARequest{Content: doc.Text, Question: question})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Answer)
			return err
		},
	}
	cmd.Flags().StringVarP(&question, "question", "q", "", "question about the document (max 500 characters)")
	return cmd
}
