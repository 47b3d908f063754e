package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCMD().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCMD() *cobra.Command {
	root := &cobra.Command{
		Use:          "docqa",
		Short:        "Extract text from PDF and Excel files and ask questions about it",
		SilenceUsage: true,
	}
	root.AddCommand(extractCMD(), askCMD())
	return root
}
