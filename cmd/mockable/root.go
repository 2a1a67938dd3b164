package main

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "mockable",
		Short: "mockable generates test doubles from protocol definition files",
		Long: "mockable expands @Mockable protocol declarations in .iface definition\n" +
			"files into mock types and factories, either in the definition dialect\n" +
			"or as Go bindings.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return root.Execute()
}
