package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mockable version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("mockable", version)
		},
	}
}
