package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the discordhook version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the discordhook binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "discordhook %s\n", Version)
	},
}
