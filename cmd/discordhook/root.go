package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	hooklog "github.com/davetashner/discordhook/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for discordhook.
var rootCmd = &cobra.Command{
	Use:   "discordhook",
	Short: "Bridge a Discord webhook into the Model Context Protocol",
	Long: `Discordhook exposes a single Discord webhook as an MCP tool.
An agent connected over stdio can call send_message to post text or
markdown into the channel behind the webhook; discordhook performs the
outbound HTTP call and reports success or failure back through the
tool result.

The webhook URL is resolved from the command line, the
DISCORD_WEBHOOK_URL environment variable, or the global config file,
in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		hooklog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(versionCmd)
}
