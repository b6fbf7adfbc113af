package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/discordhook/internal/config"
	"github.com/davetashner/discordhook/internal/discord"
	"github.com/davetashner/discordhook/internal/redact"
)

// Send-specific flag values.
var (
	sendContent string
	sendType    string
)

// Shared color printers for send output.
var (
	colorGreen = color.New(color.FgGreen)
	colorRed   = color.New(color.FgRed)
)

// sendCmd dispatches a single message from the terminal, without going
// through an MCP host. Useful for verifying a webhook before wiring it
// into an agent.
var sendCmd = &cobra.Command{
	Use:   "send [webhook-url]",
	Short: "Send a single message and exit",
	Long: `Send one message to the Discord channel behind the configured
webhook and exit. The webhook URL may be given as the positional
argument; otherwise it is read from DISCORD_WEBHOOK_URL or the global
config file.

Examples:
  discordhook send --content "deploy finished"
  discordhook send --content "# Release v1.2\nAll green." --type markdown
  discordhook send https://discord.com/api/webhooks/ID/TOKEN -c "hello"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&sendContent, "content", "c", "", "message content (required)")
	sendCmd.Flags().StringVarP(&sendType, "type", "t", "text", "message type: text or markdown")
	_ = sendCmd.MarkFlagRequired("content")
}

func runSend(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	cfg, err := config.Resolve(arg)
	if err != nil {
		return exitError(ExitConfig, "discordhook: %v", err)
	}
	redact.Register(cfg.URL)

	msgType, err := discord.ParseMessageType(sendType)
	if err != nil {
		return exitError(ExitConfig, "discordhook: %v", err)
	}

	sender := discord.NewSender(cfg)
	msg := discord.Message{Content: sendContent, Type: msgType}
	if err := sender.Send(cmd.Context(), msg); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), colorRed.Sprint("failed"))
		return exitError(ExitSendFailure, "discordhook: %s", redact.String(err.Error()))
	}

	fmt.Fprintln(cmd.OutOrStdout(), colorGreen.Sprint("message sent"))
	return nil
}
