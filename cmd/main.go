package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "promptrelay",
		Short: "Discord slash-command relay to a generative language model",
		Long: "promptrelay registers a fixed set of slash commands, turns each invocation into a prompt,\n" +
			"and posts the model's answer back to Discord split into message-sized segments.",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Register commands, connect to Discord and serve the health endpoint (default)",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "register",
			Short: "Publish the slash-command catalog and exit",
			Args:  cobra.NoArgs,
			RunE:  runRegister,
		},
	)

	return root
}
