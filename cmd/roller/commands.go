package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Roll one build and print it",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Roll builds until you quit",
	Long:  `Print a build, then roll a new one every time Enter is pressed. Type q to quit.`,
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := contextOf(cmd)
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	return a.session.generate(ctx, cmd.OutOrStdout())
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	return a.session.interactive(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
