package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vaultpass/password-generator/internal/cli"
	"github.com/vaultpass/password-generator/internal/config"
	"github.com/vaultpass/password-generator/internal/service"
)

func newRootCommand(exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "password-generator [options]",
		Short: "Generate a random password",
		// Options are parsed by cli.Parse so that unknown flags and invalid
		// lengths are reported in its own format.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

			runner := &cli.Runner{
				Generator: service.NewGeneratorService(nil, logger),
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
				Logger:    logger,
			}
			*exitCode = runner.Run(args)
			return nil
		},
	}
}

// execute runs cmd with args. Cobra answers its hidden completion requests
// before RunE is reached, so those tokens go straight to RunE where
// cli.Parse reports them as unknown options.
func execute(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return cmd.RunE(cmd, args)
	}
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

func main() {
	exitCode := 0
	if err := execute(newRootCommand(&exitCode), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
