package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/qrcompose/app"
	"github.com/dmitrymomot/qrcompose/core/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "qrcode",
		Short:         "Generate styled QR code images",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	return cmd
}

// newApp loads the environment configuration, applies global flags and
// installs the app logger as the slog default.
func newApp(flags *rootFlags) (*app.App, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	a, err := app.NewApp(app.WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	logger.SetAsDefault(a.Logger())
	return a, nil
}
